package sequence

import (
	"fmt"
	"math/bits"
)

// MaxCatalanN is the largest n for which Catalan(n) fits in a uint64.
const MaxCatalanN = 36

// Catalan returns the number of Dyck words of semilength n. The method
// returns an error wrapping ErrOverflow if the result does not fit in a
// uint64, which happens for every n greater than MaxCatalanN.
func Catalan(n uint) (uint64, error) {
	if n < 2 {
		return 1, nil
	}
	// The table never grows past the first order that overflows.
	c := make([]uint64, min(n, MaxCatalanN+1)+1)
	c[0], c[1] = 1, 1
	for i := uint(2); i <= n; i++ {
		var sum, carry uint64
		for j := uint(0); j < i; j++ {
			hi, lo := bits.Mul64(c[j], c[i-j-1])
			sum, carry = bits.Add64(sum, lo, 0)
			if hi != 0 || carry != 0 {
				return 0, fmt.Errorf("catalan number of order %d: %w", i, ErrOverflow)
			}
		}
		c[i] = sum
	}
	return c[n], nil
}
