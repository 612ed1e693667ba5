package sequence

import (
	"errors"
	"fmt"
	"math/bits"
)

const (
	wordBits = 64
	prefix   = "0b"

	// alternatingMask has its ones at bit positions 1, 3, 5 and so on, over
	// the full width of a Sequence.
	alternatingMask = 0xaaaa_aaaa_aaaa_aaaa
)

// MaxSemilength is the largest semilength a Sequence can represent.
const MaxSemilength = wordBits / 2 // 32

// Errors returned by the package, possibly wrapped.
var (
	ErrOverflow     = errors.New("value out of range")
	ErrSemilength   = errors.New("unsupported semilength")
	ErrPrefix       = errors.New("missing 0b prefix")
	ErrInvalidDigit = errors.New("invalid digit")
	ErrOutOfBounds  = errors.New("out of bounds")
)

// A Sequence is a Dyck word encoded as an unsigned integer. Read from the most
// significant of its 2n low-order bits, a 1 is an up-step and a 0 is a
// down-step. The semilength is not stored in the value.
type Sequence uint64

// Minimal returns the smallest Dyck word of semilength n, the pattern "10"
// repeated n times. The method returns an error wrapping ErrSemilength if n
// is greater than MaxSemilength.
func Minimal(n uint) (Sequence, error) {
	if n > MaxSemilength {
		return 0, fmt.Errorf("semilength %d: %w", n, ErrSemilength)
	}
	return Sequence(alternatingMask & widthMask(n)), nil
}

// Max returns the largest Dyck word of semilength n, n up-steps followed by
// n down-steps. The method returns an error wrapping ErrSemilength if n is
// greater than MaxSemilength.
func Max(n uint) (Sequence, error) {
	if n > MaxSemilength {
		return 0, fmt.Errorf("semilength %d: %w", n, ErrSemilength)
	}
	return Sequence((uint64(1)<<n - 1) << n), nil
}

// Next returns the Dyck word following w in increasing numeric order. The
// input is not validated: w must be a Dyck word other than the largest one
// of its semilength, otherwise the result is undefined. Next panics on zero.
func Next(w Sequence) Sequence {
	x := uint64(w)
	// a is the lowest set bit of x. Adding it clears the lowest run of ones
	// and sets the zero above it.
	a := x & -x
	b := x + a
	// (x^b)/a is the cleared run and the new bit moved down to bit 0.
	// Dropping two bits and adding one leaves a power of two.
	c := (x^b)/a>>2 + 1
	// The square minus one, masked, puts the remaining ups of the run back
	// at the lowest alternating positions. The high word of the 128-bit
	// square is always zero as the run holds at most MaxSemilength ones.
	_, sq := bits.Mul64(c, c)
	return Sequence((sq-1)&alternatingMask | b)
}

// Format returns the canonical text form of w as a Dyck word of semilength
// n: the 0b prefix followed by exactly 2n binary digits.
func Format(w Sequence, n uint) string {
	return string(AppendFormat(make([]byte, 0, len(prefix)+2*int(n)), w, n))
}

// AppendFormat appends the canonical text form of w as a Dyck word of
// semilength n to dst and returns the extended buffer.
func AppendFormat(dst []byte, w Sequence, n uint) []byte {
	dst = append(dst, prefix...)
	for i := int(2*n) - 1; i >= 0; i-- {
		dst = append(dst, '0'+byte(w>>uint(i)&1))
	}
	return dst
}

// An InvalidDigitError reports a character other than '0' or '1' found after
// the prefix of a textual sequence.
type InvalidDigitError struct {
	Digit  rune
	Offset int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %q at offset %d", e.Digit, e.Offset)
}

func (e *InvalidDigitError) Is(target error) bool {
	return target == ErrInvalidDigit
}

// Parse returns the Sequence encoded by s, a 0b prefix followed by binary
// digits. The digits are not checked for balance.
func Parse(s string) (Sequence, error) {
	w, _, err := ParseWidth(s)
	return w, err
}

// ParseWidth is like Parse but also returns the number of digits in s, which
// is twice the semilength of a well-formed word.
func ParseWidth(s string) (Sequence, int, error) {
	if len(s) < len(prefix) || s[:len(prefix)] != prefix {
		return 0, 0, ErrPrefix
	}
	var x uint64
	n := 0
	for i, r := range s[len(prefix):] {
		switch r {
		case '0':
			x <<= 1
		case '1':
			x = x<<1 | 1
		default:
			return 0, 0, &InvalidDigitError{Digit: r, Offset: len(prefix) + i}
		}
		n++
		if n > wordBits {
			return 0, 0, fmt.Errorf("%d digits: %w", n, ErrOverflow)
		}
	}
	return Sequence(x), n, nil
}

// widthMask returns a mask covering the 2n low-order bits.
func widthMask(n uint) uint64 {
	if 2*n >= wordBits {
		return ^uint64(0)
	}
	return uint64(1)<<(2*n) - 1
}
