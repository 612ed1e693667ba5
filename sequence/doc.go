/*
Package sequence enumerates Dyck words of a given semilength in increasing
numeric order. It defines the type Sequence, the integer encoding of a Dyck
word, with functions to count, seed and advance an enumeration, and the type
Store, a cache of complete enumerations safe to use from multiple goroutines.

A Dyck word of semilength n is a string of n up-steps and n down-steps that
never goes below its starting level. Up-steps are encoded as 1 and down-steps
as 0, most significant bit first, so a word is a 2n-bit unsigned integer:

	()()()  0b101010
	(()())  0b110100
	((()))  0b111000

The smallest word is "10" repeated n times. Next computes the following word
with a constant number of word operations and without checking its input:
passing a value that is not a Dyck word, or the largest word of its
semilength, to Next will result in undefined behavior. An Enumerator calls
Next exactly Catalan(n)-1 times and never past the largest word.

Sequence values are 64 bits wide, which limits the semilength to
MaxSemilength. Catalan numbers are computed with checked arithmetic and fit
in a uint64 up to MaxCatalanN.
*/
package sequence
