package sequence

import "iter"

const maxPrealloc = 1 << 20

// An Enumerator steps through the Dyck words of a semilength in increasing
// numeric order, starting from the minimal word. It follows the
// bufio.Scanner pattern:
//
//	e, err := NewEnumerator(3)
//	...
//	for e.Next() {
//		fmt.Println(Format(e.Sequence(), e.Semilength()))
//	}
//
// Stopping before the end is always safe.
type Enumerator struct {
	n     uint
	count uint64
	rank  uint64
	cur   Sequence
	seed  Sequence
	begun bool
}

// NewEnumerator creates an Enumerator over the Dyck words of semilength n.
// The method returns an error if n is greater than MaxSemilength.
func NewEnumerator(n uint) (*Enumerator, error) {
	seed, err := Minimal(n)
	if err != nil {
		return nil, err
	}
	count, err := Catalan(n)
	if err != nil {
		return nil, err
	}
	return &Enumerator{n: n, count: count, seed: seed}, nil
}

// Next advances the enumerator to the next word, which is then available
// through the Sequence method. It returns false once Count words have been
// produced.
func (e *Enumerator) Next() bool {
	if !e.begun {
		e.begun = true
		e.cur = e.seed
		return true
	}
	if e.rank+1 >= e.count {
		return false
	}
	e.cur = Next(e.cur)
	e.rank++
	return true
}

// Sequence returns the current word.
func (e *Enumerator) Sequence() Sequence {
	return e.cur
}

// Rank returns the position of the current word, starting at 0 for the
// minimal word.
func (e *Enumerator) Rank() uint64 {
	return e.rank
}

// Count returns the total number of words the enumerator produces.
func (e *Enumerator) Count() uint64 {
	return e.count
}

// Semilength returns the semilength of the enumerated words.
func (e *Enumerator) Semilength() uint {
	return e.n
}

// Reset rewinds the enumerator to the minimal word.
func (e *Enumerator) Reset() {
	e.rank, e.cur, e.begun = 0, 0, false
}

// All returns an iterator over the rank and value of every Dyck word of
// semilength n, in increasing numeric order.
func All(n uint) (iter.Seq2[uint64, Sequence], error) {
	start, err := NewEnumerator(n)
	if err != nil {
		return nil, err
	}
	return func(yield func(uint64, Sequence) bool) {
		e := *start
		for e.Next() {
			if !yield(e.Rank(), e.Sequence()) {
				return
			}
		}
	}, nil
}

// Enumerate returns every Dyck word of semilength n in increasing numeric
// order. Memory use grows with Catalan(n), roughly 4^n.
func Enumerate(n uint) ([]Sequence, error) {
	e, err := NewEnumerator(n)
	if err != nil {
		return nil, err
	}
	data := make([]Sequence, 0, min(e.Count(), maxPrealloc))
	for e.Next() {
		data = append(data, e.Sequence())
	}
	return data, nil
}
