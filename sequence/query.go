package sequence

import (
	"errors"
	"fmt"
)

// Query returns the Dyck words of semilength n whose rank lies in the closed
// interval [first, last], clipped to the ranks that exist. The words before
// first are enumerated and discarded. The method returns an error if first is
// greater than last or if the interval does not overlap the enumeration.
func Query(n uint, first, last uint64) ([]Sequence, error) {
	if first > last {
		return nil, errors.New("invalid arguments")
	}
	e, err := NewEnumerator(n)
	if err != nil {
		return nil, err
	}
	r, ok := interval{start: 0, end: e.Count() - 1}.intersect(interval{start: first, end: last})
	if !ok {
		return nil, fmt.Errorf("ranks %d to %d: %w", first, last, ErrOutOfBounds)
	}
	data := make([]Sequence, 0, min(r.end-r.start+1, maxPrealloc))
	for e.Next() {
		if e.Rank() < r.start {
			continue
		}
		data = append(data, e.Sequence())
		if e.Rank() == r.end {
			break
		}
	}
	return data, nil
}
