package sequence

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultStoreLimit is the default maximum semilength held by a Store. An
// enumeration of that size holds 2674440 words.
const DefaultStoreLimit = 14

// ctxCheckInterval is the number of words produced between two checks of
// the context in Warm.
const ctxCheckInterval = 1 << 12

// A Store represents a collection of complete enumerations indexed by
// semilength. A Store can be used simultaneously from multiple goroutines.
type Store struct {
	m   map[uint][]Sequence
	max uint
	mu  sync.RWMutex
}

// NewStore creates and initializes a new Store holding enumerations up to
// semilength limit. The limit will default to DefaultStoreLimit if set to 0
// and is capped to MaxSemilength.
func NewStore(limit uint) *Store {
	if limit == 0 {
		limit = DefaultStoreLimit
	}
	if limit > MaxSemilength {
		limit = MaxSemilength
	}
	return &Store{m: make(map[uint][]Sequence), max: limit}
}

// Limit returns the maximum semilength held by the store.
func (s *Store) Limit() uint {
	return s.max
}

// Get returns a copy of the enumeration of semilength n, computing and
// keeping it first if the store does not hold it yet.
func (s *Store) Get(n uint) ([]Sequence, error) {
	if err := s.check(n); err != nil {
		return nil, err
	}
	s.mu.RLock()
	x, ok := s.m[n]
	s.mu.RUnlock()
	if ok {
		return slices.Clone(x), nil
	}
	x, err := Enumerate(n)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.m[n] = x
	s.mu.Unlock()
	return slices.Clone(x), nil
}

// Add adds a copy of words to the store as the enumeration of semilength n.
// If an enumeration already exists for n it is silently replaced. The method
// returns an error if n is outside the limit of the store or if the number of
// words differs from Catalan(n).
func (s *Store) Add(n uint, words []Sequence) error {
	if err := s.check(n); err != nil {
		return err
	}
	if err := checkCount(n, len(words)); err != nil {
		return err
	}
	s.mu.Lock()
	s.m[n] = slices.Clone(words)
	s.mu.Unlock()
	return nil
}

// Delete removes the enumeration of semilength n from the store.
func (s *Store) Delete(n uint) {
	s.mu.Lock()
	delete(s.m, n)
	s.mu.Unlock()
}

// Keys returns the semilengths held in the store, in increasing order.
func (s *Store) Keys() []uint {
	s.mu.RLock()
	keys := make([]uint, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Warm computes the enumerations of the given semilengths concurrently and
// adds the missing ones to the store. Semilengths already held are skipped.
// The method stops at the first error or when ctx is done.
func (s *Store) Warm(ctx context.Context, ns ...uint) error {
	for _, n := range ns {
		if err := s.check(n); err != nil {
			return err
		}
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, n := range ns {
		s.mu.RLock()
		_, ok := s.m[n]
		s.mu.RUnlock()
		if ok {
			continue
		}
		g.Go(func() error {
			x, err := enumerateContext(ctx, n)
			if err != nil {
				return err
			}
			s.mu.Lock()
			s.m[n] = x
			s.mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

// Dump allows to export the store as a slice of bytes.
func (s *Store) Dump() ([]byte, error) {
	var buf bytes.Buffer
	container := make([]byte, binary.MaxVarintLen64)
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]uint, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		v := s.m[k]
		for _, x := range []uint64{uint64(k), uint64(len(v))} {
			n := binary.PutUvarint(container, x)
			if _, err := buf.Write(container[:n]); err != nil {
				return nil, err
			}
		}
		for _, w := range v {
			n := binary.PutUvarint(container, uint64(w))
			if _, err := buf.Write(container[:n]); err != nil {
				return nil, err
			}
		}
	}
	return buf.Bytes(), nil
}

// Load loads the content of a store previously exported using the Dump
// method, replacing the current content. On error the store is left
// unchanged.
func (s *Store) Load(data []byte) error {
	m := make(map[uint][]Sequence)
	i := 0
	next := func() (uint64, error) {
		v, n := binary.Uvarint(data[i:])
		if n <= 0 {
			return 0, errors.New("cannot decode the store")
		}
		i += n
		return v, nil
	}
	for i < len(data) {
		k, err := next()
		if err != nil {
			return err
		}
		if err := s.check(uint(k)); err != nil {
			return err
		}
		count, err := next()
		if err != nil {
			return err
		}
		if count > uint64(len(data)-i) {
			return errors.New("cannot decode the store")
		}
		if err := checkCount(uint(k), int(count)); err != nil {
			return err
		}
		v := make([]Sequence, count)
		for j := range v {
			w, err := next()
			if err != nil {
				return err
			}
			v[j] = Sequence(w)
		}
		m[uint(k)] = v
	}
	s.mu.Lock()
	s.m = m
	s.mu.Unlock()
	return nil
}

// check returns an error if n is above the limit of the store.
func (s *Store) check(n uint) error {
	if n > s.max {
		return fmt.Errorf("semilength %d above store limit %d: %w", n, s.max, ErrSemilength)
	}
	return nil
}

// checkCount returns an error if count is not the number of Dyck words of
// semilength n.
func checkCount(n uint, count int) error {
	c, err := Catalan(n)
	if err != nil {
		return err
	}
	if uint64(count) != c {
		return fmt.Errorf("semilength %d: got %d words, want %d", n, count, c)
	}
	return nil
}

// enumerateContext is like Enumerate but returns early with the context
// error once ctx is done.
func enumerateContext(ctx context.Context, n uint) ([]Sequence, error) {
	e, err := NewEnumerator(n)
	if err != nil {
		return nil, err
	}
	data := make([]Sequence, 0, min(e.Count(), maxPrealloc))
	for e.Next() {
		if e.Rank()%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		data = append(data, e.Sequence())
	}
	return data, nil
}
