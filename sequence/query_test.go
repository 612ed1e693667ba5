package sequence

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuery(t *testing.T) {
	all, _ := Enumerate(4) // 14 words
	tests := []struct {
		id    int
		first uint64
		last  uint64
		want  []Sequence
	}{
		{1, 0, 13, all},
		{2, 0, 100, all},
		{3, 3, 5, all[3:6]},
		{4, 13, 20, all[13:]},
		{5, 7, 7, all[7:8]},
	}
	for _, tt := range tests {
		got, err := Query(4, tt.first, tt.last)
		prefix := fmt.Sprintf("test %d (%d, %d)", tt.id, tt.first, tt.last)
		if err != nil {
			t.Fatalf("%s: got error %s, want error nil", prefix, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("%s: mismatch (-want +got):\n%s", prefix, diff)
		}
	}
}

func TestQueryErrors(t *testing.T) {
	if _, err := Query(4, 5, 4); err == nil {
		t.Fatalf("got error nil, want an error")
	}
	if _, err := Query(4, 14, 20); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("got error %v, want %v", err, ErrOutOfBounds)
	}
	if _, err := Query(MaxSemilength+1, 0, 1); !errors.Is(err, ErrSemilength) {
		t.Fatalf("got error %v, want %v", err, ErrSemilength)
	}
}

func TestQueryEmptyWord(t *testing.T) {
	got, err := Query(0, 0, 0)
	if err != nil {
		t.Fatalf("got error %s, want error nil", err)
	}
	if diff := cmp.Diff([]Sequence{0}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
