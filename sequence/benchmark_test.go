package sequence

import "testing"

// BenchmarkNext measures a single successor step on a wide word.
func BenchmarkNext(b *testing.B) {
	w, _ := Minimal(MaxSemilength)
	var sink Sequence
	for b.Loop() {
		sink = Next(w)
	}
	_ = sink
}

// BenchmarkEnumerator measures a full enumeration of semilength 12.
func BenchmarkEnumerator(b *testing.B) {
	for b.Loop() {
		e, _ := NewEnumerator(12)
		for e.Next() {
		}
	}
}

// BenchmarkCatalan measures the largest supported Catalan number.
func BenchmarkCatalan(b *testing.B) {
	for b.Loop() {
		_, _ = Catalan(MaxCatalanN)
	}
}

func BenchmarkAppendFormat(b *testing.B) {
	w, _ := Minimal(16)
	buf := make([]byte, 0, 64)
	for b.Loop() {
		buf = AppendFormat(buf[:0], w, 16)
	}
}
