package sequence

import (
	"bytes"
	"strings"
	"testing"
)

func TestSerialize(t *testing.T) {
	words := []Sequence{0b110010, 0b110100, 0b111000}
	tests := []struct {
		id   int
		rank uint64
		flag int
		want []string
	}{
		{
			1,
			2,
			SerializeRank | SerializeText | SerializeValue,
			[]string{
				"[",
				`{"rank":2,"text":"0b110010","value":50},`,
				`{"rank":3,"text":"0b110100","value":52},`,
				`{"rank":4,"text":"0b111000","value":56}`,
				"]",
			},
		},
		{
			2,
			0,
			SerializeText,
			[]string{
				"[",
				`{"text":"0b110010"},`,
				`{"text":"0b110100"},`,
				`{"text":"0b111000"}`,
				"]",
			},
		},
		{
			3,
			7,
			SerializeRank | SerializeValue,
			[]string{
				"[",
				`{"rank":7,"value":50},`,
				`{"rank":8,"value":52},`,
				`{"rank":9,"value":56}`,
				"]",
			},
		},
	}
	for _, tt := range tests {
		got := Serialize(words, 3, tt.rank, tt.flag)
		if v := []byte(strings.Join(tt.want, "")); !bytes.Equal(got, v) {
			t.Fatalf("test %d:\ngot  %s\nwant %s", tt.id, got, v)
		}
	}
}

func TestSerializeEmpty(t *testing.T) {
	if got := Serialize(nil, 3, 0, SerializeText); string(got) != "[]" {
		t.Fatalf("got %s, want []", got)
	}
	if got := Serialize([]Sequence{0}, 0, 0, SerializeText); string(got) != `[{"text":"0b"}]` {
		t.Fatalf("got %s", got)
	}
}
