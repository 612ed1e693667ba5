package sequence

import "strconv"

// These flags define which values to include in a serialized output.
const (
	SerializeRank  = 1 << iota // position in the enumeration
	SerializeText              // canonical text form
	SerializeValue             // integer encoding
)

const (
	serializerBasePrefix  = '['
	serializerRankPrefix  = `"rank":`
	serializerTextPrefix  = `"text":`
	serializerValuePrefix = `"value":`
	serializerRowSuffix   = "},"
	serializerBaseSuffix  = ']'
)

// serialize returns a JSON encoding of words as Dyck words of semilength n,
// using rank as the rank of the first element and flag to define which values
// to include in the serialized output.
func serialize(words []Sequence, n uint, rank uint64, flag int) []byte {
	if len(words) == 0 {
		return []byte("[]")
	}
	var withRank, withText, withValue bool
	approxRowSize := 3
	if flag&SerializeRank != 0 {
		approxRowSize += 28
		withRank = true
	}
	if flag&SerializeText != 0 {
		approxRowSize += 12 + 2*int(n)
		withText = true
	}
	if flag&SerializeValue != 0 {
		approxRowSize += 29
		withValue = true
	}
	buf := make([]byte, 0, 2+len(words)*approxRowSize)
	buf = append(buf, serializerBasePrefix)
	for i, w := range words {
		buf = append(buf, '{')
		sep := false
		if withRank {
			buf = append(buf, serializerRankPrefix...)
			buf = strconv.AppendUint(buf, rank+uint64(i), 10)
			sep = true
		}
		if withText {
			if sep {
				buf = append(buf, ',')
			}
			buf = append(buf, serializerTextPrefix...)
			buf = append(buf, '"')
			buf = AppendFormat(buf, w, n)
			buf = append(buf, '"')
			sep = true
		}
		if withValue {
			if sep {
				buf = append(buf, ',')
			}
			buf = append(buf, serializerValuePrefix...)
			buf = strconv.AppendUint(buf, uint64(w), 10)
		}
		buf = append(buf, serializerRowSuffix...)
	}
	buf[len(buf)-1] = serializerBaseSuffix
	return buf
}

// Serialize is a convenience function that returns a JSON encoding of words
// as Dyck words of semilength n, using rank as the rank of the first element
// and flag to define which values to include in the serialized output.
func Serialize(words []Sequence, n uint, rank uint64, flag int) []byte {
	return serialize(words, n, rank, flag)
}
