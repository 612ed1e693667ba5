package sequence_test

import (
	"errors"
	"fmt"

	"github.com/geofduf/dyck-words/sequence"
)

func ExampleEnumerator() {
	e, err := sequence.NewEnumerator(3)
	if err != nil {
		fmt.Println("Enumeration failed:", err)
		return
	}

	fmt.Println(e.Count())
	for e.Next() {
		fmt.Println(sequence.Format(e.Sequence(), e.Semilength()))
	}
	// Output:
	// 5
	// 0b101010
	// 0b101100
	// 0b110010
	// 0b110100
	// 0b111000
}

func ExampleNext() {
	w, err := sequence.Parse("0b1101001100")
	if err != nil {
		fmt.Println("Parse failed:", err)
		return
	}

	fmt.Println(sequence.Format(sequence.Next(w), 5))
	// Output: 0b1101010010
}

func ExampleParse() {
	_, err := sequence.Parse("0b1012")

	fmt.Println(err, errors.Is(err, sequence.ErrInvalidDigit))
	// Output: invalid digit '2' at offset 5 true
}

func ExampleQuery() {
	words, err := sequence.Query(4, 5, 7)
	if err != nil {
		fmt.Println("Query failed:", err)
		return
	}

	flag := sequence.SerializeRank | sequence.SerializeText

	fmt.Printf("%s", sequence.Serialize(words, 4, 5, flag))
	// Output: [{"rank":5,"text":"0b11001010"},{"rank":6,"text":"0b11001100"},{"rank":7,"text":"0b11010010"}]
}
