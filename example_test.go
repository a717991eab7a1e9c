package ndbc_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/ndbc"
)

// ExampleParseReader parses a two-observation NDBC table from memory.
func ExampleParseReader() {
	data := "#YY MM DD hh mm WDIR WSPD GST\n" +
		"#yr mo dy hr mn degT m/s m/s\n" +
		"2020 06 15 12 30 270 8.4 10.1\n" +
		"2020 06 15 13 00 265 7.9 9.6\n"

	rec, err := ndbc.ParseReader(strings.NewReader(data), "41001")
	if err != nil {
		log.Fatal(err)
	}

	wspd, _ := rec.Column("wspd")
	fmt.Println(rec.Station(), rec.Len(), wspd)
	// Output: 41001 2 [8.4 7.9]
}

// ExampleSplitFixedWidth slices a column-aligned block with no delimiters.
func ExampleSplitFixedWidth() {
	rows := []string{"AB123", "CD 45", "EF789"}
	cells, err := ndbc.SplitFixedWidth(rows, []int{2, 3}, []bool{false, true}, false)
	if err != nil {
		log.Fatal(err)
	}

	for _, row := range cells {
		fmt.Println(row[0].Text, row[1].Value)
	}
	// Output:
	// AB 123
	// CD 45
	// EF 789
}
