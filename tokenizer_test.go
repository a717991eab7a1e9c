package ndbc

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenizeReader(t *testing.T) {
	t.Parallel()

	input := "YY MM DD\n" +
		"\n" +
		"  08 01 01  \n" +
		"\t\n" +
		"09\t02\t03\n"

	table, err := tokenizeReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("tokenizeReader() error = %v", err)
	}

	want := [][]string{
		{"YY", "MM", "DD"},
		{"08", "01", "01"},
		{"09", "02", "03"},
	}
	if !reflect.DeepEqual(table.rows, want) {
		t.Errorf("rows = %v, want %v", table.rows, want)
	}
	if len(table.lines) != len(table.rows) {
		t.Errorf("kept %d lines for %d rows", len(table.lines), len(table.rows))
	}
}

func TestTokenOffsets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []token
	}{
		{
			name: "single spaces",
			line: "YY MM DD",
			want: []token{{text: "YY", start: 0}, {text: "MM", start: 3}, {text: "DD", start: 6}},
		},
		{
			name: "padded columns",
			line: "  08   1.5",
			want: []token{{text: "08", start: 2}, {text: "1.5", start: 7}},
		},
		{
			name: "tabs",
			line: "08\t01",
			want: []token{{text: "08", start: 0}, {text: "01", start: 3}},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
		{
			name: "whitespace only",
			line: "   \t ",
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tokenOffsets(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenOffsets(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestStationFromFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "46042.txt", want: "46042"},
		{path: "/data/buoys/46042.txt.gz", want: "46042"},
		{path: "41001.txt.bz2", want: "41001"},
		{path: "44013.txt.xz", want: "44013"},
		{path: "44013.txt.zst", want: "44013"},
		{path: "station", want: "station"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			if got := stationFromFilePath(tt.path); got != tt.want {
				t.Errorf("stationFromFilePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
