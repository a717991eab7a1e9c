package ndbc

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// alphaRunRe extracts the alphabetic runs of a header token. When one
// header token covers several numeric sub-columns, each run becomes the
// label of one sub-column.
var alphaRunRe = regexp.MustCompile(`[A-Za-z]+`)

// hasAlphaRe reports whether a row still looks like a header. NDBC files
// come in two sub-formats, header only and header plus a units row such as
// "#yr mo dy hr mn degT m/s"; any alphabetic character in row 1 marks it
// as the units row.
var hasAlphaRe = regexp.MustCompile(`[A-Za-z]`)

// NDBC missing-data codes. Only exact matches are replaced, so a measured
// 99.9 passes through untouched.
const (
	sentinelMissing     = 99
	sentinelMissingWide = 999
)

// ParseFile reads one NDBC standard meteorological file into a Record.
// Inputs compressed with gzip, bzip2, xz, or zstandard are decompressed
// transparently based on the file extension.
//
// Returns ErrFileNotFound when the path does not resolve, a
// HeaderMismatchError when a header label is not in the alias table, and
// ErrFormat for structurally invalid tables.
func ParseFile(path string) (*Record, error) {
	table, err := readTable(path)
	if err != nil {
		return nil, err
	}
	return parseTable(table)
}

// ParseReader parses NDBC file contents from reader. The reader must
// supply uncompressed text. station names the resulting Record.
func ParseReader(reader io.Reader, station string) (*Record, error) {
	table, err := tokenizeReader(reader)
	if err != nil {
		return nil, err
	}
	table.station = station
	return parseTable(table)
}

// parseTable runs the full reconciliation pipeline over a tokenized file:
// header detection, cell grouping, numeric conversion, multi-value column
// resolution, sentinel substitution, and alias lookup.
func parseTable(table *rawTable) (*Record, error) {
	if len(table.rows) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrFormat)
	}
	header := table.rows[0]

	dataStart := 1
	if len(table.rows) > 1 && hasAlphaRe.MatchString(table.lines[1]) {
		dataStart = 2
	}
	if dataStart >= len(table.rows) {
		return nil, fmt.Errorf("%w: no data rows", ErrFormat)
	}

	cells := groupCells(table, header, dataStart)
	values := parseCells(cells)

	arity, err := columnArity(values, header)
	if err != nil {
		return nil, err
	}
	labels, err := resolveLabels(header, arity)
	if err != nil {
		return nil, err
	}
	matrix, err := flatten(values, arity)
	if err != nil {
		return nil, err
	}
	replaceSentinels(matrix)

	columns := make(map[string][]float64, len(labels))
	for i, label := range labels {
		canonical, ok := CanonicalField(label)
		if !ok {
			return nil, &HeaderMismatchError{Label: label}
		}
		column := make([]float64, len(matrix))
		for r := range matrix {
			column[r] = matrix[r][i]
		}
		// A repeated canonical name is not expected, but if it occurs the
		// later column wins.
		columns[canonical] = column
	}
	return &Record{station: table.station, columns: columns}, nil
}

// groupCells aligns each data row's tokens to the header's columns. When a
// row has exactly one token per header label the mapping is direct. When
// the token counts disagree, the file is column-aligned text whose header
// has fewer labels than the data has columns, and tokens are grouped by
// character position: each token belongs to the label whose span contains
// the token's start offset. Blank cells become "NaN" so numeric conversion
// yields a missing value instead of failing.
func groupCells(table *rawTable, header []string, dataStart int) [][]string {
	spans := headerSpans(table.lines[0])
	cells := make([][]string, 0, len(table.rows)-dataStart)
	for r := dataStart; r < len(table.rows); r++ {
		tokens := table.rows[r]
		row := make([]string, len(header))
		if len(tokens) == len(header) {
			copy(row, tokens)
		} else {
			copy(row, groupByPosition(table.lines[r], spans))
		}
		for c, cell := range row {
			if cell == "" {
				row[c] = "NaN"
			}
		}
		cells = append(cells, row)
	}
	return cells
}

// headerSpans returns the character span each header token covers: from
// its own start offset up to the start of the next token. The last span
// extends to the end of the line.
func headerSpans(line string) [][2]int {
	tokens := tokenOffsets(line)
	spans := make([][2]int, len(tokens))
	for i, tok := range tokens {
		end := math.MaxInt
		if i+1 < len(tokens) {
			end = tokens[i+1].start
		}
		spans[i] = [2]int{tok.start, end}
	}
	return spans
}

// groupByPosition buckets a line's tokens into header spans. Tokens
// starting before the first span fall into the first bucket.
func groupByPosition(line string, spans [][2]int) []string {
	cells := make([]string, len(spans))
	col := 0
	for _, tok := range tokenOffsets(line) {
		for col+1 < len(spans) && tok.start >= spans[col+1][0] {
			col++
		}
		if cells[col] == "" {
			cells[col] = tok.text
		} else {
			cells[col] += " " + tok.text
		}
	}
	return cells
}

// parseCells converts every cell to numbers. A cell may hold several
// whitespace-separated numbers (a known irregularity of the format,
// reconciled by columnArity). A malformed token degrades to NaN rather
// than aborting the parse.
func parseCells(cells [][]string) [][][]float64 {
	values := make([][][]float64, len(cells))
	for r, row := range cells {
		values[r] = make([][]float64, len(row))
		for c, cell := range row {
			tokens := strings.Fields(cell)
			nums := make([]float64, len(tokens))
			for i, tok := range tokens {
				v, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					v = math.NaN()
				}
				nums[i] = v
			}
			values[r][c] = nums
		}
	}
	return values
}

// columnArity determines, per header column, how many numeric sub-columns
// it carries. All data rows must agree on every column's arity; a
// disagreement means the rows cannot form a rectangular matrix.
func columnArity(values [][][]float64, header []string) ([]int, error) {
	arity := make([]int, len(header))
	for c := range header {
		arity[c] = len(values[0][c])
		for r := 1; r < len(values); r++ {
			if len(values[r][c]) != arity[c] {
				return nil, fmt.Errorf("%w: rows disagree on arity of column %q (%d vs %d in row %d)",
					ErrFormat, header[c], arity[c], len(values[r][c]), r)
			}
		}
		if arity[c] == 0 {
			return nil, fmt.Errorf("%w: column %q has no values", ErrFormat, header[c])
		}
	}
	return arity, nil
}

// resolveLabels produces one label per resolved sub-column. Columns with
// arity 1 keep their header token; columns spanning several sub-columns
// have their labels re-derived from the alphabetic runs of the header
// token, one run per sub-column.
func resolveLabels(header []string, arity []int) ([]string, error) {
	labels := make([]string, 0, len(header))
	for c, tok := range header {
		if arity[c] == 1 {
			labels = append(labels, tok)
			continue
		}
		runs := alphaRunRe.FindAllString(tok, -1)
		if len(runs) != arity[c] {
			return nil, fmt.Errorf("%w: header label %q names %d fields but column holds %d values",
				ErrFormat, tok, len(runs), arity[c])
		}
		labels = append(labels, runs...)
	}
	return labels, nil
}

// flatten turns the per-cell value lists into a rectangular matrix of rows
// by total resolved columns.
func flatten(values [][][]float64, arity []int) ([][]float64, error) {
	total := 0
	for _, a := range arity {
		total += a
	}
	matrix := make([][]float64, len(values))
	for r, row := range values {
		flat := make([]float64, 0, total)
		for _, cell := range row {
			flat = append(flat, cell...)
		}
		if len(flat) != total {
			return nil, fmt.Errorf("%w: row %d resolves to %d columns, want %d", ErrFormat, r, len(flat), total)
		}
		matrix[r] = flat
	}
	return matrix, nil
}

// replaceSentinels rewrites the NDBC missing-data codes 99 and 999 to NaN
// in place. The pass is idempotent: after one pass no exact sentinel
// values remain.
func replaceSentinels(matrix [][]float64) {
	for _, row := range matrix {
		for i, v := range row {
			if v == sentinelMissing || v == sentinelMissingWide {
				row[i] = math.NaN()
			}
		}
	}
}
