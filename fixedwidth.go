package ndbc

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingNumberRe matches the longest leading floating-point literal of a
// cell, used by fast-mode parsing to ignore trailing garbage.
var leadingNumberRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// Cell is one sliced fixed-width cell. Numeric reports whether the column
// was declared numeric; for numeric cells Value holds the parsed number and
// is NaN when the cell was blank or unparseable. Text holds the trimmed
// cell content for every column.
type Cell struct {
	Text    string
	Value   float64
	Numeric bool
}

// IsMissing reports whether a numeric cell was blank or failed to parse.
func (c Cell) IsMissing() bool {
	return c.Numeric && math.IsNaN(c.Value)
}

// SplitFixedWidth slices each row into columns by character position alone;
// no delimiter is consulted. Column i spans the characters after the first
// widths[0]+...+widths[i-1] up to widths[i] characters further. Columns
// declared numeric are converted to float64; the rest stay trimmed strings.
//
// In fast mode only the leading numeric token of a cell is parsed and
// trailing garbage is ignored. Normal mode requires the entire trimmed cell
// to be a floating-point literal. In both modes an unparseable or blank
// numeric cell yields NaN, never zero. Rows shorter than the declared total
// width are sliced to their available length, so trailing columns become
// blank cells.
//
// Returns ErrInvalidArgument when widths is empty, contains a non-positive
// width, or disagrees with isNumeric on length.
func SplitFixedWidth(rows []string, widths []int, isNumeric []bool, fast bool) ([][]Cell, error) {
	if len(widths) == 0 {
		return nil, fmt.Errorf("%w: widths must not be empty", ErrInvalidArgument)
	}
	if len(widths) != len(isNumeric) {
		return nil, fmt.Errorf("%w: got %d widths and %d type flags", ErrInvalidArgument, len(widths), len(isNumeric))
	}
	for i, w := range widths {
		if w < 1 {
			return nil, fmt.Errorf("%w: width %d at index %d is not positive", ErrInvalidArgument, w, i)
		}
	}

	// starts[i] is the first character of column i; starts[len(widths)] is
	// one past the last declared character.
	starts := make([]int, len(widths)+1)
	for i, w := range widths {
		starts[i+1] = starts[i] + w
	}

	cells := make([][]Cell, len(rows))
	for r, row := range rows {
		cells[r] = make([]Cell, len(widths))
		for c := range widths {
			lo := min(starts[c], len(row))
			hi := min(starts[c+1], len(row))
			text := strings.TrimSpace(row[lo:hi])
			cell := Cell{Text: text, Numeric: isNumeric[c]}
			if isNumeric[c] {
				cell.Value = parseCellNumber(text, fast)
			}
			cells[r][c] = cell
		}
	}
	return cells, nil
}

// parseCellNumber converts one trimmed cell substring to a float64. Both
// modes degrade to NaN instead of zero when nothing parseable is present.
func parseCellNumber(s string, fast bool) float64 {
	if s == "" {
		return math.NaN()
	}
	if fast {
		s = leadingNumberRe.FindString(s)
		if s == "" {
			return math.NaN()
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
