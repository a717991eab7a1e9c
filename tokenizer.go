package ndbc

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// maxLineBytes bounds a single input line. NDBC lines are under 200 bytes;
// anything past this is not an observation file.
const maxLineBytes = 1024 * 1024

// rawTable is the whitespace-tokenized contents of one input file. Rows
// keep both the original line and its tokens, so column grouping can
// consult character positions when the header and data rows disagree on
// token counts.
type rawTable struct {
	station string
	lines   []string
	rows    [][]string
}

// token is one whitespace-delimited token with its byte offset in the line.
type token struct {
	text  string
	start int
}

// readTable reads the whole input into a rawTable. The file handle is
// released before parsing begins, regardless of outcome.
func readTable(path string) (*rawTable, error) {
	reader, cleanup, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cleanup() }()

	table, err := tokenizeReader(reader)
	if err != nil {
		return nil, err
	}
	table.station = stationFromFilePath(path)
	return table, nil
}

// tokenizeReader splits reader into a grid of whitespace-delimited tokens.
// Blank lines are dropped.
func tokenizeReader(reader io.Reader) (*rawTable, error) {
	table := &rawTable{}
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		table.lines = append(table.lines, line)
		table.rows = append(table.rows, tokens)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ndbc: failed to read input: %w", err)
	}
	return table, nil
}

// tokenOffsets splits one line into tokens annotated with their start
// offsets. Space and tab are the only separators NDBC files use.
func tokenOffsets(line string) []token {
	var tokens []token
	start := -1
	for i := 0; i <= len(line); i++ {
		ws := i == len(line) || line[i] == ' ' || line[i] == '\t'
		switch {
		case !ws && start < 0:
			start = i
		case ws && start >= 0:
			tokens = append(tokens, token{text: line[start:i], start: start})
			start = -1
		}
	}
	return tokens
}

// stationFromFilePath derives the station identifier from a file name,
// stripping any compression extension first ("46042.txt.gz" -> "46042").
func stationFromFilePath(path string) string {
	name := filepath.Base(path)
	for _, ext := range []string{extGZ, extBZ2, extXZ, extZSTD} {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			name = name[:len(name)-len(ext)]
			break
		}
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
