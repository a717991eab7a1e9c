package ndbc

import "sort"

// Record is the parsed result of one NDBC file: canonical field names
// mapped to per-observation numeric columns. All columns share the same
// length, one entry per data row. Missing observations are NaN, never
// absent entries. A Record is immutable once returned.
type Record struct {
	station string
	columns map[string][]float64
}

// Station returns the station identifier derived from the source file name,
// or the caller-supplied name for reader-based parses.
func (r *Record) Station() string {
	return r.station
}

// Len returns the number of observations.
func (r *Record) Len() int {
	for _, column := range r.columns {
		return len(column)
	}
	return 0
}

// Fields returns the canonical field names present in this record, sorted.
func (r *Record) Fields() []string {
	names := make([]string, 0, len(r.columns))
	for name := range r.columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Column returns the values of one canonical field. The second return value
// reports whether the field is present. Callers must not modify the
// returned slice.
func (r *Record) Column(name string) ([]float64, bool) {
	column, ok := r.columns[name]
	return column, ok
}
