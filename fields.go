package ndbc

// fieldSpec maps a canonical field name to the header labels that denote it
// across NDBC file format variants.
type fieldSpec struct {
	canonical string
	aliases   []string
}

// fieldSpecs is the static alias table for NDBC standard meteorological
// headers. It is built once and never mutated.
var fieldSpecs = []fieldSpec{
	{canonical: "year", aliases: []string{"year", "YY", "YYYY", "#YY"}},
	{canonical: "month", aliases: []string{"month", "MM"}},
	{canonical: "day", aliases: []string{"day", "DD"}},
	{canonical: "hour", aliases: []string{"hour", "hh"}},
	{canonical: "min", aliases: []string{"min", "mm"}},
	{canonical: "wdir", aliases: []string{"wdir", "WD", "WDIR"}},
	{canonical: "wspd", aliases: []string{"wspd", "WSPD"}},
	{canonical: "gust", aliases: []string{"gust", "GST"}},
	{canonical: "wvht", aliases: []string{"wvht", "WVHT"}},
	{canonical: "dpd", aliases: []string{"dpd", "DPD"}},
	{canonical: "apd", aliases: []string{"apd", "APD"}},
	{canonical: "mwd", aliases: []string{"mwd", "MWD"}},
	{canonical: "press", aliases: []string{"press", "PRES", "BAR"}},
	{canonical: "atmp", aliases: []string{"atmp", "ATMP"}},
	{canonical: "wtmp", aliases: []string{"wtmp", "WTMP"}},
	{canonical: "dewp", aliases: []string{"dewp", "DEWP"}},
	{canonical: "vis", aliases: []string{"vis", "VIS"}},
	{canonical: "tide", aliases: []string{"tide", "TIDE"}},
}

// aliasIndex is derived from fieldSpecs for exact lookup.
var aliasIndex = func() map[string]string {
	m := make(map[string]string, len(fieldSpecs)*2)
	for _, spec := range fieldSpecs {
		for _, alias := range spec.aliases {
			m[alias] = spec.canonical
		}
	}
	return m
}()

// CanonicalField resolves a header label to its canonical field name.
// Matching is exact and case-sensitive. The second return value reports
// whether the label is known.
func CanonicalField(label string) (string, bool) {
	canonical, ok := aliasIndex[label]
	return canonical, ok
}

// KnownFields returns the canonical field names this package can resolve,
// in declaration order.
func KnownFields() []string {
	names := make([]string, 0, len(fieldSpecs))
	for _, spec := range fieldSpecs {
		names = append(names, spec.canonical)
	}
	return names
}
