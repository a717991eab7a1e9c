// Package ndbc parses National Data Buoy Center (NDBC) standard
// meteorological files into per-field numeric columns.
//
// NDBC stations publish observations as plain-text tables: a header row of
// field-name tokens, an optional units row, and space-padded numeric data
// rows. The format has accumulated variants over the years (YY vs. YYYY vs.
// #YY year labels, with or without a units line, blank cells, the missing
// data codes 99 and 999), and this package reconciles all known variants
// into a single column-oriented Record.
//
// # Basic Usage
//
//	rec, err := ndbc.ParseFile("46042.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	wspd, _ := rec.Column("wspd")
//
// Compressed archives (.gz, .bz2, .xz, .zst) are decompressed transparently
// based on the file extension; NDBC distributes its historical files
// gzip-compressed.
//
// # Missing Values
//
// Missing observations are always represented as NaN in the returned
// columns, never as absent entries. Blank cells and the NDBC sentinel codes
// 99 and 999 all become NaN. A real measurement equal to exactly 99 or 999
// is indistinguishable from a missing one; this is an accepted limitation
// inherited from the file format.
//
// # Fixed-Width Splitting
//
// SplitFixedWidth is a lower-level helper for column-aligned text blocks
// that carry no delimiter at all: it slices rows purely by character
// position and coerces declared numeric columns to float64.
//
// # Header Vocabulary
//
// Header labels are resolved against a fixed, case-sensitive alias table
// (for example WD and WDIR both resolve to the canonical field "wdir").
// KnownFields lists the canonical names; an unrecognized label fails the
// parse with a HeaderMismatchError naming the label so the vocabulary gap
// is visible.
package ndbc
