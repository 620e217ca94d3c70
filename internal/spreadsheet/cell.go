package spreadsheet

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// CellKind is the decoded type of a spreadsheet cell.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindString
	KindNumber
	KindBool
)

// Cell is one decoded cell. Text holds the raw stored value.
type Cell struct {
	Kind CellKind
	Text string
}

// Text returns a string cell.
func Text(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: KindString, Text: s}
}

// Number returns a numeric cell.
func Number(v float64) Cell {
	return Cell{Kind: KindNumber, Text: strconv.FormatFloat(v, 'f', -1, 64)}
}

// IsEmpty reports whether the cell carries no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty || c.Text == ""
}

// Row is one sheet row in column order.
type Row []Cell

// At returns the cell at column i, or an empty cell when i is out of range.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{}
	}
	return r[i]
}

// IsBlank reports whether every cell in the row is empty.
func (r Row) IsBlank() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// CoerceTrimmedString converts any cell to its trimmed text.
func CoerceTrimmedString(c Cell) string {
	if c.IsEmpty() {
		return ""
	}
	return strings.TrimSpace(c.Text)
}

// numericPrefix matches the leading decimal number of a cell, so "12 MT" reads as 12.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// CoerceNumericOrZero parses the leading decimal number of a cell. Grouping
// commas are ignored and trailing text such as a unit is dropped. A cell
// with no leading number, or one that is not finite, yields 0.
func CoerceNumericOrZero(c Cell) float64 {
	if c.IsEmpty() || c.Kind == KindBool {
		return 0
	}
	s := strings.ReplaceAll(strings.TrimSpace(c.Text), ",", "")
	m := numericPrefix.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
