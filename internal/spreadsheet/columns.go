package spreadsheet

import "strings"

// NotFound is the column index reported for an unresolved field.
const NotFound = -1

// MatchMode controls how a synonym is compared to a header.
type MatchMode int

const (
	MatchContains MatchMode = iota
	MatchExact
)

// Synonym is one accepted header spelling for a field.
type Synonym struct {
	Text string
	Mode MatchMode
}

// Contains matches any header whose text contains s.
func Contains(s string) Synonym { return Synonym{Text: s, Mode: MatchContains} }

// Exact matches a header whose whole trimmed text equals s.
func Exact(s string) Synonym { return Synonym{Text: s, Mode: MatchExact} }

// FieldSpec maps one logical field to its header synonyms, most specific first.
// Headers containing any of Excludes never resolve to the field.
type FieldSpec struct {
	Field    string
	Synonyms []Synonym
	Excludes []string
}

// HeaderTexts returns the lower-cased, trimmed text of each header cell.
// Non-string cells become "" and never match.
func HeaderTexts(row Row) []string {
	headers := make([]string, len(row))
	for i, c := range row {
		if c.Kind != KindString {
			continue
		}
		headers[i] = strings.ToLower(strings.TrimSpace(c.Text))
	}
	return headers
}

// ResolveColumn returns the index of the column for spec. Synonyms are tried
// in priority order; for each, headers are scanned left to right.
func ResolveColumn(headers []string, spec FieldSpec) int {
	for _, syn := range spec.Synonyms {
		want := strings.ToLower(syn.Text)
		for i, h := range headers {
			if h == "" || excluded(h, spec.Excludes) {
				continue
			}
			switch syn.Mode {
			case MatchExact:
				if h == want {
					return i
				}
			default:
				if strings.Contains(h, want) {
					return i
				}
			}
		}
	}
	return NotFound
}

func excluded(header string, excludes []string) bool {
	for _, x := range excludes {
		if strings.Contains(header, strings.ToLower(x)) {
			return true
		}
	}
	return false
}

// ColumnMap is the resolved column index per logical field.
type ColumnMap map[string]int

// ResolveColumns resolves every spec against headers.
func ResolveColumns(headers []string, specs []FieldSpec) ColumnMap {
	m := make(ColumnMap, len(specs))
	for _, s := range specs {
		m[s.Field] = ResolveColumn(headers, s)
	}
	return m
}

// Index returns the column for field, or NotFound.
func (m ColumnMap) Index(field string) int {
	if i, ok := m[field]; ok {
		return i
	}
	return NotFound
}

// Cell returns the row's cell for field; unresolved fields read as empty.
func (m ColumnMap) Cell(row Row, field string) Cell {
	return row.At(m.Index(field))
}

// String returns the trimmed text of the row's cell for field.
func (m ColumnMap) String(row Row, field string) string {
	return CoerceTrimmedString(m.Cell(row, field))
}

// Float returns the numeric value of the row's cell for field, or 0.
func (m ColumnMap) Float(row Row, field string) float64 {
	return CoerceNumericOrZero(m.Cell(row, field))
}
