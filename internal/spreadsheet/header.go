package spreadsheet

import "strings"

// LocateHeader returns the index of the first row containing a string cell
// whose lower-cased text contains any of the keywords. Rows are scanned in
// order and the first match wins.
func LocateHeader(rows []Row, keywords []string) (int, bool) {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	for i, row := range rows {
		for _, c := range row {
			if c.Kind != KindString {
				continue
			}
			text := strings.ToLower(c.Text)
			for _, k := range lowered {
				if strings.Contains(text, k) {
					return i, true
				}
			}
		}
	}
	return NotFound, false
}
