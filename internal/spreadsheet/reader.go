package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet decoded into rows.
type Sheet struct {
	Name string
	Rows []Row
}

// Workbook holds every sheet of a decoded file in workbook order.
type Workbook struct {
	Sheets []Sheet
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i := range w.Sheets {
		names[i] = w.Sheets[i].Name
	}
	return names
}

// Sheet returns the sheet with exactly the given name.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}

// First returns the first sheet of the workbook.
func (w *Workbook) First() (*Sheet, bool) {
	if len(w.Sheets) == 0 {
		return nil, false
	}
	return &w.Sheets[0], true
}

// Decode reads an xlsx workbook from r.
func Decode(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		raw, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		sheet := Sheet{Name: name, Rows: make([]Row, len(raw))}
		for i, values := range raw {
			row := make(Row, len(values))
			for j, v := range values {
				if v == "" {
					continue
				}
				axis, err := excelize.CoordinatesToCellName(j+1, i+1)
				if err != nil {
					return nil, fmt.Errorf("sheet %q: %w", name, err)
				}
				typ, err := f.GetCellType(name, axis)
				if err != nil {
					return nil, fmt.Errorf("sheet %q cell %s: %w", name, axis, err)
				}
				row[j] = decodeCell(typ, v)
			}
			sheet.Rows[i] = row
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}

// decodeCell maps an excelize cell type and raw value to a Cell. Cells
// without an explicit type are numbers when their raw value parses as one.
func decodeCell(typ excelize.CellType, raw string) Cell {
	switch typ {
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "true") {
			return Cell{Kind: KindBool, Text: "TRUE"}
		}
		return Cell{Kind: KindBool, Text: "FALSE"}
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if _, err := strconv.ParseFloat(raw, 64); err == nil {
			return Cell{Kind: KindNumber, Text: raw}
		}
		return Cell{Kind: KindString, Text: raw}
	default:
		return Cell{Kind: KindString, Text: raw}
	}
}
