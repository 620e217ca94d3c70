package export

import (
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"billrecon/internal/domain"
)

// SummarySheet is the name of the summary worksheet.
const SummarySheet = "Invoice Summary"

// SummaryRows returns the category/value rows of the summary sheet, header first.
func SummaryRows(s domain.Summary) [][]interface{} {
	return [][]interface{}{
		{"Summary Category", "Total Value"},
		{"Godown Rent Total", round2(s.GodownRentTotal)},
		{"Main Bill Amount Total (Loading/Unloading/Local Transportation)", round2(s.MainBillAmountTotal)},
		{"Freight Balance Total", round2(s.FreightBalanceTotal)},
		{"Combined Total", round2(s.CombinedTotal)},
	}
}

// WriteSummaryXLSX writes the summary as a single-sheet workbook.
func WriteSummaryXLSX(w io.Writer, s domain.Summary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for i, row := range SummaryRows(s) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(SummarySheet, cell, &r); err != nil {
			return fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(SummarySheet, "A", "A", 62); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "B", "B", 18); err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
