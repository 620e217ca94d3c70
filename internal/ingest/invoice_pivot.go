package ingest

import (
	"io"
	"strings"

	"billrecon/internal/domain"
	"billrecon/internal/spreadsheet"
)

// foldPolicy is how a field combines across rows sharing one SAP code.
type foldPolicy int

const (
	// firstWins keeps the value from the first row of the group.
	firstWins foldPolicy = iota
	// summed adds the value of every row in the group.
	summed
)

const fieldPlant = "plant"

// pivotPolicies names the fold policy of every aggregated pivot field.
var pivotPolicies = []struct {
	field  string
	policy foldPolicy
}{
	{fieldBillToParty, firstWins},
	{fieldInvoiceDistrict, firstWins},
	{fieldZone, firstWins},
	{fieldPlant, firstWins},
	{fieldQuantityLifted, summed},
	{fieldGodownRent, summed},
	{fieldLoading, summed},
	{fieldUnloading, summed},
	{fieldLocalTransportation, summed},
	{fieldFreightBalance, summed},
}

// ParseInvoicePivot decodes an invoice workbook and aggregates its "Pivot." sheet.
func ParseInvoicePivot(r io.Reader) ([]domain.InvoiceData, *domain.ParseReport, error) {
	wb, err := spreadsheet.Decode(r)
	if err != nil {
		return nil, nil, &domain.SpreadsheetDecodeError{File: domain.FileInvoiceData, Err: err}
	}
	sheet, ok := wb.Sheet(PivotSheetName)
	if !ok {
		return nil, nil, &domain.SheetNotFoundError{
			File:      domain.FileInvoiceData,
			Sheet:     PivotSheetName,
			Available: wb.SheetNames(),
		}
	}
	return AggregateInvoices(sheet.Rows)
}

// invoiceGroup accumulates the rows of one SAP code.
type invoiceGroup struct {
	sapCode string
	text    map[string]string
	totals  map[string]float64
	rows    int
}

// AggregateInvoices groups pivot rows by SAP code and emits one InvoiceData
// per group, in order of first appearance. Rows without a SAP code are skipped.
func AggregateInvoices(rows []spreadsheet.Row) ([]domain.InvoiceData, *domain.ParseReport, error) {
	headerIdx, ok := spreadsheet.LocateHeader(rows, PivotHeaderKeywords)
	if !ok {
		return nil, nil, &domain.HeaderNotFoundError{
			File:     domain.FileInvoiceData,
			Sheet:    PivotSheetName,
			Keywords: PivotHeaderKeywords,
		}
	}

	cols := spreadsheet.ResolveColumns(spreadsheet.HeaderTexts(rows[headerIdx]), pivotFields)
	cols[fieldPlant] = plantColumn
	report := &domain.ParseReport{
		File:      domain.FileInvoiceData,
		Sheet:     PivotSheetName,
		HeaderRow: headerIdx + 1,
	}

	// Phase 1: fold rows into groups keyed by SAP code.
	index := make(map[string]*invoiceGroup)
	var order []*invoiceGroup
	for _, row := range rows[headerIdx+1:] {
		if row.IsBlank() {
			report.BlankRows++
			continue
		}
		report.DataRows++

		sapCode := cols.String(row, fieldInvoiceSAP)
		if sapCode == "" {
			report.SkippedRows++
			continue
		}

		g, exists := index[sapCode]
		if !exists {
			g = &invoiceGroup{
				sapCode: sapCode,
				text:    make(map[string]string),
				totals:  make(map[string]float64),
			}
			index[sapCode] = g
			order = append(order, g)
		} else {
			report.DuplicatesMerged++
		}
		g.fold(cols, row, !exists)
	}

	// Phase 2: materialize records and their derived totals.
	invoices := make([]domain.InvoiceData, len(order))
	for i, g := range order {
		invoices[i] = g.materialize()
	}
	report.Records = len(invoices)
	return invoices, report, nil
}

func (g *invoiceGroup) fold(cols spreadsheet.ColumnMap, row spreadsheet.Row, first bool) {
	for _, p := range pivotPolicies {
		switch p.policy {
		case firstWins:
			if first {
				g.text[p.field] = cols.String(row, p.field)
			}
		case summed:
			g.totals[p.field] += cols.Float(row, p.field)
		}
	}
	g.rows++
}

func (g *invoiceGroup) materialize() domain.InvoiceData {
	name := g.text[fieldBillToParty]
	inv := domain.InvoiceData{
		SAPCode:                 g.sapCode,
		CustomerName:            name,
		CustomerNameForMatching: strings.ToLower(name),
		District:                orDefault(g.text[fieldInvoiceDistrict], domain.UnknownDistrict),
		Plant:                   g.text[fieldPlant],
		Zone:                    g.text[fieldZone],
		QuantityLifted:          g.totals[fieldQuantityLifted],
		GodownRent:              g.totals[fieldGodownRent],
		LoadingCharges:          g.totals[fieldLoading],
		UnloadingCharges:        g.totals[fieldUnloading],
		LocalTransportation:     g.totals[fieldLocalTransportation],
		FreightBalance:          g.totals[fieldFreightBalance],
		RowCount:                g.rows,
	}
	inv.MainBillAmount = inv.LoadingCharges + inv.UnloadingCharges + inv.LocalTransportation
	inv.TotalValue = inv.GodownRent + inv.MainBillAmount + inv.FreightBalance
	return inv
}
