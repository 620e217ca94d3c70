package ingest

import (
	"fmt"
	"io"
	"strings"

	"billrecon/internal/domain"
	"billrecon/internal/spreadsheet"
)

// ParseCustomerMaster decodes a customer master workbook and normalizes its
// first sheet.
func ParseCustomerMaster(r io.Reader) ([]domain.CustomerData, *domain.ParseReport, error) {
	wb, err := spreadsheet.Decode(r)
	if err != nil {
		return nil, nil, &domain.SpreadsheetDecodeError{File: domain.FileCustomerMaster, Err: err}
	}
	sheet, ok := wb.First()
	if !ok {
		return nil, nil, &domain.HeaderNotFoundError{File: domain.FileCustomerMaster, Keywords: CustomerHeaderKeywords}
	}
	return NormalizeCustomers(sheet.Name, sheet.Rows)
}

type customerCandidate struct {
	row      int
	customer domain.CustomerData
}

// NormalizeCustomers builds one CustomerData per distinct customer name from
// the rows of a customer master sheet. When a name repeats, the later row
// replaces the earlier one but keeps its position.
func NormalizeCustomers(sheetName string, rows []spreadsheet.Row) ([]domain.CustomerData, *domain.ParseReport, error) {
	headerIdx, ok := spreadsheet.LocateHeader(rows, CustomerHeaderKeywords)
	if !ok {
		return nil, nil, &domain.HeaderNotFoundError{
			File:     domain.FileCustomerMaster,
			Sheet:    sheetName,
			Keywords: CustomerHeaderKeywords,
		}
	}

	cols := spreadsheet.ResolveColumns(spreadsheet.HeaderTexts(rows[headerIdx]), customerFields)
	report := &domain.ParseReport{
		File:      domain.FileCustomerMaster,
		Sheet:     sheetName,
		HeaderRow: headerIdx + 1,
	}

	// Phase 1: build candidates from every non-blank row.
	var candidates []customerCandidate
	for i, row := range rows[headerIdx+1:] {
		if row.IsBlank() {
			report.BlankRows++
			continue
		}
		c := buildCustomer(cols, row, report.DataRows)
		report.DataRows++
		if c.CustomerName == "" {
			report.SkippedRows++
			continue
		}
		candidates = append(candidates, customerCandidate{row: headerIdx + i + 2, customer: c})
	}

	// Phase 2: last row wins per name, first position is kept.
	index := make(map[string]int, len(candidates))
	var unique []customerCandidate
	for _, cand := range candidates {
		if pos, seen := index[cand.customer.CustomerName]; seen {
			unique[pos] = cand
			report.DuplicatesMerged++
			continue
		}
		index[cand.customer.CustomerName] = len(unique)
		unique = append(unique, cand)
	}

	customers := make([]domain.CustomerData, len(unique))
	for i, cand := range unique {
		customers[i] = cand.customer
		report.Warnings = append(report.Warnings, checkCustomer(cand.row, cand.customer)...)
	}
	report.Records = len(customers)
	return customers, report, nil
}

// buildCustomer maps one data row to a CustomerData. seq is the row's
// position among non-blank data rows and seeds the placeholder SAP code.
func buildCustomer(cols spreadsheet.ColumnMap, row spreadsheet.Row, seq int) domain.CustomerData {
	mobile := cols.String(row, fieldMobile)
	return domain.CustomerData{
		SAPCode:      orDefault(cols.String(row, fieldCustomerSAP), placeholderSAPCode(seq)),
		CustomerName: cols.String(row, fieldCustomerName),
		Address:      joinAddress(cols, row),
		GSTIN:        orDefault(cols.String(row, fieldGSTIN), domain.GSTINNotProvided),
		PAN:          orDefault(cols.String(row, fieldPAN), domain.PANNotProvided),
		Email:        cols.String(row, fieldEmail),
		Mobile:       mobile,
		MobileE164:   NormalizeMobile(mobile),
	}
}

func placeholderSAPCode(seq int) string {
	return fmt.Sprintf("SAP%03d", seq)
}

func joinAddress(cols spreadsheet.ColumnMap, row spreadsheet.Row) string {
	parts := make([]string, 0, len(addressParts))
	for _, field := range addressParts {
		if v := cols.String(row, field); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return domain.AddressNotProvided
	}
	return strings.Join(parts, ", ")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
