package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"billrecon/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	row, err := csv.NewReader(&buf).Read()
	require.NoError(t, err)

	assert.Len(t, row, 21)
	assert.Equal(t, "SAP Code", row[0])
	assert.Equal(t, "Total Value", row[19])
	assert.Equal(t, "Source Rows", row[20])
}

func TestWriteRecords(t *testing.T) {
	rec := domain.MergedInvoiceData{
		InvoiceData: domain.InvoiceData{
			SAPCode:             "S100",
			CustomerName:        "Acme Traders",
			District:            "Pune",
			Plant:               "1201",
			QuantityLifted:      80.5,
			GodownRent:          8000,
			LoadingCharges:      750,
			UnloadingCharges:    99.999,
			LocalTransportation: 0.1,
			MainBillAmount:      850.099,
			FreightBalance:      0,
			TotalValue:          8850.099,
			RowCount:            2,
		},
		Customer: domain.CustomerData{
			CustomerName: "Acme Traders",
			Address:      "12 MG Road, Pune, Maharashtra",
			GSTIN:        "27AAACA1234A1Z5",
			PAN:          "AAACA1234A",
		},
		MatchedBy: domain.MatchByName,
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteRecords([]domain.MergedInvoiceData{rec}))
	w.Flush()
	require.NoError(t, w.Error())

	row, err := csv.NewReader(&buf).Read()
	require.NoError(t, err)

	assert.Len(t, row, 21)
	assert.Equal(t, "S100", row[0])
	assert.Equal(t, "name", row[2])
	assert.Equal(t, "1201", row[3])
	assert.Equal(t, "Maharashtra", row[6])
	assert.Equal(t, "80.5", row[12])
	assert.Equal(t, "8000.00", row[13])
	assert.Equal(t, "100.00", row[15])
	assert.Equal(t, "0.10", row[16])
	assert.Equal(t, "0.00", row[18])
	assert.Equal(t, "8850.10", row[19])
	assert.Equal(t, "2", row[20])
}

func TestWriteCSV_StartsWithBOM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), BOM))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(BOM):])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{999.5, "999.50"},
		{1000, "1,000.00"},
		{150000.5, "1,50,000.50"},
		{12345678.9, "1,23,45,678.90"},
		{-2500, "-2,500.00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(tt.in))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Merged Records", "Merged_Records"},
		{"special chars", "FY 2024-25 / Q3 (Oct–Dec)", "FY_2024-25_Q3_Oct_Dec"},
		{"hyphens and underscores preserved", "invoice-summary_2025", "invoice-summary_2025"},
		{"consecutive underscores collapsed", "test___summary", "test_summary"},
		{"leading/trailing cleaned", "  hello  ", "hello"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, 3, 31, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "Invoice_Summary_2025-03-31.xlsx", BuildFilename("Invoice Summary", "xlsx", now))
}

func TestWriteSummaryXLSX(t *testing.T) {
	s := domain.Summary{
		Records:             2,
		GodownRentTotal:     8000,
		MainBillAmountTotal: 850.456,
		FreightBalanceTotal: 1200,
		CombinedTotal:       10050.456,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummaryXLSX(&buf, s))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Summary Category", "Total Value"}, rows[0])
	assert.Equal(t, "Godown Rent Total", rows[1][0])
	assert.Equal(t, "Main Bill Amount Total (Loading/Unloading/Local Transportation)", rows[2][0])
	assert.Equal(t, "Combined Total", rows[4][0])

	v, err := f.GetCellValue(SummarySheet, "B3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "850.46", v)
}
