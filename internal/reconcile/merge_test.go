package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billrecon/internal/domain"
	"billrecon/internal/ingest"
	"billrecon/internal/reconcile"
	"billrecon/internal/spreadsheet"
)

func TestMerge_Tiers(t *testing.T) {
	customers := []domain.CustomerData{
		{SAPCode: "S900", CustomerName: "Acme Traders", Address: "by-name"},
		{SAPCode: "S100", CustomerName: "Someone Else", Address: "by-sap"},
		{SAPCode: "S200", CustomerName: "Beta Agro", Address: "beta"},
	}
	invoices := []domain.InvoiceData{
		{SAPCode: "S100", CustomerName: "  ACME traders "},
		{SAPCode: "S200", CustomerName: "Beta Agro Pvt"},
		{SAPCode: "S300", CustomerName: "Nobody"},
	}

	merged := reconcile.Merge(customers, invoices)
	require.Len(t, merged, 3)

	assert.Equal(t, domain.MatchByName, merged[0].MatchedBy)
	assert.Equal(t, "by-name", merged[0].Customer.Address)

	assert.Equal(t, domain.MatchBySAPCode, merged[1].MatchedBy)
	assert.Equal(t, "beta", merged[1].Customer.Address)

	assert.Equal(t, domain.MatchNone, merged[2].MatchedBy)
	assert.Equal(t, domain.CustomerData{
		SAPCode:      "S300",
		CustomerName: "Nobody",
		Address:      domain.AddressNotFound,
		GSTIN:        domain.GSTINNotFound,
		PAN:          domain.PANNotFound,
	}, merged[2].Customer)

	assert.Equal(t, 1, reconcile.Unmatched(merged))
}

func TestMerge_FirstCustomerWinsWithinTier(t *testing.T) {
	customers := []domain.CustomerData{
		{SAPCode: "S1", CustomerName: "Acme", Address: "first"},
		{SAPCode: "S1", CustomerName: "ACME", Address: "second"},
	}
	merged := reconcile.Merge(customers, []domain.InvoiceData{{SAPCode: "S2", CustomerName: "acme"}})
	require.Len(t, merged, 1)
	assert.Equal(t, "first", merged[0].Customer.Address)
}

func TestMerge_EmptyKeysNeverMatch(t *testing.T) {
	customers := []domain.CustomerData{{SAPCode: "", CustomerName: "", Address: "ghost"}}
	merged := reconcile.Merge(customers, []domain.InvoiceData{{SAPCode: "", CustomerName: " "}})
	require.Len(t, merged, 1)
	assert.Equal(t, domain.MatchNone, merged[0].MatchedBy)
}

func TestMerge_NeverDropsInvoices(t *testing.T) {
	invoices := []domain.InvoiceData{
		{SAPCode: "S1", CustomerName: "A"},
		{SAPCode: "S2", CustomerName: "B"},
		{SAPCode: "S3", CustomerName: "C"},
	}
	tests := []struct {
		name      string
		customers []domain.CustomerData
	}{
		{"no customers", nil},
		{"unrelated customers", []domain.CustomerData{{SAPCode: "X", CustomerName: "Y"}}},
		{"all match", []domain.CustomerData{{CustomerName: "A"}, {CustomerName: "B"}, {CustomerName: "C"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := reconcile.Merge(tt.customers, invoices)
			require.Len(t, merged, len(invoices))
			for i := range invoices {
				assert.Equal(t, invoices[i], merged[i].InvoiceData)
			}
		})
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	customers := []domain.CustomerData{{SAPCode: "S1", CustomerName: "Acme"}}
	invoices := []domain.InvoiceData{{SAPCode: "S1", CustomerName: "Acme", GodownRent: 10}}

	merged := reconcile.Merge(customers, invoices)
	merged[0].GodownRent = 99
	merged[0].Customer.Address = "changed"

	assert.Equal(t, float64(10), invoices[0].GodownRent)
	assert.Empty(t, customers[0].Address)
}

func TestSummarize(t *testing.T) {
	merged := []domain.MergedInvoiceData{
		{InvoiceData: domain.InvoiceData{GodownRent: 100, MainBillAmount: 50, FreightBalance: 25}},
		{InvoiceData: domain.InvoiceData{GodownRent: 200.5, MainBillAmount: 0, FreightBalance: 4.5}},
	}

	s := reconcile.Summarize(merged)
	assert.Equal(t, 2, s.Records)
	assert.Equal(t, 300.5, s.GodownRentTotal)
	assert.Equal(t, float64(50), s.MainBillAmountTotal)
	assert.Equal(t, 29.5, s.FreightBalanceTotal)
	assert.Equal(t, float64(380), s.CombinedTotal)

	assert.Equal(t, domain.Summary{}, reconcile.Summarize(nil))
}

func text(cells ...string) spreadsheet.Row {
	row := make(spreadsheet.Row, len(cells))
	for i, c := range cells {
		row[i] = spreadsheet.Text(c)
	}
	return row
}

func TestPipeline_EndToEnd(t *testing.T) {
	masterRows := []spreadsheet.Row{
		text("SAP Code", "Customer Name", "Street", "Street2", "Street3", "Street4", "Postal Code", "District"),
		text("C-77", "Acme Traders", "12 MG Road", "", "", "", "400001", "Pune"),
	}
	pivotRows := []spreadsheet.Row{
		text("Bill To Party Name", "SAP Code", "Godown Rent @ Rs. 100/mt", "Loading @ Rs. 75/mt"),
		{spreadsheet.Text("Acme Traders"), spreadsheet.Text("S100"), spreadsheet.Number(5000), spreadsheet.Number(750)},
		{spreadsheet.Text("Acme Traders"), spreadsheet.Text("S100"), spreadsheet.Number(3000), spreadsheet.Number(0)},
	}

	customers, _, err := ingest.NormalizeCustomers("Sheet1", masterRows)
	require.NoError(t, err)
	invoices, _, err := ingest.AggregateInvoices(pivotRows)
	require.NoError(t, err)

	merged := reconcile.Merge(customers, invoices)
	require.Len(t, merged, 1)

	rec := merged[0]
	assert.Equal(t, float64(8000), rec.GodownRent)
	assert.Equal(t, float64(750), rec.LoadingCharges)
	assert.Equal(t, "12 MG Road, 400001, Pune", rec.Customer.Address)
	assert.Equal(t, domain.MatchByName, rec.MatchedBy)
}
