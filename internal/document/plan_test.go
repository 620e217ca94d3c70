package document_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billrecon/internal/document"
	"billrecon/internal/domain"
)

func merged(sap, name, address string, rent, loading, freight float64) domain.MergedInvoiceData {
	return domain.MergedInvoiceData{
		InvoiceData: domain.InvoiceData{
			SAPCode:        sap,
			CustomerName:   name,
			GodownRent:     rent,
			LoadingCharges: loading,
			FreightBalance: freight,
		},
		Customer: domain.CustomerData{SAPCode: sap, CustomerName: name, Address: address},
	}
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "M_s__Acme_Traders_Pvt__Ltd_", document.SafeName("M/s. Acme Traders Pvt. Ltd."))
	assert.Equal(t, "ABC123", document.SafeName("ABC123"))
}

func TestFileNameAndJobID(t *testing.T) {
	rec := merged("S100", "Acme & Sons", "", 0, 0, 0)

	assert.Equal(t, "TaxInvoice_Godown_Rent_Acme___Sons_S100.pdf",
		document.FileName(rec, domain.SubtypeGodown, domain.KindTaxInvoice, domain.FormatPDF))
	assert.Equal(t, "DebitNote_Secondary_Freight_Acme___Sons_S100.docx",
		document.FileName(rec, domain.SubtypeFreight, domain.KindDebitNote, domain.FormatDOCX))
	assert.Equal(t, "S100-main-debit-docx",
		document.JobID("S100", domain.SubtypeMain, domain.KindDebitNote, domain.FormatDOCX))
}

func TestPlan(t *testing.T) {
	records := []domain.MergedInvoiceData{
		merged("S1", "Acme", "", 100, 20, 5),
		merged("S2", "Beta", "", 0, 0, 0),
	}

	jobs := document.Plan(records, domain.DocumentKinds, []domain.DocumentFormat{domain.FormatPDF, domain.FormatDOCX})
	require.Len(t, jobs, 2*3*2*2)

	first := jobs[0]
	assert.Equal(t, "S1-godown-tax-pdf", first.ID)
	assert.Equal(t, float64(100), first.Amount)
	assert.Equal(t, domain.KindTaxInvoice, first.Kind)

	ids := make(map[string]bool)
	for _, j := range jobs {
		assert.False(t, ids[j.ID], "duplicate id %s", j.ID)
		ids[j.ID] = true
	}
	assert.True(t, ids["S2-freight-debit-docx"])

	amounts := make(map[domain.DocumentSubtype]float64)
	for _, j := range jobs[:3*2*2] {
		amounts[j.Subtype] = j.Amount
	}
	assert.Equal(t, float64(20), amounts[domain.SubtypeMain])
	assert.Equal(t, float64(5), amounts[domain.SubtypeFreight])

	assert.Empty(t, document.Plan(nil, domain.DocumentKinds, []domain.DocumentFormat{domain.FormatPDF}))
}

func TestParseInputs(t *testing.T) {
	st, err := document.ParseSubtype(" Godown ")
	require.NoError(t, err)
	assert.Equal(t, domain.SubtypeGodown, st)

	_, err = document.ParseSubtype("rent")
	assert.True(t, errors.Is(err, domain.ErrInvalidSubtype))

	formats, err := document.ParseFormats("pdf, DOCX,pdf")
	require.NoError(t, err)
	assert.Equal(t, []domain.DocumentFormat{domain.FormatPDF, domain.FormatDOCX}, formats)

	formats, err = document.ParseFormats("")
	require.NoError(t, err)
	assert.Equal(t, []domain.DocumentFormat{domain.FormatPDF}, formats)

	_, err = document.ParseFormats("pdf,xls")
	assert.True(t, errors.Is(err, domain.ErrInvalidFormat))

	kinds, err := document.ParseKinds("debit-note")
	require.NoError(t, err)
	assert.Equal(t, []domain.DocumentKind{domain.KindDebitNote}, kinds)

	kinds, err = document.ParseKinds("")
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentKinds, kinds)

	_, err = document.ParseKinds("credit-note")
	assert.True(t, errors.Is(err, domain.ErrInvalidDocumentKind))
}

func TestFilter(t *testing.T) {
	records := []domain.MergedInvoiceData{
		merged("S1", "Acme Traders", "Pune, Maharashtra", 0, 0, 0),
		merged("S2", "Beta Agro", "Patna, Bihar", 0, 0, 0),
		merged("S3", "Acme Foods", "Meerut, West UP", 0, 0, 0),
	}

	assert.Len(t, document.Filter(records, "", ""), 3)
	assert.Len(t, document.Filter(records, "", "All States"), 3)

	acme := document.Filter(records, "ACME", "")
	require.Len(t, acme, 2)
	assert.Equal(t, "S1", acme[0].SAPCode)

	up := document.Filter(records, "acme", "Uttar Pradesh")
	require.Len(t, up, 1)
	assert.Equal(t, "S3", up[0].SAPCode)

	assert.Empty(t, document.Filter(records, "gamma", ""))
}

func TestFind(t *testing.T) {
	records := []domain.MergedInvoiceData{merged("S1", "Acme", "", 0, 0, 0)}

	rec, err := document.Find(records, "S1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", rec.CustomerName)

	_, err = document.Find(records, "S9")
	assert.True(t, errors.Is(err, domain.ErrRecordNotFound))
}
