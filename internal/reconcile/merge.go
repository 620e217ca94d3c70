// Package reconcile joins aggregated invoices to customer master records.
package reconcile

import (
	"strings"

	"billrecon/internal/domain"
)

// Merge attaches a customer to every invoice and returns one merged record
// per invoice, in invoice order. Customers are matched by case-insensitive
// trimmed name first, then by SAP code when both codes are non-empty. The
// first matching customer in each tier wins. Invoices with no match carry a
// synthetic customer built from the invoice itself.
func Merge(customers []domain.CustomerData, invoices []domain.InvoiceData) []domain.MergedInvoiceData {
	byName := make(map[string]int, len(customers))
	bySAP := make(map[string]int, len(customers))
	for i, c := range customers {
		if name := matchKey(c.CustomerName); name != "" {
			if _, ok := byName[name]; !ok {
				byName[name] = i
			}
		}
		if c.SAPCode != "" {
			if _, ok := bySAP[c.SAPCode]; !ok {
				bySAP[c.SAPCode] = i
			}
		}
	}

	merged := make([]domain.MergedInvoiceData, len(invoices))
	for i, inv := range invoices {
		m := domain.MergedInvoiceData{InvoiceData: inv}
		if idx, ok := byName[matchKey(inv.CustomerName)]; ok {
			m.Customer = customers[idx]
			m.MatchedBy = domain.MatchByName
		} else if idx, ok := bySAP[inv.SAPCode]; ok {
			m.Customer = customers[idx]
			m.MatchedBy = domain.MatchBySAPCode
		} else {
			m.Customer = syntheticCustomer(inv)
			m.MatchedBy = domain.MatchNone
		}
		merged[i] = m
	}
	return merged
}

// Unmatched counts merged records that carry a synthetic customer.
func Unmatched(merged []domain.MergedInvoiceData) int {
	n := 0
	for i := range merged {
		if merged[i].MatchedBy == domain.MatchNone {
			n++
		}
	}
	return n
}

func matchKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func syntheticCustomer(inv domain.InvoiceData) domain.CustomerData {
	return domain.CustomerData{
		SAPCode:      inv.SAPCode,
		CustomerName: inv.CustomerName,
		Address:      domain.AddressNotFound,
		GSTIN:        domain.GSTINNotFound,
		PAN:          domain.PANNotFound,
	}
}
