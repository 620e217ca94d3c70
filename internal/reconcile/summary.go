package reconcile

import "billrecon/internal/domain"

// Summarize totals the merged records for the summary export.
func Summarize(merged []domain.MergedInvoiceData) domain.Summary {
	s := domain.Summary{Records: len(merged)}
	for i := range merged {
		s.GodownRentTotal += merged[i].GodownRent
		s.MainBillAmountTotal += merged[i].MainBillAmount
		s.FreightBalanceTotal += merged[i].FreightBalance
	}
	s.CombinedTotal = s.GodownRentTotal + s.MainBillAmountTotal + s.FreightBalanceTotal
	return s
}
