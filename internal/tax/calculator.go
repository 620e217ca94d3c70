package tax

import "billrecon/internal/domain"

// Per-unit rates in rupees per metric tonne. Quantities are recovered from
// the billed amount with these.
const (
	GodownRentRate         = 100.0
	LoadingRate            = 75.0
	UnloadingRate          = 75.0
	LocalTransportRate     = 200.0
	CGSTRate               = 0.09
	SGSTRate               = 0.09
	IGSTRate               = 0.18
	mainServiceDescription = "Clearing & Forwarding Charges"
	godownLineDescription  = "Rental or Leasing services involving own or leased non - residential property"
)

// HSN/SAC codes per billed service.
const (
	HSNGodownRent     = "997212"
	HSNHandling       = "996519"
	HSNLocalTransport = "996713"
	HSNFreight        = "996511"
)

// Subtotal returns the pre-tax amount a subtype bills for a record.
func Subtotal(rec domain.MergedInvoiceData, subtype domain.DocumentSubtype) float64 {
	switch subtype {
	case domain.SubtypeGodown:
		return rec.GodownRent
	case domain.SubtypeMain:
		return rec.LoadingCharges + rec.UnloadingCharges + rec.LocalTransportation
	case domain.SubtypeFreight:
		return rec.FreightBalance
	default:
		return 0
	}
}

// LineItems returns the billed lines of a subtype for a record.
func LineItems(rec domain.MergedInvoiceData, subtype domain.DocumentSubtype) []domain.LineItem {
	switch subtype {
	case domain.SubtypeGodown:
		return []domain.LineItem{
			rated(godownLineDescription, HSNGodownRent, rec.GodownRent, GodownRentRate),
		}
	case domain.SubtypeMain:
		return []domain.LineItem{
			rated("Loading Charges", HSNHandling, rec.LoadingCharges, LoadingRate),
			rated("Unloading Charges", HSNHandling, rec.UnloadingCharges, UnloadingRate),
			rated("Local Transportation", HSNLocalTransport, rec.LocalTransportation, LocalTransportRate),
		}
	case domain.SubtypeFreight:
		return []domain.LineItem{
			{Description: "Secondary Freight", HSNSAC: HSNFreight, Amount: rec.FreightBalance},
		}
	default:
		return nil
	}
}

func rated(desc, hsn string, amount, rate float64) domain.LineItem {
	return domain.LineItem{
		Description: desc,
		HSNSAC:      hsn,
		Quantity:    amount / rate,
		Rate:        rate,
		Amount:      amount,
		HasQuantity: true,
	}
}

// ServiceDescription is the heading printed above the line items.
func ServiceDescription(subtype domain.DocumentSubtype, state string) string {
	switch subtype {
	case domain.SubtypeGodown:
		return godownLineDescription + " for " + state
	case domain.SubtypeMain:
		return mainServiceDescription
	default:
		return ""
	}
}

// Calculate computes the values of one document for a record billed in state.
// Amounts are not rounded; NaN inputs propagate.
func Calculate(rec domain.MergedInvoiceData, subtype domain.DocumentSubtype, state string) domain.DocumentValues {
	j := Lookup(state)
	v := domain.DocumentValues{
		Subtype:            subtype,
		State:              state,
		InterState:         j.InterState,
		Entity:             j.Entity,
		ServiceDescription: ServiceDescription(subtype, state),
		LineItems:          LineItems(rec, subtype),
		Subtotal:           Subtotal(rec, subtype),
	}
	if v.InterState {
		v.IGST = v.Subtotal * IGSTRate
	} else {
		v.CGST = v.Subtotal * CGSTRate
		v.SGST = v.Subtotal * SGSTRate
	}
	v.Total = v.Subtotal + v.CGST + v.SGST + v.IGST
	v.AmountInWords = AmountInWords(v.Total)
	return v
}

// ForRecord classifies the customer's address and calculates the document.
func ForRecord(rec domain.MergedInvoiceData, subtype domain.DocumentSubtype) domain.DocumentValues {
	return Calculate(rec, subtype, ClassifyState(rec.Customer.Address))
}
