package ingest

import "billrecon/internal/spreadsheet"

var (
	contains = spreadsheet.Contains
	exact    = spreadsheet.Exact
)

// Customer master fields.
const (
	fieldCustomerSAP      = "sap_code"
	fieldCustomerName     = "customer_name"
	fieldStreet           = "street"
	fieldStreet2          = "street2"
	fieldStreet3          = "street3"
	fieldStreet4          = "street4"
	fieldPostalCode       = "postal_code"
	fieldCustomerDistrict = "district"
	fieldGSTIN            = "gstin"
	fieldPAN              = "pan"
	fieldEmail            = "email"
	fieldMobile           = "mobile"
)

// CustomerHeaderKeywords locate the header row of the customer master.
var CustomerHeaderKeywords = []string{"customer", "name", "party"}

// customerFields is the header table for the customer master sheet.
var customerFields = []spreadsheet.FieldSpec{
	{Field: fieldCustomerSAP, Synonyms: []spreadsheet.Synonym{contains("sap"), contains("code")},
		Excludes: []string{"postal", "pin"}},
	{Field: fieldCustomerName, Synonyms: []spreadsheet.Synonym{
		contains("customer name"), contains("party name"), contains("name"),
		contains("customer"), contains("party"),
	}},
	{Field: fieldStreet, Synonyms: []spreadsheet.Synonym{exact("street")}},
	{Field: fieldStreet2, Synonyms: []spreadsheet.Synonym{exact("street2")}},
	{Field: fieldStreet3, Synonyms: []spreadsheet.Synonym{exact("street3")}},
	{Field: fieldStreet4, Synonyms: []spreadsheet.Synonym{exact("street4")}},
	{Field: fieldPostalCode, Synonyms: []spreadsheet.Synonym{exact("postal code")}},
	{Field: fieldCustomerDistrict, Synonyms: []spreadsheet.Synonym{exact("district")}},
	{Field: fieldGSTIN, Synonyms: []spreadsheet.Synonym{contains("gstin"), contains("gst")}},
	{Field: fieldPAN, Synonyms: []spreadsheet.Synonym{exact("pan"), contains("pan no"), contains("pan number")}},
	{Field: fieldEmail, Synonyms: []spreadsheet.Synonym{exact("e-mail address"), contains("e-mail"), contains("email")}},
	{Field: fieldMobile, Synonyms: []spreadsheet.Synonym{exact("mob_num"), contains("mobile"), contains("mob_num")}},
}

// addressParts are joined in this order to build CustomerData.Address.
var addressParts = []string{
	fieldStreet, fieldStreet2, fieldStreet3, fieldStreet4, fieldPostalCode, fieldCustomerDistrict,
}

// Pivot sheet fields.
const (
	fieldZone                = "zone"
	fieldBillToParty         = "bill_to_party_name"
	fieldInvoiceDistrict     = "district"
	fieldInvoiceSAP          = "sap_code"
	fieldQuantityLifted      = "quantity_lifted"
	fieldGodownRent          = "godown_rent"
	fieldLoading             = "loading"
	fieldUnloading           = "unloading"
	fieldLocalTransportation = "local_transportation"
	fieldFreightBalance      = "freight_balance"
)

// PivotSheetName is the sheet the invoice file must contain.
const PivotSheetName = "Pivot."

// plantColumn is reserved for the plant code in the pivot export.
const plantColumn = 0

// PivotHeaderKeywords locate the header row of the pivot sheet.
var PivotHeaderKeywords = []string{"bill", "party", "amount", "quantity", "rent", "freight"}

// pivotFields is the header table for the pivot sheet.
var pivotFields = []spreadsheet.FieldSpec{
	{Field: fieldZone, Synonyms: []spreadsheet.Synonym{contains("zone"), contains("plant")}},
	{Field: fieldBillToParty, Synonyms: []spreadsheet.Synonym{contains("bill to party name"), contains("customer name")}},
	{Field: fieldInvoiceDistrict, Synonyms: []spreadsheet.Synonym{
		contains("bill to district"), contains("district"), contains("location"), contains("region"),
	}},
	{Field: fieldInvoiceSAP, Synonyms: []spreadsheet.Synonym{contains("sap code"), contains("sap")}},
	{Field: fieldQuantityLifted, Synonyms: []spreadsheet.Synonym{
		contains("sum of total qty lifted"), contains("qty lifted"), contains("quantity lifted"), contains("quantity"),
	}},
	{Field: fieldGodownRent, Synonyms: []spreadsheet.Synonym{
		contains("godown rent @ rs. 100/mt"), contains("godown rent"), contains("godown"), contains("rent"),
	}},
	{Field: fieldLoading, Synonyms: []spreadsheet.Synonym{
		contains("loading @ rs. 75/mt"), contains("loading charges"), contains("loading"),
	}, Excludes: []string{"unloading"}},
	{Field: fieldUnloading, Synonyms: []spreadsheet.Synonym{
		contains("unloading @ rs. 75/mt"), contains("unloading charges"), contains("unloading"),
	}},
	{Field: fieldLocalTransportation, Synonyms: []spreadsheet.Synonym{
		contains("local transportation @ rs. 200/mt"), contains("local transportation"), contains("local transport"),
	}},
	{Field: fieldFreightBalance, Synonyms: []spreadsheet.Synonym{
		contains("sum of balance to be given as secondary frt."), contains("secondary frt."),
		contains("secondary freight"), contains("freight balance"), contains("freight"),
	}},
}
