package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sentinel field values used when source data is missing.
const (
	AddressNotProvided = "Address not provided"
	GSTINNotProvided   = "GSTIN not provided"
	PANNotProvided     = "PAN not provided"
	AddressNotFound    = "Address not found"
	GSTINNotFound      = "GSTIN not found"
	PANNotFound        = "PAN not found"
	UnknownDistrict    = "Unknown District"
)

// CustomerData is one customer's billing identity from the customer master.
type CustomerData struct {
	SAPCode      string `json:"sap_code"`
	CustomerName string `json:"customer_name"`
	Address      string `json:"address"`
	GSTIN        string `json:"gstin"`
	PAN          string `json:"pan"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	// MobileE164 is Mobile normalized to E.164, empty when it is not a valid Indian number.
	MobileE164 string `json:"mobile_e164,omitempty"`
}

// InvoiceData is one aggregated billing line per SAP code.
type InvoiceData struct {
	SAPCode                 string  `json:"sap_code"`
	CustomerName            string  `json:"customer_name"`
	CustomerNameForMatching string  `json:"customer_name_for_matching"`
	District                string  `json:"district"`
	Plant                   string  `json:"plant,omitempty"`
	Zone                    string  `json:"zone,omitempty"`
	QuantityLifted          float64 `json:"quantity_lifted"`
	GodownRent              float64 `json:"godown_rent"`
	LoadingCharges          float64 `json:"loading_charges"`
	UnloadingCharges        float64 `json:"unloading_charges"`
	LocalTransportation     float64 `json:"local_transportation"`
	FreightBalance          float64 `json:"freight_balance"`
	MainBillAmount          float64 `json:"main_bill_amount"`
	TotalValue              float64 `json:"total_value"`
	RowCount                int     `json:"row_count"`
}

// MergedInvoiceData is an InvoiceData with its matched (or synthetic) customer.
type MergedInvoiceData struct {
	InvoiceData
	Customer CustomerData `json:"customer"`
	// MatchedBy records which tier attached the customer.
	MatchedBy MatchTier `json:"matched_by"`
}

// Summary is the aggregate view handed to the summary spreadsheet writer.
type Summary struct {
	Records             int     `json:"records"`
	GodownRentTotal     float64 `json:"godown_rent_total"`
	MainBillAmountTotal float64 `json:"main_bill_amount_total"`
	FreightBalanceTotal float64 `json:"freight_balance_total"`
	CombinedTotal       float64 `json:"combined_total"`
}

// Entity is the Jubilant legal entity billed for a given state.
type Entity struct {
	Name         string   `json:"name"`
	AddressLines []string `json:"address_lines"`
	GSTIN        string   `json:"gstin"`
}

// LineItem is one billed service line on a document.
type LineItem struct {
	Description string  `json:"description"`
	HSNSAC      string  `json:"hsn_sac"`
	Quantity    float64 `json:"quantity,omitempty"`
	Rate        float64 `json:"rate,omitempty"`
	Amount      float64 `json:"amount"`
	// HasQuantity is false for lines billed as a lump sum.
	HasQuantity bool `json:"has_quantity"`
}

// DocumentValues holds everything a renderer needs for one document.
type DocumentValues struct {
	Subtype            DocumentSubtype `json:"subtype"`
	State              string          `json:"state"`
	InterState         bool            `json:"inter_state"`
	Entity             Entity          `json:"entity"`
	ServiceDescription string          `json:"service_description"`
	LineItems          []LineItem      `json:"line_items"`
	Subtotal           float64         `json:"subtotal"`
	CGST               float64         `json:"cgst"`
	SGST               float64         `json:"sgst"`
	IGST               float64         `json:"igst"`
	Total              float64         `json:"total"`
	AmountInWords      string          `json:"amount_in_words"`
}

// DocumentJob describes one document a renderer is expected to produce.
type DocumentJob struct {
	ID           string          `json:"id"`
	SAPCode      string          `json:"sap_code"`
	CustomerName string          `json:"customer_name"`
	Subtype      DocumentSubtype `json:"subtype"`
	Kind         DocumentKind    `json:"kind"`
	Format       DocumentFormat  `json:"format"`
	FileName     string          `json:"file_name"`
	Amount       float64         `json:"amount"`
}

// ParseWarning flags a suspicious value that did not stop the parse.
type ParseWarning struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// ParseReport describes what a parse consumed and discarded.
type ParseReport struct {
	File             FileKind       `json:"file"`
	Sheet            string         `json:"sheet"`
	HeaderRow        int            `json:"header_row"`
	DataRows         int            `json:"data_rows"`
	BlankRows        int            `json:"blank_rows"`
	SkippedRows      int            `json:"skipped_rows"`
	DuplicatesMerged int            `json:"duplicates_merged"`
	Records          int            `json:"records"`
	Warnings         []ParseWarning `json:"warnings,omitempty"`
}

// Dataset is one immutable snapshot of a session's data. It is replaced, never patched.
type Dataset struct {
	Customers      []CustomerData      `json:"customers"`
	Invoices       []InvoiceData       `json:"invoices"`
	Merged         []MergedInvoiceData `json:"merged"`
	CustomerReport *ParseReport        `json:"customer_report,omitempty"`
	InvoiceReport  *ParseReport        `json:"invoice_report,omitempty"`
}

// Session is one user's working set, reset on explicit request.
type Session struct {
	ID   uuid.UUID `json:"id"`
	Data *Dataset  `json:"-"`
	// SourceKeys are the archive keys of every accepted upload.
	SourceKeys []string  `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SessionView is the API representation of a session.
type SessionView struct {
	ID             uuid.UUID    `json:"id"`
	Customers      int          `json:"customers"`
	Invoices       int          `json:"invoices"`
	Merged         int          `json:"merged"`
	Unmatched      int          `json:"unmatched"`
	CustomerReport *ParseReport `json:"customer_report,omitempty"`
	InvoiceReport  *ParseReport `json:"invoice_report,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
