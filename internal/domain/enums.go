package domain

// FileKind identifies which uploaded spreadsheet a result or error belongs to.
type FileKind string

const (
	FileCustomerMaster FileKind = "customer_master"
	FileInvoiceData    FileKind = "invoice_data"
)

// Label returns the user-facing name of the file.
func (k FileKind) Label() string {
	switch k {
	case FileCustomerMaster:
		return "Customer Master file"
	case FileInvoiceData:
		return "Invoice Data file"
	default:
		return "spreadsheet"
	}
}

// DocumentSubtype selects which charges a document bills.
type DocumentSubtype string

const (
	SubtypeGodown  DocumentSubtype = "godown"
	SubtypeMain    DocumentSubtype = "main"
	SubtypeFreight DocumentSubtype = "freight"
)

// DocumentSubtypes lists subtypes in generation order.
var DocumentSubtypes = []DocumentSubtype{SubtypeGodown, SubtypeMain, SubtypeFreight}

// DocumentKind is the legal form of a billing document.
type DocumentKind string

const (
	KindTaxInvoice DocumentKind = "tax-invoice"
	KindDebitNote  DocumentKind = "debit-note"
)

// DocumentKinds lists kinds in generation order.
var DocumentKinds = []DocumentKind{KindTaxInvoice, KindDebitNote}

// DocumentFormat is the output container a renderer produces.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
)

// AllowedFormats maps accepted format names to DocumentFormat.
var AllowedFormats = map[string]DocumentFormat{
	"pdf":  FormatPDF,
	"docx": FormatDOCX,
}

// MatchTier records how an invoice found its customer.
type MatchTier string

const (
	MatchByName    MatchTier = "name"
	MatchBySAPCode MatchTier = "sap_code"
	MatchNone      MatchTier = "none"
)
