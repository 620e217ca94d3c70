// Package document plans the billing documents produced for merged records.
package document

import (
	"fmt"
	"regexp"
	"strings"

	"billrecon/internal/domain"
	"billrecon/internal/tax"
)

// subtypeNames are the file-name segments of each subtype.
var subtypeNames = map[domain.DocumentSubtype]string{
	domain.SubtypeGodown:  "Godown_Rent",
	domain.SubtypeMain:    "Main_Services",
	domain.SubtypeFreight: "Secondary_Freight",
}

// kindPrefixes are the file-name prefixes and id suffixes of each kind.
var kindPrefixes = map[domain.DocumentKind]struct{ file, id string }{
	domain.KindTaxInvoice: {"TaxInvoice", "tax"},
	domain.KindDebitNote:  {"DebitNote", "debit"},
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SafeName replaces every character outside [A-Za-z0-9] with "_".
func SafeName(s string) string {
	return nonAlphanumeric.ReplaceAllString(s, "_")
}

// ParseSubtype validates a subtype name.
func ParseSubtype(s string) (domain.DocumentSubtype, error) {
	st := domain.DocumentSubtype(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := subtypeNames[st]; !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSubtype, s)
	}
	return st, nil
}

// ParseFormats validates a comma separated format list. An empty list means pdf.
func ParseFormats(s string) ([]domain.DocumentFormat, error) {
	if strings.TrimSpace(s) == "" {
		return []domain.DocumentFormat{domain.FormatPDF}, nil
	}
	var formats []domain.DocumentFormat
	seen := make(map[domain.DocumentFormat]bool)
	for _, part := range strings.Split(s, ",") {
		f, ok := domain.AllowedFormats[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFormat, part)
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

// ParseKinds validates a comma separated kind list. An empty list means all kinds.
func ParseKinds(s string) ([]domain.DocumentKind, error) {
	if strings.TrimSpace(s) == "" {
		return domain.DocumentKinds, nil
	}
	var kinds []domain.DocumentKind
	seen := make(map[domain.DocumentKind]bool)
	for _, part := range strings.Split(s, ",") {
		k := domain.DocumentKind(strings.ToLower(strings.TrimSpace(part)))
		if _, ok := kindPrefixes[k]; !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDocumentKind, part)
		}
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

// FileName returns the download name of one document.
func FileName(rec domain.MergedInvoiceData, subtype domain.DocumentSubtype, kind domain.DocumentKind, format domain.DocumentFormat) string {
	return fmt.Sprintf("%s_%s_%s_%s.%s",
		kindPrefixes[kind].file, subtypeNames[subtype], SafeName(rec.Customer.CustomerName), rec.SAPCode, format)
}

// JobID returns the stable identifier of one document.
func JobID(sapCode string, subtype domain.DocumentSubtype, kind domain.DocumentKind, format domain.DocumentFormat) string {
	return fmt.Sprintf("%s-%s-%s-%s", sapCode, subtype, kindPrefixes[kind].id, format)
}

// Plan lists every document to render: each record gets every subtype in
// every kind and format. Jobs are independent and may be rendered in any order.
func Plan(merged []domain.MergedInvoiceData, kinds []domain.DocumentKind, formats []domain.DocumentFormat) []domain.DocumentJob {
	jobs := make([]domain.DocumentJob, 0, len(merged)*len(domain.DocumentSubtypes)*len(kinds)*len(formats))
	for i := range merged {
		rec := merged[i]
		for _, kind := range kinds {
			for _, subtype := range domain.DocumentSubtypes {
				amount := tax.Subtotal(rec, subtype)
				for _, format := range formats {
					jobs = append(jobs, domain.DocumentJob{
						ID:           JobID(rec.SAPCode, subtype, kind, format),
						SAPCode:      rec.SAPCode,
						CustomerName: rec.Customer.CustomerName,
						Subtype:      subtype,
						Kind:         kind,
						Format:       format,
						FileName:     FileName(rec, subtype, kind, format),
						Amount:       amount,
					})
				}
			}
		}
	}
	return jobs
}

// Filter returns the records whose customer name contains search
// (case-insensitive) and whose classified state passes the state filter.
func Filter(merged []domain.MergedInvoiceData, search, state string) []domain.MergedInvoiceData {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]domain.MergedInvoiceData, 0, len(merged))
	for i := range merged {
		rec := merged[i]
		if search != "" && !strings.Contains(strings.ToLower(rec.Customer.CustomerName), search) {
			continue
		}
		if !tax.MatchesStateFilter(tax.ClassifyState(rec.Customer.Address), state) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Find returns the record with the given SAP code.
func Find(merged []domain.MergedInvoiceData, sapCode string) (domain.MergedInvoiceData, error) {
	for i := range merged {
		if merged[i].SAPCode == sapCode {
			return merged[i], nil
		}
	}
	return domain.MergedInvoiceData{}, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, sapCode)
}
