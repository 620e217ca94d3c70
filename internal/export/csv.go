// Package export serializes merged billing records and their summary.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"billrecon/internal/domain"
	"billrecon/internal/tax"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (21 columns).
var columns = []string{
	"SAP Code",
	"Customer Name",
	"Matched By",
	"Plant",
	"Zone",
	"District",
	"State",
	"Customer Address",
	"GSTIN",
	"PAN",
	"Email",
	"Mobile",
	"Quantity Lifted",
	"Godown Rent",
	"Loading Charges",
	"Unloading Charges",
	"Local Transportation",
	"Main Bill Amount",
	"Freight Balance",
	"Total Value",
	"Source Rows",
}

// Writer wraps csv.Writer for exporting merged records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRecords converts merged records to CSV rows and writes them.
func (w *Writer) WriteRecords(records []domain.MergedInvoiceData) error {
	for i := range records {
		if err := w.csv.Write(recordToRow(&records[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV writes a BOM, the header and every record to out.
func WriteCSV(out io.Writer, records []domain.MergedInvoiceData) error {
	if _, err := out.Write(BOM); err != nil {
		return err
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteRecords(records); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func recordToRow(rec *domain.MergedInvoiceData) []string {
	c := rec.Customer
	return []string{
		rec.SAPCode,
		rec.CustomerName,
		string(rec.MatchedBy),
		rec.Plant,
		rec.Zone,
		rec.District,
		tax.ClassifyState(c.Address),
		c.Address,
		c.GSTIN,
		c.PAN,
		c.Email,
		c.Mobile,
		formatQuantity(rec.QuantityLifted),
		FormatMoney(rec.GodownRent),
		FormatMoney(rec.LoadingCharges),
		FormatMoney(rec.UnloadingCharges),
		FormatMoney(rec.LocalTransportation),
		FormatMoney(rec.MainBillAmount),
		FormatMoney(rec.FreightBalance),
		FormatMoney(rec.TotalValue),
		strconv.Itoa(rec.RowCount),
	}
}

// FormatMoney renders an amount with exactly two decimals, rounding half away from zero.
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatINR renders an amount with Indian digit grouping, e.g. 1,50,000.50.
func FormatINR(v float64) string {
	s := FormatMoney(v)
	if s == "" {
		return ""
	}
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	if len(intPart) > 3 {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		intPart = strings.Join(groups, ",") + "," + tail
	}
	return sign + intPart + "." + frac
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized download name.
// Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(name), now.Format("2006-01-02"), ext)
}
