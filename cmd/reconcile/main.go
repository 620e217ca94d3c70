// Command reconcile runs the billing pipeline once over two spreadsheets and
// writes the requested exports.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"billrecon/internal/config"
	"billrecon/internal/domain"
	"billrecon/internal/export"
	"billrecon/internal/ingest"
	"billrecon/internal/logger"
	"billrecon/internal/reconcile"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	customersPath := flag.String("customers", "", "path to the Customer Master workbook")
	invoicesPath := flag.String("invoices", "", "path to the Invoice Data workbook (needs a \"Pivot.\" sheet)")
	csvPath := flag.String("csv", "", "write merged records as CSV to this path")
	summaryPath := flag.String("summary", "", "write the summary workbook to this path")
	flag.Parse()

	if *invoicesPath == "" {
		flag.Usage()
		return fmt.Errorf("-invoices is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logr := logger.New(cfg.Log)

	var customers []domain.CustomerData
	if *customersPath != "" {
		body, err := os.ReadFile(*customersPath)
		if err != nil {
			return fmt.Errorf("reading customer master: %w", err)
		}
		var report *domain.ParseReport
		customers, report, err = ingest.ParseCustomerMaster(bytes.NewReader(body))
		if err != nil {
			return err
		}
		logReport(logr, report)
	}

	body, err := os.ReadFile(*invoicesPath)
	if err != nil {
		return fmt.Errorf("reading invoice data: %w", err)
	}
	invoices, report, err := ingest.ParseInvoicePivot(bytes.NewReader(body))
	if err != nil {
		return err
	}
	logReport(logr, report)

	merged := reconcile.Merge(customers, invoices)
	summary := reconcile.Summarize(merged)
	logr.WithFields(logrus.Fields{
		"records":        summary.Records,
		"unmatched":      reconcile.Unmatched(merged),
		"godown_rent":    export.FormatINR(summary.GodownRentTotal),
		"main_bill":      export.FormatINR(summary.MainBillAmountTotal),
		"freight":        export.FormatINR(summary.FreightBalanceTotal),
		"combined_total": export.FormatINR(summary.CombinedTotal),
	}).Info("reconciliation complete")

	if *csvPath != "" {
		if err := writeFile(*csvPath, func(f *os.File) error { return export.WriteCSV(f, merged) }); err != nil {
			return fmt.Errorf("writing csv: %w", err)
		}
		logr.WithField("path", *csvPath).Info("merged records written")
	}
	if *summaryPath != "" {
		if err := writeFile(*summaryPath, func(f *os.File) error { return export.WriteSummaryXLSX(f, summary) }); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
		logr.WithField("path", *summaryPath).Info("summary workbook written")
	}
	return nil
}

func logReport(logr *logrus.Logger, r *domain.ParseReport) {
	entry := logr.WithFields(logrus.Fields{
		"file":         r.File,
		"sheet":        r.Sheet,
		"header_row":   r.HeaderRow,
		"data_rows":    r.DataRows,
		"blank_rows":   r.BlankRows,
		"skipped_rows": r.SkippedRows,
		"duplicates":   r.DuplicatesMerged,
		"records":      r.Records,
	})
	entry.Info("spreadsheet parsed")
	for _, w := range r.Warnings {
		entry.WithFields(logrus.Fields{"row": w.Row, "field": w.Field, "value": w.Value}).Warn(w.Message)
	}
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
