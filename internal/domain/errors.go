package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSpreadsheetDecode   = errors.New("spreadsheet could not be decoded")
	ErrSheetNotFound       = errors.New("required sheet not found")
	ErrHeaderNotFound      = errors.New("header row not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrNoInvoiceData       = errors.New("no invoice data uploaded")
	ErrRecordNotFound      = errors.New("merged record not found")
	ErrInvalidSubtype      = errors.New("invalid document subtype")
	ErrInvalidDocumentKind = errors.New("invalid document kind")
	ErrInvalidFormat       = errors.New("invalid document format")
	ErrEmptyUpload         = errors.New("uploaded file is empty")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrSessionLimitReached = errors.New("session limit reached")
)

const retryHint = "fix the source file and upload it again"

// SpreadsheetDecodeError reports input bytes that are not a readable workbook.
type SpreadsheetDecodeError struct {
	File FileKind
	Err  error
}

func (e *SpreadsheetDecodeError) Error() string {
	return fmt.Sprintf("%s is not a readable spreadsheet (%v); %s", e.File.Label(), e.Err, retryHint)
}

func (e *SpreadsheetDecodeError) Unwrap() []error {
	return []error{ErrSpreadsheetDecode, e.Err}
}

// SheetNotFoundError reports a missing named sheet.
type SheetNotFoundError struct {
	File      FileKind
	Sheet     string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("%s: the required sheet %q was not found (available: %s); %s",
		e.File.Label(), e.Sheet, strings.Join(e.Available, ", "), retryHint)
}

func (e *SheetNotFoundError) Unwrap() error {
	return ErrSheetNotFound
}

// HeaderNotFoundError reports that no row matched the header keywords.
type HeaderNotFoundError struct {
	File     FileKind
	Sheet    string
	Keywords []string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("%s: could not detect the header row in sheet %q; expected a row containing one of: %s; %s",
		e.File.Label(), e.Sheet, strings.Join(e.Keywords, ", "), retryHint)
}

func (e *HeaderNotFoundError) Unwrap() error {
	return ErrHeaderNotFound
}
