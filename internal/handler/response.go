package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"billrecon/internal/domain"
	"billrecon/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
// Spreadsheet errors keep their own message: it names the file and what was expected.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrSpreadsheetDecode):
		return http.StatusUnprocessableEntity, "SPREADSHEET_DECODE_ERROR", err.Error()
	case errors.Is(err, domain.ErrSheetNotFound):
		return http.StatusUnprocessableEntity, "SHEET_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrHeaderNotFound):
		return http.StatusUnprocessableEntity, "HEADER_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "session not found"
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, "RECORD_NOT_FOUND", "no merged record with this SAP code"
	case errors.Is(err, domain.ErrNoInvoiceData):
		return http.StatusConflict, "NO_INVOICE_DATA", "upload the invoice data file first"
	case errors.Is(err, domain.ErrInvalidSubtype):
		return http.StatusBadRequest, "INVALID_SUBTYPE", "invalid document subtype; allowed: godown, main, freight"
	case errors.Is(err, domain.ErrInvalidDocumentKind):
		return http.StatusBadRequest, "INVALID_DOCUMENT_KIND", "invalid document kind; allowed: tax-invoice, debit-note"
	case errors.Is(err, domain.ErrInvalidFormat):
		return http.StatusBadRequest, "INVALID_FORMAT", "invalid document format; allowed: pdf, docx"
	case errors.Is(err, domain.ErrEmptyUpload):
		return http.StatusBadRequest, "EMPTY_FILE", "uploaded file is empty"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrSessionLimitReached):
		return http.StatusTooManyRequests, "SESSION_LIMIT_REACHED", "too many open sessions; delete one and retry"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		middleware.GetLogger(c).WithError(err).Error("internal error")
	}
	RespondError(c, status, code, msg)
}
