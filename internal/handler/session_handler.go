package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billrecon/internal/document"
	"billrecon/internal/domain"
	"billrecon/internal/export"
	"billrecon/internal/service"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// SessionHandler handles the reconciliation session endpoints.
type SessionHandler struct {
	billingService service.BillingService
	now            func() time.Time
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(billingService service.BillingService) *SessionHandler {
	return &SessionHandler{billingService: billingService, now: time.Now}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	sess, err := h.billingService.CreateSession(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, sess)
}

// Get handles GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	sess, err := h.billingService.GetSession(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sess)
}

// Delete handles DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.billingService.DeleteSession(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "session deleted"})
}

// Reset handles POST /api/v1/sessions/:id/reset
func (h *SessionHandler) Reset(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	sess, err := h.billingService.ResetSession(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sess)
}

// UploadCustomerMaster handles POST /api/v1/sessions/:id/customer-master
func (h *SessionHandler) UploadCustomerMaster(c *gin.Context) {
	h.upload(c, h.billingService.UploadCustomerMaster)
}

// UploadInvoiceData handles POST /api/v1/sessions/:id/invoice-data
func (h *SessionHandler) UploadInvoiceData(c *gin.Context) {
	h.upload(c, h.billingService.UploadInvoiceData)
}

type uploadFunc func(ctx context.Context, input service.UploadInput) (*domain.SessionView, error)

func (h *SessionHandler) upload(c *gin.Context, fn uploadFunc) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	sess, err := fn(c.Request.Context(), service.UploadInput{
		SessionID: id,
		FileName:  header.Filename,
		Size:      header.Size,
		Body:      file,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, sess)
}

// Merged handles GET /api/v1/sessions/:id/merged?search=&state=
func (h *SessionHandler) Merged(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	records, err := h.billingService.ListMerged(c.Request.Context(), id, c.Query("search"), c.Query("state"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, records)
}

// Summary handles GET /api/v1/sessions/:id/summary
func (h *SessionHandler) Summary(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	summary, err := h.billingService.Summary(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// SummaryWorkbook handles GET /api/v1/sessions/:id/summary.xlsx
func (h *SessionHandler) SummaryWorkbook(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	summary, err := h.billingService.Summary(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteSummaryXLSX(&buf, *summary); err != nil {
		HandleError(c, fmt.Errorf("writing summary workbook: %w", err))
		return
	}
	h.download(c, export.BuildFilename(export.SummarySheet, "xlsx", h.now()), xlsxContentType, buf.Bytes())
}

// MergedCSV handles GET /api/v1/sessions/:id/merged.csv
func (h *SessionHandler) MergedCSV(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	records, err := h.billingService.ListMerged(c.Request.Context(), id, c.Query("search"), c.Query("state"))
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, records); err != nil {
		HandleError(c, fmt.Errorf("writing merged csv: %w", err))
		return
	}
	h.download(c, export.BuildFilename("Merged Invoice Data", "csv", h.now()), csvContentType, buf.Bytes())
}

// Documents handles GET /api/v1/sessions/:id/documents?kinds=&formats=
func (h *SessionHandler) Documents(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	kinds, err := document.ParseKinds(c.Query("kinds"))
	if err != nil {
		HandleError(c, err)
		return
	}
	formats, err := document.ParseFormats(c.Query("formats"))
	if err != nil {
		HandleError(c, err)
		return
	}

	jobs, err := h.billingService.PlanDocuments(c.Request.Context(), id, kinds, formats)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, jobs)
}

// DocumentValues handles GET /api/v1/sessions/:id/documents/:sap/:subtype
func (h *SessionHandler) DocumentValues(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	subtype, err := document.ParseSubtype(c.Param("subtype"))
	if err != nil {
		HandleError(c, err)
		return
	}

	values, err := h.billingService.DocumentValues(c.Request.Context(), id, c.Param("sap"), subtype)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, values)
}

func (h *SessionHandler) download(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}

// sessionID parses the :id path parameter. Returns false if it is invalid
// (error response already written).
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}
