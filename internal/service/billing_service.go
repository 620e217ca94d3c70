package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"billrecon/internal/config"
	"billrecon/internal/document"
	"billrecon/internal/domain"
	"billrecon/internal/export"
	"billrecon/internal/ingest"
	"billrecon/internal/metrics"
	"billrecon/internal/port"
	"billrecon/internal/reconcile"
	"billrecon/internal/tax"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// UploadInput is the DTO for spreadsheet uploads.
type UploadInput struct {
	SessionID uuid.UUID
	FileName  string
	Size      int64
	Body      io.Reader
}

// BillingService owns the per-session datasets and runs the pipeline.
type BillingService interface {
	CreateSession(ctx context.Context) (*domain.SessionView, error)
	GetSession(ctx context.Context, id uuid.UUID) (*domain.SessionView, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	ResetSession(ctx context.Context, id uuid.UUID) (*domain.SessionView, error)
	UploadCustomerMaster(ctx context.Context, input UploadInput) (*domain.SessionView, error)
	UploadInvoiceData(ctx context.Context, input UploadInput) (*domain.SessionView, error)
	ListMerged(ctx context.Context, id uuid.UUID, search, state string) ([]domain.MergedInvoiceData, error)
	Summary(ctx context.Context, id uuid.UUID) (*domain.Summary, error)
	PlanDocuments(ctx context.Context, id uuid.UUID, kinds []domain.DocumentKind, formats []domain.DocumentFormat) ([]domain.DocumentJob, error)
	DocumentValues(ctx context.Context, id uuid.UUID, sapCode string, subtype domain.DocumentSubtype) (*domain.DocumentValues, error)
}

type billingService struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session

	archive    port.SourceArchive
	metrics    *metrics.Metrics
	log        *logrus.Logger
	uploadCfg  *config.UploadConfig
	sessionCfg *config.SessionConfig
	now        func() time.Time
}

// NewBillingService creates a new BillingService. archive may be nil, in
// which case uploads are not archived.
func NewBillingService(
	archive port.SourceArchive,
	m *metrics.Metrics,
	log *logrus.Logger,
	uploadCfg *config.UploadConfig,
	sessionCfg *config.SessionConfig,
) BillingService {
	return &billingService{
		sessions:   make(map[uuid.UUID]*domain.Session),
		archive:    archive,
		metrics:    m,
		log:        log,
		uploadCfg:  uploadCfg,
		sessionCfg: sessionCfg,
		now:        time.Now,
	}
}

func (s *billingService) CreateSession(_ context.Context) (*domain.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionCfg.MaxSessions > 0 && len(s.sessions) >= s.sessionCfg.MaxSessions {
		return nil, domain.ErrSessionLimitReached
	}

	now := s.now()
	sess := &domain.Session{ID: uuid.New(), Data: &domain.Dataset{}, CreatedAt: now, UpdatedAt: now}
	s.sessions[sess.ID] = sess
	s.metrics.ActiveSessions.Set(float64(len(s.sessions)))

	s.log.WithField("session_id", sess.ID).Info("session created")
	return view(sess), nil
}

func (s *billingService) GetSession(_ context.Context, id uuid.UUID) (*domain.SessionView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return view(sess), nil
}

func (s *billingService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
		s.metrics.ActiveSessions.Set(float64(len(s.sessions)))
	}
	s.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}

	if s.archive != nil {
		for _, key := range sess.SourceKeys {
			if err := s.archive.Delete(ctx, key); err != nil {
				s.log.WithFields(logrus.Fields{"session_id": id, "key": key}).
					WithError(err).Warn("failed to delete archived source")
			}
		}
	}
	s.log.WithField("session_id", id).Info("session deleted")
	return nil
}

func (s *billingService) ResetSession(_ context.Context, id uuid.UUID) (*domain.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	sess.Data = &domain.Dataset{}
	sess.UpdatedAt = s.now()

	s.log.WithField("session_id", id).Info("session reset")
	return view(sess), nil
}

func (s *billingService) UploadCustomerMaster(ctx context.Context, input UploadInput) (*domain.SessionView, error) {
	return s.upload(ctx, domain.FileCustomerMaster, input, func(body []byte) (applyFunc, *domain.ParseReport, error) {
		customers, report, err := ingest.ParseCustomerMaster(bytes.NewReader(body))
		if err != nil {
			return nil, nil, err
		}
		return func(ds *domain.Dataset) {
			ds.Customers = customers
			ds.CustomerReport = report
		}, report, nil
	})
}

func (s *billingService) UploadInvoiceData(ctx context.Context, input UploadInput) (*domain.SessionView, error) {
	return s.upload(ctx, domain.FileInvoiceData, input, func(body []byte) (applyFunc, *domain.ParseReport, error) {
		invoices, report, err := ingest.ParseInvoicePivot(bytes.NewReader(body))
		if err != nil {
			return nil, nil, err
		}
		return func(ds *domain.Dataset) {
			ds.Invoices = invoices
			ds.InvoiceReport = report
		}, report, nil
	})
}

// applyFunc sets one file's results on a fresh copy of the dataset.
type applyFunc func(ds *domain.Dataset)

// parseFunc turns an uploaded file into the change it makes to a dataset.
type parseFunc func(body []byte) (applyFunc, *domain.ParseReport, error)

// upload parses one file, then publishes a new dataset built from the
// current one. A failed parse leaves the previous dataset untouched.
func (s *billingService) upload(ctx context.Context, kind domain.FileKind, input UploadInput, parse parseFunc) (*domain.SessionView, error) {
	fields := logrus.Fields{"session_id": input.SessionID, "file": kind, "name": input.FileName}

	if _, err := s.snapshot(input.SessionID); err != nil {
		return nil, err
	}

	body, err := s.readUpload(input)
	if err != nil {
		s.metrics.Uploads.WithLabelValues(string(kind), "rejected").Inc()
		return nil, err
	}

	apply, report, err := parse(body)
	if err != nil {
		s.metrics.Uploads.WithLabelValues(string(kind), "failed").Inc()
		s.log.WithFields(fields).WithError(err).Warn("spreadsheet parse failed")
		return nil, err
	}

	s.mu.Lock()
	sess, ok := s.sessions[input.SessionID]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}
	next := *sess.Data
	apply(&next)
	next.Merged = nil
	if len(next.Invoices) > 0 {
		next.Merged = reconcile.Merge(next.Customers, next.Invoices)
	}
	sess.Data = &next
	sess.UpdatedAt = s.now()
	result := view(sess)
	s.mu.Unlock()

	s.metrics.Uploads.WithLabelValues(string(kind), "accepted").Inc()
	s.metrics.RowsSkipped.WithLabelValues(string(kind)).Add(float64(report.SkippedRows))
	s.metrics.MergedRecords.Add(float64(result.Merged))
	s.metrics.Unmatched.Add(float64(result.Unmatched))

	s.log.WithFields(fields).WithFields(logrus.Fields{
		"header_row":   report.HeaderRow,
		"data_rows":    report.DataRows,
		"skipped_rows": report.SkippedRows,
		"duplicates":   report.DuplicatesMerged,
		"records":      report.Records,
		"warnings":     len(report.Warnings),
		"merged":       result.Merged,
		"unmatched":    result.Unmatched,
	}).Info("spreadsheet accepted")

	s.archiveSource(ctx, kind, input, body)
	return result, nil
}

func (s *billingService) readUpload(input UploadInput) ([]byte, error) {
	maxBytes := s.uploadCfg.MaxBytes()
	if maxBytes > 0 && input.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	r := input.Body
	if maxBytes > 0 {
		r = io.LimitReader(input.Body, maxBytes+1)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if maxBytes > 0 && int64(len(body)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	if len(body) == 0 {
		return nil, domain.ErrEmptyUpload
	}
	return body, nil
}

// archiveSource stores an accepted upload. Failures are logged, not returned:
// the in-memory dataset is already the source of truth.
func (s *billingService) archiveSource(ctx context.Context, kind domain.FileKind, input UploadInput, body []byte) {
	if s.archive == nil {
		return
	}
	ext := filepath.Ext(input.FileName)
	base := export.SanitizeFilename(strings.TrimSuffix(input.FileName, ext))
	if base == "" {
		base = string(kind)
	}
	key := fmt.Sprintf("sessions/%s/%s/%s_%s%s",
		input.SessionID, kind, s.now().UTC().Format("20060102T150405Z"), base, strings.ToLower(ext))

	_, err := s.archive.Archive(ctx, port.ArchiveInput{
		Key:         key,
		Body:        bytes.NewReader(body),
		ContentType: xlsxContentType,
		Size:        int64(len(body)),
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{"session_id": input.SessionID, "key": key}).
			WithError(err).Warn("failed to archive source file")
		return
	}

	s.mu.Lock()
	sess, ok := s.sessions[input.SessionID]
	if ok {
		sess.SourceKeys = append(sess.SourceKeys, key)
	}
	s.mu.Unlock()

	// The session was deleted while the upload was archiving.
	if !ok {
		if err := s.archive.Delete(ctx, key); err != nil {
			s.log.WithFields(logrus.Fields{"session_id": input.SessionID, "key": key}).
				WithError(err).Warn("failed to delete orphaned archived source")
		}
	}
}

// snapshot returns the session's current dataset. Datasets are never
// mutated after they are published, so callers may read it without a lock.
func (s *billingService) snapshot(id uuid.UUID) (*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess.Data, nil
}

func (s *billingService) ListMerged(_ context.Context, id uuid.UUID, search, state string) ([]domain.MergedInvoiceData, error) {
	ds, err := s.snapshot(id)
	if err != nil {
		return nil, err
	}
	return document.Filter(ds.Merged, search, state), nil
}

func (s *billingService) Summary(_ context.Context, id uuid.UUID) (*domain.Summary, error) {
	ds, err := s.snapshot(id)
	if err != nil {
		return nil, err
	}
	if len(ds.Merged) == 0 {
		return nil, domain.ErrNoInvoiceData
	}
	summary := reconcile.Summarize(ds.Merged)
	return &summary, nil
}

func (s *billingService) PlanDocuments(_ context.Context, id uuid.UUID, kinds []domain.DocumentKind, formats []domain.DocumentFormat) ([]domain.DocumentJob, error) {
	ds, err := s.snapshot(id)
	if err != nil {
		return nil, err
	}
	if len(ds.Merged) == 0 {
		return nil, domain.ErrNoInvoiceData
	}
	jobs := document.Plan(ds.Merged, kinds, formats)
	s.metrics.DocumentsPlan.Add(float64(len(jobs)))
	return jobs, nil
}

func (s *billingService) DocumentValues(_ context.Context, id uuid.UUID, sapCode string, subtype domain.DocumentSubtype) (*domain.DocumentValues, error) {
	ds, err := s.snapshot(id)
	if err != nil {
		return nil, err
	}
	rec, err := document.Find(ds.Merged, sapCode)
	if err != nil {
		return nil, err
	}
	values := tax.ForRecord(rec, subtype)
	return &values, nil
}

func view(sess *domain.Session) *domain.SessionView {
	ds := sess.Data
	return &domain.SessionView{
		ID:             sess.ID,
		Customers:      len(ds.Customers),
		Invoices:       len(ds.Invoices),
		Merged:         len(ds.Merged),
		Unmatched:      reconcile.Unmatched(ds.Merged),
		CustomerReport: ds.CustomerReport,
		InvoiceReport:  ds.InvoiceReport,
		CreatedAt:      sess.CreatedAt,
		UpdatedAt:      sess.UpdatedAt,
	}
}
