package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billrecon/internal/domain"
	"billrecon/internal/service"
)

// MockBillingService is a mock implementation of service.BillingService.
type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) CreateSession(ctx context.Context) (*domain.SessionView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionView), args.Error(1)
}

func (m *MockBillingService) GetSession(ctx context.Context, id uuid.UUID) (*domain.SessionView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionView), args.Error(1)
}

func (m *MockBillingService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBillingService) ResetSession(ctx context.Context, id uuid.UUID) (*domain.SessionView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionView), args.Error(1)
}

func (m *MockBillingService) UploadCustomerMaster(ctx context.Context, input service.UploadInput) (*domain.SessionView, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionView), args.Error(1)
}

func (m *MockBillingService) UploadInvoiceData(ctx context.Context, input service.UploadInput) (*domain.SessionView, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionView), args.Error(1)
}

func (m *MockBillingService) ListMerged(ctx context.Context, id uuid.UUID, search, state string) ([]domain.MergedInvoiceData, error) {
	args := m.Called(ctx, id, search, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MergedInvoiceData), args.Error(1)
}

func (m *MockBillingService) Summary(ctx context.Context, id uuid.UUID) (*domain.Summary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

func (m *MockBillingService) PlanDocuments(ctx context.Context, id uuid.UUID, kinds []domain.DocumentKind, formats []domain.DocumentFormat) ([]domain.DocumentJob, error) {
	args := m.Called(ctx, id, kinds, formats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentJob), args.Error(1)
}

func (m *MockBillingService) DocumentValues(ctx context.Context, id uuid.UUID, sapCode string, subtype domain.DocumentSubtype) (*domain.DocumentValues, error) {
	args := m.Called(ctx, id, sapCode, subtype)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentValues), args.Error(1)
}
