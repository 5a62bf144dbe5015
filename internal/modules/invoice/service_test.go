package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type mockInvoiceRepo struct {
	mock.Mock
}

func (m *mockInvoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, accountID, id string) (*domain.Invoice, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) ListByJob(ctx context.Context, jobID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) List(ctx context.Context, accountID string, limit, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *mockInvoiceRepo) NextInvoiceNumber(ctx context.Context, accountID string, year int) (string, error) {
	args := m.Called(ctx, accountID, year)
	return args.String(0), args.Error(1)
}

func (m *mockInvoiceRepo) UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockJobReader struct {
	mock.Mock
}

func (m *mockJobReader) GetByID(ctx context.Context, accountID, id string) (*domain.Job, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func TestService_Create_NumbersAndBalance(t *testing.T) {
	repo := new(mockInvoiceRepo)
	jobs := new(mockJobReader)
	svc := NewService(repo, jobs, "http://localhost:3000/p")

	jobs.On("GetByID", mock.Anything, "acc-1", "job-1").Return(&domain.Job{ID: "job-1"}, nil)
	repo.On("NextInvoiceNumber", mock.Anything, "acc-1", time.Now().Year()).Return("INV-2026-0007", nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	inv, err := svc.Create(context.Background(), "acc-1", CreateInvoiceRequest{
		JobID:       "job-1",
		TotalAmount: 500,
		DueInDays:   14,
	})

	assert.NoError(t, err)
	assert.Equal(t, "INV-2026-0007", inv.InvoiceNumber)
	assert.Equal(t, domain.InvoiceDraft, inv.Status)
	assert.Equal(t, 500.0, inv.Balance)
	assert.Equal(t, 0.0, inv.PaidAmount)
	assert.NotNil(t, inv.DueDate)
}

func TestService_Create_RetriesOnNumberCollision(t *testing.T) {
	repo := new(mockInvoiceRepo)
	jobs := new(mockJobReader)
	svc := NewService(repo, jobs, "")

	jobs.On("GetByID", mock.Anything, "acc-1", "job-1").Return(&domain.Job{ID: "job-1"}, nil)
	repo.On("NextInvoiceNumber", mock.Anything, "acc-1", time.Now().Year()).
		Return("INV-2026-0007", nil).Once()
	repo.On("NextInvoiceNumber", mock.Anything, "acc-1", time.Now().Year()).
		Return("INV-2026-0008", nil).Once()

	// a concurrent create won the first number
	repo.On("Create", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return inv.InvoiceNumber == "INV-2026-0007"
	})).Return(gorm.ErrDuplicatedKey)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(inv *domain.Invoice) bool {
		return inv.InvoiceNumber == "INV-2026-0008"
	})).Return(nil)

	inv, err := svc.Create(context.Background(), "acc-1", CreateInvoiceRequest{
		JobID:       "job-1",
		TotalAmount: 500,
	})

	assert.NoError(t, err)
	assert.Equal(t, "INV-2026-0008", inv.InvoiceNumber)
	repo.AssertExpectations(t)
}

func TestService_Create_GivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := new(mockInvoiceRepo)
	jobs := new(mockJobReader)
	svc := NewService(repo, jobs, "")

	jobs.On("GetByID", mock.Anything, "acc-1", "job-1").Return(&domain.Job{ID: "job-1"}, nil)
	repo.On("NextInvoiceNumber", mock.Anything, "acc-1", time.Now().Year()).Return("INV-2026-0007", nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Create(context.Background(), "acc-1", CreateInvoiceRequest{
		JobID:       "job-1",
		TotalAmount: 500,
	})

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	repo.AssertNumberOfCalls(t, "Create", numberRetries)
}

func TestService_Create_JobMissing(t *testing.T) {
	jobs := new(mockJobReader)
	svc := NewService(new(mockInvoiceRepo), jobs, "")

	jobs.On("GetByID", mock.Anything, "acc-1", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), "acc-1", CreateInvoiceRequest{
		JobID:       "missing",
		TotalAmount: 100,
	})

	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestService_UpdateStatus_PaidIsDerived(t *testing.T) {
	svc := NewService(new(mockInvoiceRepo), new(mockJobReader), "")

	_, err := svc.UpdateStatus(context.Background(), "acc-1", "inv-1", UpdateStatusRequest{
		Status: string(domain.InvoicePaid),
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdateStatus_DraftToSent(t *testing.T) {
	repo := new(mockInvoiceRepo)
	svc := NewService(repo, new(mockJobReader), "")

	repo.On("GetByID", mock.Anything, "acc-1", "inv-1").Return(&domain.Invoice{
		ID:     "inv-1",
		Status: domain.InvoiceDraft,
	}, nil)
	repo.On("UpdateStatus", mock.Anything, "inv-1", domain.InvoiceSent).Return(nil)

	inv, err := svc.UpdateStatus(context.Background(), "acc-1", "inv-1", UpdateStatusRequest{
		Status: string(domain.InvoiceSent),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceSent, inv.Status)
}

func TestRenderInvoicePDF_ProducesDocument(t *testing.T) {
	due := time.Now().AddDate(0, 0, 14)
	inv := &domain.Invoice{
		InvoiceNumber: "INV-2026-0001",
		TotalAmount:   500,
		Balance:       500,
		Status:        domain.InvoiceSent,
		DueDate:       &due,
	}
	job := &domain.Job{
		ID:     "job-1",
		Title:  "Wedding shoot",
		Date:   "2026-09-12",
		Client: &domain.Client{Name: "Anna"},
	}

	pdf, err := renderInvoicePDF(inv, job, "http://localhost:3000/p")

	assert.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
