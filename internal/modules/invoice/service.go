package invoice

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, accountID, id string) (*domain.Invoice, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.Invoice, error)
	List(ctx context.Context, accountID string, limit, offset int) ([]domain.Invoice, error)
	NextInvoiceNumber(ctx context.Context, accountID string, year int) (string, error)
	UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) error
}

type JobReader interface {
	GetByID(ctx context.Context, accountID, id string) (*domain.Job, error)
}

type Service struct {
	invoices  InvoiceRepository
	jobs      JobReader
	portalURL string
}

func NewService(invoices InvoiceRepository, jobs JobReader, portalURL string) *Service {
	return &Service{invoices: invoices, jobs: jobs, portalURL: portalURL}
}

// Create issues a numbered invoice against a job. Numbers run INV-YYYY-NNNN
// per account and year. A fresh invoice starts as Draft with the full amount
// outstanding. Two concurrent creates can draw the same number; the loser hits
// the unique index and we draw again.
func (s *Service) Create(ctx context.Context, accountID string, req CreateInvoiceRequest) (*domain.Invoice, error) {
	if _, err := s.jobs.GetByID(ctx, accountID, req.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	now := time.Now()

	var lastErr error
	for attempt := 0; attempt < numberRetries; attempt++ {
		number, err := s.invoices.NextInvoiceNumber(ctx, accountID, now.Year())
		if err != nil {
			return nil, err
		}

		inv := &domain.Invoice{
			AccountID:     accountID,
			JobID:         req.JobID,
			InvoiceNumber: number,
			TotalAmount:   req.TotalAmount,
			PaidAmount:    0,
			Balance:       req.TotalAmount,
			Status:        domain.InvoiceDraft,
			Notes:         req.Notes,
		}
		if req.DueInDays > 0 {
			due := now.AddDate(0, 0, req.DueInDays)
			inv.DueDate = &due
		}

		if err := s.invoices.Create(ctx, inv); err != nil {
			if isDuplicateNumber(err) {
				lastErr = err
				continue
			}
			return nil, err
		}
		return inv, nil
	}
	return nil, lastErr
}

const numberRetries = 3

// isDuplicateNumber recognizes a collision on the per-account invoice number
// index, in both the gorm-translated and raw pgconn forms.
func isDuplicateNumber(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == "23505" && pgErr.ConstraintName == "idx_invoice_account_number"
}

func (s *Service) Get(ctx context.Context, accountID, id string) (*domain.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (s *Service) List(ctx context.Context, accountID string, q ListInvoicesQuery) ([]domain.Invoice, error) {
	limit := q.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.invoices.List(ctx, accountID, limit, q.Offset)
}

func (s *Service) ListByJob(ctx context.Context, accountID, jobID string) ([]domain.Invoice, error) {
	if _, err := s.jobs.GetByID(ctx, accountID, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return s.invoices.ListByJob(ctx, jobID)
}

// UpdateStatus moves an invoice between manual statuses, Draft to Sent being
// the common case. Paid and Partially Paid are derived from payments and
// cannot be set by hand.
func (s *Service) UpdateStatus(ctx context.Context, accountID, id string, req UpdateStatusRequest) (*domain.Invoice, error) {
	status := domain.InvoiceStatus(req.Status)
	switch status {
	case domain.InvoiceDraft, domain.InvoiceSent, domain.InvoiceOverdue:
	default:
		return nil, ErrInvalidStatus
	}

	inv, err := s.Get(ctx, accountID, id)
	if err != nil {
		return nil, err
	}

	if err := s.invoices.UpdateStatus(ctx, inv.ID, status); err != nil {
		return nil, err
	}
	inv.Status = status
	return inv, nil
}

// RenderPDF produces the printable invoice with a QR code pointing at the
// job's client portal page.
func (s *Service) RenderPDF(ctx context.Context, accountID, id string) ([]byte, *domain.Invoice, error) {
	inv, err := s.Get(ctx, accountID, id)
	if err != nil {
		return nil, nil, err
	}

	job, err := s.jobs.GetByID(ctx, accountID, inv.JobID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	pdf, err := renderInvoicePDF(inv, job, s.portalURL)
	if err != nil {
		return nil, nil, err
	}
	return pdf, inv, nil
}
