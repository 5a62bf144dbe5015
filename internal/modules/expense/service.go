package expense

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type ExpenseRepository interface {
	Create(ctx context.Context, e *domain.Expense) error
	ListByJob(ctx context.Context, jobID string) ([]domain.Expense, error)
	Delete(ctx context.Context, accountID, id string) error
}

type JobReader interface {
	GetByID(ctx context.Context, accountID, id string) (*domain.Job, error)
}

var (
	ErrNotFound    = errors.New("expense not found")
	ErrJobNotFound = errors.New("job not found")
)

type CreateExpenseRequest struct {
	JobID      string  `json:"job_id" binding:"required"`
	Category   string  `json:"category" binding:"required"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Date       string  `json:"date" binding:"required,datetime=2006-01-02"`
	Notes      string  `json:"notes"`
	ReceiptURL string  `json:"receipt_url" binding:"omitempty,url"`
}

type Service struct {
	expenses ExpenseRepository
	jobs     JobReader
}

func NewService(expenses ExpenseRepository, jobs JobReader) *Service {
	return &Service{expenses: expenses, jobs: jobs}
}

func (s *Service) Create(ctx context.Context, accountID string, req CreateExpenseRequest) (*domain.Expense, error) {
	if _, err := s.jobs.GetByID(ctx, accountID, req.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	e := &domain.Expense{
		AccountID:  accountID,
		JobID:      req.JobID,
		Category:   req.Category,
		Amount:     req.Amount,
		Date:       req.Date,
		Notes:      req.Notes,
		ReceiptURL: req.ReceiptURL,
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) ListByJob(ctx context.Context, accountID, jobID string) ([]domain.Expense, error) {
	if _, err := s.jobs.GetByID(ctx, accountID, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return s.expenses.ListByJob(ctx, jobID)
}

func (s *Service) Delete(ctx context.Context, accountID, id string) error {
	if err := s.expenses.Delete(ctx, accountID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
