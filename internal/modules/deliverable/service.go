package deliverable

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type DeliverableRepository interface {
	Create(ctx context.Context, d *domain.Deliverable) error
	GetByID(ctx context.Context, accountID, id string) (*domain.Deliverable, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.Deliverable, error)
	SetLocked(ctx context.Context, id string, locked bool) error
	Update(ctx context.Context, d *domain.Deliverable) error
	Delete(ctx context.Context, accountID, id string) error
}

type JobReader interface {
	GetByID(ctx context.Context, accountID, id string) (*domain.Job, error)
	GetForPortal(ctx context.Context, id string) (*domain.Job, error)
}

type BalanceReader interface {
	SumBalanceForJob(ctx context.Context, jobID string) (float64, error)
}

type notifier interface {
	DeliverableReady(ctx context.Context, accountID, clientEmail, clientName, portalURL string)
}

type Service struct {
	deliverables  DeliverableRepository
	jobs          JobReader
	balances      BalanceReader
	notify        notifier
	portalBaseURL string
}

func NewService(deliverables DeliverableRepository, jobs JobReader, balances BalanceReader, notify notifier, portalBaseURL string) *Service {
	return &Service{
		deliverables:  deliverables,
		jobs:          jobs,
		balances:      balances,
		notify:        notify,
		portalBaseURL: portalBaseURL,
	}
}

// Create registers a gallery link. The locked flag is seeded from the job's
// outstanding balance: unpaid work starts locked, settled work starts open.
func (s *Service) Create(ctx context.Context, accountID string, req CreateDeliverableRequest) (*domain.Deliverable, error) {
	if _, err := s.jobs.GetByID(ctx, accountID, req.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	outstanding, err := s.balances.SumBalanceForJob(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	d := &domain.Deliverable{
		AccountID: accountID,
		JobID:     req.JobID,
		Title:     req.Title,
		URL:       req.URL,
		Password:  req.Password,
		ExpiresAt: req.ExpiresAt,
		Locked:    outstanding > 0,
	}
	if err := s.deliverables.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) ListByJob(ctx context.Context, accountID, jobID string) ([]domain.Deliverable, error) {
	if _, err := s.jobs.GetByID(ctx, accountID, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return s.deliverables.ListByJob(ctx, jobID)
}

func (s *Service) Update(ctx context.Context, accountID, id string, req UpdateDeliverableRequest) (*domain.Deliverable, error) {
	d, err := s.get(ctx, accountID, id)
	if err != nil {
		return nil, err
	}

	d.Title = req.Title
	d.URL = req.URL
	d.Password = req.Password
	d.ExpiresAt = req.ExpiresAt
	if err := s.deliverables.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ToggleLock flips the lock by hand. A manual unlock notifies the client the
// same way a payment-driven unlock does.
func (s *Service) ToggleLock(ctx context.Context, accountID, id string, req ToggleLockRequest) (*domain.Deliverable, error) {
	d, err := s.get(ctx, accountID, id)
	if err != nil {
		return nil, err
	}
	if d.Locked == req.Locked {
		return d, nil
	}

	if err := s.deliverables.SetLocked(ctx, d.ID, req.Locked); err != nil {
		return nil, err
	}
	wasLocked := d.Locked
	d.Locked = req.Locked

	if wasLocked && !req.Locked && s.notify != nil {
		var clientEmail, clientName string
		if job, err := s.jobs.GetForPortal(ctx, d.JobID); err == nil && job.Client != nil {
			clientEmail = job.Client.Email
			clientName = job.Client.Name
		}
		portalURL := fmt.Sprintf("%s/%s", s.portalBaseURL, d.JobID)
		s.notify.DeliverableReady(ctx, accountID, clientEmail, clientName, portalURL)
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, accountID, id string) error {
	if err := s.deliverables.Delete(ctx, accountID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) get(ctx context.Context, accountID, id string) (*domain.Deliverable, error) {
	d, err := s.deliverables.GetByID(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}
