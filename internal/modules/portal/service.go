package portal

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"gorm.io/gorm"

	"shootsuite/internal/domain"
	"shootsuite/internal/modules/deliverable"
)

type JobReader interface {
	GetForPortal(ctx context.Context, id string) (*domain.Job, error)
}

type portalTokens interface {
	GeneratePortalToken(jobID string, ttl time.Duration) (string, error)
	ValidatePortalToken(tokenStr string) (string, error)
}

// Service renders the public client portal. There is no account session
// here: the job id is the capability, passwords and unlock tokens narrow it
// further.
type Service struct {
	jobs      JobReader
	tokens    portalTokens
	unlockTTL time.Duration
	now       func() time.Time
}

func NewService(jobs JobReader, tokens portalTokens, unlockTTL time.Duration) *Service {
	return &Service{
		jobs:      jobs,
		tokens:    tokens,
		unlockTTL: unlockTTL,
		now:       time.Now,
	}
}

// View assembles the portal page. unlockToken may be empty; a valid token
// scoped to this job clears password requirements for the whole page.
func (s *Service) View(ctx context.Context, jobID, unlockToken string) (*View, error) {
	job, err := s.jobs.GetForPortal(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	unlocked := false
	if unlockToken != "" {
		if tokenJob, err := s.tokens.ValidatePortalToken(unlockToken); err == nil && tokenJob == job.ID {
			unlocked = true
		}
	}

	view := &View{
		Job: JobSummary{
			ID:       job.ID,
			Title:    job.Title,
			Date:     job.Date,
			Status:   string(job.Status),
			Location: job.Location,
		},
	}
	if job.Client != nil {
		view.Job.ClientName = job.Client.Name
	}

	for _, inv := range job.Invoices {
		view.Invoices.Count++
		view.Invoices.TotalAmount += inv.TotalAmount
		view.Invoices.PaidAmount += inv.PaidAmount
		view.Invoices.Balance += inv.Balance
	}
	isPaid := deliverable.IsPaid(job.Invoices)
	view.Invoices.IsPaid = isPaid

	now := s.now()
	view.Deliverables = make([]DeliverableView, 0, len(job.Deliverables))
	for i := range job.Deliverables {
		d := &job.Deliverables[i]
		dec := deliverable.Evaluate(d, isPaid, unlocked, now)
		dv := DeliverableView{
			ID:       d.ID,
			Title:    d.Title,
			Decision: dec,
		}
		if dec.Allowed {
			dv.URL = d.URL
		}
		view.Deliverables = append(view.Deliverables, dv)
	}

	return view, nil
}

// Unlock exchanges a correct deliverable password for a short-lived token.
// The comparison is exact and case sensitive.
func (s *Service) Unlock(ctx context.Context, jobID string, req UnlockRequest) (*UnlockResponse, error) {
	job, err := s.jobs.GetForPortal(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	matched := false
	for i := range job.Deliverables {
		pw := job.Deliverables[i].Password
		if pw == "" {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(pw), []byte(req.Password)) == 1 {
			matched = true
		}
	}
	if !matched {
		return nil, ErrWrongPassword
	}

	token, err := s.tokens.GeneratePortalToken(job.ID, s.unlockTTL)
	if err != nil {
		return nil, err
	}
	return &UnlockResponse{
		Token:     token,
		ExpiresIn: int64(s.unlockTTL.Seconds()),
	}, nil
}
