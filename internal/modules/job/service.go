package job

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
	"shootsuite/internal/modules/schedule"
	"shootsuite/internal/notification"
	"shootsuite/internal/repository"
)

type Service struct {
	jobs     JobRepository
	accounts AccountReader
	events   eventPublisher
}

func NewService(jobs JobRepository, accounts AccountReader, events eventPublisher) *Service {
	return &Service{jobs: jobs, accounts: accounts, events: events}
}

// Create persists a booking. Conflicting bookings are rejected by the
// database exclusion rules and surface as ErrBookingConflict; the advisory
// CheckConflict endpoint exists so the UI can warn before submitting. The
// account type is stamped onto the row because the overlap rule only applies
// to freelancer tenants.
func (s *Service) Create(ctx context.Context, accountID string, req CreateJobRequest) (*domain.Job, error) {
	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	j := &domain.Job{
		AccountID:     accountID,
		AccountType:   account.Type,
		ClientID:      req.ClientID,
		Title:         req.Title,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		AssigneeID:    req.AssigneeID,
		Location:      req.Location,
		PackageType:   req.PackageType,
		Status:        domain.JobInquiry,
		Price:         req.Price,
		DepositAmount: req.DepositAmount,
		Notes:         req.Notes,
	}

	if err := s.jobs.Create(ctx, j); err != nil {
		return nil, mapWriteError(err)
	}

	if s.events != nil {
		s.events.JobEvent(accountID, notification.EventJobCreated, map[string]any{
			"job_id": j.ID,
			"date":   j.Date,
		})
	}
	return j, nil
}

func (s *Service) Update(ctx context.Context, accountID, id string, req UpdateJobRequest) (*domain.Job, error) {
	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, accountID, id)
	if err != nil {
		return nil, err
	}

	existing.ClientID = req.ClientID
	existing.Title = req.Title
	existing.Date = req.Date
	existing.StartTime = req.StartTime
	existing.EndTime = req.EndTime
	existing.AssigneeID = req.AssigneeID
	existing.Location = req.Location
	existing.PackageType = req.PackageType
	existing.Price = req.Price
	existing.DepositAmount = req.DepositAmount
	existing.Notes = req.Notes

	if err := s.jobs.Update(ctx, existing); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, mapWriteError(err)
	}
	return existing, nil
}

func (s *Service) UpdateStatus(ctx context.Context, accountID, id string, req UpdateStatusRequest) (*domain.Job, error) {
	status := domain.JobStatus(req.Status)
	if !domain.ValidJobStatus(status) {
		return nil, ErrInvalidStatus
	}

	existing, err := s.Get(ctx, accountID, id)
	if err != nil {
		return nil, err
	}
	if existing.Status.Terminal() && existing.Status != status {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.jobs.UpdateStatus(ctx, accountID, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing.Status = status
	if s.events != nil {
		s.events.JobEvent(accountID, notification.EventJobStatusChanged, map[string]any{
			"job_id": id,
			"status": string(status),
		})
	}
	return existing, nil
}

func (s *Service) Get(ctx context.Context, accountID, id string) (*domain.Job, error) {
	j, err := s.jobs.GetByID(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return j, nil
}

func (s *Service) List(ctx context.Context, accountID string, q ListJobsQuery) ([]domain.Job, error) {
	limit := q.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.jobs.List(ctx, accountID, repository.JobFilter{
		Status:   domain.JobStatus(q.Status),
		ClientID: q.ClientID,
		DateFrom: q.DateFrom,
		DateTo:   q.DateTo,
		Limit:    limit,
		Offset:   q.Offset,
	})
}

func (s *Service) Delete(ctx context.Context, accountID, id string) error {
	if err := s.jobs.Delete(ctx, accountID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// CheckConflict runs the advisory detector over the candidate's day. The
// policy branch depends on the account type: freelancers compare time
// windows, companies compare team assignments.
func (s *Service) CheckConflict(ctx context.Context, accountID string, req CheckConflictRequest) (*schedule.Result, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	existing, err := s.jobs.ListByDate(ctx, accountID, req.Date)
	if err != nil {
		return nil, err
	}

	res := schedule.CheckBooking(schedule.Candidate{
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		AssigneeID:   req.AssigneeID,
		ExcludeJobID: req.ExcludeJobID,
	}, existing, account.Type)
	return &res, nil
}

// Calendar lists jobs in a date range along with the busy-day highlights.
func (s *Service) Calendar(ctx context.Context, accountID string, q CalendarQuery) (*CalendarResponse, error) {
	jobs, err := s.jobs.List(ctx, accountID, repository.JobFilter{
		DateFrom: q.From,
		DateTo:   q.To,
	})
	if err != nil {
		return nil, err
	}

	resp := &CalendarResponse{
		Jobs:       make([]CalendarJob, 0, len(jobs)),
		BusyDates:  schedule.DayHighlights(jobs),
		TotalCount: len(jobs),
	}
	for _, j := range jobs {
		cj := CalendarJob{
			ID:        j.ID,
			Title:     j.Title,
			Date:      j.Date,
			StartTime: j.StartTime,
			EndTime:   j.EndTime,
			Status:    string(j.Status),
		}
		if j.Client != nil {
			cj.ClientName = j.Client.Name
		}
		resp.Jobs = append(resp.Jobs, cj)
	}
	return resp, nil
}

func validateTimeRange(start, end string) error {
	s, okS := domain.MinuteOfDay(start)
	e, okE := domain.MinuteOfDay(end)
	if okS && okE && s >= e {
		return ErrInvalidTimeRange
	}
	return nil
}

// mapWriteError translates constraint violations into the typed conflict
// error. 23P01 is the overlap exclusion constraint, 23505 the duplicate
// assignee index; SQLite writes come back as repository.ErrConflict.
func mapWriteError(err error) error {
	if errors.Is(err, repository.ErrConflict) {
		return ErrBookingConflict
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23P01" && pgErr.ConstraintName == "excl_job_time_overlap":
			return ErrBookingConflict
		case pgErr.Code == "23505" && pgErr.ConstraintName == "idx_job_day_assignee":
			return ErrBookingConflict
		}
	}
	return err
}
