package task

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	ListByJob(ctx context.Context, jobID string) ([]domain.Task, error)
	SetDone(ctx context.Context, accountID, id string, done bool) error
	Delete(ctx context.Context, accountID, id string) error
}

type JobReader interface {
	GetByID(ctx context.Context, accountID, id string) (*domain.Job, error)
}

var (
	ErrNotFound    = errors.New("task not found")
	ErrJobNotFound = errors.New("job not found")
)

type CreateTaskRequest struct {
	JobID   string     `json:"job_id" binding:"required"`
	Text    string     `json:"text" binding:"required"`
	DueDate *time.Time `json:"due_date"`
}

type SetDoneRequest struct {
	Done bool `json:"done"`
}

type Service struct {
	tasks TaskRepository
	jobs  JobReader
}

func NewService(tasks TaskRepository, jobs JobReader) *Service {
	return &Service{tasks: tasks, jobs: jobs}
}

func (s *Service) Create(ctx context.Context, accountID string, req CreateTaskRequest) (*domain.Task, error) {
	if _, err := s.jobs.GetByID(ctx, accountID, req.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	t := &domain.Task{
		AccountID: accountID,
		JobID:     req.JobID,
		Text:      req.Text,
		DueDate:   req.DueDate,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListByJob(ctx context.Context, accountID, jobID string) ([]domain.Task, error) {
	if _, err := s.jobs.GetByID(ctx, accountID, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return s.tasks.ListByJob(ctx, jobID)
}

func (s *Service) SetDone(ctx context.Context, accountID, id string, done bool) error {
	if err := s.tasks.SetDone(ctx, accountID, id, done); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, accountID, id string) error {
	if err := s.tasks.Delete(ctx, accountID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
