package job

import (
	"context"

	"shootsuite/internal/domain"
	"shootsuite/internal/notification"
	"shootsuite/internal/repository"
)

type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) error
	Update(ctx context.Context, j *domain.Job) error
	GetByID(ctx context.Context, accountID, id string) (*domain.Job, error)
	List(ctx context.Context, accountID string, f repository.JobFilter) ([]domain.Job, error)
	ListByDate(ctx context.Context, accountID, date string) ([]domain.Job, error)
	UpdateStatus(ctx context.Context, accountID, id string, status domain.JobStatus) error
	Delete(ctx context.Context, accountID, id string) error
}

type AccountReader interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

type eventPublisher interface {
	JobEvent(accountID string, t notification.EventType, data map[string]any)
}
