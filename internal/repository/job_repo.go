package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

// ErrConflict is returned when a write violates the booking exclusion rules.
// On PostgreSQL the constraints themselves reject the row and the service
// maps the pgconn error; this sentinel covers the SQLite re-check path.
var ErrConflict = errors.New("booking conflict")

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// syncMinutes mirrors the HH:MM fields into minute-of-day columns used by the
// exclusion constraint. Invalid or missing times clear both.
func syncMinutes(j *domain.Job) {
	j.StartMinute, j.EndMinute = nil, nil
	s, okS := domain.MinuteOfDay(j.StartTime)
	e, okE := domain.MinuteOfDay(j.EndTime)
	if okS && okE {
		j.StartMinute, j.EndMinute = &s, &e
	}
}

func (r *JobRepository) Create(ctx context.Context, j *domain.Job) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	syncMinutes(j)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.db.Dialector.Name() != "postgres" {
			if err := checkExclusionRules(tx, j); err != nil {
				return err
			}
		}
		return tx.Create(j).Error
	})
}

func (r *JobRepository) Update(ctx context.Context, j *domain.Job) error {
	syncMinutes(j)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.db.Dialector.Name() != "postgres" {
			if err := checkExclusionRules(tx, j); err != nil {
				return err
			}
		}
		res := tx.Model(&domain.Job{}).
			Where("id = ? AND account_id = ?", j.ID, j.AccountID).
			Updates(map[string]any{
				"client_id":      j.ClientID,
				"title":          j.Title,
				"date":           j.Date,
				"start_time":     j.StartTime,
				"end_time":       j.EndTime,
				"start_minute":   j.StartMinute,
				"end_minute":     j.EndMinute,
				"assignee_id":    j.AssigneeID,
				"location":       j.Location,
				"package_type":   j.PackageType,
				"price":          j.Price,
				"deposit_amount": j.DepositAmount,
				"notes":          j.Notes,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// checkExclusionRules reproduces the PostgreSQL constraints inside the insert
// transaction for dialects without exclusion constraints. The window between
// check and insert is closed by the surrounding transaction. Time overlap is
// a freelancer rule only; company tenants book parallel shoots and conflict
// solely on the assignee.
func checkExclusionRules(tx *gorm.DB, j *domain.Job) error {
	if j.AccountType == domain.AccountFreelancer && j.StartMinute != nil && j.EndMinute != nil {
		var cnt int64
		q := tx.Model(&domain.Job{}).
			Where("account_id = ? AND date = ? AND status <> ?", j.AccountID, j.Date, domain.JobCancelled).
			Where("start_minute IS NOT NULL AND end_minute IS NOT NULL").
			Where("start_minute < ? AND ? < end_minute", *j.EndMinute, *j.StartMinute).
			Where("id <> ?", j.ID)
		if err := q.Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrConflict
		}
	}

	if j.AssigneeID != nil {
		var cnt int64
		q := tx.Model(&domain.Job{}).
			Where("account_id = ? AND date = ? AND assignee_id = ? AND status <> ?",
				j.AccountID, j.Date, *j.AssigneeID, domain.JobCancelled).
			Where("id <> ?", j.ID)
		if err := q.Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrConflict
		}
	}

	return nil
}

func (r *JobRepository) GetByID(ctx context.Context, accountID, id string) (*domain.Job, error) {
	var j domain.Job
	tx := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Assignee").
		Preload("Assignments.Member").
		Preload("Invoices").
		Preload("Deliverables").
		First(&j, "id = ? AND account_id = ?", id, accountID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &j, nil
}

// GetForPortal loads a job by bare id for the public portal: no account
// scoping, knowledge of the identifier is the access control.
func (r *JobRepository) GetForPortal(ctx context.Context, id string) (*domain.Job, error) {
	var j domain.Job
	tx := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Invoices").
		Preload("Deliverables").
		First(&j, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &j, nil
}

type JobFilter struct {
	Status   domain.JobStatus
	ClientID string
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
}

func (r *JobRepository) List(ctx context.Context, accountID string, f JobFilter) ([]domain.Job, error) {
	q := r.db.WithContext(ctx).
		Preload("Client").
		Where("account_id = ?", accountID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ClientID != "" {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.DateFrom != "" {
		q = q.Where("date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("date <= ?", f.DateTo)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var out []domain.Job
	tx := q.Order("date ASC, start_time ASC").Find(&out)
	return out, tx.Error
}

// ListByDate returns every job of the account on one calendar day with team
// assignments preloaded, the snapshot the conflict detector runs over.
func (r *JobRepository) ListByDate(ctx context.Context, accountID, date string) ([]domain.Job, error) {
	var out []domain.Job
	tx := r.db.WithContext(ctx).
		Preload("Assignments").
		Where("account_id = ? AND date = ?", accountID, date).
		Order("start_time ASC").
		Find(&out)
	return out, tx.Error
}

// ListAllOnDate spans every account; the reminder sweep uses it to find the
// sessions happening on one day.
func (r *JobRepository) ListAllOnDate(ctx context.Context, date string) ([]domain.Job, error) {
	var out []domain.Job
	tx := r.db.WithContext(ctx).
		Preload("Client").
		Where("date = ? AND status NOT IN ?", date, []domain.JobStatus{domain.JobCancelled, domain.JobInquiry}).
		Order("start_time ASC").
		Find(&out)
	return out, tx.Error
}

func (r *JobRepository) UpdateStatus(ctx context.Context, accountID, id string, status domain.JobStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Job{}).
		Where("id = ? AND account_id = ?", id, accountID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, accountID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&domain.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
