package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type DeliverableRepository struct {
	db *gorm.DB
}

func NewDeliverableRepository(db *gorm.DB) *DeliverableRepository {
	return &DeliverableRepository{db: db}
}

func (r *DeliverableRepository) Create(ctx context.Context, d *domain.Deliverable) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DeliverableRepository) GetByID(ctx context.Context, accountID, id string) (*domain.Deliverable, error) {
	var d domain.Deliverable
	tx := r.db.WithContext(ctx).First(&d, "id = ? AND account_id = ?", id, accountID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &d, nil
}

func (r *DeliverableRepository) ListByJob(ctx context.Context, jobID string) ([]domain.Deliverable, error) {
	var out []domain.Deliverable
	tx := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&out)
	return out, tx.Error
}

func (r *DeliverableRepository) SetLocked(ctx context.Context, id string, locked bool) error {
	res := r.db.WithContext(ctx).Model(&domain.Deliverable{}).
		Where("id = ?", id).
		Update("locked", locked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UnlockAllForJob clears the locked flag on every deliverable of a job and
// returns the ones that actually transitioned, so callers can notify once
// per real unlock and skip the already-open ones.
func (r *DeliverableRepository) UnlockAllForJob(ctx context.Context, jobID string) ([]domain.Deliverable, error) {
	var locked []domain.Deliverable
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ? AND locked = ?", jobID, true).Find(&locked).Error; err != nil {
			return err
		}
		if len(locked) == 0 {
			return nil
		}
		return tx.Model(&domain.Deliverable{}).
			Where("job_id = ? AND locked = ?", jobID, true).
			Update("locked", false).Error
	})
	if err != nil {
		return nil, err
	}
	for i := range locked {
		locked[i].Locked = false
	}
	return locked, nil
}

func (r *DeliverableRepository) Update(ctx context.Context, d *domain.Deliverable) error {
	res := r.db.WithContext(ctx).Model(&domain.Deliverable{}).
		Where("id = ? AND account_id = ?", d.ID, d.AccountID).
		Updates(map[string]any{
			"title":      d.Title,
			"url":        d.URL,
			"password":   d.Password,
			"expires_at": d.ExpiresAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DeliverableRepository) Delete(ctx context.Context, accountID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&domain.Deliverable{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
