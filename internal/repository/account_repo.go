package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	var a domain.Account
	tx := r.db.WithContext(ctx).First(&a, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var a domain.Account
	tx := r.db.WithContext(ctx).First(&a, "email = ?", strings.ToLower(strings.TrimSpace(email)))
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Account{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&cnt)
	return cnt > 0, tx.Error
}

func (r *AccountRepository) ListByApproval(ctx context.Context, status domain.ApprovalStatus) ([]domain.Account, error) {
	var out []domain.Account
	tx := r.db.WithContext(ctx).
		Where("approval_status = ?", status).
		Order("created_at ASC").
		Find(&out)
	return out, tx.Error
}

func (r *AccountRepository) UpdateApproval(ctx context.Context, id string, status domain.ApprovalStatus, reason string) error {
	return r.db.WithContext(ctx).Model(&domain.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"approval_status": status,
			"rejected_reason": reason,
		}).Error
}
