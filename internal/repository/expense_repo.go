package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ExpenseRepository) ListByJob(ctx context.Context, jobID string) ([]domain.Expense, error) {
	var out []domain.Expense
	tx := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("date ASC").
		Find(&out)
	return out, tx.Error
}

func (r *ExpenseRepository) SumForAccount(ctx context.Context, accountID, dateFrom, dateTo string) (float64, error) {
	var sum *float64
	tx := r.db.WithContext(ctx).Model(&domain.Expense{}).
		Where("account_id = ? AND date >= ? AND date <= ?", accountID, dateFrom, dateTo).
		Select("SUM(amount)").
		Scan(&sum)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, accountID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&domain.Expense{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
