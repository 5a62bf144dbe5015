package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByJob(ctx context.Context, jobID string) ([]domain.Payment, error) {
	var out []domain.Payment
	tx := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("date ASC, created_at ASC").
		Find(&out)
	return out, tx.Error
}

// ExistsTransaction checks whether a provider transaction id has already been
// recorded; webhook retries must be idempotent.
func (r *PaymentRepository) ExistsTransaction(ctx context.Context, transactionID string) (bool, error) {
	if transactionID == "" {
		return false, nil
	}
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("transaction_id = ?", transactionID).
		Count(&cnt)
	return cnt > 0, tx.Error
}

func (r *PaymentRepository) SumCompletedForAccount(ctx context.Context, accountID, dateFrom, dateTo string) (float64, error) {
	var sum *float64
	tx := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("account_id = ? AND status = ? AND type <> ?", accountID, domain.PaymentCompleted, domain.PaymentRefund).
		Where("date >= ? AND date <= ?", dateFrom, dateTo).
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
