package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvoiceRepository) GetByID(ctx context.Context, accountID, id string) (*domain.Invoice, error) {
	var inv domain.Invoice
	tx := r.db.WithContext(ctx).
		Preload("Payments").
		First(&inv, "id = ? AND account_id = ?", id, accountID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &inv, nil
}

func (r *InvoiceRepository) GetBare(ctx context.Context, id string) (*domain.Invoice, error) {
	var inv domain.Invoice
	tx := r.db.WithContext(ctx).First(&inv, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &inv, nil
}

func (r *InvoiceRepository) ListByJob(ctx context.Context, jobID string) ([]domain.Invoice, error) {
	var out []domain.Invoice
	tx := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&out)
	return out, tx.Error
}

func (r *InvoiceRepository) List(ctx context.Context, accountID string, limit, offset int) ([]domain.Invoice, error) {
	q := r.db.WithContext(ctx).Where("account_id = ?", accountID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var out []domain.Invoice
	tx := q.Find(&out)
	return out, tx.Error
}

// NextInvoiceNumber issues INV-YYYY-NNNN, sequential per account and year.
// It advances past the highest number in use rather than counting rows, so a
// deleted invoice never frees its number for reuse. The zero-padded suffix
// makes the lexical MAX the numeric one. Concurrent issuers can still race to
// the same candidate; the unique index on (account_id, invoice_number)
// rejects the loser and the service retries.
func (r *InvoiceRepository) NextInvoiceNumber(ctx context.Context, accountID string, year int) (string, error) {
	prefix := fmt.Sprintf("INV-%d-", year)
	var top *string
	tx := r.db.WithContext(ctx).Model(&domain.Invoice{}).
		Where("account_id = ? AND invoice_number LIKE ?", accountID, prefix+"%").
		Select("MAX(invoice_number)").
		Scan(&top)
	if tx.Error != nil {
		return "", tx.Error
	}
	seq := 0
	if top != nil {
		if n, err := strconv.Atoi(strings.TrimPrefix(*top, prefix)); err == nil {
			seq = n
		}
	}
	return fmt.Sprintf("%s%04d", prefix, seq+1), nil
}

// ApplyPayment moves an invoice's paid amount and derived status. Balance is
// total minus paid; nothing else in the system writes these columns.
func (r *InvoiceRepository) ApplyPayment(ctx context.Context, id string, amount float64) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&inv, "id = ?", id).Error; err != nil {
			return err
		}

		inv.PaidAmount += amount
		inv.Balance = inv.TotalAmount - inv.PaidAmount
		switch {
		case inv.Balance <= 0:
			inv.Status = domain.InvoicePaid
		case inv.PaidAmount > 0:
			inv.Status = domain.InvoicePartiallyPaid
		default:
			// a full refund reopens the invoice
			inv.Status = domain.InvoiceSent
		}
		inv.UpdatedAt = time.Now()

		return tx.Model(&domain.Invoice{}).Where("id = ?", id).
			Updates(map[string]any{
				"paid_amount": inv.PaidAmount,
				"balance":     inv.Balance,
				"status":      inv.Status,
				"updated_at":  inv.UpdatedAt,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id string, status domain.InvoiceStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Invoice{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// SumBalanceForJob sums outstanding balances across every invoice of a job;
// it seeds the deliverable locked flag at creation time.
func (r *InvoiceRepository) SumBalanceForJob(ctx context.Context, jobID string) (float64, error) {
	var sum *float64
	tx := r.db.WithContext(ctx).Model(&domain.Invoice{}).
		Where("job_id = ?", jobID).
		Select("SUM(balance)").
		Scan(&sum)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

// ListOverdue returns unpaid invoices whose due date has passed, for the
// nightly sweep that relabels them Overdue.
func (r *InvoiceRepository) ListOverdue(ctx context.Context, now time.Time) ([]domain.Invoice, error) {
	var out []domain.Invoice
	tx := r.db.WithContext(ctx).
		Where("balance > 0 AND due_date IS NOT NULL AND due_date < ?", now).
		Where("status NOT IN ?", []domain.InvoiceStatus{domain.InvoicePaid, domain.InvoiceOverdue}).
		Find(&out)
	return out, tx.Error
}
