package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) GetByID(ctx context.Context, accountID, id string) (*domain.Client, error) {
	var c domain.Client
	tx := r.db.WithContext(ctx).
		Preload("Jobs", func(db *gorm.DB) *gorm.DB { return db.Order("date DESC") }).
		First(&c, "id = ? AND account_id = ?", id, accountID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *ClientRepository) List(ctx context.Context, accountID, search string, limit, offset int) ([]domain.Client, error) {
	q := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR company LIKE ?", like, like, like)
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var out []domain.Client
	tx := q.Order("name ASC").Find(&out)
	return out, tx.Error
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).
		Model(&domain.Client{}).
		Where("id = ? AND account_id = ?", c.ID, c.AccountID).
		Updates(map[string]any{
			"name":    c.Name,
			"email":   c.Email,
			"phone":   c.Phone,
			"company": c.Company,
			"address": c.Address,
			"notes":   c.Notes,
		}).Error
}

func (r *ClientRepository) Delete(ctx context.Context, accountID, id string) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&domain.Client{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
