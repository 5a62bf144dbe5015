package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) CreateMember(ctx context.Context, m *domain.TeamMember) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *TeamRepository) GetMember(ctx context.Context, accountID, id string) (*domain.TeamMember, error) {
	var m domain.TeamMember
	tx := r.db.WithContext(ctx).First(&m, "id = ? AND account_id = ?", id, accountID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &m, nil
}

func (r *TeamRepository) ListMembers(ctx context.Context, accountID string) ([]domain.TeamMember, error) {
	var out []domain.TeamMember
	tx := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("name ASC").
		Find(&out)
	return out, tx.Error
}

func (r *TeamRepository) UpdateMember(ctx context.Context, m *domain.TeamMember) error {
	res := r.db.WithContext(ctx).Model(&domain.TeamMember{}).
		Where("id = ? AND account_id = ?", m.ID, m.AccountID).
		Updates(map[string]any{
			"name":       m.Name,
			"email":      m.Email,
			"role_title": m.RoleTitle,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TeamRepository) DeleteMember(ctx context.Context, accountID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&domain.TeamMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TeamRepository) Assign(ctx context.Context, a *domain.TeamAssignment) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *TeamRepository) Unassign(ctx context.Context, jobID, memberID string) error {
	res := r.db.WithContext(ctx).
		Where("job_id = ? AND member_id = ?", jobID, memberID).
		Delete(&domain.TeamAssignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TeamRepository) ListAssignments(ctx context.Context, jobID string) ([]domain.TeamAssignment, error) {
	var out []domain.TeamAssignment
	tx := r.db.WithContext(ctx).
		Preload("Member").
		Where("job_id = ?", jobID).
		Find(&out)
	return out, tx.Error
}
