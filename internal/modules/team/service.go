package team

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type TeamRepository interface {
	CreateMember(ctx context.Context, m *domain.TeamMember) error
	GetMember(ctx context.Context, accountID, id string) (*domain.TeamMember, error)
	ListMembers(ctx context.Context, accountID string) ([]domain.TeamMember, error)
	UpdateMember(ctx context.Context, m *domain.TeamMember) error
	DeleteMember(ctx context.Context, accountID, id string) error
	Assign(ctx context.Context, a *domain.TeamAssignment) error
	Unassign(ctx context.Context, jobID, memberID string) error
	ListAssignments(ctx context.Context, jobID string) ([]domain.TeamAssignment, error)
}

type AccountReader interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

type JobReader interface {
	GetByID(ctx context.Context, accountID, id string) (*domain.Job, error)
}

// Service manages team members and their job assignments. Every operation
// first checks the tenant is a company account.
type Service struct {
	team     TeamRepository
	accounts AccountReader
	jobs     JobReader
}

func NewService(team TeamRepository, accounts AccountReader, jobs JobReader) *Service {
	return &Service{team: team, accounts: accounts, jobs: jobs}
}

func (s *Service) CreateMember(ctx context.Context, accountID string, req MemberRequest) (*domain.TeamMember, error) {
	if err := s.requireCompany(ctx, accountID); err != nil {
		return nil, err
	}

	m := &domain.TeamMember{
		AccountID: accountID,
		Name:      req.Name,
		Email:     req.Email,
		RoleTitle: req.RoleTitle,
	}
	if err := s.team.CreateMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ListMembers(ctx context.Context, accountID string) ([]domain.TeamMember, error) {
	if err := s.requireCompany(ctx, accountID); err != nil {
		return nil, err
	}
	return s.team.ListMembers(ctx, accountID)
}

func (s *Service) UpdateMember(ctx context.Context, accountID, id string, req MemberRequest) (*domain.TeamMember, error) {
	if err := s.requireCompany(ctx, accountID); err != nil {
		return nil, err
	}

	m, err := s.team.GetMember(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	m.Name = req.Name
	m.Email = req.Email
	m.RoleTitle = req.RoleTitle
	if err := s.team.UpdateMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) DeleteMember(ctx context.Context, accountID, id string) error {
	if err := s.requireCompany(ctx, accountID); err != nil {
		return err
	}
	if err := s.team.DeleteMember(ctx, accountID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Assign attaches a member to a job. The unique index on (job_id, member_id)
// rejects duplicates.
func (s *Service) Assign(ctx context.Context, accountID, jobID string, req AssignRequest) (*domain.TeamAssignment, error) {
	if err := s.requireCompany(ctx, accountID); err != nil {
		return nil, err
	}
	if _, err := s.jobs.GetByID(ctx, accountID, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.team.GetMember(ctx, accountID, req.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	a := &domain.TeamAssignment{JobID: jobID, MemberID: req.MemberID}
	if err := s.team.Assign(ctx, a); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAlreadyAssigned
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) Unassign(ctx context.Context, accountID, jobID, memberID string) error {
	if err := s.requireCompany(ctx, accountID); err != nil {
		return err
	}
	if _, err := s.jobs.GetByID(ctx, accountID, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.team.Unassign(ctx, jobID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListAssignments(ctx context.Context, accountID, jobID string) ([]domain.TeamAssignment, error) {
	if _, err := s.jobs.GetByID(ctx, accountID, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.team.ListAssignments(ctx, jobID)
}

func (s *Service) requireCompany(ctx context.Context, accountID string) error {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.Type != domain.AccountCompany {
		return ErrCompanyOnly
	}
	return nil
}
