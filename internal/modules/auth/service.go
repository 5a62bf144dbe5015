package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

// Service contains all business logic for account signup and login.
type Service struct {
	accounts AccountRepository
	jwt      tokenIssuer
}

func NewService(accounts AccountRepository, jwt tokenIssuer) *Service {
	return &Service{accounts: accounts, jwt: jwt}
}

// Signup registers a new tenant. Freelancers are approved immediately,
// company accounts wait for an admin review before they can log in.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*domain.Account, error) {
	if err := s.validateEmailUnique(ctx, req.Email); err != nil {
		return nil, err
	}

	hashed, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	approval := domain.ApprovalApproved
	if req.Type == domain.AccountCompany {
		approval = domain.ApprovalPending
	}

	account := &domain.Account{
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:   hashed,
		Name:           req.Name,
		BusinessName:   req.BusinessName,
		Type:           req.Type,
		Role:           domain.RoleMember,
		ApprovalStatus: approval,
		Phone:          req.Phone,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	account.PasswordHash = ""
	return account, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	account, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if account.ApprovalStatus != domain.ApprovalApproved {
		return nil, ErrNotApproved
	}

	token, err := s.jwt.GenerateToken(account.ID, string(account.Role))
	if err != nil {
		return nil, err
	}

	account.PasswordHash = ""
	return &AuthResponse{Account: account, Token: token}, nil
}

func (s *Service) GetCurrentAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	account.PasswordHash = ""
	return account, nil
}

// ListPendingSignups returns company accounts waiting for review.
func (s *Service) ListPendingSignups(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.ListByApproval(ctx, domain.ApprovalPending)
}

func (s *Service) ReviewSignup(ctx context.Context, accountID string, req ReviewSignupRequest) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	status := domain.ApprovalRejected
	reason := req.Reason
	if req.Approve {
		status = domain.ApprovalApproved
		reason = ""
	}

	if err := s.accounts.UpdateApproval(ctx, account.ID, status, reason); err != nil {
		return nil, err
	}

	account.ApprovalStatus = status
	account.RejectedReason = reason
	account.PasswordHash = ""
	return account, nil
}

func (s *Service) validateEmailUnique(ctx context.Context, email string) error {
	exists, err := s.accounts.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailTaken
	}
	return nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
