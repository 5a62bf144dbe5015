package auth

import (
	"context"

	"shootsuite/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListByApproval(ctx context.Context, status domain.ApprovalStatus) ([]domain.Account, error)
	UpdateApproval(ctx context.Context, id string, status domain.ApprovalStatus, reason string) error
}

type tokenIssuer interface {
	GenerateToken(accountID, role string) (string, error)
}
