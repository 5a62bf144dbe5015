package auth

import "shootsuite/internal/domain"

type SignupRequest struct {
	Email        string             `json:"email" validate:"required,email"`
	Password     string             `json:"password" validate:"required,min=8"`
	Name         string             `json:"name" validate:"required"`
	BusinessName string             `json:"business_name"`
	Type         domain.AccountType `json:"type" validate:"required,oneof=freelancer company"`
	Phone        string             `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Account *domain.Account `json:"account"`
	Token   string          `json:"token"`
}

type ReviewSignupRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}
