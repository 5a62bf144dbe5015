package domain

import "time"

type AccountType string

const (
	AccountFreelancer AccountType = "freelancer"
	AccountCompany    AccountType = "company"
)

type AccountRole string

const (
	RoleMember AccountRole = "member"
	RoleAdmin  AccountRole = "admin"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Account is the owning tenant of every other record. The account type
// selects which booking-conflict policy applies.
type Account struct {
	ID             string         `json:"id" gorm:"type:uuid;primaryKey"`
	Email          string         `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash   string         `json:"-"`
	Name           string         `json:"name" validate:"required"`
	BusinessName   string         `json:"business_name,omitempty"`
	Type           AccountType    `json:"type"`
	Role           AccountRole    `json:"role"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	RejectedReason string         `json:"rejected_reason,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (Account) TableName() string { return "accounts" }
