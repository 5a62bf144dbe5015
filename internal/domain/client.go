package domain

import "time"

type Client struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	AccountID string    `json:"account_id" gorm:"index" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Jobs []Job `json:"jobs,omitempty" gorm:"foreignKey:ClientID"`
}

func (Client) TableName() string { return "clients" }
