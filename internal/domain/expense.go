package domain

import "time"

type Expense struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	AccountID  string    `json:"account_id" gorm:"index"`
	JobID      string    `json:"job_id" gorm:"index"`
	Category   string    `json:"category" validate:"required"`
	Amount     float64   `json:"amount" validate:"gt=0"`
	Date       string    `json:"date" validate:"required,datetime=2006-01-02"`
	Notes      string    `json:"notes,omitempty" gorm:"type:text"`
	ReceiptURL string    `json:"receipt_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Expense) TableName() string { return "expenses" }
