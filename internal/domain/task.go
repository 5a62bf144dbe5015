package domain

import "time"

type Task struct {
	ID        string     `json:"id" gorm:"type:uuid;primaryKey"`
	AccountID string     `json:"account_id" gorm:"index"`
	JobID     string     `json:"job_id" gorm:"index"`
	Text      string     `json:"text" validate:"required"`
	Done      bool       `json:"done"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Task) TableName() string { return "tasks" }
