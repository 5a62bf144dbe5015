package domain

import "time"

// Deliverable points at an externally hosted gallery or file set. Locked is
// storage state only; whether the portal actually shows the URL is decided
// fresh on every request by the access gate.
type Deliverable struct {
	ID        string     `json:"id" gorm:"type:uuid;primaryKey"`
	AccountID string     `json:"account_id" gorm:"index"`
	JobID     string     `json:"job_id" gorm:"index"`
	Title     string     `json:"title"`
	URL       string     `json:"url" validate:"required,url"`
	Password  string     `json:"-"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Locked    bool       `json:"is_locked"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Deliverable) TableName() string { return "deliverables" }

// Expired reports whether the link has passed its optional expiry date.
func (d *Deliverable) Expired(now time.Time) bool {
	return d.ExpiresAt != nil && now.After(*d.ExpiresAt)
}
