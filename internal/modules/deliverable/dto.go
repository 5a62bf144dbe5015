package deliverable

import "time"

type CreateDeliverableRequest struct {
	JobID     string     `json:"job_id" binding:"required"`
	Title     string     `json:"title"`
	URL       string     `json:"url" binding:"required,url"`
	Password  string     `json:"password"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type UpdateDeliverableRequest struct {
	Title     string     `json:"title"`
	URL       string     `json:"url" binding:"required,url"`
	Password  string     `json:"password"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type ToggleLockRequest struct {
	Locked bool `json:"locked"`
}
