package job

import "shootsuite/internal/modules/schedule"

type CreateJobRequest struct {
	ClientID      string  `json:"client_id" binding:"required"`
	Title         string  `json:"title"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime     string  `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime       string  `json:"end_time" binding:"omitempty,datetime=15:04"`
	AssigneeID    *string `json:"assignee_id"`
	Location      string  `json:"location"`
	PackageType   string  `json:"package_type"`
	Price         float64 `json:"price" binding:"gte=0"`
	DepositAmount float64 `json:"deposit_amount" binding:"gte=0"`
	Notes         string  `json:"notes"`
}

type UpdateJobRequest struct {
	ClientID      string  `json:"client_id" binding:"required"`
	Title         string  `json:"title"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime     string  `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime       string  `json:"end_time" binding:"omitempty,datetime=15:04"`
	AssigneeID    *string `json:"assignee_id"`
	Location      string  `json:"location"`
	PackageType   string  `json:"package_type"`
	Price         float64 `json:"price" binding:"gte=0"`
	DepositAmount float64 `json:"deposit_amount" binding:"gte=0"`
	Notes         string  `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListJobsQuery struct {
	Status   string `form:"status"`
	ClientID string `form:"client_id"`
	DateFrom string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Limit    int    `form:"limit,default=100"`
	Offset   int    `form:"offset,default=0"`
}

type CheckConflictRequest struct {
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime    string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime      string `json:"end_time" binding:"omitempty,datetime=15:04"`
	AssigneeID   string `json:"assignee_id"`
	ExcludeJobID string `json:"exclude_job_id"`
}

type CalendarQuery struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

type CalendarResponse struct {
	Jobs       []CalendarJob   `json:"jobs"`
	BusyDates  map[string]bool `json:"busy_dates"`
	TotalCount int             `json:"total_count"`
}

type CalendarJob struct {
	ID         string `json:"id"`
	Title      string `json:"title,omitempty"`
	ClientName string `json:"client_name,omitempty"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
	Status     string `json:"status"`
}

type CheckConflictResponse = schedule.Result
