package domain

import (
	"strconv"
	"strings"
	"time"
)

type JobStatus string

const (
	JobInquiry   JobStatus = "Inquiry"
	JobBooked    JobStatus = "Booked"
	JobShooting  JobStatus = "Shooting"
	JobEditing   JobStatus = "Editing"
	JobReview    JobStatus = "Review"
	JobDelivered JobStatus = "Delivered"
	JobCompleted JobStatus = "Completed"
	JobCancelled JobStatus = "Cancelled"
)

// Terminal reports whether a job may not leave this status anymore.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobCancelled
}

func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobInquiry, JobBooked, JobShooting, JobEditing, JobReview,
		JobDelivered, JobCompleted, JobCancelled:
		return true
	}
	return false
}

// Job is a photography engagement on a calendar day. Date is "2006-01-02";
// StartTime/EndTime are optional "15:04" times of day. StartMinute/EndMinute
// mirror them as minutes since midnight so the overlap exclusion constraint
// can range over integers; the repository keeps them in sync on write.
// AccountType is denormalized from the owning account: the overlap rule only
// binds freelancer tenants, and the constraint has to see the type per row.
type Job struct {
	ID            string      `json:"id" gorm:"type:uuid;primaryKey"`
	AccountID     string      `json:"account_id" gorm:"index" validate:"required"`
	AccountType   AccountType `json:"-"`
	ClientID      string      `json:"client_id" gorm:"index" validate:"required"`
	Title         string      `json:"title,omitempty"`
	Date          string      `json:"date" gorm:"index" validate:"required,datetime=2006-01-02"`
	StartTime     string      `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime       string      `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	StartMinute   *int        `json:"-"`
	EndMinute     *int        `json:"-"`
	AssigneeID    *string     `json:"assignee_id,omitempty" gorm:"type:uuid"`
	Location      string      `json:"location,omitempty"`
	PackageType   string      `json:"package_type,omitempty"`
	Status        JobStatus   `json:"status"`
	Price         float64     `json:"price" validate:"gte=0"`
	DepositAmount float64     `json:"deposit_amount,omitempty"`
	Notes         string      `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	Client       *Client          `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Assignee     *TeamMember      `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Assignments  []TeamAssignment `json:"assignments,omitempty" gorm:"foreignKey:JobID"`
	Invoices     []Invoice        `json:"invoices,omitempty" gorm:"foreignKey:JobID"`
	Deliverables []Deliverable    `json:"deliverables,omitempty" gorm:"foreignKey:JobID"`
}

func (Job) TableName() string { return "jobs" }

// MinuteOfDay parses an "15:04" time of day into minutes since midnight.
func MinuteOfDay(hhmm string) (int, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
