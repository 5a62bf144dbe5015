package domain

import "time"

// TeamMember belongs to a company account. Freelancer accounts have none.
type TeamMember struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	AccountID string    `json:"account_id" gorm:"index" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	RoleTitle string    `json:"role_title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TeamMember) TableName() string { return "team_members" }

// TeamAssignment links additional members to a job beyond the primary
// assignee. It feeds the company conflict policy only.
type TeamAssignment struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	JobID     string    `json:"job_id" gorm:"index;uniqueIndex:idx_assignment_job_member"`
	MemberID  string    `json:"member_id" gorm:"index;uniqueIndex:idx_assignment_job_member"`
	CreatedAt time.Time `json:"created_at"`

	Member *TeamMember `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

func (TeamAssignment) TableName() string { return "team_assignments" }
