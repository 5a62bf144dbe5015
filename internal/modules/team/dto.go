package team

type MemberRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	RoleTitle string `json:"role_title"`
}

type AssignRequest struct {
	MemberID string `json:"member_id" binding:"required"`
}
