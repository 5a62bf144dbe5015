package team

import "errors"

var (
	ErrNotFound        = errors.New("team member not found")
	ErrCompanyOnly     = errors.New("team management requires a company account")
	ErrAlreadyAssigned = errors.New("member already assigned to this job")
)
