package portal

import "errors"

var (
	ErrNotFound      = errors.New("portal page not found")
	ErrWrongPassword = errors.New("wrong password")
)
