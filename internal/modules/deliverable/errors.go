package deliverable

import "errors"

var (
	ErrNotFound    = errors.New("deliverable not found")
	ErrJobNotFound = errors.New("job not found")
)
