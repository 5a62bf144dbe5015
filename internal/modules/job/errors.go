package job

import "errors"

var (
	ErrNotFound                = errors.New("job not found")
	ErrBookingConflict         = errors.New("booking conflicts with an existing job")
	ErrInvalidStatus           = errors.New("unknown job status")
	ErrInvalidStatusTransition = errors.New("job is in a terminal status")
	ErrInvalidTimeRange        = errors.New("start time must be before end time")
)
