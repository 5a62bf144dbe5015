package invoice

import "errors"

var (
	ErrNotFound      = errors.New("invoice not found")
	ErrJobNotFound   = errors.New("job not found")
	ErrInvalidStatus = errors.New("unknown invoice status")
)
