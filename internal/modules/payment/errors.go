package payment

import "errors"

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrJobNotFound     = errors.New("job not found")
	ErrNothingDue      = errors.New("invoice has no outstanding balance")
	ErrAmountMismatch  = errors.New("amount exceeds outstanding balance")
	ErrUnknownEvent    = errors.New("unhandled webhook event type")
)
