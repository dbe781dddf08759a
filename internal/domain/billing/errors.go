package billing

import "errors"

var (
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrAlreadyPaid       = errors.New("invoice already paid")
	ErrInvalidTransition = errors.New("invalid invoice status transition")
)
