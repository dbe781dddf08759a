package expense

import "errors"

var (
	ErrExpenseNotFound   = errors.New("expense not found")
	ErrInvalidTransition = errors.New("invalid expense status transition")
)
