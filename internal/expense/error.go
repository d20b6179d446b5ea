package expense

import "errors"

var (
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrInvalidAmount      = errors.New("expense amount must be positive")
	ErrMissingDescription = errors.New("expense description is required")
	ErrInvalidMonth       = errors.New("month must be formatted as YYYY-MM")
)
