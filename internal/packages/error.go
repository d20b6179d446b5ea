package packages

import "errors"

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrInvalidName     = errors.New("package name is required")
	ErrInvalidPrice    = errors.New("package price must not be negative")
	ErrNoItems         = errors.New("package requires at least one item")
	ErrInvalidQuantity = errors.New("package item quantity must be positive")
)
