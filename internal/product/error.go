package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductInUse    = errors.New("product is referenced by orders or packages")
	ErrInvalidName     = errors.New("product name is required")
	ErrInvalidPrice    = errors.New("product prices must not be negative")
	ErrInvalidStock    = errors.New("product stock must not be negative")
)
