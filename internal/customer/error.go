package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrMissingIdentity  = errors.New("customer needs at least a name, phone, or instagram")
)
