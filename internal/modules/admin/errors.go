package admin

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrCustomerNotFound   = errors.New("customer not found")
)
