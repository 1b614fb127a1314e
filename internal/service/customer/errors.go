package customer

import "errors"

var (
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidToken      = errors.New("invalid notification token")
)
