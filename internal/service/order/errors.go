package order

import "errors"

var (
	ErrInvalidEvent   = errors.New("invalid order event")
	ErrStatusMismatch = errors.New("order status mismatch between event and storage")
	ErrUndefinedEvent = errors.New("undefined order event type")
	ErrOrderNotFound  = errors.New("order not found")
)
