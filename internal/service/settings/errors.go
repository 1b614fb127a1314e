package settings

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRadius         = errors.New("invalid radius configuration")
	ErrInvalidCommission     = errors.New("commission percentage must be within [0, 100]")
	ErrInvalidMaxBalance     = errors.New("max allowed balance must be non-negative")
)
