package accounting

import (
	"errors"

	"dispatch/internal/entities"
)

var (
	ErrInvalidDriverID = errors.New("invalid driver id")
	ErrInvalidAmount   = errors.New("payment amount must be positive")

	ErrDriverNotFound = entities.ErrDriverNotFound
)
