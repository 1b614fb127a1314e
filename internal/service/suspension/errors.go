package suspension

import (
	"errors"

	"dispatch/internal/entities"
)

var (
	ErrInvalidDriverID  = errors.New("invalid driver id")
	ErrConcurrentUpdate = errors.New("driver activity changed concurrently")
	ErrDriverNotFound   = entities.ErrDriverNotFound
)
