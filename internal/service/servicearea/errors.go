package servicearea

import "errors"

var (
	ErrInvalidRegionID = errors.New("invalid region id")
	ErrInvalidCenter   = errors.New("invalid service area center")
	ErrInvalidRadius   = errors.New("invalid radius configuration")
)
