package notification

import "errors"

var (
	ErrInvalidToken = errors.New("push token is invalid or unregistered")
	ErrNoPushTarget = errors.New("push target has no notification token")
)
