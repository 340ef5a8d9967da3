package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrNotConfigured  = errors.New("not configured")
	ErrDeliveryFailed = errors.New("delivery failed")
)
