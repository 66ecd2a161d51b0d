package services

import "errors"

var (
	// ErrValidation marks rejected reminder settings (frequency, time or timezone).
	ErrValidation = errors.New("invalid reminder settings")
	// ErrNotFound marks operations against a reminder that no longer exists.
	ErrNotFound = errors.New("reminder not found")
	// ErrDelivery marks a failed send through the messaging transport.
	ErrDelivery = errors.New("delivery failed")
)
