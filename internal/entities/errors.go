package entities

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrStoreNotConfigured = errors.New("record store is not configured")
	ErrStoreUnavailable   = errors.New("record store is unavailable")
	ErrUpdateRejected     = errors.New("record store rejected the update")
	ErrStatusRequired     = errors.New("status is required")
)
