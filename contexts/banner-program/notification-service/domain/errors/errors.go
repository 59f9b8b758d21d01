package errors

import "errors"

var (
	ErrInvalidKind      = errors.New("unknown notification kind")
	ErrOutboxWrite      = errors.New("notification outbox write failed")
	ErrRegistryRequired = errors.New("notification service requires a registry")
)
