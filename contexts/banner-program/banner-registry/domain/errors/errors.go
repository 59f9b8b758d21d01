package errors

import "errors"

var (
	ErrInvalidInput      = errors.New("banner input is invalid")
	ErrBannerNotFound    = errors.New("banner not found")
	ErrAmbiguousBanner   = errors.New("name fragment matches more than one banner")
	ErrUnknownField      = errors.New("unknown banner field")
	ErrInvalidFieldValue = errors.New("invalid value for banner field")
	ErrStoreUnavailable  = errors.New("banner store unavailable")
)
