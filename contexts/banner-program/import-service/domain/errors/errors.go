package errors

import "errors"

var (
	ErrSourceUnreadable = errors.New("import source could not be read")
	ErrEmptySource      = errors.New("import source has no header row")
	ErrStoreFailed      = errors.New("banner store rejected the import batch")
)
