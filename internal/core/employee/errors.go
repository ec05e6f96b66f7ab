package employee

import "errors"

var (
	ErrInvalidAction    = errors.New("employee: invalid action")
	ErrInvalidID        = errors.New("employee: invalid id")
	ErrInvalidPageSize  = errors.New("employee: invalid page size")
	ErrEmployeeNotFound = errors.New("employee: not found")
	ErrValidation       = errors.New("employee: validation failed")
	ErrCorruptState     = errors.New("employee: corrupt persisted state")
	ErrKeyNotFound      = errors.New("employee: key not found")
)
