package options

import "errors"

var (
	ErrUnknownOption   = errors.New("unknown option")
	ErrDuplicateOption = errors.New("duplicate option")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrNullValue       = errors.New("value cannot be null")
	ErrUnknownAppSet   = errors.New("unknown application set")
)
