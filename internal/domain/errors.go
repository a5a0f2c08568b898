package domain

import "errors"

var (
	ErrInvalidConfig  = errors.New("invalid game config")
	ErrFieldExhausted = errors.New("no free cell left on the field")
)
