package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrInvalidConfig  = errors.New("invalid dough config")
	ErrNotConvertible = errors.New("yeast type is not convertible")
	ErrUnknownField   = errors.New("unknown config field")
	ErrUnknownValue   = errors.New("unknown value")
)
