package config

import "errors"

var (
	// ErrInvalidConfig is returned when a loaded configuration cannot be used.
	ErrInvalidConfig = errors.New("invalid configuration")
)
