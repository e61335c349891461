package model

import (
	"errors"
	"fmt"
)

// ErrConfig matches any configuration error via errors.Is.
var ErrConfig = errors.New("invalid configuration")

// ConfigError describes a configuration problem. It is fatal: a run
// aborts before any remote call is made.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }
