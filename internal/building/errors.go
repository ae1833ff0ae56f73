package building

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig  = errors.New("invalid simulation configuration")
	ErrUnknownProfile = errors.New("unknown subsystem/season combination")
)

// ConfigError reports an out-of-range or invalid input parameter.
// It is always detected before any simulation work begins.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }

// ModelError reports a load model or schedule lookup that hit an
// unsupported subsystem/season combination during a run.
type ModelError struct {
	Subsystem Subsystem
	Season    Season
	Reason    string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("%s/%s: %s", e.Subsystem.Path(), e.Season, e.Reason)
}

func (e *ModelError) Is(target error) bool { return target == ErrUnknownProfile }
