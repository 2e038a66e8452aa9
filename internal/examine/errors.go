package examine

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSound     = errors.New("sound not loaded")
	ErrMissingFont      = errors.New("font not loaded")
	ErrMissingReference = errors.New("referenced object not found")
)

// ConfigError reports a setup problem on one item. Such problems are
// logged once at Start and the item keeps working without the missing
// piece.
type ConfigError struct {
	Item  string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("examinable %q: %s: %v", e.Item, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
