package constclass

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilTarget is returned by Apply when there is no target namespace to
// write into.
var ErrNilTarget = errors.New("apply target is nil")

// UnknownConstantError reports a lookup of a name the class does not hold.
// Known carries the names registered at the time of the lookup, in
// registration order.
type UnknownConstantError struct {
	Class string
	Name  string
	Known []string
}

func (e *UnknownConstantError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("class %s does not contain a constant named %s; no constants are registered", e.Class, e.Name)
	}
	return fmt.Sprintf("class %s does not contain a constant named %s; registered constants are %s",
		e.Class, e.Name, strings.Join(e.Known, ", "))
}

// IsUnknownConstant reports whether err is an UnknownConstantError.
func IsUnknownConstant(err error) bool {
	var unknown *UnknownConstantError
	return errors.As(err, &unknown)
}

// InvalidNameError reports an attempt to register a constant under a name
// that violates the naming rules. Reason is the violated rule, one of the
// naming package sentinels.
type InvalidNameError struct {
	Name   string
	Reason error
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid constant name %q: %v", e.Name, e.Reason)
}

func (e *InvalidNameError) Unwrap() error {
	return e.Reason
}

// IsInvalidName reports whether err is an InvalidNameError.
func IsInvalidName(err error) bool {
	var invalid *InvalidNameError
	return errors.As(err, &invalid)
}
