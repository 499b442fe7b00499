package selector

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every *ArgumentError through errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports which parameter of a call was rejected.
type ArgumentError struct {
	// Name is the parameter name, e.g. "numbers".
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrInvalidArgument, e.Name, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func nilNumbers() error {
	return &ArgumentError{Name: "numbers", Reason: "input list cannot be nil"}
}
