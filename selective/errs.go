package selective

import (
	"errors"
	"fmt"

	"github.com/opsel/opsel/ir"
)

var (
	ErrDecode       = errors.New("decode error")
	ErrNameMismatch = errors.New("operator name mismatch")
)

// DecodeError reports a missing required field or a field of the wrong
// type in an operator or model document.
type DecodeError struct {
	Field   string
	Want    ir.Type
	Got     ir.Type
	Missing bool
}

func (e *DecodeError) Error() string {
	if e.Missing {
		return fmt.Sprintf("missing field %q (want %s)", e.Field, e.Want)
	}
	return fmt.Sprintf("field %q: want %s, got %s", e.Field, e.Want, e.Got)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

func missingField(field string, want ir.Type) error {
	return &DecodeError{Field: field, Want: want, Missing: true}
}

func wrongType(field string, want ir.Type, got ir.Type) error {
	return &DecodeError{Field: field, Want: want, Got: got}
}
