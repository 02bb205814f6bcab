package issame

import (
	"fmt"
	"reflect"
)

type Code int

const (
	UnsupportedShape Code = 1
	UnsupportedField Code = 2
)

// Error is the single derivation-time error class: a shape the deriver does
// not support. Comparison itself never fails.
type Error struct {
	Code  Code
	Type  reflect.Type
	Field string
}

func (e Error) Error() string {
	switch e.Code {
	case UnsupportedShape:
		return fmt.Sprintf("issame: unsupported shape, type(%s)", e.Type.String())
	case UnsupportedField:
		return fmt.Sprintf("issame: unsupported field, type(%s), field(%s)", e.Type.String(), e.Field)
	default:
		return ""
	}
}

func newUnsupportedShapeError(t reflect.Type) error {
	return Error{Code: UnsupportedShape, Type: t}
}

func newUnsupportedFieldError(t reflect.Type, field string) error {
	return Error{Code: UnsupportedField, Type: t, Field: field}
}
