package gen

import "fmt"

// ShapeError is the build-time error for a shape the generator cannot
// derive. It aborts the run, so no partial file is ever written.
type ShapeError struct {
	Type   string
	Field  string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("gen: unsupported shape, type(%s), field(%s): %s", e.Type, e.Field, e.Reason)
	}
	return fmt.Sprintf("gen: unsupported shape, type(%s): %s", e.Type, e.Reason)
}
