package issame

import (
	"math"
	"path/filepath"
	"reflect"
)

// Scalar reports whether two scalar values have the same representation.
// It covers integers, booleans, runes, strings and the unit struct{}.
func Scalar[T comparable](a, b T) bool {
	return a == b
}

// Float32 compares the raw bit patterns of a and b, not their numeric values.
// Two NaNs with identical bits are the same; +0.0 and -0.0 are not.
func Float32(a, b float32) bool {
	return math.Float32bits(a) == math.Float32bits(b)
}

// Float64 compares the raw bit patterns of a and b, not their numeric values.
func Float64(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

// Complex64 compares the bit patterns of both components.
func Complex64(a, b complex64) bool {
	return Float32(real(a), real(b)) && Float32(imag(a), imag(b))
}

// Complex128 compares the bit patterns of both components.
func Complex128(a, b complex128) bool {
	return Float64(real(a), real(b)) && Float64(imag(a), imag(b))
}

// Path reports whether a and b name the same path once normalized, so
// differing renderings of one path still compare the same.
func Path(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// Type reports whether two type identity tokens denote the same type.
func Type(a, b reflect.Type) bool {
	return a == b
}
