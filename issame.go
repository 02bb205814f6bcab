// Package issame decides whether a value is observably identical to a
// previous version of itself, for the purpose of change detection.
//
// The protocol differs from ordinary equality in two ways:
//   - Floating-point values compare by their raw bit pattern, not by numeric
//     value. Two identical NaN bit patterns are the same; +0.0 and -0.0 are
//     not.
//   - Shared-ownership handles compare by allocation identity and never
//     dereference into the pointee, relying on shared data being immutable
//     once published.
//
// Types can implement Samer themselves, have an implementation emitted by the
// issame command, or derive one at run time with Of.
package issame

// Samer is implemented by types that define their own sameness.
// Generated implementations compare field by field in declared order.
type Samer[T any] interface {
	// IsSame reports whether other is observably identical to the receiver.
	IsSame(other T) bool
}

// Func compares two values of T for sameness.
type Func[T any] func(a, b T) bool

// Same reports whether a and b are the same.
func Same[T Samer[T]](a, b T) bool {
	return a.IsSame(b)
}

// NotSame is the negation of Same. It is never defined independently, so the
// negation law holds for every type.
func NotSame[T Samer[T]](a, b T) bool {
	return !a.IsSame(b)
}

// Not derives the is-not-same comparator from a comparator.
func Not[T any](same Func[T]) Func[T] {
	return func(a, b T) bool {
		return !same(a, b)
	}
}

// Fields reports whether every per-field comparison holds, stopping at the
// first mismatch. Comparisons are deferred so that later fields are never
// evaluated once one field differs.
func Fields(fields ...func() bool) bool {
	for _, field := range fields {
		if !field() {
			return false
		}
	}
	return true
}
