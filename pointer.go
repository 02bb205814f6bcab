package issame

// Shared reports whether two shared-ownership handles refer to the same
// allocation. It never inspects the pointee: shared data is assumed immutable
// once published, so distinct allocations are different by definition even
// when their contents are equal.
func Shared[T any](a, b *T) bool {
	return a == b
}

// Ref compares two references. References to the same location are the same
// without recursing; otherwise the pointees are compared, so two distinct
// copies with identical content are still the same. Two nil references are
// the same, a nil and a non-nil reference are not.
func Ref[T Samer[T]](a, b *T) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return (*a).IsSame(*b)
}

// RefFunc is Ref with an explicit pointee comparator.
func RefFunc[T any](same Func[T]) Func[*T] {
	return func(a, b *T) bool {
		if a == b {
			return true
		}
		if a == nil || b == nil {
			return false
		}
		return same(*a, *b)
	}
}

// Text reports whether a byte buffer and a string hold the same text.
// Ownership state never prevents equivalence: an owned buffer and a plain
// string view of the same content are the same.
func Text(a []byte, b string) bool {
	return string(a) == b
}
