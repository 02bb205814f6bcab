package issame

import "bytes"

// Slice reports whether two sequences hold the same elements in the same
// order.
func Slice[E Samer[E]](a, b []E) bool {
	return SliceFunc(a, b, Same[E])
}

// SliceFunc is Slice with an explicit element comparator. Sequences of
// different length are never the same. Two slices over the same backing
// buffer are the same without touching the elements; otherwise elements are
// compared in order, stopping at the first mismatch.
func SliceFunc[S ~[]E, E any](a, b S, same Func[E]) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 || &a[0] == &b[0] {
		return true
	}
	for i := range a {
		if !same(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Bytes reports whether two byte sequences hold the same bytes, with the
// same backing-buffer fast path as SliceFunc.
func Bytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 || &a[0] == &b[0] {
		return true
	}
	return bytes.Equal(a, b)
}
