package issame

import (
	"iter"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Map reports whether two hash maps hold the same keys with the same values.
func Map[K comparable, V Samer[V]](a, b map[K]V) bool {
	return MapFunc(a, b, Same[V])
}

// MapFunc is Map with an explicit value comparator. The size check is not a
// mere fast path: it is what catches keys present only in b, since the scan
// below only visits keys of a.
func MapFunc[M ~map[K]V, K comparable, V any](a, b M, same Func[V]) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !same(av, bv) {
			return false
		}
	}
	return true
}

// Set reports whether two hash sets hold exactly the same keys, delegating
// to the container's own equality.
func Set[M ~map[K]struct{}, K comparable](a, b M) bool {
	return maps.Equal(a, b)
}

// SortedMap compares two ordered mappings through their in-order iteration
// capability. Keys pair under their own equality, values under the protocol.
// Both iterations must yield pairs in ascending key order.
func SortedMap[K constraints.Ordered, V any](a, b iter.Seq2[K, V], same Func[V]) bool {
	nextA, stopA := iter.Pull2(a)
	defer stopA()
	nextB, stopB := iter.Pull2(b)
	defer stopB()
	for {
		ak, av, okA := nextA()
		bk, bv, okB := nextB()
		switch {
		case !okA && !okB:
			return true
		case okA != okB:
			return false
		case ak != bk:
			return false
		}
		if !same(av, bv) {
			return false
		}
	}
}

// SortedSet compares two ordered key-only sets through their in-order
// iteration capability.
func SortedSet[K constraints.Ordered](a, b iter.Seq[K]) bool {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()
	for {
		ak, okA := nextA()
		bk, okB := nextB()
		switch {
		case !okA && !okB:
			return true
		case okA != okB:
			return false
		case ak != bk:
			return false
		}
	}
}
