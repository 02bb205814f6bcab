package issame

// Pair is a 2-tuple. Wider tuples are positional structs in Go; derive their
// comparison with the issame command, or build one with Fields.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairFunc composes element comparators into a comparator over pairs,
// short-circuiting on the first position.
func PairFunc[A, B any](first Func[A], second Func[B]) Func[Pair[A, B]] {
	return func(a, b Pair[A, B]) bool {
		return first(a.First, b.First) && second(a.Second, b.Second)
	}
}
