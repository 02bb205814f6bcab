package issame_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-leo/issame"
)

type version struct {
	Major int
	Minor int
}

func (v version) IsSame(other version) bool {
	return v.Major == other.Major && v.Minor == other.Minor
}

func TestSame(t *testing.T) {
	assert.True(t, issame.Same(version{1, 2}, version{1, 2}))
	assert.False(t, issame.Same(version{1, 2}, version{1, 3}))
}

func TestNegationLaw(t *testing.T) {
	pairs := [][2]version{
		{{1, 2}, {1, 2}},
		{{1, 2}, {1, 3}},
		{{0, 0}, {0, 0}},
	}
	for _, pair := range pairs {
		assert.Equal(t, !issame.Same(pair[0], pair[1]), issame.NotSame(pair[0], pair[1]))
	}

	notSame := issame.Not(issame.Float64)
	assert.False(t, notSame(1.0, 1.0))
	assert.True(t, notSame(0.0, math.Copysign(0, -1)))
}

func TestFields(t *testing.T) {
	assert.True(t, issame.Fields())

	calls := 0
	count := func(result bool) func() bool {
		return func() bool {
			calls++
			return result
		}
	}

	assert.True(t, issame.Fields(count(true), count(true), count(true)))
	assert.Equal(t, 3, calls)

	// The first mismatch stops evaluation; the third field never runs.
	calls = 0
	assert.False(t, issame.Fields(count(true), count(false), count(true)))
	assert.Equal(t, 2, calls)
}

func TestPairFunc(t *testing.T) {
	same := issame.PairFunc(issame.Scalar[string], issame.Float64)
	assert.True(t, same(issame.Pair[string, float64]{"a", 1.0}, issame.Pair[string, float64]{"a", 1.0}))
	assert.False(t, same(issame.Pair[string, float64]{"a", 1.0}, issame.Pair[string, float64]{"b", 1.0}))
	assert.False(t, same(issame.Pair[string, float64]{"a", 0.0}, issame.Pair[string, float64]{"a", math.Copysign(0, -1)}))
}
