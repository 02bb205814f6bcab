package issame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-leo/issame"
)

func TestSliceFunc(t *testing.T) {
	same := issame.Scalar[int]

	vec1 := []int{1, 2, 3}
	vec2 := []int{1, 2}
	assert.False(t, issame.SliceFunc(vec1, vec2, same))
	assert.False(t, issame.SliceFunc(vec2, vec1, same))

	vec2 = append(vec2, 3)
	assert.True(t, issame.SliceFunc(vec1, vec2, same))

	// Element order matters.
	vec2[1], vec2[2] = vec2[2], vec2[1]
	assert.False(t, issame.SliceFunc(vec1, vec2, same))

	assert.True(t, issame.SliceFunc(nil, []int{}, same))
}

func TestSliceFuncSharedBuffer(t *testing.T) {
	calls := 0
	same := func(a, b int) bool {
		calls++
		return a == b
	}

	vec := []int{1, 2, 3}
	assert.True(t, issame.SliceFunc(vec, vec, same))
	assert.Equal(t, 0, calls)

	assert.True(t, issame.SliceFunc(vec, []int{1, 2, 3}, same))
	assert.Equal(t, 3, calls)
}

func TestSlice(t *testing.T) {
	vec1 := []version{{1, 2}, {3, 4}}
	vec2 := []version{{1, 2}, {3, 4}}
	assert.True(t, issame.Slice(vec1, vec2))

	vec2[1].Minor = 5
	assert.False(t, issame.Slice(vec1, vec2))
}

func TestBytes(t *testing.T) {
	assert.True(t, issame.Bytes([]byte("asdf"), []byte("asdf")))
	assert.False(t, issame.Bytes([]byte("asdf"), []byte("asdx")))
	assert.False(t, issame.Bytes([]byte("asdf"), []byte("asd")))
	assert.True(t, issame.Bytes(nil, []byte{}))

	buf := []byte("asdf")
	assert.True(t, issame.Bytes(buf, buf))
}
