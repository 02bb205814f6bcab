package gen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-leo/issame/internal/gen"
)

func TestFileGen(t *testing.T) {
	file := &gen.File{
		AbsFilename: filepath.Join(t.TempDir(), "unit_issame.go"),
		Package:     "fixture",
		Type:        "Unit",
		Body:        "true",
	}
	require.NoError(t, file.Gen())

	src, err := os.ReadFile(file.AbsFilename)
	require.NoError(t, err)
	assert.Contains(t, string(src), "// Code generated by issame; DO NOT EDIT.")
	assert.Contains(t, string(src), "func (x Unit) IsSame(other Unit) bool {")
}

func TestFileRenderHeader(t *testing.T) {
	file := &gen.File{
		Package: "fixture",
		Type:    "Unit",
		Header:  []string{"//go:build !tinygo"},
		Body:    "true",
	}
	src, err := file.Render()
	require.NoError(t, err)
	assert.Contains(t, string(src), "//go:build !tinygo")
}

func TestFileRenderBadBody(t *testing.T) {
	file := &gen.File{
		Package: "fixture",
		Type:    "Unit",
		Body:    "}{",
	}
	_, err := file.Render()
	assert.Error(t, err)
}
