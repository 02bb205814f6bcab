package gen_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/go-leo/issame/internal/gen"
)

func loadFixture(t *testing.T) *packages.Package {
	t.Helper()
	pkg, err := gen.LoadPackage("./fixture")
	require.NoError(t, err)
	return pkg
}

func TestGenerate(t *testing.T) {
	pkg := loadFixture(t)

	files, err := gen.New(pkg, gen.DefaultConfig(), zerolog.Nop()).Generate([]string{"User", "Unit"})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "user_issame.go", filepath.Base(files[0].AbsFilename))
	assert.Equal(t, "unit_issame.go", filepath.Base(files[1].AbsFilename))

	g := goldie.New(t)
	for _, file := range files {
		src, err := file.Render()
		require.NoError(t, err)
		g.Assert(t, strings.TrimSuffix(filepath.Base(file.AbsFilename), ".go"), src)
	}
}

func TestGenerateVariantShape(t *testing.T) {
	pkg := loadFixture(t)

	_, err := gen.New(pkg, gen.DefaultConfig(), zerolog.Nop()).Generate([]string{"Visitor"})
	require.Error(t, err)

	var shapeErr *gen.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "Visitor", shapeErr.Type)
}

func TestGenerateUnsupportedField(t *testing.T) {
	pkg := loadFixture(t)

	_, err := gen.New(pkg, gen.DefaultConfig(), zerolog.Nop()).Generate([]string{"Conn"})
	require.Error(t, err)

	var shapeErr *gen.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "Conn", shapeErr.Type)
	assert.Equal(t, "Ch", shapeErr.Field)
	assert.Contains(t, err.Error(), "type(Conn), field(Ch)")
}

func TestGenerateAbortsWholeRun(t *testing.T) {
	pkg := loadFixture(t)

	// One bad type means no file at all, supported siblings included.
	files, err := gen.New(pkg, gen.DefaultConfig(), zerolog.Nop()).Generate([]string{"User", "Conn"})
	require.Error(t, err)
	assert.Nil(t, files)
}

func TestGenerateUnknownType(t *testing.T) {
	pkg := loadFixture(t)

	_, err := gen.New(pkg, gen.DefaultConfig(), zerolog.Nop()).Generate([]string{"Nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGenerateSuffix(t *testing.T) {
	pkg := loadFixture(t)
	cfg := gen.DefaultConfig()
	cfg.Suffix = ".same.go"

	files, err := gen.New(pkg, cfg, zerolog.Nop()).Generate([]string{"Unit"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "unit.same.go", filepath.Base(files[0].AbsFilename))
}
