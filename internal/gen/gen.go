// Package gen derives IsSame methods for struct types by inspecting a loaded
// package and emitting a per-field conjunction over the issame protocol.
package gen

import (
	"fmt"
	"go/types"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"
)

// Generator derives IsSame methods for struct types of one loaded package.
type Generator struct {
	pkg    *packages.Package
	cfg    Config
	logger zerolog.Logger
}

func New(pkg *packages.Package, cfg Config, logger zerolog.Logger) *Generator {
	return &Generator{pkg: pkg, cfg: cfg, logger: logger}
}

// LoadPackage loads the single package rooted at dir with full type
// information.
func LoadPackage(dir string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedImports | packages.NeedDeps | packages.NeedTypes |
			packages.NeedSyntax | packages.NeedTypesInfo,
		Dir: dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("gen: %d packages found in %s", len(pkgs), dir)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("gen: load %s: %v", pkg.PkgPath, pkg.Errors[0])
	}
	if len(pkg.GoFiles) == 0 {
		return nil, fmt.Errorf("gen: package %s has no Go files", pkg.PkgPath)
	}
	return pkg, nil
}

// Generate derives one file per named type. Types named in the same run may
// refer to each other. Any unsupported shape aborts the whole run before a
// single file is written.
func (g *Generator) Generate(typeNames []string) ([]*File, error) {
	requested := make(map[string]bool, len(typeNames))
	for _, name := range typeNames {
		requested[name] = true
	}
	outDir := filepath.Dir(g.pkg.GoFiles[0])
	var files []*File
	for _, name := range typeNames {
		file, err := g.generate(name, requested, outDir)
		if err != nil {
			return nil, err
		}
		g.logger.Debug().Str("type", name).Str("file", file.AbsFilename).Msg("derived")
		files = append(files, file)
	}
	return files, nil
}

func (g *Generator) generate(name string, requested map[string]bool, outDir string) (*File, error) {
	obj := g.pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return nil, fmt.Errorf("gen: type %s not found in package %s", name, g.pkg.PkgPath)
	}
	typeName, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("gen: %s is not a type", name)
	}
	st, ok := typeName.Type().Underlying().(*types.Struct)
	if !ok {
		// Interfaces are the Go spelling of a multi-variant shape; nothing
		// but plain struct types derives.
		return nil, &ShapeError{Type: name, Reason: fmt.Sprintf("underlying type %s is not a struct", typeName.Type().Underlying())}
	}
	b := newExprBuilder(g.pkg.Types, g.cfg.Tag, requested)
	body, err := b.structBody(name, st)
	if err != nil {
		return nil, err
	}
	return &File{
		AbsFilename: filepath.Join(outDir, fileName(name, g.cfg.Suffix)),
		Package:     g.pkg.Name,
		Type:        name,
		Header:      g.cfg.Header,
		Imports:     b.importLines(),
		Body:        body,
	}, nil
}

func fileName(name, suffix string) string {
	return strings.ToLower(addUnderscore(name)) + suffix
}

func addUnderscore(s string) string {
	var result strings.Builder
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(prev) {
			result.WriteRune('_')
		}
		result.WriteRune(r)
		prev = r
	}
	return result.String()
}
