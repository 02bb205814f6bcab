package gen

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

//go:embed issame.go.template
var issameContent string

// File is one generated IsSame implementation, ready to render.
type File struct {
	AbsFilename string
	Package     string
	Type        string
	Header      []string
	Imports     []string
	Body        string
}

// Render produces the formatted content of the generated file.
func (f *File) Render() ([]byte, error) {
	tmpl, err := template.New("issame").Parse(issameContent)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, f); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format %s: %w", f.Type, err)
	}
	return src, nil
}

// Gen renders and writes the file.
func (f *File) Gen() error {
	src, err := f.Render()
	if err != nil {
		return err
	}
	return os.WriteFile(f.AbsFilename, src, 0o644)
}
