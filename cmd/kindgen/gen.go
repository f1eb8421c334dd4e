package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/token"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"
)

// marker opts a struct in. It must appear with a space after the comment
// slashes ("// crawlkit:component"); without one, go/ast treats the line
// as a compiler directive and strips it from doc text.
const marker = "crawlkit:component"

var fileTemplate = template.Must(template.New("kinds").Parse(`// Code generated by kindgen. DO NOT EDIT.

package {{.Package}}

import "github.com/nightblade9/crawlkit/ecs"

// Kind tags for this package's components.
var (
{{- range .Components}}
	Kind{{.}} = ecs.KindOf("{{$.Package}}.{{.}}")
{{- end}}
)

{{range .Components}}
func (*{{.}}) Kind() ecs.Kind { return Kind{{.}} }
{{end}}
// RegisterKinds records this package's component kinds in registry.
func RegisterKinds(registry *ecs.KindRegistry) {
{{- range .Components}}
	registry.RegisterKind("{{$.Package}}.{{.}}")
{{- end}}
}
`))

type templateData struct {
	Package    string
	Components []string
}

// scan loads the package at pattern and returns its name and the names
// of all marked component structs, sorted.
func scan(pattern string) (string, []string, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return "", nil, err
	}
	if len(pkgs) != 1 {
		return "", nil, fmt.Errorf("expected one package for %q, got %d", pattern, len(pkgs))
	}
	pkg := pkgs[0]

	var components []string
	for _, file := range pkg.Syntax {
		components = append(components, markedTypes(file)...)
	}
	sort.Strings(components)

	if len(components) == 0 {
		return "", nil, fmt.Errorf("no %q markers found in %s", marker, pattern)
	}
	return pkg.Name, components, nil
}

func markedTypes(file *ast.File) []string {
	var names []string
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			doc := genDecl.Doc
			if typeSpec.Doc != nil {
				doc = typeSpec.Doc
			}
			if doc != nil && strings.Contains(doc.Text(), marker) {
				names = append(names, typeSpec.Name.Name)
			}
		}
	}
	return names
}

// render executes the template and gofmt-formats the result.
func render(pkgName string, components []string) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, templateData{
		Package:    pkgName,
		Components: components,
	})
	if err != nil {
		return nil, err
	}
	return imports.Process("kinds.go", buf.Bytes(), nil)
}
