// Package tmpl turns a directory of text/template files into generators.
//
// Every regular file of the directory is one template, rendered once per
// mapping. The artifact is named after the template file with {0} replaced
// by the mapping name and a trailing .tmpl or .gotmpl removed:
//
//	{0}Dto.cs.tmpl  ->  Order/OrderDto.cs
package tmpl

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"mapping-generator/internal/descriptor"
	"mapping-generator/internal/errors"
	"mapping-generator/internal/gen"
	"mapping-generator/internal/mapping"
	"mapping-generator/internal/match"
)

var templateExtensions = []string{".tmpl", ".gotmpl"}

// Data is what a template is executed with.
type Data struct {
	Mapping  *mapping.Mapping
	Naming   gen.Naming
	Mappings []*mapping.Mapping
}

// Template is a generator backed by one template file. Parse errors are kept
// and reported on every Generate call, so a broken template only faults its
// own artifacts.
type Template struct {
	file     string
	tmpl     *template.Template
	parseErr error
}

// Load reads every template file in dir, in name order. Hidden files and
// subdirectories are skipped. Only an unreadable directory is an error.
func Load(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrConfig, "reading template directory %s: %v", dir, err),
			"check --template-dir",
		)
	}

	names := make([]string, 0, len(entries))

	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}

		names = append(names, e.Name())
	}

	sort.Strings(names)

	out := make([]*Template, 0, len(names))

	for _, name := range names {
		src, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, errors.Wrapf(errors.ErrConfig, "reading template %s: %v", name, err)
		}

		out = append(out, Parse(name, string(src)))
	}

	return out, nil
}

// Parse builds a Template from source. file is the template file name.
func Parse(file, src string) *Template {
	t := &Template{file: file}
	t.tmpl, t.parseErr = template.New(file).Funcs(funcs(gen.NewContext(gen.Naming{}, nil))).Parse(src)

	return t
}

// Generators adapts templates to the gen.Generator interface.
func Generators(templates []*Template) []gen.Generator {
	out := make([]gen.Generator, 0, len(templates))
	for _, t := range templates {
		out = append(out, t)
	}

	return out
}

// Name implements gen.Generator.
func (t *Template) Name() string {
	return "template:" + t.file
}

// FileExtension implements gen.Generator. It is the extension of the
// rendered artifact name.
func (t *Template) FileExtension(*mapping.Mapping) string {
	return filepath.Ext(stripTemplateExt(t.file))
}

// ArtifactName implements gen.ArtifactNamer.
func (t *Template) ArtifactName(m *mapping.Mapping) string {
	return gen.Format(stripTemplateExt(t.file), m.Name)
}

// Generate implements gen.Generator.
func (t *Template) Generate(ctx *gen.Context, m *mapping.Mapping) (string, error) {
	if t.parseErr != nil {
		return "", errors.Wrapf(t.parseErr, "parsing template %s", t.file)
	}

	// Clone so concurrent runs can bind their own context.
	tmpl, err := t.tmpl.Clone()
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	err = tmpl.Funcs(funcs(ctx)).Execute(&sb, Data{
		Mapping:  m,
		Naming:   ctx.Naming,
		Mappings: ctx.Mappings.All(),
	})
	if err != nil {
		return "", errors.Wrapf(err, "executing template %s", t.file)
	}

	return sb.String(), nil
}

func stripTemplateExt(name string) string {
	for _, ext := range templateExtensions {
		if trimmed, ok := strings.CutSuffix(name, ext); ok {
			return trimmed
		}
	}

	return name
}

func funcs(ctx *gen.Context) template.FuncMap {
	return template.FuncMap{
		"local":     ctx.LocalType,
		"reference": ctx.ReferenceType,
		"lookup":    ctx.ReferenceLookup,
		"isSimple":  descriptor.IsSimpleName,
		"lower":     strings.ToLower,
		"upper":     strings.ToUpper,
		"camel":     match.Camel,
		"pascal":    match.Pascal,
		"snake":     match.Snake,
	}
}
