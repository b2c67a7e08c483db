package golang

import (
	"bytes"
	"go/format"
	"sort"
	"text/template"

	"mapping-generator/internal/gen"
)

const header = "// Code generated by mapping-generator. DO NOT EDIT.\n\n"

// render executes tmpl and formats the result.
func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(header)

	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return "", gen.Unformatted(err, buf.Bytes())
	}

	return string(formatted), nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
