package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapping-generator/internal/gen"
	"mapping-generator/internal/gen/tmpl"
	"mapping-generator/internal/mapping"
)

func TestRegistry(t *testing.T) {
	r := Registry()

	assert.Equal(t, []string{
		"csharp.enum",
		"csharp.class",
		"csharp.nullable-class",
		"csharp.from-source",
		"csharp.to-source",
		"typescript.enum",
		"typescript.interface",
		"typescript.mapping",
		"golang.enum",
		"golang.struct",
	}, r.Names())

	selected, err := r.Select([]string{"typescript.*", "csharp.enum"})
	require.NoError(t, err)
	require.Len(t, selected, 4)
	assert.Equal(t, "csharp.enum", selected[3].Name())
}

func TestRegistry_WithTemplates(t *testing.T) {
	r := Registry(tmpl.Generators([]*tmpl.Template{tmpl.Parse("{0}.md.tmpl", "# {{.Mapping.Name}}")})...)

	g, ok := r.Get("template:{0}.md.tmpl")
	require.True(t, ok)

	out, err := g.Generate(gen.NewContext(gen.Naming{}, nil), &mapping.Mapping{Name: "Order"})
	require.NoError(t, err)
	assert.Equal(t, "# Order", out)
}

// Each built-in generator applies either to classes or to enums.
func TestGenerators_Applicability(t *testing.T) {
	set := mapping.NewSet(
		&mapping.Mapping{Name: "Order", Mappings: []mapping.PropertyMapping{{Name: "Id", Type: "Int32"}}},
		&mapping.Mapping{Name: "Status", IsEnum: true, EnumMembers: []string{"Open"}},
	)
	ctx := gen.NewContext(gen.Naming{}, set)
	order, _ := set.ByName("Order")
	status, _ := set.ByName("Status")

	for _, g := range Generators() {
		t.Run(g.Name(), func(t *testing.T) {
			forClass, err := g.Generate(ctx, order)
			require.NoError(t, err)

			forEnum, err := g.Generate(ctx, status)
			require.NoError(t, err)

			assert.True(t, (forClass == "") != (forEnum == ""), "applies to exactly one kind")
		})
	}
}
