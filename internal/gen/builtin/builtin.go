// Package builtin lists the generators compiled into the tool.
package builtin

import (
	"mapping-generator/internal/gen"
	"mapping-generator/internal/gen/csharp"
	"mapping-generator/internal/gen/golang"
	"mapping-generator/internal/gen/typescript"
)

// Generators returns every built-in generator in a stable order.
func Generators() []gen.Generator {
	return []gen.Generator{
		csharp.EnumGenerator{},
		csharp.ClassGenerator{},
		csharp.ClassGenerator{NullableValues: true},
		csharp.FromSourceGenerator{},
		csharp.ToSourceGenerator{},
		typescript.EnumGenerator{},
		typescript.InterfaceGenerator{},
		typescript.MappingGenerator{},
		golang.EnumGenerator{},
		golang.StructGenerator{},
	}
}

// Registry returns a registry of the built-in generators plus extra, e.g.
// templates loaded at run time.
func Registry(extra ...gen.Generator) *gen.Registry {
	return gen.NewRegistry(append(Generators(), extra...)...)
}
