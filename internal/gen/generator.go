package gen

import (
	"strconv"
	"strings"

	"mapping-generator/internal/descriptor"
	"mapping-generator/internal/mapping"
)

// Generator renders one artifact for one mapping.
type Generator interface {
	// Name is the stable identity of the generator. It is the artifact file
	// stem and the value accepted by --generators.
	Name() string
	// FileExtension returns the artifact extension, including the dot.
	FileExtension(m *mapping.Mapping) string
	// Generate returns the artifact content. An empty string means the
	// generator does not apply to m.
	Generate(ctx *Context, m *mapping.Mapping) (string, error)
}

// ArtifactNamer is implemented by generators that pick the artifact file
// name themselves instead of Name()+FileExtension().
type ArtifactNamer interface {
	ArtifactName(m *mapping.Mapping) string
}

// Default naming values.
const (
	DefaultReferenceTypeFormat   = "Ref<{0}>"
	DefaultReferenceLookupFormat = "Lookup<{0}>({1})"
	DefaultReferenceLookupKey    = "Id"
	DefaultPackage               = "model"
)

// Naming controls how generated code names types.
type Naming struct {
	// Prefix and Postfix decorate every non-simple type name.
	Prefix  string
	Postfix string
	// ReferenceTypeFormat renders the field type of a reference type;
	// {0} is the local type name.
	ReferenceTypeFormat string
	// ReferenceLookupFormat renders the expression that resolves a
	// reference; {0} is the local type name, {1} the lookup key expression.
	ReferenceLookupFormat string
	// ReferenceLookupKey is the property the lookup key is read from.
	ReferenceLookupKey string
	// Package is the package (or module) name generated sources declare.
	Package string
}

// DefaultNaming returns the naming used when nothing is configured.
func DefaultNaming() Naming {
	return Naming{
		ReferenceTypeFormat:   DefaultReferenceTypeFormat,
		ReferenceLookupFormat: DefaultReferenceLookupFormat,
		ReferenceLookupKey:    DefaultReferenceLookupKey,
		Package:               DefaultPackage,
	}
}

// Context is the read-only state shared by every generator of a run.
type Context struct {
	Naming   Naming
	Mappings *mapping.Set
}

// NewContext creates a Context. Empty naming formats fall back to defaults.
func NewContext(naming Naming, set *mapping.Set) *Context {
	def := DefaultNaming()

	if naming.ReferenceTypeFormat == "" {
		naming.ReferenceTypeFormat = def.ReferenceTypeFormat
	}

	if naming.ReferenceLookupFormat == "" {
		naming.ReferenceLookupFormat = def.ReferenceLookupFormat
	}

	if naming.ReferenceLookupKey == "" {
		naming.ReferenceLookupKey = def.ReferenceLookupKey
	}

	if naming.Package == "" {
		naming.Package = def.Package
	}

	if set == nil {
		set = mapping.NewSet()
	}

	return &Context{Naming: naming, Mappings: set}
}

// LocalType returns the generated name of a type: simple types keep their
// name, everything else gets Prefix and Postfix.
func (c *Context) LocalType(name string) string {
	if descriptor.IsSimpleName(name) {
		return name
	}

	return c.Naming.Prefix + name + c.Naming.Postfix
}

// Target returns the mapping a property type refers to.
func (c *Context) Target(name string) (*mapping.Mapping, bool) {
	return c.Mappings.ByName(name)
}

// IsReference reports whether name is a mapping marked IsAReference.
func (c *Context) IsReference(name string) bool {
	m, ok := c.Target(name)

	return ok && m.IsAReference
}

// IsEnum reports whether name is an enum mapping.
func (c *Context) IsEnum(name string) bool {
	m, ok := c.Target(name)

	return ok && m.IsEnum
}

// ReferenceType renders the field type used for a reference to name.
func (c *Context) ReferenceType(name string) string {
	return Format(c.Naming.ReferenceTypeFormat, c.LocalType(name))
}

// ReferenceLookup renders the expression that resolves a reference held in
// valueExpr, e.g. Lookup<LOrder>(remote.Order.Id).
func (c *Context) ReferenceLookup(localType, valueExpr string) string {
	return Format(c.Naming.ReferenceLookupFormat, localType, valueExpr+"."+c.Naming.ReferenceLookupKey)
}

// Format replaces the positional placeholders {0}, {1}, ... in format.
func Format(format string, args ...string) string {
	if len(args) == 0 {
		return format
	}

	pairs := make([]string, 0, 2*len(args))
	for i, a := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", a)
	}

	return strings.NewReplacer(pairs...).Replace(format)
}
