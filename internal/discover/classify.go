package discover

import (
	"fmt"
	"slices"

	"mapping-generator/internal/common"
	"mapping-generator/internal/descriptor"
	"mapping-generator/internal/diagnostic"
	"mapping-generator/internal/mapping"
)

// Classify derives the mapping of property p declared on owner.
func (b *Builder) Classify(owner *descriptor.TypeDescriptor, p descriptor.PropertyDescriptor) mapping.PropertyMapping {
	ref := p.Type
	if ref == nil {
		b.diags.AddWarning(diagnostic.CodeMissingType, "property has no type and is treated as Object", owner.Name, p.Name)
		ref = descriptor.SimpleRef(descriptor.Object)
	}

	pm := mapping.PropertyMapping{
		Name:       p.Name,
		IsReadOnly: p.ReadOnly,
		IsGeneric:  ref.IsGeneric(),
	}

	if len(p.Tags) > 0 {
		pm.Tags = slices.Clone(p.Tags)
	}

	if to, ok := b.opts.Renames.Lookup(owner.Name, p.Name); ok {
		pm.TransformName = to
		b.usedRenames[p.Name] = true
		b.usedRenames[owner.Name+"."+p.Name] = true
	}

	// elem is the type the enum check looks at: the declared type with
	// Nullable and list wrapping removed.
	elem := ref

	switch descriptor.ShapeOf(ref) {
	case descriptor.ShapeNullable:
		pm.IsNullable = true
		elem = ref.Args[0]

	case descriptor.ShapeList:
		pm.IsList = true
		elem = ref.Args[0]

		if descriptor.ShapeOf(elem) == descriptor.ShapeNullable {
			pm.IsNullable = true
			elem = elem.Args[0]
		}

	case descriptor.ShapeDictionary:
		pm.IsDictionary = true
		pm.DictionaryTypes = []string{
			descriptor.UnwrapNullable(ref.Args[0]).Name,
			descriptor.UnwrapNullable(ref.Args[1]).Name,
		}
		elem = nil

	case descriptor.ShapeGeneric:
		b.diags.AddInfo(diagnostic.CodeOpaqueGeneric,
			fmt.Sprintf("%s is not a collection shape; only its arguments are mapped", ref), owner.Name, p.Name)

		elem = nil
	}

	if elem != nil && !elem.IsGeneric() {
		if d, ok := b.set.Resolve(elem); ok {
			pm.IsEnum = d.IsEnum
		} else if !descriptor.IsSimple(elem) && elem.Module != descriptor.PlatformModule {
			b.diags.AddWarning(diagnostic.CodeUnresolvedType,
				fmt.Sprintf("type %s is not described by any source and is treated as opaque", elem.FullName()),
				owner.Name, p.Name)
		}
	}

	switch {
	case pm.IsGeneric:
		pm.Type = descriptor.UnwrapNullable(ref.Args[0]).Name
		if pm.IsList {
			pm.Type = elem.Name
		}
	default:
		pm.Type = ref.Name
		b.squash(&pm, ref)
	}

	return pm
}

// squash collapses a wrapper type with exactly one simple (or nullable simple)
// property onto that property. Anything else leaves IsSquashedType false.
func (b *Builder) squash(pm *mapping.PropertyMapping, ref *descriptor.TypeRef) {
	d, ok := b.set.Resolve(ref)
	if !ok || d.IsEnum || !common.IsSingle(d.Properties) {
		return
	}

	inner := d.Properties[0]
	if inner.Type == nil || !descriptor.IsSimple(inner.Type) {
		return
	}

	value := descriptor.UnwrapNullable(inner.Type)
	if value.IsGeneric() {
		return
	}

	pm.IsSquashedType = true
	pm.IsNullable = value != inner.Type
	pm.Type = value.Name
	pm.SquashedValue = inner.Name
	pm.SquashedType = d.Name
}
