package discover

import (
	"fmt"
	"slices"

	"mapping-generator/internal/descriptor"
	"mapping-generator/internal/diagnostic"
	"mapping-generator/internal/errors"
	"mapping-generator/internal/mapping"
)

// Result is the outcome of a discovery run.
type Result struct {
	// Mappings holds one mapping per closure type, in closure order.
	Mappings *mapping.Set
	// Roots are the resolved root descriptors.
	Roots []*descriptor.TypeDescriptor
	// Closure lists the descriptors the mappings were built from.
	Closure []*descriptor.TypeDescriptor
	// Diagnostics are the warnings and infos gathered on the way.
	Diagnostics *diagnostic.Diagnostics
}

// Build resolves the roots, computes their closure and classifies every
// type into a mapping. The produced set is validated before it is returned.
func (b *Builder) Build() (*Result, error) {
	roots, err := b.ResolveRoots()
	if err != nil {
		return nil, err
	}

	closure := b.Closure(roots)
	set := mapping.NewSet()

	for _, d := range closure {
		set.Add(b.mappingFor(d, slices.Contains(roots, d)))
	}

	res := mapping.Validate(set)
	if res.HasErrors() {
		return nil, errors.WithHint(res.Err(errors.ErrConfig), "check --transform for names that are not identifiers")
	}

	b.diags.Merge(*res)

	b.checkUnusedRenames()
	b.diags.Log(b.logger)

	b.logger.Infow("discovery finished",
		"roots", len(roots),
		"types", set.Len(),
		"warnings", len(b.diags.Warnings),
	)

	return &Result{
		Mappings:    set,
		Roots:       roots,
		Closure:     closure,
		Diagnostics: &b.diags,
	}, nil
}

func (b *Builder) mappingFor(d *descriptor.TypeDescriptor, root bool) *mapping.Mapping {
	m := &mapping.Mapping{
		Name:         d.Name,
		FullName:     d.FullName(),
		Assembly:     d.Module,
		IsMainType:   root,
		IsEnum:       d.IsEnum,
		IsAReference: b.isReference(d),
	}

	if d.IsEnum {
		m.EnumMembers = slices.Clone(d.EnumMembers)
		return m
	}

	for _, p := range d.Properties {
		m.Mappings = append(m.Mappings, b.Classify(d, p))
	}

	return m
}

func (b *Builder) isReference(d *descriptor.TypeDescriptor) bool {
	return slices.Contains(b.opts.References, d.Name) || slices.Contains(b.opts.References, d.FullName())
}

// checkUnusedRenames warns about rules that matched no property of the
// closure; they usually carry a typo.
func (b *Builder) checkUnusedRenames() {
	for _, r := range b.opts.Renames.Rules() {
		key := r.Property
		if r.Type != "" {
			key = r.Type + "." + r.Property
		}

		if !b.usedRenames[key] {
			b.diags.AddWarning(diagnostic.CodeUnusedTransform,
				fmt.Sprintf("rename %s>%s matched no property", key, r.To), r.Type, r.Property)
		}
	}
}
