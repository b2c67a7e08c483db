package discover

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"mapping-generator/internal/descriptor"
	"mapping-generator/internal/diagnostic"
	"mapping-generator/internal/errors"
	"mapping-generator/internal/logger"
	"mapping-generator/internal/mapping"
	"mapping-generator/internal/match"
)

// Options control discovery.
type Options struct {
	// Roots are the type names discovery starts from. Short or full names.
	Roots []string
	// References lists type names (short or full) whose mappings are marked
	// IsAReference.
	References []string
	// Renames set TransformName on matching properties.
	Renames *mapping.RenameRules
	// ExcludeModules are removed from the closure after expansion. Empty
	// means descriptor.PlatformModule.
	ExcludeModules []string
}

// Builder computes the closure of a set of roots and classifies it into
// mappings. A Builder is single use.
type Builder struct {
	set    *descriptor.Set
	opts   Options
	logger *zap.SugaredLogger
	diags  diagnostic.Diagnostics

	usedRenames map[string]bool
}

// NewBuilder creates a Builder over the given descriptors.
func NewBuilder(set *descriptor.Set, opts Options, log *zap.SugaredLogger) *Builder {
	if len(opts.ExcludeModules) == 0 {
		opts.ExcludeModules = []string{descriptor.PlatformModule}
	}

	return &Builder{
		set:         set,
		opts:        opts,
		logger:      logger.OrNop(log),
		usedRenames: make(map[string]bool),
	}
}

// Diagnostics returns the findings collected so far.
func (b *Builder) Diagnostics() *diagnostic.Diagnostics {
	return &b.diags
}

// ResolveRoots maps every root name to exactly one descriptor.
// Unknown names fail with ErrUnknownRoot, names declared more than once with
// ErrAmbiguousRoot; both carry suggestions as hints.
func (b *Builder) ResolveRoots() ([]*descriptor.TypeDescriptor, error) {
	if len(b.opts.Roots) == 0 {
		return nil, errors.WithHint(errors.Wrap(errors.ErrConfig, "no root types"), "pass --types")
	}

	var (
		roots   []*descriptor.TypeDescriptor
		res     diagnostic.Diagnostics
		unknown bool
	)

	for _, name := range b.opts.Roots {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		found := b.set.FindByName(name)

		switch len(found) {
		case 0:
			unknown = true

			res.AddError(diagnostic.CodeUnknownRoot, "no source declares this type", name, "",
				match.Suggest(name, b.set.Names(), 3)...)
		case 1:
			if !slices.Contains(roots, found[0]) {
				roots = append(roots, found[0])
			}
		default:
			var full []string
			for _, d := range found {
				full = append(full, d.FullName())
			}

			res.AddError(diagnostic.CodeAmbiguousRoot, "declared by more than one source", name, "", full...)
		}
	}

	if unknown {
		return nil, res.Err(errors.ErrUnknownRoot)
	}

	if err := res.Err(errors.ErrAmbiguousRoot); err != nil {
		return nil, err
	}

	if len(roots) == 0 {
		return nil, errors.WithHint(errors.Wrap(errors.ErrConfig, "no root types"), "pass --types")
	}

	return roots, nil
}

// Closure expands roots to every complex type reachable through property
// declarations. The result lists roots first, then types in discovery order,
// without types of excluded modules. Expansion repeats until a full pass adds
// nothing, so feeding the result back in as roots yields the same set.
func (b *Builder) Closure(roots []*descriptor.TypeDescriptor) []*descriptor.TypeDescriptor {
	known := make([]*descriptor.TypeDescriptor, 0, len(roots))
	seen := make(map[*descriptor.TypeDescriptor]bool, len(roots))

	add := func(d *descriptor.TypeDescriptor) bool {
		if seen[d] {
			return false
		}

		seen[d] = true
		known = append(known, d)

		return true
	}

	for _, r := range roots {
		add(r)
	}

	for pass := 1; ; pass++ {
		added := 0

		// Types appended during the pass are visited by the next one.
		snapshot := known

		for _, t := range snapshot {
			for _, p := range t.Properties {
				for _, ref := range b.expansionRefs(p.Type) {
					if d, ok := b.set.Resolve(ref); ok && add(d) {
						added++
					}
				}
			}
		}

		b.logger.Debugw("closure pass", "pass", pass, "added", added, "known", len(known))

		if added == 0 {
			break
		}
	}

	return slices.DeleteFunc(known, func(d *descriptor.TypeDescriptor) bool {
		return slices.Contains(b.opts.ExcludeModules, d.Module)
	})
}

// expansionRefs returns the references a property contributes to the
// closure: nothing for simple (or generic-over-simple) non-enum types, the
// generic arguments for generic types, the declared type otherwise.
func (b *Builder) expansionRefs(ref *descriptor.TypeRef) []*descriptor.TypeRef {
	if ref == nil {
		return nil
	}

	if (descriptor.IsSimple(ref) || descriptor.IsGenericSimple(ref)) && !b.isEnumOrNullableEnum(ref) {
		return nil
	}

	if ref.IsGeneric() {
		return leafArgs(ref, nil)
	}

	return []*descriptor.TypeRef{ref}
}

// leafArgs collects the non-generic arguments of ref, descending into nested
// generic arguments (List<List<Order>> yields Order).
func leafArgs(ref *descriptor.TypeRef, out []*descriptor.TypeRef) []*descriptor.TypeRef {
	for _, a := range ref.Args {
		if a.IsGeneric() {
			out = leafArgs(a, out)
		} else {
			out = append(out, a)
		}
	}

	return out
}

func (b *Builder) isEnumOrNullableEnum(ref *descriptor.TypeRef) bool {
	d, ok := b.set.Resolve(descriptor.UnwrapNullable(ref))

	return ok && d.IsEnum
}
