package gen

import (
	"strings"

	"mapping-generator/internal/errors"
	"mapping-generator/internal/match"
)

// Registry is the fixed set of generators known to the tool.
type Registry struct {
	generators []Generator
	byName     map[string]Generator
}

// NewRegistry indexes generators by name. Registering the same name twice
// is a programming error and panics.
func NewRegistry(generators ...Generator) *Registry {
	r := &Registry{byName: make(map[string]Generator, len(generators))}

	for _, g := range generators {
		if _, dup := r.byName[g.Name()]; dup {
			panic("gen: duplicate generator " + g.Name())
		}

		r.byName[g.Name()] = g
		r.generators = append(r.generators, g)
	}

	return r
}

// All returns the generators in registration order.
func (r *Registry) All() []Generator {
	return r.generators
}

// Get returns the generator registered under name.
func (r *Registry) Get(name string) (Generator, bool) {
	g, ok := r.byName[name]

	return g, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for _, g := range r.generators {
		names = append(names, g.Name())
	}

	return names
}

// Select returns the generators named in names, in the given order. No names
// selects everything. A name ending in ".*" selects a whole family, e.g.
// "csharp.*".
func (r *Registry) Select(names []string) ([]Generator, error) {
	if len(names) == 0 {
		return r.All(), nil
	}

	var (
		out  []Generator
		seen = make(map[string]bool)
	)

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		matched := r.match(name)
		if len(matched) == 0 {
			err := errors.Wrapf(errors.ErrConfig, "unknown generator %q", name)
			if suggestions := match.Suggest(name, r.Names(), 3); len(suggestions) > 0 {
				err = errors.WithHintf(err, "did you mean %s?", strings.Join(suggestions, ", "))
			}

			return nil, errors.WithHint(err, "run the generators command to list them")
		}

		for _, g := range matched {
			if !seen[g.Name()] {
				seen[g.Name()] = true
				out = append(out, g)
			}
		}
	}

	return out, nil
}

func (r *Registry) match(name string) []Generator {
	family, ok := strings.CutSuffix(name, ".*")
	if !ok {
		if g, found := r.byName[name]; found {
			return []Generator{g}
		}

		return nil
	}

	var out []Generator

	for _, g := range r.generators {
		if strings.HasPrefix(g.Name(), family+".") {
			out = append(out, g)
		}
	}

	return out
}
