package descriptor

// Set is the ordered union of several sources with name lookup.
type Set struct {
	sources []Source
	types   []*TypeDescriptor
	byFull  map[string][]*TypeDescriptor
	byName  map[string][]*TypeDescriptor
}

// NewSet indexes the given sources. Order is preserved: Types lists the first
// source's descriptors first.
func NewSet(sources ...Source) *Set {
	s := &Set{
		byFull: make(map[string][]*TypeDescriptor),
		byName: make(map[string][]*TypeDescriptor),
	}

	for _, src := range sources {
		s.Add(src)
	}

	return s
}

// Add appends a source to the set.
func (s *Set) Add(src Source) {
	s.sources = append(s.sources, src)

	for _, d := range src.Types() {
		if d.Module == "" {
			d.Module = src.Name()
		}

		s.types = append(s.types, d)
		s.byFull[d.FullName()] = append(s.byFull[d.FullName()], d)
		s.byName[d.Name] = append(s.byName[d.Name], d)
	}
}

// Sources returns the sources in insertion order.
func (s *Set) Sources() []Source {
	return s.sources
}

// Types returns every descriptor in source order.
func (s *Set) Types() []*TypeDescriptor {
	return s.types
}

// Len returns the number of descriptors.
func (s *Set) Len() int {
	return len(s.types)
}

// Names returns every distinct short name, in source order.
func (s *Set) Names() []string {
	seen := make(map[string]bool, len(s.types))
	names := make([]string, 0, len(s.types))

	for _, d := range s.types {
		if seen[d.Name] {
			continue
		}

		seen[d.Name] = true
		names = append(names, d.Name)
	}

	return names
}

// FindByName returns the descriptors whose short name or full name equals name.
func (s *Set) FindByName(name string) []*TypeDescriptor {
	if found := s.byFull[name]; len(found) > 0 && found[0].Name != name {
		return found
	}

	return s.byName[name]
}

// Resolve finds the descriptor a non-generic reference designates.
// Qualified references match on full name; unqualified ones on short name.
// When several descriptors match, the one in the reference's module wins;
// if that is still ambiguous the reference is unresolved.
func (s *Set) Resolve(ref *TypeRef) (*TypeDescriptor, bool) {
	if ref == nil || ref.IsGeneric() {
		return nil, false
	}

	var candidates []*TypeDescriptor
	if ref.Namespace != "" {
		candidates = s.byFull[ref.FullName()]
	} else {
		candidates = s.byName[ref.Name]
	}

	return pick(candidates, ref.Module)
}

func pick(candidates []*TypeDescriptor, module string) (*TypeDescriptor, bool) {
	switch len(candidates) {
	case 0:
		return nil, false
	case 1:
		return candidates[0], true
	}

	var match *TypeDescriptor

	for _, c := range candidates {
		if c.Module != module {
			continue
		}

		if match != nil {
			return nil, false
		}

		match = c
	}

	return match, match != nil
}
