package mapping

import "mapping-generator/internal/common"

// Mapping describes one type of the closure. It is the unit every generator
// consumes, and what a user edits in the mapping file.
type Mapping struct {
	// Name is the short type name.
	Name string `json:"Name" yaml:"name"`

	// FullName is the namespace-qualified name; it separates output
	// directories when two mappings share a Name.
	FullName string `json:"FullName,omitempty" yaml:"full_name,omitempty"`

	// Assembly identifies the module that declares the type.
	Assembly string `json:"Assembly,omitempty" yaml:"assembly,omitempty"`

	// IsMainType marks the roots discovery started from.
	IsMainType bool `json:"IsMainType,omitempty" yaml:"is_main_type,omitempty"`

	IsEnum bool `json:"IsEnum,omitempty" yaml:"is_enum,omitempty"`

	// EnumMembers lists member names in declaration order (enums only).
	EnumMembers []string `json:"EnumMembers,omitempty" yaml:"enum_members,omitempty"`

	// IsAReference marks types that are looked up by key instead of being
	// copied field by field.
	IsAReference bool `json:"IsAReference,omitempty" yaml:"is_a_reference,omitempty"`

	// Mappings are the property mappings in declaration order.
	Mappings []PropertyMapping `json:"Mappings,omitempty" yaml:"mappings,omitempty"`
}

// PropertyMapping is the classification of one property.
type PropertyMapping struct {
	// Name is the property name on the source type.
	Name string `json:"Name" yaml:"name"`

	// TransformName renames the property on the generated side.
	TransformName string `json:"TransformName,omitempty" yaml:"transform_name,omitempty"`

	// Type is the element type name: the first generic argument for generic
	// properties, the inner type for squashed ones, else the declared name.
	Type string `json:"Type" yaml:"type"`

	IsGeneric    bool `json:"IsGeneric,omitempty" yaml:"is_generic,omitempty"`
	IsEnum       bool `json:"IsEnum,omitempty" yaml:"is_enum,omitempty"`
	IsList       bool `json:"IsList,omitempty" yaml:"is_list,omitempty"`
	IsNullable   bool `json:"IsNullable,omitempty" yaml:"is_nullable,omitempty"`
	IsDictionary bool `json:"IsDictionary,omitempty" yaml:"is_dictionary,omitempty"`

	// IsSquashedType marks a single-primitive wrapper collapsed onto its
	// inner property; SquashedValue names that property and SquashedType the
	// wrapper.
	IsSquashedType bool   `json:"IsSquashedType,omitempty" yaml:"is_squashed_type,omitempty"`
	SquashedValue  string `json:"SquashedValue,omitempty" yaml:"squashed_value,omitempty"`
	SquashedType   string `json:"SquashedType,omitempty" yaml:"squashed_type,omitempty"`

	// IsReadOnly properties have no setter on the source type.
	IsReadOnly bool `json:"IsReadOnly,omitempty" yaml:"is_read_only,omitempty"`

	// DictionaryTypes holds [key, value] type names for dictionaries.
	DictionaryTypes []string `json:"DictionaryTypes,omitempty" yaml:"dictionary_types,omitempty"`

	// Tags are the custom metadata names attached to the property.
	Tags []string `json:"Tags,omitempty" yaml:"tags,omitempty"`
}

// LocalName returns the name of the property on the generated side.
func (p *PropertyMapping) LocalName() string {
	if p.TransformName != "" {
		return p.TransformName
	}

	return p.Name
}

// DictionaryKey returns the dictionary key type name, or "".
func (p *PropertyMapping) DictionaryKey() string {
	if len(p.DictionaryTypes) != 2 {
		return ""
	}

	return p.DictionaryTypes[0]
}

// DictionaryValue returns the dictionary value type name, or "".
func (p *PropertyMapping) DictionaryValue() string {
	if len(p.DictionaryTypes) != 2 {
		return ""
	}

	return p.DictionaryTypes[1]
}

// HasTag reports whether the property carries the named tag.
func (p *PropertyMapping) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

// Property returns the property mapping with the given source name.
func (m *Mapping) Property(name string) (*PropertyMapping, bool) {
	for i := range m.Mappings {
		if m.Mappings[i].Name == name {
			return &m.Mappings[i], true
		}
	}

	return nil, false
}

// Key identifies a mapping by name and owning module.
func (m *Mapping) Key() string {
	return m.Assembly + "|" + m.Name
}

// Set is the ordered list of mappings with lookup by name.
type Set struct {
	mappings []*Mapping
	byName   map[string][]*Mapping
}

// NewSet builds a set over mappings, keeping their order.
func NewSet(mappings ...*Mapping) *Set {
	s := &Set{byName: make(map[string][]*Mapping, len(mappings))}

	for _, m := range mappings {
		s.Add(m)
	}

	return s
}

// Add appends a mapping.
func (s *Set) Add(m *Mapping) {
	s.mappings = append(s.mappings, m)
	s.byName[m.Name] = append(s.byName[m.Name], m)
}

// All returns the mappings in order.
func (s *Set) All() []*Mapping {
	return s.mappings
}

// Len returns the number of mappings.
func (s *Set) Len() int {
	return len(s.mappings)
}

// ByName returns the first mapping whose Name is name.
func (s *Set) ByName(name string) (*Mapping, bool) {
	return common.First(s.byName[name])
}

// Shared reports whether more than one mapping carries name.
func (s *Set) Shared(name string) bool {
	return len(s.byName[name]) > 1
}

// Names returns the mapping names in order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.mappings))
	for _, m := range s.mappings {
		names = append(names, m.Name)
	}

	return names
}
