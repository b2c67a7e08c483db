package mapping

import (
	"fmt"

	"mapping-generator/internal/diagnostic"
	"mapping-generator/internal/match"
)

// Validate checks a set for consistency before generation. Hand edits are
// the usual source of errors here.
func Validate(set *Set) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	seen := make(map[string]bool, set.Len())

	for _, m := range set.All() {
		if m.Name == "" {
			res.AddError(diagnostic.CodeInvalidName, "mapping without a name", m.FullName, "")
			continue
		}

		if seen[m.Key()] {
			res.AddError(diagnostic.CodeDuplicateMapping,
				fmt.Sprintf("duplicate mapping for %s in %q", m.Name, m.Assembly), m.Name, "")
		}

		seen[m.Key()] = true

		if m.IsEnum && len(m.Mappings) > 0 {
			res.AddError(diagnostic.CodeEnumWithProperties, "enum mapping carries property mappings", m.Name, "")
		}

		if !m.IsEnum && len(m.EnumMembers) > 0 {
			res.AddWarning(diagnostic.CodeEnumWithProperties, "enum members on a non-enum mapping are ignored", m.Name, "")
		}

		for i := range m.Mappings {
			validateProperty(res, m, &m.Mappings[i])
		}
	}

	return res
}

func validateProperty(res *diagnostic.Diagnostics, m *Mapping, p *PropertyMapping) {
	if p.Name == "" {
		res.AddError(diagnostic.CodeInvalidName, "property without a name", m.Name, "")
		return
	}

	if p.Type == "" {
		res.AddError(diagnostic.CodeInvalidName, "property without a type", m.Name, p.Name)
	}

	if p.TransformName != "" && !match.IsIdentifier(p.TransformName) {
		res.AddError(diagnostic.CodeInvalidTransform,
			fmt.Sprintf("transform name %q is not a valid identifier", p.TransformName), m.Name, p.Name)
	}

	if p.IsDictionary && len(p.DictionaryTypes) != 2 {
		res.AddError(diagnostic.CodeDictionaryTypes,
			fmt.Sprintf("dictionary needs [key, value] types, got %d", len(p.DictionaryTypes)), m.Name, p.Name)
	}

	if !p.IsDictionary && len(p.DictionaryTypes) > 0 {
		res.AddWarning(diagnostic.CodeDictionaryTypes, "dictionary types on a non-dictionary property are ignored", m.Name, p.Name)
	}

	if p.IsSquashedType && p.SquashedValue == "" {
		res.AddError(diagnostic.CodeSquash, "squashed property without a squashed value", m.Name, p.Name)
	}

	if p.IsSquashedType && p.IsGeneric {
		res.AddError(diagnostic.CodeSquash, "generic property cannot be squashed", m.Name, p.Name)
	}
}
