package mapping

import (
	"strings"

	"mapping-generator/internal/errors"
	"mapping-generator/internal/match"
)

// RenameRule renames a property on the generated side. An empty Type applies
// the rule to every type that has the property.
type RenameRule struct {
	Type     string
	Property string
	To       string
}

// RenameRules holds rename rules keyed by property name. Rules qualified
// with a type take precedence over global ones.
type RenameRules struct {
	rules  []RenameRule
	global map[string]string
	scoped map[string]string
}

// ParseRenameRules parses "Id>UniqueId;Order.Ref>OrderRef". Rules are
// separated by ';' or ','; blank entries are ignored. Each target must be a
// valid identifier.
func ParseRenameRules(s string) (*RenameRules, error) {
	r := &RenameRules{
		global: make(map[string]string),
		scoped: make(map[string]string),
	}

	for _, entry := range strings.FieldsFunc(s, func(c rune) bool { return c == ';' || c == ',' }) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		from, to, ok := strings.Cut(entry, ">")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)

		if !ok || from == "" || to == "" {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrConfig, "malformed rename rule %q", entry),
				"rules look like Id>UniqueId or Order.Id>OrderId, separated by ';'",
			)
		}

		if !match.IsIdentifier(to) {
			return nil, errors.Wrapf(errors.ErrConfig, "rename rule %q: %q is not a valid identifier", entry, to)
		}

		rule := RenameRule{Property: from, To: to}
		if i := strings.LastIndexByte(from, '.'); i >= 0 {
			rule.Type, rule.Property = from[:i], from[i+1:]
		}

		if rule.Type == "" {
			r.global[rule.Property] = rule.To
		} else {
			r.scoped[rule.Type+"."+rule.Property] = rule.To
		}

		r.rules = append(r.rules, rule)
	}

	return r, nil
}

// Lookup returns the new name for property on typeName, if a rule applies.
func (r *RenameRules) Lookup(typeName, property string) (string, bool) {
	if r == nil {
		return "", false
	}

	if to, ok := r.scoped[typeName+"."+property]; ok {
		return to, true
	}

	to, ok := r.global[property]

	return to, ok
}

// Rules returns the parsed rules in input order.
func (r *RenameRules) Rules() []RenameRule {
	if r == nil {
		return nil
	}

	return r.rules
}

// Len returns the number of rules.
func (r *RenameRules) Len() int {
	if r == nil {
		return 0
	}

	return len(r.rules)
}
