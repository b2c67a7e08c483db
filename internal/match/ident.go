package match

import (
	"strings"
	"unicode"
)

// Tokenize splits an identifier into words on separators (_ - space .) and
// case transitions:
//   - "OrderID" -> [Order ID]
//   - "XMLParser" -> [XML Parser]
//   - "unit_price" -> [unit price]
func Tokenize(s string) []string {
	var (
		words []string
		cur   []rune
	)

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			flush()
			continue
		}

		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}

		cur = append(cur, r)
	}

	flush()

	return words
}

// Normalize lowercases an identifier and drops separators.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(Tokenize(s), ""))
}

// Pascal converts an identifier to PascalCase, keeping acronyms intact
// ("order_id" -> "OrderId", "customerID" -> "CustomerID").
func Pascal(s string) string {
	var b strings.Builder

	for _, w := range Tokenize(s) {
		b.WriteString(upperFirst(w))
	}

	return b.String()
}

// Camel converts an identifier to camelCase ("OrderID" -> "orderID",
// "ID" -> "id").
func Camel(s string) string {
	words := Tokenize(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(strings.ToLower(words[0]))

	for _, w := range words[1:] {
		b.WriteString(upperFirst(w))
	}

	return b.String()
}

// Snake converts an identifier to snake_case.
func Snake(s string) string {
	words := Tokenize(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return strings.Join(words, "_")
}

// IsIdentifier reports whether s is a valid identifier in the generated
// languages: a letter or underscore followed by letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}

func upperFirst(w string) string {
	r := []rune(w)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}
