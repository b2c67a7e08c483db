// Package match provides identifier tokenization, case conversion and fuzzy
// name suggestions.
//
// Key functions:
//   - Tokenize: splits CamelCase / snake_case identifiers into words
//   - Pascal, Camel, Snake: case conversions used by templates and generators
//   - Levenshtein: edit distance between strings
//   - Suggest: ranks known names against a misspelled one ("did you mean")
package match
