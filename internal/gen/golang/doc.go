// Package golang generates Go declarations from mappings: a string-backed
// type with constants per enum and a struct with json tags per class.
//
// Generation uses text/template + go/format. Output that does not format
// (usually an odd --reference-format) is reported as gen.UnformattedError
// so the raw text can be inspected.
package golang
