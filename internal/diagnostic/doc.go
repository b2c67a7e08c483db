// Package diagnostic provides structured errors, warnings and infos for
// discovery and mapping file validation.
//
// Key capabilities:
//   - Unknown or ambiguous root types, with "did you mean" suggestions
//   - Unresolved property types (opaque, reported as warnings)
//   - Mapping file consistency checks
package diagnostic
