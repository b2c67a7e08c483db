// Package analyze turns Go packages into type descriptor sources.
//
// It uses golang.org/x/tools/go/packages with go/types to read exported
// named types:
//   - structs become complex descriptors, one property per exported field
//     (fields tagged json:"-" are skipped)
//   - named basic types with constants become enums
//   - named basic types without constants collapse to their simple type
//
// Field types are mapped onto the shared vocabulary: builtins to simple
// types, time.Time to DateTime, pointers to value types to Nullable, slices
// and arrays to List and maps to Dictionary.
package analyze
