package analyze

import (
	"go/types"
	"reflect"
	"strings"
	"unicode"

	"mapping-generator/internal/descriptor"
)

// typeRef converts a Go field type into a descriptor reference.
func (a *Analyzer) typeRef(t types.Type) *descriptor.TypeRef {
	switch tt := t.(type) {
	case *types.Alias:
		return a.typeRef(types.Unalias(tt))

	case *types.Basic:
		return basicRef(tt)

	case *types.Pointer:
		// Pointers to structs are plain references; pointers to values are nullable.
		elem := a.typeRef(tt.Elem())
		if descriptor.IsSimple(elem) || a.isEnum(tt.Elem()) {
			return descriptor.NullableOf(elem)
		}

		return elem

	case *types.Slice:
		return descriptor.ListOf(a.typeRef(tt.Elem()))

	case *types.Array:
		return descriptor.ListOf(a.typeRef(tt.Elem()))

	case *types.Map:
		return descriptor.DictionaryOf(a.typeRef(tt.Key()), a.typeRef(tt.Elem()))

	case *types.Named:
		return a.namedRef(tt)

	default:
		// Interfaces, funcs, channels and anonymous structs are opaque.
		return descriptor.SimpleRef(descriptor.Object)
	}
}

func (a *Analyzer) namedRef(named *types.Named) *descriptor.TypeRef {
	obj := named.Obj()
	if obj.Pkg() == nil {
		// Universe types such as error.
		return descriptor.SimpleRef(descriptor.Object)
	}

	pkgPath := obj.Pkg().Path()

	if pkgPath == "time" {
		switch obj.Name() {
		case "Time":
			return descriptor.SimpleRef(descriptor.DateTime)
		case "Duration":
			return descriptor.SimpleRef(descriptor.Int64)
		}
	}

	if basic, ok := named.Underlying().(*types.Basic); ok && !a.isEnum(named) {
		return basicRef(basic)
	}

	ref := &descriptor.TypeRef{
		Name:      obj.Name(),
		Namespace: pkgPath,
		Module:    pkgPath,
	}

	if args := named.TypeArgs(); args != nil {
		for i := range args.Len() {
			ref.Args = append(ref.Args, a.typeRef(args.At(i)))
		}
	}

	return ref
}

func (a *Analyzer) isEnum(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	_, ok = a.enums[named.Obj()]

	return ok
}

// basicRef maps Go builtins onto the simple catalogue.
func basicRef(b *types.Basic) *descriptor.TypeRef {
	var name string

	switch b.Kind() {
	case types.Bool, types.UntypedBool:
		name = descriptor.Boolean
	case types.Int, types.Int64, types.UntypedInt:
		name = descriptor.Int64
	case types.Int32, types.UntypedRune:
		name = descriptor.Int32
	case types.Int16:
		name = descriptor.Int16
	case types.Int8:
		name = descriptor.SByte
	case types.Uint, types.Uint64, types.Uintptr:
		name = descriptor.UInt64
	case types.Uint32:
		name = descriptor.UInt32
	case types.Uint16:
		name = descriptor.UInt16
	case types.Uint8:
		name = descriptor.Byte
	case types.Float32:
		name = descriptor.Single
	case types.Float64, types.UntypedFloat:
		name = descriptor.Double
	case types.String, types.UntypedString:
		name = descriptor.String
	default:
		name = descriptor.Object
	}

	return descriptor.SimpleRef(name)
}

// tagKeys lists the keys of a struct tag in order, e.g. `json:"id" db:"id"`
// yields [json db].
func tagKeys(tag string) []string {
	var keys []string

	for tag != "" {
		tag = strings.TrimLeft(tag, " ")

		i := strings.IndexByte(tag, ':')
		if i <= 0 || i+1 >= len(tag) || tag[i+1] != '"' {
			break
		}

		key := tag[:i]
		if strings.ContainsAny(key, " \"") {
			break
		}

		if _, ok := reflect.StructTag(tag).Lookup(key); !ok {
			break
		}

		keys = append(keys, key)

		// Skip the quoted value, honoring escapes.
		j := i + 2
		for j < len(tag) && tag[j] != '"' {
			if tag[j] == '\\' {
				j++
			}

			j++
		}

		if j >= len(tag) {
			break
		}

		tag = tag[j+1:]
	}

	return keys
}

// tagIgnored reports a `json:"-"` field.
func tagIgnored(tag string) bool {
	return reflect.StructTag(tag).Get("json") == "-"
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return false
	}

	return true
}
