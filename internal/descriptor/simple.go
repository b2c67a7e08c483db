package descriptor

// Simple type names. They are the interchange vocabulary between sources,
// the mapping file and the generators.
const (
	Boolean        = "Boolean"
	Byte           = "Byte"
	Char           = "Char"
	DateTime       = "DateTime"
	DateTimeOffset = "DateTimeOffset"
	Decimal        = "Decimal"
	Double         = "Double"
	Int16          = "Int16"
	Int32          = "Int32"
	Int64          = "Int64"
	SByte          = "SByte"
	Single         = "Single"
	String         = "String"
	UInt16         = "UInt16"
	UInt32         = "UInt32"
	UInt64         = "UInt64"

	// Object is the opaque catch-all used for types no source can describe.
	Object = "Object"
)

var simpleNames = map[string]bool{
	Boolean:        true,
	Byte:           true,
	Char:           true,
	DateTime:       true,
	DateTimeOffset: true,
	Decimal:        true,
	Double:         true,
	Int16:          true,
	Int32:          true,
	Int64:          true,
	SByte:          true,
	Single:         true,
	String:         true,
	UInt16:         true,
	UInt32:         true,
	UInt64:         true,
}

// keywordAliases maps C#-style keywords onto the simple catalogue.
var keywordAliases = map[string]string{
	"bool":    Boolean,
	"byte":    Byte,
	"char":    Char,
	"decimal": Decimal,
	"double":  Double,
	"float":   Single,
	"int":     Int32,
	"long":    Int64,
	"sbyte":   SByte,
	"short":   Int16,
	"string":  String,
	"uint":    UInt32,
	"ulong":   UInt64,
	"ushort":  UInt16,
	"object":  Object,
}

// IsSimpleName reports whether name is in the simple catalogue.
func IsSimpleName(name string) bool {
	return simpleNames[name]
}

// IsValueTypeName reports whether name is a simple type that cannot hold null
// on its own (every simple type except String).
func IsValueTypeName(name string) bool {
	return simpleNames[name] && name != String
}

// SimpleRef returns the platform reference for a simple (or Object) name.
func SimpleRef(name string) *TypeRef {
	return &TypeRef{Name: name, Namespace: SystemNamespace, Module: PlatformModule}
}

// IsSimple reports whether r is a simple type or a Nullable of one.
func IsSimple(r *TypeRef) bool {
	if r == nil {
		return false
	}

	r = UnwrapNullable(r)
	if r.IsGeneric() {
		return false
	}

	return (r.Namespace == "" || r.Namespace == SystemNamespace) && IsSimpleName(r.Name)
}

// IsGenericSimple reports whether r is generic and every argument is simple.
func IsGenericSimple(r *TypeRef) bool {
	if r == nil || !r.IsGeneric() {
		return false
	}

	for _, a := range r.Args {
		if !IsSimple(a) {
			return false
		}
	}

	return true
}
