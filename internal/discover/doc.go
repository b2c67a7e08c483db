// Package discover computes the closure of a set of root types and
// classifies every property of it into the mapping model.
//
// Expansion works over a descriptor.Set in passes: each pass walks every
// known type and adds the complex types its properties refer to. Simple
// types and generics over simple types are skipped unless an enum is
// involved; generic types contribute their arguments, descending into
// nested generics. Types no source describes stay opaque. Types of the
// excluded modules (the platform module by default) are dropped at the end.
//
// Classification follows the shape of the declared type:
//
//	Nullable<T>           IsNullable, Type = T
//	List<T>, List<T?>     IsList (and IsNullable), Type = T
//	Dictionary<K, V>      IsDictionary, DictionaryTypes = [K, V], Type = K
//	Wrapper{Value simple} IsSquashedType, Type = simple, SquashedValue = Value
package discover
