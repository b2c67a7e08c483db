// Package gen runs code generators over a mapping set.
//
// A Generator turns one mapping into the text of one artifact, or into
// nothing when it does not apply (an enum generator given a class). The
// Runner applies every selected generator to every mapping, isolating
// failures per pair, and hands the artifacts to a Sink:
//
//	<output>/<mapping name>/<generator name><extension>
//
// Mapping names shared by several modules use the full name as directory.
// Generators read naming options and the whole set through an explicit
// Context; nothing is global.
//
// Concrete generators live in the csharp, typescript, golang and tmpl
// subpackages; builtin lists them.
package gen
