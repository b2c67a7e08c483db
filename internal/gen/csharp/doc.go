// Package csharp generates C# sources from mappings: enums, classes (plain
// and with nullable value fields) and the static populate methods that copy
// values between the source types and the generated classes.
package csharp
