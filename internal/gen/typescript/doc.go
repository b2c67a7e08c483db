// Package typescript generates TypeScript enums, interfaces and the
// functions that shape plain JSON objects into those interfaces.
package typescript
