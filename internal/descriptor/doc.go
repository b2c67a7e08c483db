// Package descriptor models the static type graph the generator works from.
//
// A Source supplies TypeDescriptors for one module; a Set merges several
// sources and resolves TypeRefs against them. References that no source can
// resolve are opaque: they are never expanded and never reported as errors.
//
// # Simple types
//
// Every source speaks the same small vocabulary for primitives (Boolean,
// Int32, String, DateTime, ...) in the System namespace. Nullable, List and
// Dictionary shapes wrap them; see ShapeOf.
//
// # Descriptor files
//
// Descriptor files (YAML, JSON or TOML) declare types with compact type
// expressions:
//
//	module: Shop.Domain
//	namespace: Shop.Domain
//	types:
//	  - name: Order
//	    properties:
//	      - { name: Id, type: int }
//	      - { name: Lines, type: "List<OrderLine>" }
//	      - { name: Status, type: "OrderStatus?" }
//	  - name: OrderStatus
//	    enum: [Pending, Paid]
package descriptor
