// Package mapping defines the mapping file: the editable record of every type
// in a closure and how each of its properties is classified.
//
// Discovery writes the file; generation reads it. Between the two a user may
// edit it (rename properties, flip IsAReference, drop types), so the file is
// validated again before any generator runs.
//
// # Schema Overview
//
// The file is a sequence of mapping records. YAML uses snake_case keys:
//
//	- name: Order
//	  full_name: Shop.Sales.Order
//	  assembly: Shop
//	  is_main_type: true
//	  mappings:
//	    - name: Id
//	      transform_name: UniqueId
//	      type: Int32
//	    - name: Lines
//	      type: OrderLine
//	      is_generic: true
//	      is_list: true
//	- name: OrderStatus
//	  is_enum: true
//	  enum_members: [Pending, Paid]
//
// JSON files (by extension) use the PascalCase keys of the property names
// (Name, FullName, IsMainType, TransformName, DictionaryTypes, ...).
// Default-valued fields are omitted in both encodings.
//
// # Rename rules
//
// Rename rules ("Id>UniqueId;Order.Ref>OrderRef") set TransformName during
// discovery; see ParseRenameRules.
package mapping
