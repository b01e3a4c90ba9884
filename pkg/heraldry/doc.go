// Package heraldry defines the composition data model shared by every
// renderer: the field division, the ordered ordinary and charge layers, the
// immutable catalogs that name tinctures, line styles, divisions and charge
// arrangements, and the validation applied before any generation begins.
//
// Compositions are plain value records. The package never mutates a caller's
// composition; layer operations return fresh slices.
package heraldry
