package stylesheets

import "fmt"

// DataValidity is the validity of the data derived from the stylesheets of
// an origin. Validity levels are ordered, higher levels requiring more work.
type DataValidity uint8

const (
	// Valid: all the data already there is valid, though there may be new
	// sheets at the end.
	Valid DataValidity = iota
	// CascadeInvalid: the cascade data is invalid, but not the invalidation
	// data (which is order-independent). Only the cascade data has to be
	// rebuilt.
	CascadeInvalid
	// FullyInvalid: everything needs to be rebuilt.
	FullyInvalid
)

func (v DataValidity) String() string {
	switch v {
	case Valid:
		return "Valid"
	case CascadeInvalid:
		return "CascadeInvalid"
	case FullyInvalid:
		return "FullyInvalid"
	}
	return fmt.Sprintf("DataValidity(%d)", v)
}

// SheetRebuildKind is the kind of rebuild a stylesheet needs.
type SheetRebuildKind uint8

const (
	Full        SheetRebuildKind = iota // rebuild cascade and invalidation data
	CascadeOnly                         // rebuild cascade data only
)

func (k SheetRebuildKind) String() string {
	if k == CascadeOnly {
		return "CascadeOnly"
	}
	return "Full"
}

// ShouldRebuildInvalidation is a predicate: does the invalidation data of
// the sheet have to be rebuilt?
func (k SheetRebuildKind) ShouldRebuildInvalidation() bool {
	return k == Full
}
