package stylesheets

import (
	"iter"
	"slices"

	"github.com/3j9fkyahunqoxwqu/servo/dom/style/cssom"
)

// Sheet is the capability the stylesheet types of this package require:
// access to a sheet's contents (and thus to its origin) under a read guard,
// and an equality relation.
type Sheet[S any] interface {
	cssom.StyleSheetInDocument
	Equal(other S) bool
}

// entry is a sheet tracked by a SheetCollection.
type entry[S Sheet[S]] struct {
	sheet     S
	committed bool // has the sheet been part of at least one flush?
}

// SheetCollection is the ordered list of stylesheets of one origin.
//
// Note that a collection may be dirty while its validity is Valid: after a
// sheet has been appended, existing data is still valid, but the new sheet
// has to be processed. A collection which is not dirty always has validity
// Valid.
type SheetCollection[S Sheet[S]] struct {
	entries  []entry[S] // top-level sheets only, without @import
	validity DataValidity
	dirty    bool
	lenient  bool // tolerate removal of sheets not in the collection
}

// Len returns the number of stylesheets in the collection.
func (c *SheetCollection[S]) Len() int {
	return len(c.entries)
}

// Get returns the stylesheet at position index, if present.
func (c *SheetCollection[S]) Get(index int) (S, bool) {
	if index < 0 || index >= len(c.entries) {
		var zero S
		return zero, false
	}
	return c.entries[index].sheet, true
}

// Contains is a predicate: is sheet a member of the collection?
func (c *SheetCollection[S]) Contains(sheet S) bool {
	return c.position(sheet) >= 0
}

func (c *SheetCollection[S]) position(sheet S) int {
	return slices.IndexFunc(c.entries, func(e entry[S]) bool {
		return e.sheet.Equal(sheet)
	})
}

// DataValidity returns the validity of data derived from the collection.
func (c *SheetCollection[S]) DataValidity() DataValidity {
	return c.validity
}

// Dirty is a predicate: has the collection changed since the last flush?
func (c *SheetCollection[S]) Dirty() bool {
	return c.dirty
}

// All iterates over the stylesheets in document order.
func (c *SheetCollection[S]) All() iter.Seq[S] {
	return func(yield func(S) bool) {
		for i := range c.entries {
			if !yield(c.entries[i].sheet) {
				return
			}
		}
	}
}

// Append appends sheet at the end of the collection. sheet must not be a
// member of the collection.
func (c *SheetCollection[S]) Append(sheet S) {
	assertThat(!c.Contains(sheet), "cannot append sheet already present")
	c.entries = append(c.entries, entry[S]{sheet: sheet})
	// Existing data stays valid, but we have to be marked dirty, otherwise
	// the new sheet would never be processed.
	c.dirty = true
}

// Prepend inserts sheet at the front of the collection. sheet must not be a
// member of the collection.
func (c *SheetCollection[S]) Prepend(sheet S) {
	assertThat(!c.Contains(sheet), "cannot prepend sheet already present")
	// Inserting anywhere but at the end changes the validity of the cascade
	// data, but not of the invalidation data.
	c.SetDataValidityAtLeast(CascadeInvalid)
	c.entries = slices.Insert(c.entries, 0, entry[S]{sheet: sheet})
}

// InsertBefore inserts sheet immediately before sheet before, which has to
// be a member of the collection. sheet must not be a member of the collection.
func (c *SheetCollection[S]) InsertBefore(sheet S, before S) {
	assertThat(!c.Contains(sheet), "cannot insert sheet already present")
	index := c.position(before)
	assertThat(index >= 0, "sheet to insert before not found")
	c.SetDataValidityAtLeast(CascadeInvalid)
	c.entries = slices.Insert(c.entries, index, entry[S]{sheet: sheet})
}

// Remove removes sheet from the collection. Removing a sheet which is not
// a member is an error, unless the collection has been configured to be
// lenient about it.
//
// If the sheet has been part of a flush, its data may already be part of
// the cascade and invalidation data, and everything has to be rebuilt.
// Otherwise removing it is free.
func (c *SheetCollection[S]) Remove(sheet S) {
	index := c.position(sheet)
	if index < 0 && c.lenient {
		tracer().Debugf("ignoring removal of sheet not present")
		return
	}
	assertThat(index >= 0, "cannot remove sheet not present")
	removed := c.entries[index]
	c.entries = slices.Delete(c.entries, index, index+1)
	if removed.committed {
		c.SetDataValidityAtLeast(FullyInvalid)
	} else {
		c.dirty = true
	}
}

// SetDataValidityAtLeast raises the validity level of the collection to
// at least validity and marks it dirty. It never lowers the level.
func (c *SheetCollection[S]) SetDataValidityAtLeast(validity DataValidity) {
	assertThat(validity != Valid, "cannot raise data validity to Valid")
	c.dirty = true
	c.validity = max(c.validity, validity)
}

// takeFlushState resets dirty flag and validity level, returning their
// values from before the reset.
func (c *SheetCollection[S]) takeFlushState() (bool, DataValidity) {
	wasDirty, validity := c.dirty, c.validity
	if !wasDirty {
		assertThat(validity == Valid, "clean collection with validity %s", validity)
		return false, Valid
	}
	c.dirty, c.validity = false, Valid
	return true, validity
}
