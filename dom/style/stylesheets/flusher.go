package stylesheets

import (
	"iter"

	"github.com/3j9fkyahunqoxwqu/servo/dom/style/cssom"
)

// Flusher hands out the stylesheets to be processed after a flush of a
// DocumentSet. The dirty origins and their validity have been snapshotted
// (and reset in the set) at the time of the flush.
//
// Clients must call Finish when done; until then the set may not be
// mutated.
type Flusher[S Sheet[S]] struct {
	flushSession[S]
	collections    *cssom.PerOrigin[SheetCollection[S]]
	originsDirty   cssom.OriginSet
	originValidity cssom.PerOrigin[DataValidity]
}

// NothingToDo returns whether running the whole flushing process would be
// a no-op.
func (f *Flusher[S]) NothingToDo() bool {
	return f.originsDirty.IsEmpty()
}

// OriginDirty returns whether the data of an origin is dirty in any way.
func (f *Flusher[S]) OriginDirty(origin cssom.Origin) bool {
	return f.originsDirty.Contains(origin)
}

// DirtyOrigins returns the set of dirty origins.
func (f *Flusher[S]) DirtyOrigins() cssom.OriginSet {
	return f.originsDirty
}

// DataValidity returns the validity of the data of origin, as it was at the
// time of the flush.
func (f *Flusher[S]) DataValidity(origin cssom.Origin) DataValidity {
	return *f.originValidity.For(origin)
}

// OriginSheets returns a cursor over the sheets of origin which need to be
// processed, together with the kind of rebuild each one needs.
func (f *Flusher[S]) OriginSheets(origin cssom.Origin) *CollectionFlusher[S] {
	f.assertLive()
	validity := f.DataValidity(origin)
	assertThat(f.OriginDirty(origin) || validity == Valid,
		"origin %s has validity %s but is not dirty", origin, validity)
	return newCollectionFlusher(&f.flushSession, f.collections.For(origin), validity)
}

// ManualOriginSheets iterates over all the sheets of an origin, assuming
// all of them will be flushed by the client. Contrary to OriginSheets it
// does not mark any sheet as committed.
//
// This is only supported for user-agent sheets. Note that as a consequence,
// removing user-agent sheets will not correctly force a full rebuild if
// clients use this method instead of OriginSheets.
func (f *Flusher[S]) ManualOriginSheets(origin cssom.Origin) iter.Seq[S] {
	f.assertLive()
	assertThat(origin == cssom.UserAgent, "manual flushing of %s sheets not supported", origin)
	return f.collections.For(origin).All()
}

// AuthorFlusher hands out the stylesheets to be processed after a flush of
// an AuthorSet.
//
// Clients must call Finish when done; until then the set may not be
// mutated.
type AuthorFlusher[S Sheet[S]] struct {
	flushSession[S]
	collection *SheetCollection[S]
	dirty      bool
	validity   DataValidity
}

// NothingToDo returns whether running the whole flushing process would be
// a no-op.
func (f *AuthorFlusher[S]) NothingToDo() bool {
	return !f.dirty
}

// DataValidity returns the validity of the data of the set, as it was at
// the time of the flush.
func (f *AuthorFlusher[S]) DataValidity() DataValidity {
	return f.validity
}

// Sheets returns a cursor over the sheets which need to be processed.
func (f *AuthorFlusher[S]) Sheets() *CollectionFlusher[S] {
	f.assertLive()
	assertThat(f.dirty || f.validity == Valid, "validity %s but set is not dirty", f.validity)
	return newCollectionFlusher(&f.flushSession, f.collection, f.validity)
}

// --- Cursor ----------------------------------------------------------------

// CollectionFlusher is a one-pass cursor over the sheets of one collection
// which need work after a flush.
//
// Sheets which have never been flushed before need a full rebuild. For all
// other sheets the kind of rebuild depends on the validity of the
// collection at flush time: none at all if the data is valid (these sheets
// are skipped), a rebuild of the cascade data, or a full rebuild.
//
// Clients should drain the cursor completely. An abandoned cursor leaves
// the remaining sheets untouched; they will be treated the same way on the
// next flush.
type CollectionFlusher[S Sheet[S]] struct {
	session  *flushSession[S]
	entries  []entry[S]
	pos      int
	validity DataValidity
}

func newCollectionFlusher[S Sheet[S]](session *flushSession[S], c *SheetCollection[S],
	validity DataValidity) *CollectionFlusher[S] {
	//
	return &CollectionFlusher[S]{
		session:  session,
		entries:  c.entries,
		validity: validity,
	}
}

// Next returns the next sheet to process and the kind of rebuild it needs.
// If the cursor is exhausted, ok is false.
func (cf *CollectionFlusher[S]) Next() (sheet S, kind SheetRebuildKind, ok bool) {
	cf.session.assertLive()
	for cf.pos < len(cf.entries) {
		e := &cf.entries[cf.pos]
		cf.pos++
		committed := e.committed
		e.committed = true
		if !committed {
			// never part of a flush => full rebuild, regardless of validity
			return e.sheet, Full, true
		}
		switch cf.validity {
		case Valid:
			continue
		case CascadeInvalid:
			return e.sheet, CascadeOnly, true
		default:
			return e.sheet, Full, true
		}
	}
	return sheet, Full, false
}

// All drains the cursor.
func (cf *CollectionFlusher[S]) All() iter.Seq2[S, SheetRebuildKind] {
	return func(yield func(S, SheetRebuildKind) bool) {
		for {
			sheet, kind, ok := cf.Next()
			if !ok || !yield(sheet, kind) {
				return
			}
		}
	}
}
