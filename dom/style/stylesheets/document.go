package stylesheets

import (
	"iter"

	"github.com/3j9fkyahunqoxwqu/servo/dom/style/cssom"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/invalidation"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/sharedlock"
	"golang.org/x/net/html"
)

// DocumentSet is the set of stylesheets effective for a document, with one
// collection of sheets per cascade origin.
//
// The zero value is not usable, please use NewDocumentSet.
type DocumentSet[S Sheet[S]] struct {
	sheetSetOps[S]
	collections cssom.PerOrigin[SheetCollection[S]]
}

// NewDocumentSet creates an empty stylesheet set for a document.
func NewDocumentSet[S Sheet[S]](opts ...Option) *DocumentSet[S] {
	s := applyOptions(opts)
	set := &DocumentSet[S]{}
	set.init("DocumentSet", set, s)
	for origin, c := range set.collections.All() {
		c.lenient = s.options.LenientRemoval.Contains(origin)
	}
	return set
}

func (set *DocumentSet[S]) collectionFor(sheet S, guard *sharedlock.ReadGuard) *SheetCollection[S] {
	origin := sheet.Contents(guard).Origin
	return set.collections.For(origin)
}

// Len returns the number of stylesheets in the set.
func (set *DocumentSet[S]) Len() int {
	n := 0
	for _, c := range set.collections.All() {
		n += c.Len()
	}
	return n
}

// Get returns the index-th stylesheet of an origin, if present.
func (set *DocumentSet[S]) Get(origin cssom.Origin, index int) (S, bool) {
	return set.collections.For(origin).Get(index)
}

// HasChanged returns whether the set has changed since the last flush.
func (set *DocumentSet[S]) HasChanged() bool {
	for _, c := range set.collections.All() {
		if c.Dirty() {
			return true
		}
	}
	return false
}

// DataValidity returns the current validity of the data of an origin.
func (set *DocumentSet[S]) DataValidity(origin cssom.Origin) DataValidity {
	return set.collections.For(origin).DataValidity()
}

// All iterates over the stylesheets of all origins, in origin order and
// document order within an origin.
func (set *DocumentSet[S]) All() iter.Seq2[S, cssom.Origin] {
	return func(yield func(S, cssom.Origin) bool) {
		for origin, c := range set.collections.All() {
			for sheet := range c.All() {
				if !yield(sheet, origin) {
					return
				}
			}
		}
	}
}

// ForceDirty marks the stylesheets of the given origins as fully invalid,
// because something external may have invalidated them.
func (set *DocumentSet[S]) ForceDirty(origins cssom.OriginSet) {
	tracer().P("origins", origins).Debugf("DocumentSet.ForceDirty")
	set.assertNotFlushing("ForceDirty")
	set.invalidations.InvalidateFully()
	for origin := range origins.All() {
		// we don't know what happened, assume the worst
		set.collections.For(origin).SetDataValidityAtLeast(FullyInvalid)
	}
}

// Flush flushes the set, un-marking it as dirty, and returns a Flusher to
// rebuild derived data from. root is the document element, which may be
// nil if there is no document to invalidate yet. snapshots hold the state
// of elements before the latest DOM mutations.
//
// The set may not be mutated until Finish is called on the flusher.
func (set *DocumentSet[S]) Flush(root *html.Node, snapshots invalidation.SnapshotMap) *Flusher[S] {
	tracer().Debugf("DocumentSet.Flush")
	if set.options.TraceFlush {
		tracer().Debugf("flushing\n%s", set.Dump())
	}
	flusher := &Flusher[S]{
		flushSession: set.beginFlush(root, snapshots),
		collections:  &set.collections,
	}
	for origin, c := range set.collections.All() {
		wasDirty, validity := c.takeFlushState()
		if !wasDirty {
			continue
		}
		flusher.originsDirty = flusher.originsDirty.Insert(origin)
		*flusher.originValidity.For(origin) = validity
	}
	tracer().P("dirty", flusher.originsDirty).Debugf("flush snapshot taken")
	return flusher
}

// FlushWithoutInvalidation flushes the set without running any of the
// invalidation passes and without handing out sheets. It returns the origins
// which have been dirty.
//
// Sheets not flushed before remain uncommitted. As the collections are
// clean afterwards, the next regular flush reports nothing to do for their
// origin; they are reported for a full rebuild once the origin gets dirty
// again.
func (set *DocumentSet[S]) FlushWithoutInvalidation() cssom.OriginSet {
	tracer().Debugf("DocumentSet.FlushWithoutInvalidation")
	set.assertNotFlushing("FlushWithoutInvalidation")
	set.invalidations.Clear()
	var dirty cssom.OriginSet
	for origin, c := range set.collections.All() {
		if wasDirty, _ := c.takeFlushState(); wasDirty {
			dirty = dirty.Insert(origin)
		}
	}
	return dirty
}
