package stylesheets

import (
	"iter"

	"github.com/3j9fkyahunqoxwqu/servo/dom/style/cssom"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/invalidation"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/sharedlock"
	"golang.org/x/net/html"
)

// AuthorSet is the set of stylesheets effective for a sub-tree of a
// document, e.g. a shadow root. All of its sheets live in a single
// collection, regardless of their origin.
//
// The zero value is not usable, please use NewAuthorSet.
type AuthorSet[S Sheet[S]] struct {
	sheetSetOps[S]
	collection SheetCollection[S]
}

// NewAuthorSet creates an empty stylesheet set for a sub-tree.
// Lenient removal applies if the options list the author origin.
func NewAuthorSet[S Sheet[S]](opts ...Option) *AuthorSet[S] {
	s := applyOptions(opts)
	set := &AuthorSet[S]{}
	set.init("AuthorSet", set, s)
	set.collection.lenient = s.options.LenientRemoval.Contains(cssom.Author)
	return set
}

func (set *AuthorSet[S]) collectionFor(S, *sharedlock.ReadGuard) *SheetCollection[S] {
	return &set.collection
}

// Len returns the number of stylesheets in the set.
func (set *AuthorSet[S]) Len() int {
	return set.collection.Len()
}

// Get returns the index-th stylesheet, if present.
func (set *AuthorSet[S]) Get(index int) (S, bool) {
	return set.collection.Get(index)
}

// HasChanged returns whether the set has changed since the last flush.
func (set *AuthorSet[S]) HasChanged() bool {
	return set.collection.Dirty()
}

// DataValidity returns the current validity of the data of the set.
func (set *AuthorSet[S]) DataValidity() DataValidity {
	return set.collection.DataValidity()
}

// All iterates over the stylesheets in document order.
func (set *AuthorSet[S]) All() iter.Seq[S] {
	return set.collection.All()
}

// ForceDirty marks the stylesheets as fully invalid, because something
// external may have invalidated them.
func (set *AuthorSet[S]) ForceDirty() {
	tracer().Debugf("AuthorSet.ForceDirty")
	set.assertNotFlushing("ForceDirty")
	set.invalidations.InvalidateFully()
	set.collection.SetDataValidityAtLeast(FullyInvalid)
}

// Flush flushes the set, un-marking it as dirty, and returns an
// AuthorFlusher to rebuild derived data from. root is the root element of
// the sub-tree, which may be nil.
//
// The set may not be mutated until Finish is called on the flusher.
func (set *AuthorSet[S]) Flush(root *html.Node, snapshots invalidation.SnapshotMap) *AuthorFlusher[S] {
	tracer().Debugf("AuthorSet.Flush")
	if set.options.TraceFlush {
		tracer().Debugf("flushing\n%s", set.Dump())
	}
	flusher := &AuthorFlusher[S]{
		flushSession: set.beginFlush(root, snapshots),
		collection:   &set.collection,
	}
	flusher.dirty, flusher.validity = set.collection.takeFlushState()
	return flusher
}
