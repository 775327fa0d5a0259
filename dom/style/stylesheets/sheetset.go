package stylesheets

import (
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/cssom"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/invalidation"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/media"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/sharedlock"
	"golang.org/x/net/html"
)

// Invalidator collects DOM invalidations for stylesheet changes.
// Package invalidation provides the default implementation.
type Invalidator interface {
	// CollectInvalidationsFor is called once for every sheet added or removed,
	// before the set is changed.
	CollectInvalidationsFor(device *media.Device, sheet cssom.StyleSheetInDocument,
		guard *sharedlock.ReadGuard)
	// Flush processes the collected invalidations for the document rooted at
	// root and reports whether any element has been invalidated.
	Flush(root *html.Node, snapshots invalidation.SnapshotMap) bool
	// InvalidateFully marks the whole document as invalid.
	InvalidateFully()
	// Clear drops all collected invalidations.
	Clear()
}

var _ Invalidator = (*invalidation.StylesheetInvalidationSet)(nil)

// collectionLocator finds the collection a sheet belongs to.
type collectionLocator[S Sheet[S]] interface {
	collectionFor(sheet S, guard *sharedlock.ReadGuard) *SheetCollection[S]
}

// sheetSetOps holds the operations common to DocumentSet and AuthorSet.
// The two differ only in how they locate the collection for a sheet.
type sheetSetOps[S Sheet[S]] struct {
	name          string // for tracing
	locator       collectionLocator[S]
	invalidations Invalidator
	options       Options
	flushing      bool   // is a Flusher alive?
	generation    uint64 // counts flushes
}

func (ops *sheetSetOps[S]) init(name string, locator collectionLocator[S], s settings) {
	ops.name = name
	ops.locator = locator
	ops.invalidations = s.invalidations
	ops.options = s.options
}

func (ops *sheetSetOps[S]) assertNotFlushing(op string) {
	assertThat(!ops.flushing, "%s.%s called while a flush is in progress", ops.name, op)
}

func (ops *sheetSetOps[S]) collectInvalidationsFor(device *media.Device, sheet S,
	guard *sharedlock.ReadGuard) {
	//
	if device != nil {
		ops.invalidations.CollectInvalidationsFor(device, sheet, guard)
	}
}

// AppendStylesheet appends a new stylesheet to the set. sheet must not be
// part of the set already.
//
// A nil device implies not computing invalidations.
func (ops *sheetSetOps[S]) AppendStylesheet(device *media.Device, sheet S, guard *sharedlock.ReadGuard) {
	tracer().Debugf("%s.AppendStylesheet", ops.name)
	ops.assertNotFlushing("AppendStylesheet")
	ops.collectInvalidationsFor(device, sheet, guard)
	ops.locator.collectionFor(sheet, guard).Append(sheet)
}

// PrependStylesheet inserts a new stylesheet at the front of the set.
// sheet must not be part of the set already.
func (ops *sheetSetOps[S]) PrependStylesheet(device *media.Device, sheet S, guard *sharedlock.ReadGuard) {
	tracer().Debugf("%s.PrependStylesheet", ops.name)
	ops.assertNotFlushing("PrependStylesheet")
	ops.collectInvalidationsFor(device, sheet, guard)
	ops.locator.collectionFor(sheet, guard).Prepend(sheet)
}

// InsertStylesheetBefore inserts a new stylesheet immediately before
// another stylesheet of the set. sheet must not be part of the set already,
// while before has to be.
func (ops *sheetSetOps[S]) InsertStylesheetBefore(device *media.Device, sheet S, before S,
	guard *sharedlock.ReadGuard) {
	//
	tracer().Debugf("%s.InsertStylesheetBefore", ops.name)
	ops.assertNotFlushing("InsertStylesheetBefore")
	ops.collectInvalidationsFor(device, sheet, guard)
	ops.locator.collectionFor(sheet, guard).InsertBefore(sheet, before)
}

// RemoveStylesheet removes a stylesheet from the set.
//
// Removing a sheet which is not part of the set panics, unless the set has
// been configured to be lenient about removals for the sheet's origin.
func (ops *sheetSetOps[S]) RemoveStylesheet(device *media.Device, sheet S, guard *sharedlock.ReadGuard) {
	tracer().Debugf("%s.RemoveStylesheet", ops.name)
	ops.assertNotFlushing("RemoveStylesheet")
	ops.collectInvalidationsFor(device, sheet, guard)
	ops.locator.collectionFor(sheet, guard).Remove(sheet)
}

// beginFlush starts a flush session and drives the invalidator's flush.
func (ops *sheetSetOps[S]) beginFlush(root *html.Node, snapshots invalidation.SnapshotMap) flushSession[S] {
	assertThat(!ops.flushing, "%s.Flush called while a flush is in progress", ops.name)
	had := ops.invalidations.Flush(root, snapshots)
	ops.flushing = true
	ops.generation++
	tracer().P("set", ops.name).Debugf("flush #%d, had invalidations = %v", ops.generation, had)
	return flushSession[S]{
		owner:            ops,
		generation:       ops.generation,
		hadInvalidations: had,
	}
}

// --- Flush sessions --------------------------------------------------------

// flushSession ties a flusher to the set it came from.
type flushSession[S Sheet[S]] struct {
	owner            *sheetSetOps[S]
	generation       uint64
	hadInvalidations bool
}

func (fs *flushSession[S]) live() bool {
	return fs.owner.flushing && fs.owner.generation == fs.generation
}

func (fs *flushSession[S]) assertLive() {
	assertThat(fs.live(), "use of a finished flusher")
}

// HadInvalidations returns whether any DOM invalidations were processed as
// a result of the flush.
func (fs *flushSession[S]) HadInvalidations() bool {
	return fs.hadInvalidations
}

// Finish ends the flush. Afterwards the set may be mutated again, while
// the flusher and cursors created from it must not be used any more.
// Calling Finish more than once is a no-op.
func (fs *flushSession[S]) Finish() {
	if !fs.live() {
		return
	}
	tracer().P("set", fs.owner.name).Debugf("flush #%d finished", fs.generation)
	fs.owner.flushing = false
}
