package stylesheets

import (
	"fmt"
	"io"
	"strings"

	"github.com/3j9fkyahunqoxwqu/servo/dom/style/cssom"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/invalidation"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/media"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/sharedlock"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// testSheet is a sheet which is identified by its name.
type testSheet struct {
	name     string
	contents *sharedlock.Locked[*cssom.SheetContents]
}

func (s *testSheet) Contents(guard *sharedlock.ReadGuard) *cssom.SheetContents {
	return s.contents.Read(guard)
}

func (s *testSheet) Equal(other *testSheet) bool {
	return s.name == other.name
}

func (s *testSheet) String() string {
	return s.name
}

// sheets creates test sheets for names, all of them belonging to origin.
type sheetFactory struct {
	lock *sharedlock.SharedRWLock
}

func (f sheetFactory) sheet(origin cssom.Origin, name string) *testSheet {
	return &testSheet{
		name:     name,
		contents: sharedlock.Wrap(f.lock, &cssom.SheetContents{Origin: origin}),
	}
}

func newFactory() (sheetFactory, *sharedlock.ReadGuard) {
	lock := sharedlock.New()
	return sheetFactory{lock: lock}, lock.Read()
}

// drain empties a cursor and renders its output as "name:kind" strings.
func drain(cf *CollectionFlusher[*testSheet]) []string {
	var out []string
	for sheet, kind := range cf.All() {
		out = append(out, fmt.Sprintf("%s:%s", sheet.name, kind))
	}
	return out
}

// flushOrigin flushes set and drains the cursor of a single origin.
func flushOrigin(set *DocumentSet[*testSheet], origin cssom.Origin) []string {
	flusher := set.Flush(nil, nil)
	defer flusher.Finish()
	if !flusher.OriginDirty(origin) {
		return nil
	}
	return drain(flusher.OriginSheets(origin))
}

// recordingInvalidator records calls made to it. If set is non-nil,
// collecting also records whether the sheet is a member of set at that time.
type recordingInvalidator struct {
	calls   []string
	result  bool
	set     *DocumentSet[*testSheet]
	members []bool
}

func (r *recordingInvalidator) CollectInvalidationsFor(device *media.Device, sheet cssom.StyleSheetInDocument,
	guard *sharedlock.ReadGuard) {
	//
	s := sheet.(*testSheet)
	r.calls = append(r.calls, "collect "+s.name)
	if r.set != nil {
		origin := s.Contents(guard).Origin
		r.members = append(r.members, r.set.collections.For(origin).Contains(s))
	}
}

func (r *recordingInvalidator) Flush(root *html.Node, snapshots invalidation.SnapshotMap) bool {
	r.calls = append(r.calls, "flush")
	return r.result
}

func (r *recordingInvalidator) InvalidateFully() {
	r.calls = append(r.calls, "invalidate-fully")
}

func (r *recordingInvalidator) Clear() {
	r.calls = append(r.calls, "clear")
}

var _ Invalidator = &recordingInvalidator{}

// panickingInvalidator fails on Flush.
type panickingInvalidator struct {
	recordingInvalidator
}

func (p *panickingInvalidator) Flush(root *html.Node, snapshots invalidation.SnapshotMap) bool {
	panic("invalidation failed")
}

// --- Tracing ---------------------------------------------------------------

// traceRecorder collects debug messages, for tests which have to inspect
// trace output.
type traceRecorder struct {
	lines []string
}

// recordTraces routes all tracing to a new recorder, until the returned
// teardown function is called.
func recordTraces() (*traceRecorder, func()) {
	rec := &traceRecorder{}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return rec }))
	return rec, func() { tracing.SetTraceSelector(nil) }
}

func (rec *traceRecorder) contains(s string) bool {
	for _, l := range rec.lines {
		if strings.Contains(l, s) {
			return true
		}
	}
	return false
}

func (rec *traceRecorder) Errorf(msg string, args ...interface{}) { rec.Debugf(msg, args...) }
func (rec *traceRecorder) Infof(msg string, args ...interface{}) { rec.Debugf(msg, args...) }
func (rec *traceRecorder) Debugf(msg string, args ...interface{}) {
	rec.lines = append(rec.lines, fmt.Sprintf(msg, args...))
}
func (rec *traceRecorder) P(string, interface{}) tracing.Trace { return rec }
func (rec *traceRecorder) SetTraceLevel(tracing.TraceLevel) {}
func (rec *traceRecorder) GetTraceLevel() tracing.TraceLevel { return tracing.LevelDebug }
func (rec *traceRecorder) SetOutput(io.Writer) {}
