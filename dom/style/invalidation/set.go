package invalidation

import (
	"strings"

	"github.com/3j9fkyahunqoxwqu/servo/dom/style/cssom"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/media"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/sharedlock"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ElementSnapshot holds the state of an element before it was changed,
// as far as it is relevant for matching invalidation hints.
type ElementSnapshot struct {
	ID      string
	Classes []string
}

// SnapshotMap maps elements to their state before the latest DOM mutations.
type SnapshotMap map[*html.Node]*ElementSnapshot

// StylesheetInvalidationSet records invalidations for stylesheets added to
// or removed from a document. Call CollectInvalidationsFor for every sheet
// change, and Flush once before re-styling the document.
//
// The zero value is not usable, please use New.
type StylesheetInvalidationSet struct {
	fullyInvalid bool
	hints        map[hint]struct{}
	invalidated  []*html.Node
}

// New creates an empty invalidation set.
func New() *StylesheetInvalidationSet {
	return &StylesheetInvalidationSet{hints: make(map[hint]struct{})}
}

// InvalidateFully marks the whole document to be invalid.
func (set *StylesheetInvalidationSet) InvalidateFully() {
	tracer().Debugf("invalidating fully")
	set.hints = make(map[hint]struct{})
	set.fullyInvalid = true
}

// Clear drops all recorded invalidations.
func (set *StylesheetInvalidationSet) Clear() {
	set.hints = make(map[hint]struct{})
	set.fullyInvalid = false
}

// IsFullyInvalid is a predicate: will the next flush invalidate the whole
// document?
func (set *StylesheetInvalidationSet) IsFullyInvalid() bool {
	return set.fullyInvalid
}

// Empty is a predicate: is there nothing to invalidate?
func (set *StylesheetInvalidationSet) Empty() bool {
	return !set.fullyInvalid && len(set.hints) == 0
}

// Invalidated returns the elements marked for restyling by the most recent
// flush. Descendants of a marked element are not listed separately, as
// restyling an element restyles its subtree.
func (set *StylesheetInvalidationSet) Invalidated() []*html.Node {
	return set.invalidated
}

// CollectInvalidationsFor collects invalidations for a stylesheet which has
// been added to or is about to be removed from the document. Sheets not
// applying to device do not cause invalidations.
func (set *StylesheetInvalidationSet) CollectInvalidationsFor(device *media.Device,
	sheet cssom.StyleSheetInDocument, guard *sharedlock.ReadGuard) {
	//
	if set.fullyInvalid {
		tracer().Debugf("already fully invalid, ignoring sheet")
		return
	}
	contents := sheet.Contents(guard)
	if contents == nil {
		return
	}
	if !device.Evaluate(contents.Media) {
		tracer().P("media", contents.Media).Debugf("sheet does not apply to device")
		return
	}
	for _, rule := range contents.Rules {
		if !set.collectForRule(device, rule) {
			set.InvalidateFully()
			return
		}
	}
	tracer().Debugf("collected %d invalidation hints", len(set.hints))
}

// collectForRule returns false if rule requires a full invalidation.
func (set *StylesheetInvalidationSet) collectForRule(device *media.Device, rule cssom.Rule) bool {
	switch strings.ToLower(rule.AtKeyword()) {
	case "":
		return set.collectForSelectors(rule.Selector())
	case "@media":
		if !device.Evaluate(rule.Selector()) {
			return true
		}
		return set.collectForNested(device, rule)
	case "@supports", "@document":
		return set.collectForNested(device, rule)
	case "@namespace", "@charset":
		return true
	}
	// @import, @font-face, @keyframes, @page, …
	tracer().P("rule", rule.AtKeyword()).Debugf("at-rule requires full invalidation")
	return false
}

func (set *StylesheetInvalidationSet) collectForNested(device *media.Device, rule cssom.Rule) bool {
	for _, nested := range rule.Nested() {
		if !set.collectForRule(device, nested) {
			return false
		}
	}
	return true
}

func (set *StylesheetInvalidationSet) collectForSelectors(group string) bool {
	if _, err := cascadia.ParseGroupWithPseudoElements(group); err != nil {
		tracer().P("selector", group).Debugf("dropping rule with invalid selector: %v", err)
		return true
	}
	for _, sel := range splitSelectorList(group) {
		h, ok := hintFor(rightmostCompound(sel))
		if !ok {
			tracer().P("selector", sel.String()).Debugf("no hint in selector")
			return false
		}
		set.hints[h] = struct{}{}
	}
	return true
}

// Flush marks elements of the document rooted at root for restyling and
// clears the set. It returns true if any element has been marked.
//
// If root is nil, i.e. there is no document to restyle yet, recorded
// invalidations are dropped.
func (set *StylesheetInvalidationSet) Flush(root *html.Node, snapshots SnapshotMap) bool {
	set.invalidated = set.invalidated[:0]
	defer set.Clear()
	if root == nil {
		return false
	}
	if set.fullyInvalid {
		tracer().Debugf("flush: restyling whole document")
		set.invalidated = append(set.invalidated, root)
		return true
	}
	if len(set.hints) == 0 {
		return false
	}
	set.process(root, snapshots)
	tracer().Debugf("flush: marked %d elements", len(set.invalidated))
	return len(set.invalidated) > 0
}

func (set *StylesheetInvalidationSet) process(n *html.Node, snapshots SnapshotMap) {
	if n.Type == html.ElementNode && set.matches(n, snapshots[n]) {
		set.invalidated = append(set.invalidated, n)
		return
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		set.process(ch, snapshots)
	}
}

func (set *StylesheetInvalidationSet) matches(n *html.Node, snapshot *ElementSnapshot) bool {
	if set.has(localNameHint, strings.ToLower(n.Data)) {
		return true
	}
	for _, a := range n.Attr {
		switch a.Key {
		case "id":
			if set.has(idHint, a.Val) {
				return true
			}
		case "class":
			if set.anyClass(strings.Fields(a.Val)) {
				return true
			}
		}
	}
	if snapshot != nil {
		if snapshot.ID != "" && set.has(idHint, snapshot.ID) {
			return true
		}
		return set.anyClass(snapshot.Classes)
	}
	return false
}

func (set *StylesheetInvalidationSet) has(kind hintKind, name string) bool {
	_, ok := set.hints[hint{kind: kind, name: name}]
	return ok
}

func (set *StylesheetInvalidationSet) anyClass(classes []string) bool {
	for _, c := range classes {
		if set.has(classHint, c) {
			return true
		}
	}
	return false
}
