package cssom

import "github.com/3j9fkyahunqoxwqu/servo/dom/style/sharedlock"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// bookkeeping of stylesheets for a document, we introduce an interface
// for CSS stylesheets. Clients for the styling engine will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	Empty() bool   // does this stylesheet contain any rules?
	Rules() []Rule // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// Style rules carry a selector list and declarations. At-rules (e.g., "@media")
// report their name with AtKeyword and may nest further rules.
//
// See interface StyleSheet.
type Rule interface {
	AtKeyword() string       // "@media", "@import", …, or "" for style rules
	Selector() string        // the prelude / selectors of the rule
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) string     // property value for key, e.g. "15px"
	IsImportant(string) bool // is property key marked as important?
	Nested() []Rule          // rules embedded in an at-rule block
}

// SheetContents is what a stylesheet holds behind its lock: the cascade
// origin it belongs to, the media list it applies to, and its rules.
//
// Media is the raw media query list, e.g. "screen and (min-width: 600px)".
// An empty media list applies to every device.
type SheetContents struct {
	Origin Origin
	Media  string
	Rules  []Rule
}

// StyleSheetInDocument is a stylesheet as it is tracked for a document.
// The contents of the sheet, including its origin, may only be read under
// a read guard of the shared lock protecting the document's stylesheets.
type StyleSheetInDocument interface {
	Contents(guard *sharedlock.ReadGuard) *SheetContents
}
