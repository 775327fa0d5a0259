/*
Package douceuradapter is a concrete implementation of interfaces
cssom.StyleSheet and cssom.StyleSheetInDocument, based on the CSS parser
of package douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/cssom"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/sharedlock"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return wrapRules(sheet.css.Rules)
}

var _ cssom.StyleSheet = &CSSStyles{}

func wrapRules(rules []*css.Rule) []cssom.Rule {
	wrapped := make([]cssom.Rule, len(rules))
	for i := range rules {
		wrapped[i] = Rule(*rules[i])
	}
	return wrapped
}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// AtKeyword returns the name of an at-rule, e.g. "@media", or the
// empty string for style rules.
func (r Rule) AtKeyword() string {
	if r.Kind != css.AtRule {
		return ""
	}
	return r.Name
}

// Selector returns the prelude / selectors of the rule. For at-rules this
// is the raw prelude, e.g. the media list of a @media rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) string {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

// Nested returns the rules embedded in an at-rule block.
func (r Rule) Nested() []cssom.Rule {
	return wrapRules(r.Rules)
}

var _ cssom.Rule = &Rule{}

// --- Sheets in a document --------------------------------------------------

// DocumentSheet is a stylesheet as it is tracked for a document. Its
// contents are protected by the shared lock of the document's stylesheets.
//
// Two DocumentSheets are equal if and only if they are the same sheet,
// regardless of their rules.
type DocumentSheet struct {
	contents *sharedlock.Locked[*cssom.SheetContents]
}

// NewDocumentSheet puts styles under protection of lock, for origin and
// media list media.
func NewDocumentSheet(lock *sharedlock.SharedRWLock, origin cssom.Origin, media string,
	styles cssom.StyleSheet) *DocumentSheet {
	//
	contents := &cssom.SheetContents{
		Origin: origin,
		Media:  media,
		Rules:  styles.Rules(),
	}
	return &DocumentSheet{contents: sharedlock.Wrap(lock, contents)}
}

// Parse parses CSS text and creates a document sheet from it.
func Parse(lock *sharedlock.SharedRWLock, origin cssom.Origin, media string, text string) (
	*DocumentSheet, error) {
	//
	c, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return NewDocumentSheet(lock, origin, media, Wrap(c)), nil
}

// Contents returns the origin, media list and rules of a sheet.
//
// Interface cssom.StyleSheetInDocument
func (sheet *DocumentSheet) Contents(guard *sharedlock.ReadGuard) *cssom.SheetContents {
	return sheet.contents.Read(guard)
}

// Equal is a predicate: is other the same sheet as this one?
func (sheet *DocumentSheet) Equal(other *DocumentSheet) bool {
	return sheet == other
}

var _ cssom.StyleSheetInDocument = &DocumentSheet{}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as author style sheets, protected by lock. The media
// attribute of a style element is carried over to the sheet.
//
// Style elements which cannot be parsed are skipped.
func ExtractStyleElements(lock *sharedlock.SharedRWLock, htmldoc *html.Node) []*DocumentSheet {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	sheets := extractStyles(lock, head)
	return append(sheets, extractStyles(lock, body)...)
}

func extractStyles(lock *sharedlock.SharedRWLock, h *html.Node) []*DocumentSheet {
	if h == nil {
		return nil
	}
	var sheets []*DocumentSheet
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		sheet, err := Parse(lock, cssom.Author, attribute(ch, "media"), ch.FirstChild.Data)
		if err != nil {
			tracer().Errorf("skipping style element: %v", err)
			continue
		}
		sheets = append(sheets, sheet)
	}
	return sheets
}

func attribute(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
