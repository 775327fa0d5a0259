package invalidation

import "testing"

func TestRightmostCompound(t *testing.T) {
	for _, c := range []struct{ sel, compound string }{
		{"p", "p"},
		{"div > p.note", "p.note"},
		{"ul li+li ~ a:hover", "a:hover"},
		{"a[title='x y'] ", "a[title='x y']"},
		{"section :not(.a .b)", ":not(.a .b)"},
		{"main /* comment */ .md\\:flex", ".md\\:flex"},
	} {
		if got := rightmostCompound(scan(c.sel)).String(); got != c.compound {
			t.Errorf("expected rightmost compound of %q to be %q, is %q", c.sel, c.compound, got)
		}
	}
}

func TestSplitSelectorList(t *testing.T) {
	sels := splitSelectorList("h1, h2 , :is(a, b)")
	if len(sels) != 3 || sels[1].String() != "h2" || sels[2].String() != ":is(a, b)" {
		t.Errorf("expected 3 selectors, have %q", sels)
	}
}

func TestHintFor(t *testing.T) {
	for _, c := range []struct {
		compound string
		kind     hintKind
		name     string
		ok       bool
	}{
		{"div.note#main", idHint, "main", true},
		{"div.note.other", classHint, "note", true},
		{"P::before", localNameHint, "p", true},
		{"a:not(.x)", localNameHint, "a", true},
		{"svg|rect", localNameHint, "rect", true},
		{".md\\:flex", classHint, "md:flex", true},
		{".w-1\\/2", classHint, "w-1/2", true},
		{"#\\31 0", idHint, "10", true},
		{"*", 0, "", false},
		{"[lang]", 0, "", false},
		{":hover", 0, "", false},
		{":is(.a, .b)", 0, "", false},
	} {
		h, ok := hintFor(scan(c.compound))
		if ok != c.ok {
			t.Errorf("expected hint for %q to be found=%v, is %v", c.compound, c.ok, ok)
			continue
		}
		if ok && (h.kind != c.kind || h.name != c.name) {
			t.Errorf("expected hint for %q to be %s %q, is %s %q", c.compound, c.kind, c.name, h.kind, h.name)
		}
	}
}

func TestUnescape(t *testing.T) {
	for _, c := range []struct{ in, out string }{
		{"plain", "plain"},
		{`md\:flex`, "md:flex"},
		{`\31 23`, "123"},
		{`\000041B`, "AB"},
		{`a\`, `a\`},
	} {
		if got := unescape(c.in); got != c.out {
			t.Errorf("expected %q to unescape to %q, is %q", c.in, c.out, got)
		}
	}
}
