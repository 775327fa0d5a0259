package media

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestEvaluateMediaTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.style.media")
	defer teardown()
	//
	screen := Screen(800 * dimen.PT)
	for _, c := range []struct {
		list  string
		match bool
	}{
		{"", true},
		{"all", true},
		{"screen", true},
		{"print", false},
		{"print, screen", true},
		{"not print", true},
		{"only screen", true},
		{"SCREEN", true},
		{"tv", false},
	} {
		if screen.Evaluate(c.list) != c.match {
			t.Errorf("expected media list %q to evaluate to %v, doesn't", c.list, c.match)
		}
	}
}

func TestEvaluateWidthFeatures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.style.media")
	defer teardown()
	//
	d := Screen(600 * dimen.PT) // 800px
	for _, c := range []struct {
		list  string
		match bool
	}{
		{"(min-width: 800px)", true},
		{"(min-width: 801px)", false},
		{"screen and (max-width: 600pt)", true},
		{"print and (max-width: 600pt)", false},
		{"screen and (min-width: 100px) and (max-width: 500px)", false},
		{"(orientation: landscape)", false},
		{"(min-width: 10em)", false},
		{"not screen and (min-width: 900px)", true},
	} {
		if d.Evaluate(c.list) != c.match {
			t.Errorf("expected media list %q to evaluate to %v, doesn't", c.list, c.match)
		}
	}
}

func TestParseLength(t *testing.T) {
	if l, ok := ParseLength("12pt"); !ok || l != 12*dimen.PT {
		t.Errorf("expected 12pt to parse as %d, is %d", 12*dimen.PT, l)
	}
	if l, ok := ParseLength("4px"); !ok || l != 3*dimen.PT {
		t.Errorf("expected 4px to parse as 3pt = %d, is %d", 3*dimen.PT, l)
	}
	if _, ok := ParseLength("3cm"); ok {
		t.Error("did not expect cm to be accepted")
	}
}

func TestMalformedMediaQueries(t *testing.T) {
	d := Screen(600 * dimen.PT)
	for _, list := range []string{
		"screen (min-width: 100px)",
		"screen and",
		"(min-width 100px)",
		"not (min-width: 100px",
		"screen and (min-width: 100px) and",
		`"screen`,
	} {
		if d.Evaluate(list) {
			t.Errorf("expected malformed media list %q not to match", list)
		}
	}
	if !d.Evaluate("print, /* fallback */ screen and (MIN-WIDTH: 100PX)") {
		t.Errorf("expected comment and upper case to be accepted")
	}
}
