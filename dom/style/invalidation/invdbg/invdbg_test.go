package invdbg

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"

	"github.com/3j9fkyahunqoxwqu/servo/dom/style/cssom"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/cssom/douceuradapter"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/invalidation"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/media"
	"github.com/3j9fkyahunqoxwqu/servo/dom/style/sharedlock"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"golang.org/x/net/html"
)

var page = `<html><body><div class="box"><p>Hello</p></div><p>World</p></body></html>`

func invalidate(t *testing.T) (*html.Node, []*html.Node) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	lock := sharedlock.New()
	sheet, err := douceuradapter.Parse(lock, cssom.Author, "", ".box { padding: 1em }")
	if err != nil {
		t.Fatal(err)
	}
	set := invalidation.New()
	guard := lock.Read()
	set.CollectInvalidationsFor(media.Screen(800*dimen.PT), sheet, guard)
	guard.Release()
	if !set.Flush(doc, nil) {
		t.Fatalf("expected .box to be invalidated")
	}
	return doc, set.Invalidated()
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.style.invalidation")
	defer teardown()
	//
	doc, invalidated := invalidate(t)
	var buf bytes.Buffer
	ToGraphViz(doc, invalidated, &buf)
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected a digraph, is\n%s", dot)
	}
	if strings.Count(dot, "fillcolor=salmon") != 1 {
		t.Errorf("expected exactly one highlighted element")
	}
	if strings.Count(dot, "fillcolor=mistyrose") != 1 {
		t.Errorf("expected the paragraph inside .box to be shaded")
	}
	if !strings.Contains(dot, `"#document"`) {
		t.Errorf("expected document node in diagram")
	}
}

func TestDotty(t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("GraphViz not installed")
	}
	doc, invalidated := invalidate(t)
	Dotty(doc, invalidated, t)
}
