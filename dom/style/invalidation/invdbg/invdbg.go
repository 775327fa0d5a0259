/*
Package invdbg implements helpers to debug style invalidation of a
document tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package invdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"golang.org/x/net/html"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	Marked   map[*html.Node]bool
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a document tree, as it has been
// processed by an invalidation flush. The diagram is in GraphViz (DOT)
// format. Elements in invalidated are highlighted; as restyling includes
// the sub-tree of an invalidated element, descendants are drawn shaded.
// Text nodes consisting of white space only are left out.
func ToGraphViz(root *html.Node, invalidated []*html.Node, w io.Writer) {
	tmpl, err := template.New("doc").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica", Marked: make(map[*html.Node]bool)}
	for _, n := range invalidated {
		gparams.Marked[n] = true
	}
	gparams.NodeTmpl = template.Must(template.New("docnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(docNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("docedge").Parse(docEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		panic(err)
	}
	if root != nil {
		dict := make(map[*html.Node]string, 256)
		nodes(root, false, w, dict, &gparams)
	}
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a document tree, the result of an
// invalidation flush and a testing.T, it will create a Graphiviz image of
// the tree and write it to a file in the current folder, choosing a unique
// file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root *html.Node, invalidated []*html.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "invalidation.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing invalidation digraph to %s\n", tmpfile.Name())
	ToGraphViz(root, invalidated, tmpfile)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N       *html.Node
	Name    string
	Marked  bool
	Shaded  bool
	Element bool
}

func nodes(n *html.Node, shaded bool, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) {
	marked := gparams.Marked[n]
	docNode(n, marked, shaded, w, dict, gparams)
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if isBlank(ch) {
			continue
		}
		nodes(ch, shaded || marked, w, dict, gparams)
		docEdge(n, ch, w, dict, gparams)
	}
}

func docNode(n *html.Node, marked, shaded bool, w io.Writer, dict map[*html.Node]string,
	gparams *graphParamsType) {
	//
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	x := &node{N: n, Name: name, Marked: marked, Shaded: shaded, Element: n.Type == html.ElementNode}
	if err := gparams.NodeTmpl.Execute(w, x); err != nil {
		panic(err)
	}
}

type edge struct {
	N1, N2 string
}

func docEdge(n1 *html.Node, n2 *html.Node, w io.Writer, dict map[*html.Node]string,
	gparams *graphParamsType) {
	//
	if err := gparams.EdgeTmpl.Execute(w, edge{dict[n1], dict[n2]}); err != nil {
		panic(err)
	}
}

func isBlank(n *html.Node) bool {
	return n.Type == html.TextNode && strings.TrimSpace(n.Data) == ""
}

func shortText(n *html.Node) string {
	s := "\"\\\""
	if n.Type == html.DocumentNode {
		return `"#document"`
	}
	if len(n.Data) > 10 {
		s += n.Data[:10] + "...\\\"\""
	} else {
		s += n.Data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const docNodeTmpl = `{{ if not .Element }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if .Marked }}
{{ .Name }}	[ label={{ printf "%q" .N.Data }} shape=ellipse style=filled fillcolor=salmon penwidth=2 ] ;
{{ else if .Shaded }}
{{ .Name }}	[ label={{ printf "%q" .N.Data }} shape=ellipse style=filled fillcolor=mistyrose ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.Data }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const docEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
