/*
Package layoutdbg exports layout trees for inspection with GraphViz.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package layoutdbg

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/npillmayer/ivy/engine/frame/layout"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ivy.layout'.
func tracer() tracing.Trace {
	return tracing.Select("ivy.layout")
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz creates a graphical representation of a layout tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(tree *layout.Tree, w io.Writer) error {
	header, err := template.New("layoutTree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"label":       label,
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	err = tree.Walk(func(id layout.NodeID, _ int) error {
		n := &gnode{N: tree.Node(id), Name: nodeName(id)}
		if err := gparams.NodeTmpl.Execute(w, n); err != nil {
			return err
		}
		if p := tree.Parent(id); p != layout.NoNode {
			tracer().Debugf("edge %d -> %d", p, id)
			return gparams.EdgeTmpl.Execute(w, gedge{nodeName(p), n.Name})
		}
		return nil
	})
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodeName(id layout.NodeID) string {
	return fmt.Sprintf("node%05d", id)
}

// Helper structs
type gnode struct {
	N    *layout.Node
	Name string
}

type gedge struct {
	N1, N2 string
}

func shortText(n *layout.Node) string {
	txt := n.Text
	if r := []rune(txt); len(r) > 10 {
		txt = string(r[:10]) + "…"
	}
	return strings.ReplaceAll(strconv.Quote(`T "`+txt+`"`), " ", "␣")
}

func label(n *layout.Node) string {
	l := n.TagName
	if n.ID != "" {
		l += "#" + n.ID
	}
	return fmt.Sprintf("%q", l+"\n"+n.Pos.String())
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `{{ if .N.IsText }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ label .N }} shape=box style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
