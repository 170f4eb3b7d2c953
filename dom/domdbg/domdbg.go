/*
Package domdbg implements helpers to debug styled render nodes and the
markup they produce.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/styledtree"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// PrintNode returns a tree representation of the style inputs and the style
// state of a render node:
//
//	node
//	├── static class: [box big]
//	├── static style: "margin: 4"
//	├── base
//	│   └── width: 100
//	…
func PrintNode(n *styledtree.Node) string {
	p := tp.New()
	p.SetValue("node")
	if n == nil {
		p.AddNode("<nil>")
		return p.String()
	}
	p.AddNode(fmt.Sprintf("static class: %v", n.StaticClass))
	p.AddNode(fmt.Sprintf("static style: %q", n.StaticStyle.String()))
	p.AddNode(fmt.Sprintf("class: %s", classString(n.Class)))
	bound := p.AddBranch("style")
	var maps []style.Map
	switch m := n.Style.Match(); m {
	case m.Styles(&maps):
		for _, s := range maps {
			addMap(bound, "", s)
		}
	}
	addMap(p, "base", n.BaseStyle())
	addMap(p, "resolved", n.ResolvedStyle())
	if len(n.ParentStaticStyle) > 0 {
		addMap(p, "parent static", n.ParentStaticStyle)
	}
	return p.String()
}

// PrintPatch returns a tree representation of a style patch. Reset
// instructions are marked as such.
func PrintPatch(title string, patch style.Map) string {
	p := tp.New()
	p.SetValue(title)
	for _, kv := range patch.Properties() {
		if kv.Value.IsEmpty() {
			p.AddNode(kv.Key + " (reset)")
			continue
		}
		p.AddNode(kv.String())
	}
	return p.String()
}

func addMap(p tp.Tree, title string, m style.Map) {
	if title != "" {
		p = p.AddBranch(title)
	}
	if len(m) == 0 {
		p.AddNode("{}")
		return
	}
	for _, kv := range m.Properties() {
		p.AddNode(kv.String())
	}
}

func classString(b style.ClassBinding) string {
	var names []string
	var toggles []style.Toggle
	switch m := b.Match(); m {
	case m.Names(&names):
		return fmt.Sprintf("%v", names)
	case m.Toggles(&toggles):
		parts := make([]string, len(toggles))
		for i, t := range toggles {
			parts[i] = fmt.Sprintf("%s=%v", t.Class, t.On)
		}
		return "{" + strings.Join(parts, " ") + "}"
	}
	return "none"
}

// --- GraphViz ---------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
}

// ToGraphViz outputs a diagram for an HTML tree, e.g. after styles have
// been rendered into it. The diagram is in GraphViz (DOT) format. Every
// element carrying a style attribute is connected to a table of its
// style declarations.
func ToGraphViz(doc *html.Node, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("style").Parse(styleTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*html.Node]string, 256)
	if err = nodes(doc, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	N    *html.Node
	Name string
}

type styleTable struct {
	Name         string
	Declarations []style.KeyValue
}

func nodes(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	if n == nil {
		return nil
	}
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.CommentNode {
			continue
		}
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{node{n, dict[n]}, node{ch, dict[ch]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func domNode(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = name
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		return err
	}
	for _, a := range n.Attr {
		if a.Key != "style" {
			continue
		}
		return gparams.StyleTmpl.Execute(w, styleTable{name, declarations(a.Val)})
	}
	return nil
}

type edge struct {
	N1, N2 node
}

// declarations splits the value of a style attribute for display.
func declarations(attr string) []style.KeyValue {
	var decls []style.KeyValue
	for _, d := range strings.Split(attr, ";") {
		k, v, ok := strings.Cut(d, ":")
		if !ok {
			continue
		}
		decls = append(decls, style.KeyValue{
			Key:   strings.TrimSpace(k),
			Value: style.Text(strings.TrimSpace(v)),
		})
	}
	return decls
}

func shortText(n *html.Node) string {
	s := "\"\\\""
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

const domNodeTmpl = `{{ if eq .N.Type 1 }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if eq .N.Type 2 }}
{{ .Name }}	[ label="#document" shape=ellipse style=filled fillcolor=grey80 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.Data }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleTmpl = `{{ .Name }}_style [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">style</font></td></tr>
      {{ range .Declarations }}
      <tr><td align="right">{{ .Key | html }}:</td><td>{{ .Value | html }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Name }} -> {{ .Name }}_style [dir=none weight=1 style="dashed"] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
