package w3cdom

import (
	"strings"

	"github.com/npillmayer/restyle/dom/style"
	"golang.org/x/net/html"
)

// HTMLElement is an Element backed by a node of an HTML parse tree. Style
// calls are written through to the node's `style` attribute, which makes
// HTMLElement usable for pre-rendering markup.
type HTMLElement struct {
	node  *html.Node
	names []string          // property names in order of first appearance
	props map[string]string // hyphenated name -> value
}

// WrapHTML wraps an HTML element node. Declarations already present in the
// node's style attribute are kept.
func WrapHTML(node *html.Node) *HTMLElement {
	e := &HTMLElement{node: node, props: make(map[string]string)}
	if node == nil || node.Type != html.ElementNode {
		tracer().Errorf("wrapping non-element HTML node for styling")
		return e
	}
	if a := e.attr(); a != nil {
		rules, err := style.SplitRules(a.Val)
		if err != nil {
			tracer().Debugf("style attribute of <%s>: %v", node.Data, err)
		}
		for _, rule := range rules {
			if k, v, ok := style.SplitDeclaration(rule); ok {
				e.set(k, v)
			}
		}
	}
	return e
}

// HTMLNode returns the wrapped HTML node.
func (e *HTMLElement) HTMLNode() *html.Node {
	return e.node
}

// SetStyle is part of interface Element. name is expected in camel case
// form and will be written hyphenated. An empty name does not set anything,
// but makes sure the style attribute exists.
func (e *HTMLElement) SetStyle(name string, value style.Value) {
	if e.node == nil || e.node.Type != html.ElementNode {
		return
	}
	if name != "" {
		key := style.Hyphenate(name)
		if value.IsEmpty() {
			e.remove(key)
		} else {
			e.set(key, value.String())
		}
	}
	e.write()
}

// HasStyle is part of interface Element. It reports wether the node carries
// a style attribute.
func (e *HTMLElement) HasStyle() bool {
	return e.attr() != nil
}

// Style returns the current content of the style attribute.
func (e *HTMLElement) Style() string {
	if a := e.attr(); a != nil {
		return a.Val
	}
	return ""
}

func (e *HTMLElement) set(key, value string) {
	if _, ok := e.props[key]; !ok {
		e.names = append(e.names, key)
	}
	e.props[key] = value
}

func (e *HTMLElement) remove(key string) {
	if _, ok := e.props[key]; !ok {
		return
	}
	delete(e.props, key)
	for i, n := range e.names {
		if n == key {
			e.names = append(e.names[:i], e.names[i+1:]...)
			break
		}
	}
}

func (e *HTMLElement) write() {
	var b strings.Builder
	for _, k := range e.names {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.props[k])
		b.WriteString(";")
	}
	if a := e.attr(); a != nil {
		a.Val = b.String()
		return
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: "style", Val: b.String()})
}

func (e *HTMLElement) attr() *html.Attribute {
	if e.node == nil {
		return nil
	}
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == "style" && e.node.Attr[i].Namespace == "" {
			return &e.node.Attr[i]
		}
	}
	return nil
}

var _ Element = &HTMLElement{}
