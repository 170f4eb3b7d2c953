package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/cssom"
	"github.com/npillmayer/restyle/dom/w3cdom"
)

// Owner is the component instance a node belongs to. The style engine
// uses it for class lookup only.
type Owner interface {
	ClassSheet() *cssom.ClassSheet
}

// Node is a render node, the building block of the render tree, for
// a single render pass.
type Node struct {
	Handle            w3cdom.Element    // native element, nil for serialization-only rendering
	Owner             Owner             // owning component, may be nil
	StaticClass       []string          // static class names, in order
	StaticStyle       style.Declaration // static inline style
	Class             style.ClassBinding
	Style             style.StyleBinding
	ParentStaticStyle style.Map // static style pushed down by an enclosing component
	baseStyle         style.Map
	resolvedStyle     style.Map
}

// NewNode creates a render node for a component and a native element.
// Both may be nil.
func NewNode(owner Owner, handle w3cdom.Element) *Node {
	return &Node{Owner: owner, Handle: handle}
}

// WithStaticClass sets the static class names from a class attribute value.
// It returns the node to allow for chaining.
func (n *Node) WithStaticClass(classAttr string) *Node {
	n.StaticClass = strings.Fields(classAttr)
	return n
}

// ClassSheet returns the class sheet of the owning component, or nil.
func (n *Node) ClassSheet() *cssom.ClassSheet {
	if n == nil || n.Owner == nil {
		return nil
	}
	return n.Owner.ClassSheet()
}

// BaseStyle returns the base style of the node, i.e. the style derived
// from its static classes and static inline style. The map returned is
// owned by the node and must not be modified.
func (n *Node) BaseStyle() style.Map {
	if n == nil {
		return nil
	}
	return n.baseStyle
}

// SetBaseStyle captures a copy of m as the node's base style.
func (n *Node) SetBaseStyle(m style.Map) {
	n.baseStyle = m.Clone()
}

// ResolvedStyle returns the style resolved from the bound expressions of
// the node's last render pass. It is nil if no bound style applied.
// The map returned is owned by the node and must not be modified.
func (n *Node) ResolvedStyle() style.Map {
	if n == nil {
		return nil
	}
	return n.resolvedStyle
}

// SetResolvedStyle captures a copy of m as the node's resolved style.
func (n *Node) SetResolvedStyle(m style.Map) {
	n.resolvedStyle = m.Clone()
}

// StaticChanged is a predicate: do the static style inputs of two nodes
// differ?
func StaticChanged(old, n *Node) bool {
	if old == nil || n == nil {
		return old != n
	}
	if len(old.StaticClass) != len(n.StaticClass) {
		return true
	}
	for i := range old.StaticClass {
		if old.StaticClass[i] != n.StaticClass[i] {
			return true
		}
	}
	changed := !old.StaticStyle.Equal(n.StaticStyle)
	if changed {
		tracer().Debugf("static style changed: %q -> %q", old.StaticStyle, n.StaticStyle)
	}
	return changed
}
