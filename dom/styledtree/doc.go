/*
Package styledtree implements the nodes the style engine works on.

# Overview

A render tree is re-created by its driver on every render pass. For every
position in the tree the driver creates a Node, fills in the style inputs
of that pass (static classes, static style, bound class and style
expressions) and hands it to the style engine, together with its
predecessor from the previous pass, if any. The engine stores the outputs
of a pass (base style and resolved style) on the node, where they are read
by the next pass.

Nodes never store style maps they do not own: every map captured by a node
is a shallow copy, so clients may mutate their style objects in-place
without corrupting the baseline of the next diff.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.dom'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.dom")
}
