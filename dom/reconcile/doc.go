/*
Package reconcile computes the effective style of render nodes.

# Overview

For every node of a render tree and every render pass, the style of the node
is assembled from up to five sources, lowest to highest precedence:

 1. rule sets of static classes             class="box title"
 2. static inline style                     style="width: 100"
 3. bound classes switched off              class="{{ {active: false} }}"
 4. bound classes switched on               class="{{ {active: true} }}"
 5. bound inline style                      style="{{ {color: c} }}"

Static sources (1, 2) form the base style of a node. Bound sources (3–5)
form its current style. A class switched off does not simply drop out: every
property of its rule set is reset to the node's base value, or cleared if
there is none.

On re-render the engine diffs the current style against the style resolved
in the previous pass. Properties which were set in the previous pass but are
missing from the current one are reset in the same way. The result is a
patch, which is handed to a Sink: either an Applier, which sets every
property on a native element, or a Serializer, which produces a style
attribute for static markup.

	engine := reconcile.New()
	engine.Create(node, nil)              // first mount
	engine.Update(oldNode, newNode, nil)  // every re-render

The engine never fails. Malformed static styles are reported as diagnostics
(see Reporter) and skipped. Diagnostics are suppressed in production mode.

# Concurrency

An Engine holds no per-render state and may be shared. Operations on the same
node must not be interleaved; render passes are driven synchronously by the
render tree driver.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package reconcile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.engine'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.engine")
}
