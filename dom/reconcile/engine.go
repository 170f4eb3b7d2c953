package reconcile

import (
	"github.com/npillmayer/restyle/config"
	"github.com/npillmayer/restyle/css"
	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/styledtree"
)

// Engine is the style reconciliation engine. It is configured once and
// holds no state of render passes; all of that lives on the render nodes.
type Engine struct {
	production bool
	reporter   Reporter
	observer   Observer
	normalizer *css.Normalizer
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig applies a configuration: build mode and value normalization.
func WithConfig(cfg *config.Config) Option {
	return func(e *Engine) {
		if cfg == nil {
			return
		}
		e.production = cfg.IsProduction()
		e.normalizer = cfg.Normalizer()
	}
}

// WithProduction switches diagnostics off (true) or on (false).
func WithProduction(production bool) Option {
	return func(e *Engine) {
		e.production = production
	}
}

// WithReporter sets the receiver of diagnostics. The default reporter
// writes to the tracer 'restyle.engine'.
func WithReporter(r Reporter) Option {
	return func(e *Engine) {
		if r != nil {
			e.reporter = r
		}
	}
}

// WithObserver sets an observer for patches and diagnostics, e.g. for
// metrics.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithNormalizer sets the value normalizer used for serialization.
func WithNormalizer(n *css.Normalizer) Option {
	return func(e *Engine) {
		if n != nil {
			e.normalizer = n
		}
	}
}

// New creates a style engine. Without options it runs in development mode,
// reports to the tracer and serializes with css.Default().
func New(opts ...Option) *Engine {
	e := &Engine{
		reporter:   traceReporter{},
		observer:   nopObserver{},
		normalizer: css.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Normalizer returns the value normalizer of the engine.
func (e *Engine) Normalizer() *css.Normalizer {
	return e.normalizer
}

func (e *Engine) report(d Diagnostic) {
	if e.production {
		return
	}
	e.reporter.Report(d)
	e.observer.Diagnosed(d)
}

// Create styles a newly mounted node. The base style of the node is
// resolved and applied together with its bound styles.
//
// The resulting patch is handed to sink. If sink is nil and the node has a
// native element, the patch is applied to it with an Applier. The patch is
// returned as well.
func (e *Engine) Create(n *styledtree.Node, sink Sink) style.Map {
	sheet := n.ClassSheet()
	base := e.ResolveStatic(n.StaticClass, n.StaticStyle, sheet)
	n.SetBaseStyle(base)
	current, _ := e.Merge(nil, base, n.Class, n.Style, sheet)
	resolved(n, current)
	patch := style.Merge(base, current)
	e.emit(Mount, n, patch, sink, 0)
	return patch
}

// Update styles a re-rendered node, given its predecessor from the previous
// render pass. The patch contains the current bound styles and resets for
// every property set in the previous pass which does not apply any more.
// If the static classes or static style of the node changed, the new base
// style is part of the patch as well, and properties which are reset fall
// back to the new base values, not to those of the old node.
//
// If old is nil, Update is equivalent to Create. See Create for the meaning
// of sink.
func (e *Engine) Update(old, n *styledtree.Node, sink Sink) style.Map {
	if old == nil {
		return e.Create(n, sink)
	}
	sheet := n.ClassSheet()
	var patch style.Map
	base := old.BaseStyle()
	if styledtree.StaticChanged(old, n) {
		newBase := e.ResolveStatic(n.StaticClass, n.StaticStyle, sheet)
		patch = style.Merge(staleBase(base, newBase), newBase)
		base = newBase
	} else if base == nil {
		base = n.BaseStyle()
	}
	current, seed := e.Merge(old.ResolvedStyle(), base, n.Class, n.Style, sheet)
	resolved(n, current)
	n.SetBaseStyle(base)
	patch = patch.Extend(Patch(seed, current))
	e.emit(Rerender, n, patch, sink, resets(seed, current))
	return patch
}

// StyleString renders the complete style of a node as a style attribute
// for static markup, e.g.
//
//	style="font-size: 32rpx;color: red;"
//
// The node is treated as being mounted. A style pushed down by an enclosing
// component (node.ParentStaticStyle) wins over the node's own style.
// Dimension values are normalized, see package css. If no style applies,
// StyleString returns the empty string.
func (e *Engine) StyleString(n *styledtree.Node) string {
	sheet := n.ClassSheet()
	base := e.ResolveStatic(n.StaticClass, n.StaticStyle, sheet)
	n.SetBaseStyle(base)
	current, _ := e.Merge(nil, base, n.Class, n.Style, sheet)
	resolved(n, current)
	all := style.Merge(base, current, n.ParentStaticStyle.Normalized())
	s := &Serializer{Normalizer: e.normalizer}
	e.emit(Serialize, n, all, s, 0)
	return s.Fragment()
}

// resolved records the current style of a pass on the node, for the deletion
// seed of the next pass. An empty current style leaves nothing to reset.
func resolved(n *styledtree.Node, current style.Map) {
	if len(current) == 0 {
		n.SetResolvedStyle(nil)
		return
	}
	n.SetResolvedStyle(current)
}

func (e *Engine) emit(pass Pass, n *styledtree.Node, patch style.Map, sink Sink, resets int) {
	if sink == nil && n.Handle != nil {
		sink = Applier{Element: n.Handle}
	}
	if sink != nil {
		sink.Consume(patch)
	}
	e.observer.Patched(pass, patch, resets)
}
