package reconcile

import (
	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/cssom"
)

// Merge resolves the bound class and style expressions of a node.
//
// It returns the current style, i.e. the bound styles of this pass, and the
// deletion seed: every property resolved in the previous pass (prev) is
// mapped to its base value, or to the empty value if base does not define
// it. Merging the current style on top of the seed (see Patch) resets
// properties which no longer apply.
//
// Bound classes contribute their rule sets from sheet. A class switched off
// resets each property of its rule set to the base value, or clears it.
// Classes switched on win over classes switched off, and bound inline style
// wins over all bound classes. None of the arguments is modified.
func (e *Engine) Merge(prev, base style.Map, class style.ClassBinding, bound style.StyleBinding,
	sheet *cssom.ClassSheet) (current style.Map, seed style.Map) {
	//
	seed = make(style.Map, len(prev))
	for name := range prev {
		if key := style.Camelize(name); key != "" {
			seed[key] = baseOrClear(base, key)
		}
	}
	current = style.Merge(classStyle(class, base, sheet), boundStyle(bound))
	tracer().Debugf("current style = %v, deletion seed = %v", current, seed)
	return current, seed
}

// classStyle resolves a bound class expression against a class sheet.
func classStyle(class style.ClassBinding, base style.Map, sheet *cssom.ClassSheet) style.Map {
	var names []string
	var toggles []style.Toggle
	switch m := class.Match(); m {
	case m.Names(&names):
		on := style.Map{}
		for _, name := range names {
			if rule, ok := sheet.Rule(name); ok {
				on.Extend(rule.Normalized())
			}
		}
		return on
	case m.Toggles(&toggles):
		on, off := style.Map{}, style.Map{}
		for _, t := range toggles {
			rule, ok := sheet.Rule(t.Class)
			if !ok {
				continue
			}
			if t.On {
				on.Extend(rule.Normalized())
				continue
			}
			for key := range rule.Normalized() {
				off[key] = baseOrClear(base, key)
			}
		}
		return style.Merge(off, on)
	}
	return nil
}

// boundStyle merges a bound style expression into a single map.
func boundStyle(bound style.StyleBinding) style.Map {
	var maps []style.Map
	switch m := bound.Match(); m {
	case m.Styles(&maps):
		r := style.Map{}
		for _, s := range maps {
			r.Extend(s.Normalized())
		}
		return r
	}
	return nil
}

func baseOrClear(base style.Map, key string) style.Value {
	if v, ok := base[key]; ok {
		return v
	}
	return style.Clear
}
