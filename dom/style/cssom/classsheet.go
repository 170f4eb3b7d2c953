package cssom

import (
	"sort"
	"strings"

	"github.com/npillmayer/restyle/dom/style"
)

// ClassSheet maps class names to style rule sets. nil is a legal (empty)
// class sheet for every read operation.
//
// The style engine only reads class sheets. Rule sets are stored as given;
// clients must not modify a rule set after handing it to Define.
type ClassSheet struct {
	rules map[string]style.Map
}

// NewClassSheet returns a new empty class sheet.
func NewClassSheet() *ClassSheet {
	return &ClassSheet{rules: make(map[string]style.Map)}
}

// Sheet creates a class sheet from a map of class names to rule sets.
func Sheet(rules map[string]style.Map) *ClassSheet {
	cs := NewClassSheet()
	for name, rule := range rules {
		cs.Define(name, rule)
	}
	return cs
}

// Define sets the rule set for a class, extending an existing one. Later
// definitions win for properties defined twice, as in a stylesheet.
func (cs *ClassSheet) Define(name string, rule style.Map) *ClassSheet {
	if cs.rules == nil {
		cs.rules = make(map[string]style.Map)
	}
	if prev, ok := cs.rules[name]; ok {
		cs.rules[name] = style.Merge(prev, rule)
		return cs
	}
	cs.rules[name] = rule
	return cs
}

// Rule returns the rule set for a class, together with an indicator
// wether the class is defined.
func (cs *ClassSheet) Rule(name string) (style.Map, bool) {
	if cs == nil || cs.rules == nil {
		return nil, false
	}
	r, ok := cs.rules[name]
	return r, ok
}

// Size returns the number of classes defined.
func (cs *ClassSheet) Size() int {
	if cs == nil {
		return 0
	}
	return len(cs.rules)
}

// Classes returns the names of all classes defined, sorted.
func (cs *ClassSheet) Classes() []string {
	if cs == nil {
		return nil
	}
	names := make([]string, 0, len(cs.rules))
	for k := range cs.rules {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Extend adds all class definitions of other to cs.
func (cs *ClassSheet) Extend(other *ClassSheet) *ClassSheet {
	for _, name := range other.Classes() {
		r, _ := other.Rule(name)
		cs.Define(name, r)
	}
	return cs
}

// --- Conversion from stylesheets --------------------------------------

// FromStyleSheet collects the rules of a stylesheet which select a single
// class, e.g.
//
//	.title, .caption { font-size: 32; color: red }
//
// Rules with other selectors (element names, ids, combinators, pseudo
// classes) are skipped. Values are coerced to numbers where they are entirely
// numeric.
func FromStyleSheet(sheet StyleSheet) *ClassSheet {
	cs := NewClassSheet()
	if sheet == nil || sheet.Empty() {
		return cs
	}
	for _, rule := range sheet.Rules() {
		for _, sel := range strings.Split(rule.Selector(), ",") {
			sel = strings.TrimSpace(sel)
			name, ok := ClassSelector(sel)
			if !ok {
				tracer().Debugf("class sheet: skipping selector %q", sel)
				continue
			}
			m := make(style.Map, len(rule.Properties()))
			for _, key := range rule.Properties() {
				m[key] = style.ParseValue(strings.TrimSpace(rule.Value(key)))
			}
			cs.Define(name, m)
		}
	}
	return cs
}

// ClassSelector checks if sel is a simple class selector like ".title" and
// returns the class name.
func ClassSelector(sel string) (string, bool) {
	if len(sel) < 2 || sel[0] != '.' {
		return "", false
	}
	name := sel[1:]
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '-' || c == '_':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		case c >= 0x80: // non-ASCII identifiers
		default:
			return "", false
		}
	}
	return name, true
}
