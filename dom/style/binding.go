package style

import (
	"sort"
	"strings"
)

// Bound class and style expressions come in several authoring shapes:
//
//     class="{{ 'a b' }}"               => ClassString("a b")
//     class="{{ ['a', 'b'] }}"          => ClassNames("a", "b")
//     class="{{ {a: true, b: false} }}" => ClassToggles(...)
//     style="{{ {color: 'red'} }}"      => StyleObject(...)
//     style="{{ [s1, s2] }}"            => StyleList(s1, s2)
//
// They are resolved once into one of the option types below, which are then
// matched by the style engine, e.g.
//
//     var names []string
//     var toggles []Toggle
//     switch m := binding.Match(); m {
//     case m.Names(&names):
//         …
//     case m.Toggles(&toggles):
//         …
//     }

type bindingKind uint8

const (
	bindingNone bindingKind = iota
	bindingNames
	bindingToggles
	bindingStyles
)

// --- Class bindings ---------------------------------------------------

// Toggle is a class name switched on or off by a bound class expression.
type Toggle struct {
	Class string
	On    bool
}

// ClassBinding is an option type for bound class expressions.
type ClassBinding struct {
	names   []string
	toggles []Toggle
	kind    bindingKind
}

/*
type ClassBinding
	= NoClass
	| Names [string]
	| Toggles [(string, bool)]
*/

// NoClass is the empty class binding.
func NoClass() ClassBinding {
	return ClassBinding{}
}

// ClassNames creates a class binding from an ordered list of class names.
// Later classes take precedence over earlier ones.
func ClassNames(names ...string) ClassBinding {
	if len(names) == 0 {
		return ClassBinding{}
	}
	n := make([]string, len(names))
	copy(n, names)
	return ClassBinding{names: n, kind: bindingNames}
}

// ClassString creates a class binding from a scalar string of white-space
// separated class names. It is equivalent to ClassNames of the fields of s.
func ClassString(s string) ClassBinding {
	return ClassNames(strings.Fields(s)...)
}

// ClassToggles creates a class binding from an ordered sequence of class
// names, each switched on or off.
func ClassToggles(toggles ...Toggle) ClassBinding {
	if len(toggles) == 0 {
		return ClassBinding{}
	}
	t := make([]Toggle, len(toggles))
	copy(t, toggles)
	return ClassBinding{toggles: t, kind: bindingToggles}
}

// ClassToggleMap creates a class binding from a map of class names to
// booleans. Go maps are unordered, therefore toggles are ordered by class
// name. Clients which care about precedence between two enabled classes
// should use ClassToggles instead.
func ClassToggleMap(m map[string]bool) ClassBinding {
	toggles := make([]Toggle, 0, len(m))
	for k, on := range m {
		toggles = append(toggles, Toggle{Class: k, On: on})
	}
	sort.Slice(toggles, func(i, j int) bool {
		return toggles[i].Class < toggles[j].Class
	})
	return ClassToggles(toggles...)
}

// IsEmpty is true for a class binding without any class.
func (b ClassBinding) IsEmpty() bool {
	return b.kind == bindingNone
}

// Match returns a matcher for a class binding.
func (b ClassBinding) Match() *ClassMatcher {
	return &ClassMatcher{binding: b}
}

// ClassMatcher helps matching class bindings in switch statements.
type ClassMatcher struct {
	binding ClassBinding
}

// None matches the empty class binding.
func (m *ClassMatcher) None() *ClassMatcher {
	if m.binding.kind == bindingNone {
		return m
	}
	return nil
}

// Names matches a list of class names and stores them in names,
// if non-nil.
func (m *ClassMatcher) Names(names *[]string) *ClassMatcher {
	if m.binding.kind == bindingNames {
		if names != nil {
			*names = m.binding.names
		}
		return m
	}
	return nil
}

// Toggles matches a sequence of class toggles and stores them in toggles,
// if non-nil.
func (m *ClassMatcher) Toggles(toggles *[]Toggle) *ClassMatcher {
	if m.binding.kind == bindingToggles {
		if toggles != nil {
			*toggles = m.binding.toggles
		}
		return m
	}
	return nil
}

// --- Style bindings ---------------------------------------------------

// StyleBinding is an option type for bound style expressions. A bound style
// is a list of style maps; the scalar form is a list of one.
type StyleBinding struct {
	styles []Map
	kind   bindingKind
}

// NoStyle is the empty style binding.
func NoStyle() StyleBinding {
	return StyleBinding{}
}

// StyleObject creates a style binding from a single style map.
func StyleObject(m Map) StyleBinding {
	if m == nil {
		return StyleBinding{}
	}
	return StyleBinding{styles: []Map{m}, kind: bindingStyles}
}

// StyleList creates a style binding from an ordered list of style maps.
// Later maps take precedence over earlier ones.
func StyleList(maps ...Map) StyleBinding {
	if len(maps) == 0 {
		return StyleBinding{}
	}
	s := make([]Map, len(maps))
	copy(s, maps)
	return StyleBinding{styles: s, kind: bindingStyles}
}

// IsEmpty is true for a style binding without any style map.
func (b StyleBinding) IsEmpty() bool {
	return b.kind == bindingNone
}

// Match returns a matcher for a style binding.
func (b StyleBinding) Match() *StyleMatcher {
	return &StyleMatcher{binding: b}
}

// StyleMatcher helps matching style bindings in switch statements.
type StyleMatcher struct {
	binding StyleBinding
}

// None matches the empty style binding.
func (m *StyleMatcher) None() *StyleMatcher {
	if m.binding.kind == bindingNone {
		return m
	}
	return nil
}

// Styles matches a list of style maps and stores them in maps, if non-nil.
func (m *StyleMatcher) Styles(maps *[]Map) *StyleMatcher {
	if m.binding.kind == bindingStyles {
		if maps != nil {
			*maps = m.binding.styles
		}
		return m
	}
	return nil
}
