package reconcile

import (
	"fmt"
	"strings"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/cssom"
)

// ResolveStatic computes the base style of a node from its static class
// names and its static inline style. Rule sets of classes are merged in
// order, later classes winning; the inline style wins over all of them.
// Class names not defined in sheet contribute nothing.
//
// Malformed rules of a textual inline style are reported and skipped; they
// never make resolution fail. Every key of the result is normalized.
// The result is a new map, owned by the caller.
func (e *Engine) ResolveStatic(classes []string, decl style.Declaration, sheet *cssom.ClassSheet) style.Map {
	base := style.Map{}
	for _, cls := range classes {
		if cls == "" {
			continue
		}
		if rule, ok := sheet.Rule(cls); ok {
			base.Extend(rule.Normalized())
		}
	}
	var text string
	var decls style.Map
	switch m := decl.Match(); m {
	case m.Decls(&decls):
		base.Extend(decls.Normalized())
	case m.Text(&text):
		if strings.TrimSpace(text) != "" {
			base.Extend(e.ParseDeclaration(text))
		}
	}
	tracer().Debugf("base style = %v", base)
	return base
}

// ParseDeclaration parses the text of a style attribute:
//
//	"color: red; width: 100"  => {color: "red", width: 100}
//
// Rules are separated by semicolons, keys from values by the first colon
// of a rule. Semicolons within quotes or parentheses do not separate rules,
// so `background: url(a;b)` is a single rule. Values which are entirely
// numeric are converted to numbers.
//
// A rule without a key or without a value, or with the value 'undefined',
// is skipped and reported. An unterminated quote or unbalanced parentheses
// are reported as well; from the offending rule on, the text is split at
// every semicolon (see style.SplitRules), so later rules are kept.
func (e *Engine) ParseDeclaration(text string) style.Map {
	m := style.Map{}
	rules, err := style.SplitRules(text)
	for _, rule := range rules {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		k, v, ok := style.SplitDeclaration(rule)
		if !ok {
			e.report(Diagnostic{
				Kind:     MalformedStaticStyle,
				Message:  "static style: expected `key: value`",
				Fragment: rule,
				Err:      ErrMalformedDeclaration,
			})
			continue
		}
		if v == "undefined" {
			e.report(Diagnostic{
				Kind:     MalformedStaticStyle,
				Message:  fmt.Sprintf("static style: property %s is undefined", k),
				Fragment: rule,
				Err:      ErrUndefinedValue,
			})
			continue
		}
		m[style.Camelize(k)] = style.ParseValue(v)
	}
	if err != nil {
		e.report(Diagnostic{
			Kind:     ParseFailure,
			Message:  "static style: unbalanced text, splitting the remainder at every ';'",
			Fragment: text,
			Err:      fmt.Errorf("%w: %w", ErrParseFailure, err),
		})
	}
	return m
}
