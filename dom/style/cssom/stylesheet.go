package cssom

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of class sheets, we introduce an interface
// for CSS stylesheets. Clients may provide a concrete implementation of
// this interface (e.g., see package douceuradapter) and convert it with
// FromStyleSheet.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string     // the prelude / selectors of the rule
	Properties() []string // property keys, e.g. "margin-top"
	Value(string) string  // property value for key, e.g. "15px"
}
