package reconcile

import (
	"errors"
	"fmt"
)

// Errors classifying diagnostics. Use errors.Is on Diagnostic.Err.
var (
	// ErrMalformedDeclaration flags a static style rule not of the form `key: value`.
	ErrMalformedDeclaration = errors.New("malformed style declaration")
	// ErrUndefinedValue flags a static style rule with the literal value 'undefined'.
	ErrUndefinedValue = errors.New("undefined style value")
	// ErrParseFailure flags a static style text which could not be split into rules.
	ErrParseFailure = errors.New("style parse failure")
)

// DiagnosticKind classifies diagnostics.
type DiagnosticKind uint8

// Kinds of diagnostics
const (
	MalformedStaticStyle DiagnosticKind = iota // a rule has been skipped
	ParseFailure                               // parsing stopped, earlier rules are kept
)

func (k DiagnosticKind) String() string {
	switch k {
	case MalformedStaticStyle:
		return "malformed-static-style"
	case ParseFailure:
		return "parse-failure"
	}
	return fmt.Sprintf("diagnostic(%d)", uint8(k))
}

// Diagnostic is a non-fatal warning about malformed style input.
type Diagnostic struct {
	Kind     DiagnosticKind
	Message  string
	Fragment string // offending part of the input, if any
	Err      error  // one of the Err… sentinels, possibly wrapped
}

func (d Diagnostic) String() string {
	if d.Fragment == "" {
		return d.Message
	}
	return fmt.Sprintf("%s: %q", d.Message, d.Fragment)
}

// Reporter receives diagnostics. Reporters must not panic.
type Reporter interface {
	Report(Diagnostic)
}

// ReporterFunc is an adapter to use ordinary functions as Reporters.
type ReporterFunc func(Diagnostic)

// Report is part of interface Reporter.
func (f ReporterFunc) Report(d Diagnostic) {
	f(d)
}

// traceReporter is the default reporter, writing diagnostics to the
// engine's tracer.
type traceReporter struct{}

func (traceReporter) Report(d Diagnostic) {
	tracer().P("kind", d.Kind).P("fragment", d.Fragment).Errorf("style: %s", d.Message)
}

// Collector is a Reporter which keeps all diagnostics.
type Collector struct {
	Diagnostics []Diagnostic
}

// Report is part of interface Reporter.
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Count returns the number of diagnostics of a kind.
func (c *Collector) Count(kind DiagnosticKind) int {
	n := 0
	for _, d := range c.Diagnostics {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
