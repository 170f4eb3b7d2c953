/*
Package w3cdom defines the interface of native render targets for the style
engine, modelled after the style part of W3C-type Elements.

See also https://www.w3schools.com/XML/dom_intro.asp

# Status

Early draft, the API may change frequently. Please stay patient.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package w3cdom

import (
	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.dom'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.dom")
}

// Element is a native element handle, owned by the host render target.
// The style engine never reads styles back from an element.
type Element interface {
	SetStyle(name string, value style.Value) // set a single style property; empty value clears it
	HasStyle() bool                          // is there a style context attached to the element?
}

// StyleCall records a single call of Element.SetStyle.
type StyleCall struct {
	Name  string
	Value style.Value
}

// Recorder is an Element which records all style calls. It is useful for
// tests and for dry runs of style patches.
type Recorder struct {
	Calls    []StyleCall
	Attached bool // reported by HasStyle
}

// SetStyle is part of interface Element.
func (r *Recorder) SetStyle(name string, value style.Value) {
	r.Calls = append(r.Calls, StyleCall{Name: name, Value: value})
}

// HasStyle is part of interface Element.
func (r *Recorder) HasStyle() bool {
	return r.Attached
}

// Reset clears all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

var _ Element = &Recorder{}
