/*
Package cssom provides class sheets for the style engine.

# Overview

Components style their nodes by class names. Every component owns a class
sheet, a mapping from class name to a rule set of style properties. The
style engine looks up static and bound class names in it, nothing more: there
is no selector matching beyond a direct class-name lookup, and no cascade.

Class sheets may be filled programmatically (Define) or derived from a
stylesheet. Stylesheet implementations are de-coupled by the interfaces
StyleSheet and Rule. A concrete implementation, parsing CSS source with
https://github.com/aymerick/douceur, may be found in sub-package
douceuradapter.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'restyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.cssom")
}
