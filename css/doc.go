/*
Package css normalizes style values for serialization.

Render targets of the style engine measure lengths in a relative engine unit
(by default "rpx"). Bare numbers given for dimension-bearing properties are
suffixed with that unit, pixel lengths are re-written in canonical number
format, and the token "pixel" is left for the host to resolve. Properties
which do not carry a dimension are never touched.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'restyle.css'.
func tracer() tracing.Trace {
	return tracing.Select("restyle.css")
}
