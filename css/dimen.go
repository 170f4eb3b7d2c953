package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/restyle/dom/style"
)

const (
	dimenNone     uint32 = 0
	dimenRelative uint32 = 0x0001 // bare number, engine unit
	dimenPixel    uint32 = 0x0002 // 'pixel' token, resolved by the host
	dimenPx       uint32 = 0x0003 // n px
	dimenRaw      uint32 = 0x0004 // anything else
	kindMask      uint32 = 0x000f
)

// PixelToken is a value which is passed through to the host, which will
// resolve it to one device pixel at apply-time.
const PixelToken = "pixel"

// DefaultUnit is the unit attached to bare numbers of dimension properties.
const DefaultUnit = "rpx"

// DimenT is an option type for values of dimension-bearing style properties.
type DimenT struct {
	n     float64
	raw   style.Value
	flags uint32
}

/*
type DimenT
	= Relative number
	| Pixel
	| Px number
	| Raw value
*/

// Relative creates a dimension of n engine units.
func Relative(n float64) DimenT {
	return DimenT{n: n, flags: dimenRelative}
}

// Pixel creates the host-resolved pixel dimension.
func Pixel() DimenT {
	return DimenT{flags: dimenPixel}
}

// Px creates a dimension of n pixels.
func Px(n float64) DimenT {
	return DimenT{n: n, flags: dimenPx}
}

// Raw wraps a value which is not recognized as a dimension.
func Raw(v style.Value) DimenT {
	return DimenT{raw: v, flags: dimenRaw}
}

// Dimen classifies a style value:
//
//	Num(100)       => Relative(100)
//	Text("pixel")  => Pixel()
//	Text("10.5px") => Px(10.5)
//	Text("auto")   => Raw("auto")
func Dimen(v style.Value) DimenT {
	if n, ok := v.Number(); ok {
		return Relative(n)
	}
	s := v.String()
	if s == PixelToken {
		return Pixel()
	}
	if n, ok := parsePx(s); ok {
		return Px(n)
	}
	return Raw(v)
}

// parsePx recognizes [-+]?[0-9]*\.?[0-9]+px
func parsePx(s string) (float64, bool) {
	num := strings.TrimSuffix(s, "px")
	if len(num) == len(s) || num == "" {
		return 0, false
	}
	i := 0
	if num[0] == '+' || num[0] == '-' {
		i++
	}
	dot, digitsAfter := false, 0
	for ; i < len(num); i++ {
		switch c := num[i]; {
		case c >= '0' && c <= '9':
			digitsAfter++
		case c == '.' && !dot:
			dot, digitsAfter = true, 0
		default:
			return 0, false
		}
	}
	if digitsAfter == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		tracer().Debugf("cannot read px value %q: %v", s, err)
		return 0, false
	}
	return f, true
}

// Format returns the style value of a dimension, attaching unit to relative
// numbers. Pixel lengths are written in canonical number format.
func (d DimenT) Format(unit string) style.Value {
	var n float64
	switch m := d.Match(); m {
	case m.Relative(&n):
		return style.Text(style.FormatNumber(n) + unit)
	case m.Px(&n):
		return style.Text(style.FormatNumber(n) + "px")
	case m.IsKind(Pixel()):
		return style.Text(PixelToken)
	}
	return d.raw
}

// ---------------------------------------------------------------------------

// Match returns a matcher for a dimension.
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher helps matching dimensions in switch statements.
type Matcher struct {
	dimen DimenT
}

// IsKind matches dimensions of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	if (m.dimen.flags & kindMask) == (d.flags & kindMask) {
		return m
	}
	return nil
}

// Relative matches relative dimensions and stores the number in n, if non-nil.
func (m *Matcher) Relative(n *float64) *Matcher {
	if m.dimen.flags&kindMask == dimenRelative {
		if n != nil {
			*n = m.dimen.n
		}
		return m
	}
	return nil
}

// Px matches pixel lengths and stores the number in n, if non-nil.
func (m *Matcher) Px(n *float64) *Matcher {
	if m.dimen.flags&kindMask == dimenPx {
		if n != nil {
			*n = m.dimen.n
		}
		return m
	}
	return nil
}

// Raw matches unrecognized values and stores them in v, if non-nil.
func (m *Matcher) Raw(v *style.Value) *Matcher {
	if m.dimen.flags&kindMask == dimenRaw {
		if v != nil {
			*v = m.dimen.raw
		}
		return m
	}
	return nil
}
