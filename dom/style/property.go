package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'restyle.style'
func tracer() tracing.Trace {
	return tracing.Select("restyle.style")
}

// Value is a raw value for a style property. For example, with
//
//	width: 100
//
// a numeric value of 100 is set, whereas with
//
//	color: red
//
// a textual value of "red" is set. Style values are either numbers or strings,
// nothing else. The zero value is the empty string, which instructs a
// render target to clear a property.
type Value struct {
	text string
	num  float64
	isNo bool
}

// Clear is the empty property value. Applying it resets a property.
var Clear = Value{}

// Num creates a numeric style value.
func Num(n float64) Value {
	return Value{num: n, isNo: true}
}

// Text creates a textual style value.
func Text(s string) Value {
	return Value{text: s}
}

// IsNumber is a predicate: is this a numeric value?
func (v Value) IsNumber() bool {
	return v.isNo
}

// Number returns the numeric value, if v is numeric.
func (v Value) Number() (float64, bool) {
	return v.num, v.isNo
}

// IsEmpty checks wether a value is empty, i.e. the null-string.
// Numbers are never empty.
func (v Value) IsEmpty() bool {
	return !v.isNo && v.text == ""
}

// String returns the textual representation of a value. Numbers are formatted
// in their shortest form, without exponent for all practical magnitudes
// ("100", "10.5", "0.25").
func (v Value) String() string {
	if v.isNo {
		return FormatNumber(v.num)
	}
	return v.text
}

// GoString is used for debugging output with %#v.
func (v Value) GoString() string {
	if v.isNo {
		return "style.Num(" + FormatNumber(v.num) + ")"
	}
	return fmt.Sprintf("style.Text(%q)", v.text)
}

// FormatNumber formats a float the way style values expect it: shortest
// representation, no trailing zeros, no negative zero.
func FormatNumber(f float64) string {
	if f == 0 { // catches -0 as well
		return "0"
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if a := math.Abs(f); a >= 1e21 || a < 1e-6 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseValue coerces a textual value to a number if it is entirely numeric,
// otherwise it is kept as text. Surrounding whitespace is not trimmed.
//
//	ParseValue("100")  => Num(100)
//	ParseValue("-1.5") => Num(-1.5)
//	ParseValue("10px") => Text("10px")
func ParseValue(s string) Value {
	if isNumeric(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Num(f)
		}
	}
	return Text(s)
}

// isNumeric accepts decimal numbers with optional sign, fraction and exponent.
// strconv alone would let "Inf", "NaN", hex floats and underscores pass.
func isNumeric(s string) bool {
	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < n && isDigit(s[i]) {
		i++
		digits++
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < n && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Value
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}

// --- Style Map --------------------------------------------------------

// Map holds style properties, keyed by property name. nil is a legal (empty)
// style map for every read operation.
//
// Maps handed to the reconciliation engine are never modified by it. Whoever
// intends to keep a map across render passes has to take a copy (see Clone).
type Map map[string]Value

// Clone returns a shallow copy of a map. Cloning nil returns nil.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	c := make(Map, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Extend copies all properties of other into m, overwriting existing values,
// and returns m. If m is nil, a new map is allocated.
func (m Map) Extend(other Map) Map {
	if m == nil {
		m = make(Map, len(other))
	}
	for k, v := range other {
		m[k] = v
	}
	return m
}

// Merge returns a new map with the properties of all maps, later maps
// taking precedence. None of the arguments is modified.
func Merge(maps ...Map) Map {
	size := 0
	for _, m := range maps {
		size += len(m)
	}
	r := make(Map, size)
	for _, m := range maps {
		r.Extend(m)
	}
	return r
}

// Get returns a property value, together with an indicator wether it has
// been found in the map.
func (m Map) Get(key string) (Value, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the property keys of a map, sorted.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Properties returns all properties of a map, sorted by key.
func (m Map) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(m))
	for _, k := range m.Keys() {
		r = append(r, KeyValue{k, m[k]})
	}
	return r
}

// Equal compares two maps for equal keys and values.
func (m Map) Equal(other Map) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		w, ok := other[k]
		if !ok || v != w {
			return false
		}
	}
	return true
}

// Normalized returns a copy of m with every key passed through name
// normalization (see Camelize). Keys normalizing to the empty string are
// dropped. If two keys normalize to the same name, the value of the
// key sorting last wins, which keeps the result deterministic.
func (m Map) Normalized() Map {
	if m == nil {
		return nil
	}
	r := make(Map, len(m))
	for _, k := range m.Keys() {
		if name := Camelize(k); name != "" {
			r[name] = m[k]
		}
	}
	return r
}

// Stringer for style maps; used for debugging.
func (m Map) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, kv := range m.Properties() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(kv.String())
	}
	b.WriteString("}")
	return b.String()
}
