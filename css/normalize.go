package css

import (
	"github.com/npillmayer/restyle/dom/style"
)

// DimensionProperties is the default set of properties whose values carry
// a dimension and therefore are subject to unit normalization.
var DimensionProperties = []string{
	"width", "height", "minWidth", "maxWidth", "minHeight", "maxHeight",
	"margin", "padding",
	"marginLeft", "marginTop", "marginRight", "marginBottom",
	"paddingLeft", "paddingTop", "paddingRight", "paddingBottom",
	"left", "top", "right", "bottom",
	"borderWidth", "borderRadius",
	"fontSize", "lineHeight",
}

// Normalizer normalizes the values of dimension-bearing properties for
// serialization. It is immutable after construction and may be shared.
type Normalizer struct {
	unit string
	dims map[string]struct{}
}

// NewNormalizer creates a normalizer for a unit and a set of dimension
// properties. Property names may be given in hyphenated or camel case form.
// If unit is empty, DefaultUnit is used. If no properties are given,
// DimensionProperties is used.
func NewNormalizer(unit string, props ...string) *Normalizer {
	if unit == "" {
		unit = DefaultUnit
	}
	if len(props) == 0 {
		props = DimensionProperties
	}
	n := &Normalizer{unit: unit, dims: make(map[string]struct{}, len(props))}
	for _, p := range props {
		n.dims[style.Camelize(p)] = struct{}{}
	}
	return n
}

var defaultNormalizer = NewNormalizer(DefaultUnit)

// Default returns a normalizer with DefaultUnit and DimensionProperties.
func Default() *Normalizer {
	return defaultNormalizer
}

// Unit returns the unit attached to bare numbers.
func (n *Normalizer) Unit() string {
	if n == nil {
		return DefaultUnit
	}
	return n.unit
}

// IsDimension is a predicate: is prop subject to unit normalization?
// prop has to be in normalized (camel case) form.
func (n *Normalizer) IsDimension(prop string) bool {
	if n == nil {
		n = defaultNormalizer
	}
	_, ok := n.dims[prop]
	return ok
}

// Normalize returns the normalized value for a property. Properties outside
// the dimension set are returned untouched, as are values which are not
// recognized as dimensions.
//
//	Normalize("width", Num(100))       => "100rpx"
//	Normalize("width", Text("10.50px")) => "10.5px"
//	Normalize("width", Text("pixel"))  => "pixel"
//	Normalize("opacity", Num(1))       => 1
func (n *Normalizer) Normalize(prop string, v style.Value) style.Value {
	if !n.IsDimension(prop) {
		return v
	}
	return Dimen(v).Format(n.Unit())
}
