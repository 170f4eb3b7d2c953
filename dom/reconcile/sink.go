package reconcile

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/npillmayer/restyle/css"
	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/w3cdom"
)

// Sink consumes the patch of a render pass.
type Sink interface {
	Consume(patch style.Map)
}

// Applier is a Sink which sets every property of a patch on a native
// element, in order of property names.
//
// Values are passed on as they are: the Applier does not normalize units,
// the element is responsible for interpreting bare numbers. This differs
// from Serializer on purpose, as hosts rely on receiving numbers.
type Applier struct {
	Element w3cdom.Element
}

// Consume is part of interface Sink.
func (a Applier) Consume(patch style.Map) {
	if a.Element == nil {
		return
	}
	for _, kv := range patch.Properties() {
		a.Element.SetStyle(kv.Key, kv.Value)
	}
	if len(patch) > 0 && !a.Element.HasStyle() {
		// hosts create their style context lazily
		a.Element.SetStyle("", style.Clear)
	}
}

// Serializer is a Sink which renders a patch as a style attribute.
// See SerializeStyle.
type Serializer struct {
	Normalizer *css.Normalizer // nil for css.Default()
	fragment   string
}

// Consume is part of interface Sink.
func (s *Serializer) Consume(patch style.Map) {
	s.fragment = SerializeStyle(patch, s.Normalizer)
}

// Fragment returns the style attribute of the last patch consumed.
func (s *Serializer) Fragment() string {
	return s.fragment
}

// SerializeStyle renders a style map as a style attribute for markup:
//
//	{fontSize: 32, color: "red"}  =>  style="color: red;font-size: 32rpx;"
//
// Property names are hyphenated and sorted, dimension values are normalized
// by n. Properties with empty values are left out. Numeric zero is not
// empty and is written (`opacity: 0`), whereas JavaScript renderers drop it
// as a falsy value. The attribute value is quoted as a JSON string without
// HTML escaping, so `&`, `<` and `>` reach the markup unchanged. If no
// property is left, the empty string is returned.
func SerializeStyle(m style.Map, n *css.Normalizer) string {
	if len(m) == 0 {
		return ""
	}
	if n == nil {
		n = css.Default()
	}
	var b strings.Builder
	for _, kv := range m.Properties() {
		v := n.Normalize(kv.Key, kv.Value)
		if v.IsEmpty() {
			continue
		}
		b.WriteString(style.Hyphenate(kv.Key))
		b.WriteString(": ")
		b.WriteString(v.String())
		b.WriteString(";")
	}
	if b.Len() == 0 {
		return ""
	}
	var quoted bytes.Buffer
	enc := json.NewEncoder(&quoted)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(b.String()); err != nil { // cannot happen for strings
		tracer().Errorf("cannot quote style %q: %v", b.String(), err)
		return ""
	}
	return "style=" + strings.TrimSuffix(quoted.String(), "\n")
}
