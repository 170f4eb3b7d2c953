package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.style")
	defer teardown()
	//
	numeric := map[string]float64{
		"100": 100, "-1.5": -1.5, "+3": 3, ".25": 0.25, "1e3": 1000, "7.": 7,
	}
	for s, f := range numeric {
		v := ParseValue(s)
		n, ok := v.Number()
		if !ok || n != f {
			t.Errorf("expected %q to be coerced to number %v, is %#v", s, f, v)
		}
	}
	for _, s := range []string{"10px", "red", "Infinity", "NaN", "0x10", "1_000", "1e", "-", ".", "1 2"} {
		v := ParseValue(s)
		if v.IsNumber() || v.String() != s {
			t.Errorf("expected %q to stay textual, is %#v", s, v)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.style")
	defer teardown()
	//
	assert.Equal(t, "100", FormatNumber(100))
	assert.Equal(t, "10.5", FormatNumber(10.5))
	assert.Equal(t, "0", FormatNumber(-0.0*1))
	assert.Equal(t, "-2.25", FormatNumber(-2.25))
	assert.Equal(t, "1e+21", FormatNumber(1e21))
}

func TestValueEmptiness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.style")
	defer teardown()
	//
	assert.True(t, Clear.IsEmpty())
	assert.True(t, Text("").IsEmpty())
	assert.False(t, Num(0).IsEmpty(), "numbers are never empty")
	assert.False(t, Text("0").IsEmpty())
	assert.Equal(t, Clear, Text(""))
}

func TestMapCloneIsShallowCopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.style")
	defer teardown()
	//
	m := Map{"color": Text("red")}
	c := m.Clone()
	m["color"] = Text("blue")
	m["width"] = Num(1)
	if v := c["color"]; v != Text("red") {
		t.Errorf("expected clone to keep color red, is %#v", v)
	}
	if len(c) != 1 {
		t.Errorf("expected clone to have 1 entry, has %d", len(c))
	}
	var empty Map
	if empty.Clone() != nil {
		t.Error("expected clone of nil map to be nil")
	}
}

func TestMapMergePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.style")
	defer teardown()
	//
	a := Map{"color": Text("red"), "width": Num(1)}
	b := Map{"color": Text("blue")}
	r := Merge(a, nil, b)
	assert.Equal(t, Map{"color": Text("blue"), "width": Num(1)}, r)
	assert.Equal(t, Text("red"), a["color"], "merge must not modify its arguments")
	assert.Equal(t, []string{"color", "width"}, r.Keys())
}

func TestMapNormalized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.style")
	defer teardown()
	//
	m := Map{"font-size": Num(12), "background-color": Text("red"), "top": Num(0)}
	n := m.Normalized()
	assert.Equal(t, Map{"fontSize": Num(12), "backgroundColor": Text("red"), "top": Num(0)}, n)
	assert.Contains(t, m, "font-size", "Normalized must not modify the receiver")
	assert.Equal(t, "{backgroundColor: red; fontSize: 12; top: 0}", n.String())
}
