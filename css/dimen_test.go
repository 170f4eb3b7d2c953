package css_test

import (
	"testing"

	"github.com/npillmayer/restyle/css"
	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDimenBasic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.css")
	defer teardown()
	//
	var n float64
	switch m := css.Dimen(style.Num(100)).Match(); m {
	case m.Relative(&n):
		t.Logf("relative = %v", n)
	default:
		t.Errorf("expected Num(100) to be a relative dimension, isn't")
	}
	if n != 100 {
		t.Errorf("expected relative dimension to be 100, is %v", n)
	}

	switch m := css.Dimen(style.Text("-3.25px")).Match(); m {
	case m.Px(&n):
		t.Logf("px = %v", n)
	default:
		t.Errorf("expected -3.25px to be a pixel length, isn't")
	}
	if n != -3.25 {
		t.Errorf("expected pixel length to be -3.25, is %v", n)
	}

	pixel := css.Dimen(style.Text("pixel"))
	switch m := pixel.Match(); m {
	case m.IsKind(css.Pixel()):
		t.Logf("dimen is pixel")
	default:
		t.Errorf("expected 'pixel' to match kind(pixel), isn't: %#v", pixel)
	}

	var raw style.Value
	for _, s := range []string{"auto", "10em", "px", "1.2.3px", "5 px", ".px", "10%"} {
		switch m := css.Dimen(style.Text(s)).Match(); m {
		case m.Raw(&raw):
		default:
			t.Errorf("expected %q to be a raw value, isn't", s)
		}
		if raw.String() != s {
			t.Errorf("expected raw value to be %q, is %q", s, raw.String())
		}
	}
}

func TestNormalizeDimensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.css")
	defer teardown()
	//
	n := css.Default()
	cases := []struct {
		prop string
		in   style.Value
		out  string
	}{
		{"width", style.Num(100), "100rpx"},
		{"fontSize", style.Num(1.5), "1.5rpx"},
		{"height", style.Text("10.5px"), "10.5px"},
		{"height", style.Text("10.50px"), "10.5px"},
		{"marginTop", style.Text("+.5px"), "0.5px"},
		{"marginTop", style.Text("-0px"), "0px"},
		{"width", style.Text("pixel"), "pixel"},
		{"width", style.Text("50%"), "50%"},
		{"lineHeight", style.Text("auto"), "auto"},
	}
	for _, c := range cases {
		v := n.Normalize(c.prop, c.in)
		if v.IsNumber() || v.String() != c.out {
			t.Errorf("expected %s: %#v to normalize to %q, is %#v", c.prop, c.in, c.out, v)
		}
	}
}

func TestNormalizeLeavesOtherProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.css")
	defer teardown()
	//
	n := css.Default()
	v := n.Normalize("opacity", style.Num(1))
	if !v.IsNumber() || v.String() != "1" {
		t.Errorf("expected opacity to stay numeric 1, is %#v", v)
	}
	v = n.Normalize("color", style.Text("10px"))
	if v.String() != "10px" {
		t.Errorf("expected color to stay untouched, is %#v", v)
	}
	// hyphenated names are not normalized property names
	v = n.Normalize("font-size", style.Num(12))
	if !v.IsNumber() {
		t.Errorf("expected font-size (not normalized) to stay untouched, is %#v", v)
	}
}

func TestNormalizerCustomUnit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.css")
	defer teardown()
	//
	n := css.NewNormalizer("dp", "font-size", "gap")
	if n.Unit() != "dp" {
		t.Errorf("expected unit to be dp, is %q", n.Unit())
	}
	if v := n.Normalize("gap", style.Num(4)); v.String() != "4dp" {
		t.Errorf("expected gap 4 to normalize to 4dp, is %#v", v)
	}
	if v := n.Normalize("fontSize", style.Num(4)); v.String() != "4dp" {
		t.Errorf("expected fontSize 4 to normalize to 4dp, is %#v", v)
	}
	if v := n.Normalize("width", style.Num(4)); !v.IsNumber() {
		t.Errorf("expected width to be outside custom dimension set, is %#v", v)
	}
}
