package cssom_test

import (
	"testing"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestClassSheetLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cssom")
	defer teardown()
	//
	cs := cssom.Sheet(map[string]style.Map{
		"title": {"fontSize": style.Num(32)},
	})
	r, ok := cs.Rule("title")
	if !ok {
		t.Fatalf("expected class 'title' to be defined, isn't")
	}
	assert.Equal(t, style.Num(32), r["fontSize"])
	if _, ok := cs.Rule("missing"); ok {
		t.Errorf("expected class 'missing' to be undefined")
	}
	var nilSheet *cssom.ClassSheet
	if _, ok := nilSheet.Rule("title"); ok {
		t.Errorf("expected nil class sheet to define nothing")
	}
	assert.Equal(t, 0, nilSheet.Size())
}

func TestClassSheetDefineExtends(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cssom")
	defer teardown()
	//
	cs := cssom.NewClassSheet()
	cs.Define("a", style.Map{"color": style.Text("red"), "width": style.Num(1)})
	cs.Define("a", style.Map{"color": style.Text("blue")})
	r, _ := cs.Rule("a")
	assert.Equal(t, style.Map{"color": style.Text("blue"), "width": style.Num(1)}, r)

	other := cssom.NewClassSheet().Define("b", style.Map{"top": style.Num(0)})
	cs.Extend(other)
	assert.Equal(t, []string{"a", "b"}, cs.Classes())
}

func TestClassSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cssom")
	defer teardown()
	//
	for _, sel := range []string{".a", ".title-bar", "._x9", ".-neg"} {
		if _, ok := cssom.ClassSelector(sel); !ok {
			t.Errorf("expected %q to be a class selector", sel)
		}
	}
	for _, sel := range []string{"div", ".", ".a.b", ".a:hover", ".a b", "#id", ".9a", ""} {
		if _, ok := cssom.ClassSelector(sel); ok {
			t.Errorf("expected %q not to be a simple class selector", sel)
		}
	}
}

// fakeSheet is a minimal cssom.StyleSheet
type fakeSheet []cssom.Rule

func (s fakeSheet) AppendRules(cssom.StyleSheet) {}
func (s fakeSheet) Empty() bool                  { return len(s) == 0 }
func (s fakeSheet) Rules() []cssom.Rule          { return s }

type fakeRule struct {
	sel   string
	props [][2]string
}

func (r fakeRule) Selector() string { return r.sel }
func (r fakeRule) Properties() []string {
	keys := make([]string, len(r.props))
	for i, p := range r.props {
		keys[i] = p[0]
	}
	return keys
}
func (r fakeRule) Value(key string) string {
	for _, p := range r.props {
		if p[0] == key {
			return p[1]
		}
	}
	return ""
}

func TestFromStyleSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cssom")
	defer teardown()
	//
	sheet := fakeSheet{
		fakeRule{".title, .caption", [][2]string{{"font-size", "32"}, {"color", " red "}}},
		fakeRule{"div.title", [][2]string{{"color", "blue"}}},
		fakeRule{".caption", [][2]string{{"color", "green"}}},
	}
	cs := cssom.FromStyleSheet(sheet)
	assert.Equal(t, []string{"caption", "title"}, cs.Classes())
	title, _ := cs.Rule("title")
	assert.Equal(t, style.Map{"font-size": style.Num(32), "color": style.Text("red")}, title)
	caption, _ := cs.Rule("caption")
	assert.Equal(t, style.Text("green"), caption["color"])
}
