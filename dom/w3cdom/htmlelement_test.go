package w3cdom

import (
	"strings"
	"testing"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func findDiv(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "div" {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if d := findDiv(ch); d != nil {
			return d
		}
	}
	return nil
}

func parseDiv(t *testing.T, markup string) *html.Node {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	div := findDiv(doc)
	if div == nil {
		t.Fatalf("no <div> in %q", markup)
	}
	return div
}

func TestHTMLElementSetStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.dom")
	defer teardown()
	//
	e := WrapHTML(parseDiv(t, `<div>x</div>`))
	if e.HasStyle() {
		t.Errorf("expected fresh <div> to have no style context")
	}
	e.SetStyle("fontSize", style.Text("12rpx"))
	e.SetStyle("color", style.Text("red"))
	if s := e.Style(); s != "font-size: 12rpx;color: red;" {
		t.Errorf("expected style attribute to be written, is %q", s)
	}
	e.SetStyle("fontSize", style.Clear)
	if s := e.Style(); s != "color: red;" {
		t.Errorf("expected font-size to be cleared, style is %q", s)
	}
	if !e.HasStyle() {
		t.Errorf("expected styled <div> to have a style context")
	}
}

func TestHTMLElementKeepsExistingStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.dom")
	defer teardown()
	//
	e := WrapHTML(parseDiv(t, `<div style="color: blue; width:10px">x</div>`))
	e.SetStyle("color", style.Text("red"))
	e.SetStyle("height", style.Num(3))
	if s := e.Style(); s != "color: red;width: 10px;height: 3;" {
		t.Errorf("expected existing declarations to be kept, style is %q", s)
	}
}

func TestHTMLElementKeepsQuotedSemicolons(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.dom")
	defer teardown()
	//
	e := WrapHTML(parseDiv(t, `<div style="background: url(a;b); font-family: O'Reilly; top: 1">x</div>`))
	e.SetStyle("top", style.Num(2))
	if s := e.Style(); s != "background: url(a;b);font-family: O'Reilly;top: 2;" {
		t.Errorf("expected existing declarations to be split like static styles, style is %q", s)
	}
}

func TestHTMLElementMaterializeStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.dom")
	defer teardown()
	//
	e := WrapHTML(parseDiv(t, `<div></div>`))
	e.SetStyle("", style.Clear)
	if !e.HasStyle() {
		t.Errorf("expected empty style call to create a style attribute")
	}
	if e.Style() != "" {
		t.Errorf("expected empty style attribute, is %q", e.Style())
	}
}

func TestRecorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.dom")
	defer teardown()
	//
	r := &Recorder{}
	r.SetStyle("color", style.Text("red"))
	if len(r.Calls) != 1 || r.Calls[0].Name != "color" {
		t.Errorf("expected one recorded call for color, have %v", r.Calls)
	}
	if r.HasStyle() {
		t.Errorf("expected detached recorder to report no style context")
	}
	r.Reset()
	if len(r.Calls) != 0 {
		t.Errorf("expected reset to clear calls")
	}
}
