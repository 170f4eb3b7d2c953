package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const sheetSource = `
.box { width: 100; height: 50px; border-width: 1 }
.active, .selected { color: red !important }
div > .box { color: blue }
@media screen { .box { width: 200 } }
.box { margin-top: 8 }
`

func TestParseClassSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cssom")
	defer teardown()
	//
	cs, err := ClassSheet(sheetSource)
	require.NoError(t, err)
	assert.Equal(t, []string{"active", "box", "selected"}, cs.Classes())
	box, _ := cs.Rule("box")
	assert.Equal(t, style.Num(100), box["width"])
	assert.Equal(t, style.Text("50px"), box["height"])
	assert.Equal(t, style.Num(8), box["margin-top"], "later rules extend earlier ones")
	active, _ := cs.Rule("active")
	assert.Equal(t, style.Text("red"), active["color"])
}

func TestAppendRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cssom")
	defer teardown()
	//
	s1, err := Parse(".a { top: 1 }")
	require.NoError(t, err)
	s2, err := Parse(".b { top: 2 }")
	require.NoError(t, err)
	s1.AppendRules(s2)
	if len(s1.Rules()) != 2 {
		t.Errorf("expected 2 rules after append, have %d", len(s1.Rules()))
	}
	empty, err := Parse("")
	require.NoError(t, err)
	assert.True(t, empty.Empty())
}

const component = `<html><head>
<style>.title { font-size: 32; color: #333 }</style>
</head><body>
<div class="title">Hello</div>
<style>.title { color: red } .hint { opacity: 0.5 }</style>
</body></html>`

func TestClassSheetFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cssom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(component))
	require.NoError(t, err)
	sheets := ExtractStyleElements(doc)
	if len(sheets) != 2 {
		t.Fatalf("expected 2 style elements, found %d", len(sheets))
	}
	cs := ClassSheetFromHTML(doc)
	title, ok := cs.Rule("title")
	require.True(t, ok)
	assert.Equal(t, style.Num(32), title["font-size"])
	assert.Equal(t, style.Text("red"), title["color"], "body styles come after head styles")
	hint, _ := cs.Rule("hint")
	assert.Equal(t, style.Num(0.5), hint["opacity"])
}
