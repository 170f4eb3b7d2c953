package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.engine")
	defer teardown()
	//
	src := `
tag: span
class: box  big
style: "margin: 4"
bind:
  class: {red: true, blue: false}
  style:
    - {color: green, width: 10.5}
    - {font-size: ~}
parent: {top: 1}
`
	n, tag, err := decodeNode(strings.NewReader(src), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "span", tag)
	assert.Equal(t, []string{"box", "big"}, n.StaticClass)
	assert.Equal(t, style.DeclText("margin: 4"), n.StaticStyle)
	var toggles []style.Toggle
	m := n.Class.Match()
	require.NotNil(t, m.Toggles(&toggles))
	assert.Equal(t, []style.Toggle{{Class: "red", On: true}, {Class: "blue", On: false}}, toggles)
	var maps []style.Map
	require.NotNil(t, n.Style.Match().Styles(&maps))
	require.Len(t, maps, 2)
	assert.Equal(t, style.Num(10.5), maps[0]["width"])
	assert.Equal(t, style.Text("green"), maps[0]["color"])
	assert.Equal(t, style.Clear, maps[1]["font-size"])
	assert.Equal(t, style.Num(1), n.ParentStaticStyle["top"])
}

func TestDecodeNodeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.engine")
	defer teardown()
	//
	_, _, err := decodeNode(strings.NewReader("bind:\n  style: [1, 2]\n"), nil, nil)
	assert.Error(t, err)
	_, _, err = decodeNode(strings.NewReader("bind:\n  class: {red: maybe}\n"), nil, nil)
	assert.Error(t, err)
	n, tag, err := decodeNode(strings.NewReader(""), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "div", tag)
	assert.True(t, n.Class.IsEmpty())
}

func TestReadSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.cssom")
	defer teardown()
	//
	sheet, err := readSheet(strings.NewReader(".red { color: red }"), ".css")
	require.NoError(t, err)
	_, ok := sheet.Rule("red")
	assert.True(t, ok)
	doc := `<html><head><style>.big { font-size: 32 }</style></head><body></body></html>`
	sheet, err = readSheet(strings.NewReader(doc), ".HTML")
	require.NoError(t, err)
	rule, ok := sheet.Rule("big")
	require.True(t, ok)
	assert.Equal(t, style.Num(32), rule["font-size"])
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRenderCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.engine")
	defer teardown()
	//
	dir := t.TempDir()
	opts := &globalOptions{
		sheet:  writeFile(t, dir, "app.css", ".big { font-size: 32 }"),
		config: writeFile(t, dir, "restyle.yaml", "units:\n  default: px\n"),
	}
	node := writeFile(t, dir, "node.yaml", "class: big\nbind:\n  style: {color: red}\n")
	out := run(t, renderCmd(opts), "--html", node)
	assert.Equal(t, `<div style="color: red;font-size: 32px;"></div>`+"\n", out)
}

func TestDiffCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.engine")
	defer teardown()
	//
	dir := t.TempDir()
	opts := &globalOptions{
		config: writeFile(t, dir, "restyle.yaml", "mode: development\n"),
	}
	old := writeFile(t, dir, "old.yaml", "bind:\n  style: {width: 10, color: red}\n")
	n := writeFile(t, dir, "new.yaml", "bind:\n  style: {color: blue}\n")
	out := run(t, diffCmd(opts), old, n)
	assert.Contains(t, out, "width (reset)")
	assert.Contains(t, out, `<div style="color: blue;"></div>`)
}

func TestOwnerSheet(t *testing.T) {
	c := component{cssom.NewClassSheet()}
	assert.Equal(t, 0, c.ClassSheet().Size())
}
