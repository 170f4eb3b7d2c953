package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/styledtree"
	"github.com/npillmayer/restyle/dom/w3cdom"
	"gopkg.in/yaml.v3"
)

// nodeFile is the YAML description of a render node:
//
//	tag: div
//	class: box big          # static classes
//	style: "margin: 4"      # static style, text or mapping
//	bind:
//	  class: {red: true}    # names (string or list) or toggles (mapping)
//	  style: {color: blue}  # mapping or list of mappings
//	parent: {font-size: 12} # static style of an enclosing component
//
// Mappings are kept as yaml.Node to preserve the order of toggles.
type nodeFile struct {
	Tag   string    `yaml:"tag"`
	Class string    `yaml:"class"`
	Style yaml.Node `yaml:"style"`
	Bind  struct {
		Class yaml.Node `yaml:"class"`
		Style yaml.Node `yaml:"style"`
	} `yaml:"bind"`
	Parent yaml.Node `yaml:"parent"`
}

func readNodeFile(path string, owner styledtree.Owner, handle w3cdom.Element) (*styledtree.Node, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	n, tag, err := decodeNode(f, owner, handle)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return n, tag, nil
}

// decodeNode reads a render node from YAML. It returns the node and its
// tag name, which defaults to "div".
func decodeNode(r io.Reader, owner styledtree.Owner, handle w3cdom.Element) (*styledtree.Node, string, error) {
	var nf nodeFile
	if err := yaml.NewDecoder(r).Decode(&nf); err != nil && err != io.EOF {
		return nil, "", fmt.Errorf("failed to read node: %w", err)
	}
	n := styledtree.NewNode(owner, handle).WithStaticClass(nf.Class)
	var err error
	if n.StaticStyle, err = declaration(&nf.Style); err != nil {
		return nil, "", err
	}
	if n.Class, err = classBinding(&nf.Bind.Class); err != nil {
		return nil, "", err
	}
	if n.Style, err = styleBinding(&nf.Bind.Style); err != nil {
		return nil, "", err
	}
	if n.ParentStaticStyle, err = styleMap(&nf.Parent); err != nil {
		return nil, "", err
	}
	tag := nf.Tag
	if tag == "" {
		tag = "div"
	}
	return n, tag, nil
}

func declaration(y *yaml.Node) (style.Declaration, error) {
	switch y.Kind {
	case 0:
		return style.Declaration{}, nil
	case yaml.ScalarNode:
		return style.DeclText(y.Value), nil
	case yaml.MappingNode:
		m, err := styleMap(y)
		return style.DeclMap(m), err
	}
	return style.Declaration{}, fmt.Errorf("line %d: style must be text or a mapping", y.Line)
}

func classBinding(y *yaml.Node) (style.ClassBinding, error) {
	switch y.Kind {
	case 0:
		return style.NoClass(), nil
	case yaml.ScalarNode:
		return style.ClassString(y.Value), nil
	case yaml.SequenceNode:
		var names []string
		if err := y.Decode(&names); err != nil {
			return style.NoClass(), err
		}
		return style.ClassNames(names...), nil
	case yaml.MappingNode:
		toggles := make([]style.Toggle, 0, len(y.Content)/2)
		for i := 0; i+1 < len(y.Content); i += 2 {
			var on bool
			if err := y.Content[i+1].Decode(&on); err != nil {
				return style.NoClass(), fmt.Errorf("line %d: class toggle must be boolean", y.Content[i+1].Line)
			}
			toggles = append(toggles, style.Toggle{Class: y.Content[i].Value, On: on})
		}
		return style.ClassToggles(toggles...), nil
	}
	return style.NoClass(), fmt.Errorf("line %d: unsupported class binding", y.Line)
}

func styleBinding(y *yaml.Node) (style.StyleBinding, error) {
	switch y.Kind {
	case 0:
		return style.NoStyle(), nil
	case yaml.MappingNode:
		m, err := styleMap(y)
		return style.StyleObject(m), err
	case yaml.SequenceNode:
		maps := make([]style.Map, 0, len(y.Content))
		for _, item := range y.Content {
			m, err := styleMap(item)
			if err != nil {
				return style.NoStyle(), err
			}
			maps = append(maps, m)
		}
		return style.StyleList(maps...), nil
	}
	return style.NoStyle(), fmt.Errorf("line %d: style binding must be a mapping or a list of mappings", y.Line)
}

// styleMap converts a YAML mapping of scalars to a style map. YAML numbers
// become numeric values, everything else is kept as text.
func styleMap(y *yaml.Node) (style.Map, error) {
	if y.Kind == 0 {
		return nil, nil
	}
	if y.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of style properties", y.Line)
	}
	m := make(style.Map, len(y.Content)/2)
	for i := 0; i+1 < len(y.Content); i += 2 {
		k, v := y.Content[i], y.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: value of %s must be a scalar", v.Line, k.Value)
		}
		m[k.Value] = scalar(v)
	}
	return m, nil
}

func scalar(y *yaml.Node) style.Value {
	switch y.ShortTag() {
	case "!!int", "!!float":
		if f, err := strconv.ParseFloat(y.Value, 64); err == nil {
			return style.Num(f)
		}
	case "!!null":
		return style.Clear
	}
	return style.Text(y.Value)
}
