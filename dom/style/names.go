package style

import (
	"strings"
	"sync"
)

// Property names are kept in camel case internally ("fontSize"), whereas
// style strings use the hyphenated form ("font-size"). Both conversions are
// pure, so results are cached forever.
var (
	camelCache  sync.Map // string -> string
	hyphenCache sync.Map // string -> string
)

// Camelize converts a hyphenated property name into its canonical internal
// form:
//
//	Camelize("margin-top")       => "marginTop"
//	Camelize("fontSize")         => "fontSize"
//	Camelize("-webkit-transform") => "WebkitTransform"
//
// Every hyphen followed by a word character is dropped and the character is
// upper-cased. Other characters are left as they are.
func Camelize(name string) string {
	if c, ok := camelCache.Load(name); ok {
		return c.(string)
	}
	c := camelize(name)
	camelCache.Store(name, c)
	return c
}

func camelize(name string) string {
	if !strings.Contains(name, "-") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		if name[i] == '-' && i+1 < len(name) && isWordChar(name[i+1]) {
			i++
			b.WriteByte(toUpper(name[i]))
			continue
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

// Hyphenate converts a camel case property name into the hyphenated form used
// in style strings:
//
//	Hyphenate("marginTop")       => "margin-top"
//	Hyphenate("WebkitTransform") => "webkit-transform"
//
// A hyphen is inserted before every upper case letter which follows another
// word character, then the name is lower-cased.
func Hyphenate(name string) string {
	if h, ok := hyphenCache.Load(name); ok {
		return h.(string)
	}
	h := hyphenate(name)
	hyphenCache.Store(name, h)
	return h
}

func hyphenate(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' && i > 0 && isWordChar(name[i-1]) {
			b.WriteByte('-')
		}
		b.WriteByte(c)
	}
	return strings.ToLower(b.String())
}

func isWordChar(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
