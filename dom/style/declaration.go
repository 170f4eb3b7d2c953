package style

// Declaration is an option type for a node's static inline style. It is
// either the source text of a style attribute
//
//	style="color: red; width: 100"
//
// or an equivalent structured map, as produced by template compilers which
// pre-parse static styles.
type Declaration struct {
	text  string
	decls Map
	isMap bool
}

/*
type Declaration
	= Text string
	| Decls Map
*/

// DeclText creates a declaration from style attribute text.
func DeclText(s string) Declaration {
	return Declaration{text: s}
}

// DeclMap creates a declaration from a structured style map.
func DeclMap(m Map) Declaration {
	return Declaration{decls: m, isMap: true}
}

// IsEmpty is true for declarations without any content.
func (d Declaration) IsEmpty() bool {
	if d.isMap {
		return len(d.decls) == 0
	}
	return d.text == ""
}

// Equal compares two declarations by content.
func (d Declaration) Equal(other Declaration) bool {
	if d.isMap != other.isMap {
		return d.IsEmpty() && other.IsEmpty()
	}
	if d.isMap {
		return d.decls.Equal(other.decls)
	}
	return d.text == other.text
}

func (d Declaration) String() string {
	if d.isMap {
		return d.decls.String()
	}
	return d.text
}

// Match returns a matcher for a declaration.
func (d Declaration) Match() *DeclMatcher {
	return &DeclMatcher{decl: d}
}

// DeclMatcher helps matching declarations in switch statements.
type DeclMatcher struct {
	decl Declaration
}

// Text matches a textual declaration and stores its text in s, if non-nil.
func (m *DeclMatcher) Text(s *string) *DeclMatcher {
	if !m.decl.isMap {
		if s != nil {
			*s = m.decl.text
		}
		return m
	}
	return nil
}

// Decls matches a structured declaration and stores its map in decls,
// if non-nil.
func (m *DeclMatcher) Decls(decls *Map) *DeclMatcher {
	if m.decl.isMap {
		if decls != nil {
			*decls = m.decl.decls
		}
		return m
	}
	return nil
}
