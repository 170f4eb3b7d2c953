package style

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnbalanced flags style text with an unterminated quote or unbalanced
// parentheses.
var ErrUnbalanced = errors.New("unbalanced quotes or parentheses")

// SplitRules splits the text of a style attribute into rules at semicolons.
// Semicolons within quotes or parentheses do not separate rules, so
//
//	background: url(a;b); content: ";"
//
// yields two rules. If a quote is left open or parentheses do not balance,
// the offending rule and everything after it are split at every semicolon
// instead, and an error wrapping ErrUnbalanced is returned together with
// all the rules. Rules are returned untrimmed and may be empty.
func SplitRules(text string) ([]string, error) {
	var rules []string
	var quote byte
	depth, start := 0, 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				rules = append(rules, strings.Split(text[start:], ";")...)
				return rules, fmt.Errorf("%w: stray ')' at offset %d", ErrUnbalanced, i)
			}
			depth--
		case c == ';' && depth == 0:
			rules = append(rules, text[start:i])
			start = i + 1
		}
	}
	rest := text[start:]
	if quote != 0 {
		return append(rules, strings.Split(rest, ";")...),
			fmt.Errorf("%w: unterminated string %q", ErrUnbalanced, rest)
	}
	if depth > 0 {
		return append(rules, strings.Split(rest, ";")...),
			fmt.Errorf("%w: unclosed '(' in %q", ErrUnbalanced, rest)
	}
	return append(rules, rest), nil
}

// SplitDeclaration splits a single rule into key and value at its first
// colon, trimming both. ok is false if the rule has no colon, or if key
// or value is empty.
func SplitDeclaration(rule string) (key, value string, ok bool) {
	k, v, found := strings.Cut(rule, ":")
	key, value = strings.TrimSpace(k), strings.TrimSpace(v)
	return key, value, found && key != "" && value != ""
}
