// Package sqlparse holds a best-effort SELECT list parser. It is consumed
// only by the mock engine and tests, never by the production query path.
package sqlparse

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParse marks input the heuristic cannot handle. Callers treat it as
// "does not apply" and fall through to another handler.
var ErrParse = errors.New("failed to parse column name")

var funcCallRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\(`)

// SelectColumnNames returns the ordered output column names of a SELECT
// statement. It understands "*", plain and dotted identifiers, quoted
// identifiers, function calls (lower-cased) and AS aliases, and ignores
// commas and keywords inside parentheses. It does not understand DISTINCT,
// ALL or CTEs in front of the select list.
func SelectColumnNames(query string) ([]string, error) {
	list, err := selectList(query)
	if err != nil {
		return nil, err
	}

	exprs := splitTopLevel(list, ',')

	names := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		name, err := columnName(expr)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", strings.TrimSpace(expr), err)
		}
		names = append(names, name)
	}

	return names, nil
}

// selectList slices the text between the first top-level SELECT and the
// first top-level FROM after it.
func selectList(query string) (string, error) {
	start := indexTopLevelWord(query, 0, "select")
	if start < 0 {
		return "", fmt.Errorf("no top-level SELECT: %w", ErrParse)
	}
	start += len("select")

	end := indexTopLevelWord(query, start, "from")
	if end < 0 {
		return "", fmt.Errorf("no top-level FROM: %w", ErrParse)
	}

	return query[start:end], nil
}

// indexTopLevelWord finds the first case-insensitive occurrence of word at
// parenthesis depth zero, starting at from. The match must stand alone:
// the characters around it may not be identifier characters.
func indexTopLevelWord(s string, from int, word string) int {
	depth := 0
	quoted := false
	for i := from; i+len(word) <= len(s); i++ {
		switch s[i] {
		case '"':
			quoted = !quoted
			continue
		case '(':
			depth++
			continue
		case ')':
			depth--
			continue
		}
		if depth != 0 || quoted {
			continue
		}
		if !strings.EqualFold(s[i:i+len(word)], word) {
			continue
		}
		if i > 0 && isIdentChar(s[i-1]) {
			continue
		}
		if next := i + len(word); next < len(s) && isIdentChar(s[next]) {
			continue
		}
		return i
	}
	return -1
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// splitTopLevel splits s on sep, ignoring separators inside parentheses
// or quoted identifiers.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	quoted := false
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			quoted = !quoted
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 && !quoted {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// fieldsTopLevel splits on whitespace, treating parenthesized groups and
// quoted identifiers as part of the surrounding token so that
// "CAST(x AS int)" and `"Weird Name"` each stay whole.
func fieldsTopLevel(s string) []string {
	var fields []string
	depth := 0
	quoted := false
	start := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			quoted = !quoted
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && !quoted && (c == ' ' || c == '\t' || c == '\n' || c == '\r') {
			if start >= 0 {
				fields = append(fields, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, s[start:])
	}
	return fields
}

func columnName(expr string) (string, error) {
	tokens := fieldsTopLevel(expr)
	if len(tokens) == 0 {
		return "", ErrParse
	}

	// A standalone AS needs an expression on its left and an alias on its
	// right. This is what lets a column literally named "as" parse: in
	// "as AS alias" only the middle token qualifies.
	for i := 1; i < len(tokens)-1; i++ {
		if strings.EqualFold(tokens[i], "as") {
			return unquoteIdent(tokens[i+1]), nil
		}
	}

	last := tokens[len(tokens)-1]

	// function call: take the function name, lower-cased
	if m := funcCallRe.FindStringSubmatch(last); m != nil && strings.HasSuffix(last, ")") {
		return strings.ToLower(m[1]), nil
	}

	// dotted name: the column is the last segment
	segments := splitTopLevel(last, '.')
	name := unquoteIdent(segments[len(segments)-1])
	if name == "" {
		return "", ErrParse
	}

	return name, nil
}

func unquoteIdent(s string) string {
	return strings.Trim(s, `"`)
}
