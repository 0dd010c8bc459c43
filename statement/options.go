package statement

import (
	"fmt"
	"strings"
)

// option pairs a literal option keyword with its value. Option names come
// only from the builders' static lists, never from user input.
type option struct {
	name  string
	value Value
}

// renderOptions renders the kept option pairs joined with ",\n". Pairs
// with empty values are omitted entirely.
func renderOptions(opts []option) []string {
	var lines []string
	for _, opt := range opts {
		fragment, ok := renderValue(opt.name, opt.value)
		if !ok {
			continue
		}
		lines = append(lines, opt.name+" "+fragment)
	}
	return lines
}

func renderValue(name string, value Value) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case Text:
		if v == "" {
			return "", false
		}
		// PORT is numeric on the wire and stays unquoted
		if name == "PORT" {
			return string(v), true
		}
		return QuoteString(string(v)), true
	case TextSecret:
		if v.Value == "" {
			return "", false
		}
		return QuoteString(v.Value), true
	case SecretRef:
		if v.Name == "" {
			return "", false
		}
		return "SECRET " + v.QualifiedName(), true
	default:
		return "", false
	}
}

// createConnection assembles the full CREATE CONNECTION statement from
// pre-rendered option lines.
func createConnection(obj Object, kind string, lines []string) string {
	return fmt.Sprintf("CREATE CONNECTION %s TO %s (\n%s\n);",
		obj.QualifiedName(), kind, strings.Join(lines, ",\n"))
}
