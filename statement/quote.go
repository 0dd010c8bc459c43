package statement

import "strings"

// QuoteIdentifier quotes a SQL identifier, doubling embedded quotes.
func QuoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// QuoteString quotes a SQL string literal, doubling embedded quotes.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// QualifyName assembles a fully-qualified object name with each part
// quoted.
func QualifyName(database, schema, name string) string {
	return QuoteIdentifier(database) + "." + QuoteIdentifier(schema) + "." + QuoteIdentifier(name)
}
