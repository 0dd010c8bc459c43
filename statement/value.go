// Package statement builds connection and secret DDL text. Builders are
// pure: identical input yields byte-identical SQL.
package statement

// Value is an option value in a DDL statement. The three variants render
// different SQL fragments and are mutually exclusive.
type Value interface {
	optionValue()
}

// Text is a plain option value, rendered as a quoted SQL string literal.
// The option named PORT is the exception: it renders unquoted.
type Text string

func (Text) optionValue() {}

// TextSecret is an inline secret literal. It is rendered as a quoted
// string and never persisted as a secret object.
type TextSecret struct {
	Value string
}

func (TextSecret) optionValue() {}

// SecretRef names a previously created secret object and renders as
// SECRET "<database>"."<schema>"."<name>".
type SecretRef struct {
	Name     string
	Schema   string
	Database string
}

func (SecretRef) optionValue() {}

// QualifiedName returns the fully-qualified, quoted name of the secret.
func (s SecretRef) QualifiedName() string {
	return QualifyName(s.Database, s.Schema, s.Name)
}

// Object locates a catalog object (connection, secret) by name.
type Object struct {
	Name     string
	Schema   string
	Database string
}

// QualifiedName returns the fully-qualified, quoted name of the object.
func (o Object) QualifiedName() string {
	return QualifyName(o.Database, o.Schema, o.Name)
}
