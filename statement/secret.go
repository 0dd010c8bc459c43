package statement

import "fmt"

// ObjectKind names a droppable catalog object type. The set is closed so
// that the keyword can never come from user input.
type ObjectKind string

const (
	ObjectKindConnection ObjectKind = "CONNECTION"
	ObjectKindSecret     ObjectKind = "SECRET"
)

// CreateSecret builds a CREATE SECRET statement with the value as a quoted
// literal.
func CreateSecret(obj Object, value string) string {
	return fmt.Sprintf("CREATE SECRET %s AS %s;", obj.QualifiedName(), QuoteString(value))
}

// AlterSecret builds an ALTER SECRET statement replacing the stored value.
func AlterSecret(obj Object, value string) string {
	return fmt.Sprintf("ALTER SECRET %s AS %s;", obj.QualifiedName(), QuoteString(value))
}

// Drop builds a DROP statement for a connection or secret.
func Drop(kind ObjectKind, obj Object) string {
	return fmt.Sprintf("DROP %s %s;", kind, obj.QualifiedName())
}
