// Package format renders tabular results for terminal output.
package format

import (
	"io"

	"github.com/quarrydb/console-sql/wire"
)

// Formatter renders one tabular result to a writer.
type Formatter interface {
	Name() string
	Format(result *wire.RowsResult, writer io.Writer) error
}

// ByName returns the formatter registered under the given name, or nil.
func ByName(name string) Formatter {
	for _, f := range []Formatter{NewTable(), NewCSV(), NewJSON()} {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
