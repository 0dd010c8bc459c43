package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/quarrydb/console-sql/wire"
)

var _ Formatter = (*JSON)(nil)

type JSON struct{}

func NewJSON() *JSON {
	return &JSON{}
}

func (jf *JSON) Name() string {
	return "json"
}

func (jf *JSON) Format(result *wire.RowsResult, writer io.Writer) error {
	header := result.Header()

	var data []map[string]any
	for _, row := range result.Rows {
		record := make(map[string]any, len(row))
		for i, val := range row {
			var h string
			if i < len(header) {
				h = header[i]
			} else {
				h = fmt.Sprintf("<unknown-field-%d>", i)
			}
			record[h] = val
		}
		data = append(data, record)
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}
	out = append(out, '\n')

	_, err = writer.Write(out)
	return err
}
