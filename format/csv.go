package format

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/quarrydb/console-sql/wire"
)

var _ Formatter = (*CSV)(nil)

type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

func (cf *CSV) Name() string {
	return "csv"
}

func (cf *CSV) Format(result *wire.RowsResult, writer io.Writer) error {
	data := [][]string{
		result.Header(),
	}
	for _, row := range result.Rows {
		var csvRow []string
		for _, rec := range row {
			csvRow = append(csvRow, fmt.Sprint(rec))
		}
		data = append(data, csvRow)
	}

	w := csv.NewWriter(writer)
	if err := w.WriteAll(data); err != nil {
		return fmt.Errorf("w.WriteAll: %w", err)
	}

	return nil
}
