package format_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarrydb/console-sql/format"
	"github.com/quarrydb/console-sql/wire"
)

func sampleResult() *wire.RowsResult {
	return &wire.RowsResult{
		Tag: "SELECT 2",
		Rows: []wire.Row{
			{1, "first"},
			{2, "second"},
		},
		Desc: wire.RelationDesc{Columns: []wire.Column{
			{Name: "id", TypeOID: 23, TypeLen: 4, TypeMod: -1},
			{Name: "name", TypeOID: 25, TypeLen: -1, TypeMod: -1},
		}},
	}
}

func TestCSV(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	r.NoError(format.NewCSV().Format(sampleResult(), &buf))

	r.Equal("id,name\n1,first\n2,second\n", buf.String())
}

func TestJSON(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	r.NoError(format.NewJSON().Format(sampleResult(), &buf))

	var records []map[string]any
	r.NoError(json.Unmarshal(buf.Bytes(), &records))
	r.Len(records, 2)
	r.Equal("first", records[0]["name"])
}

func TestTable(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	r.NoError(format.NewTable().Format(sampleResult(), &buf))

	out := buf.String()
	r.Contains(out, "id")
	r.Contains(out, "second")
}

func TestByName(t *testing.T) {
	r := require.New(t)

	for _, name := range []string{"table", "csv", "json"} {
		f := format.ByName(name)
		r.NotNil(f)
		r.Equal(name, f.Name())
	}
	r.Nil(format.ByName("yaml"))
}
