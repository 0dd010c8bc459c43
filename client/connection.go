package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/quarrydb/console-sql/statement"
	"github.com/quarrydb/console-sql/wire"
)

// CatalogServerCluster is the administrative compute cluster DDL batches
// run on.
const CatalogServerCluster = "qry_catalog_server"

// connectionIDQuery resolves a connection's catalog id by name.
const connectionIDQuery = `SELECT c.id
FROM qry_catalog.connections c
JOIN qry_catalog.schemas sc ON c.schema_id = sc.id
JOIN qry_catalog.databases d ON sc.database_id = d.id
WHERE c.name = $1 AND sc.name = $2 AND d.name = $3;`

// ErrConnectionNotFound is returned when the CREATE succeeded but the
// catalog lookup came back empty.
var ErrConnectionNotFound = errors.New("created connection not found in catalog")

// CreateConnection issues a compiled CREATE CONNECTION statement and looks
// up the new connection's id, both in one atomic batch on the catalog
// server cluster. If the CREATE fails its structured error is returned and
// the lookup never ran.
func (c *Client) CreateConnection(ctx context.Context, createStmt string, obj statement.Object) (string, error) {
	request := &wire.ExtendedRequest{
		Queries: []wire.Query{
			{Query: createStmt},
			{Query: connectionIDQuery, Params: []*string{
				wire.Param(obj.Name),
				wire.Param(obj.Schema),
				wire.Param(obj.Database),
			}},
		},
	}

	results, err := c.Execute(ctx, request, WithCluster(CatalogServerCluster))
	if err != nil {
		return "", err
	}

	if stmtErr := wire.FirstError(results); stmtErr != nil {
		return "", stmtErr
	}

	if len(results) < 2 {
		return "", fmt.Errorf("expected 2 results, got %d", len(results))
	}

	lookup, ok := results[1].(*wire.RowsResult)
	if !ok {
		return "", fmt.Errorf("connection lookup returned no rows: %T", results[1])
	}
	if len(lookup.Rows) == 0 || len(lookup.Rows[0]) == 0 {
		return "", ErrConnectionNotFound
	}

	id, ok := lookup.Rows[0][0].(string)
	if !ok {
		return "", fmt.Errorf("connection id is not a string: %v", lookup.Rows[0][0])
	}

	return id, nil
}
