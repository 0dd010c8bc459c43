// Package mock provides an in-process stand-in for the remote query
// engine's batch endpoint, used by tests.
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/quarrydb/console-sql/sqlparse"
	"github.com/quarrydb/console-sql/wire"
)

// Engine serves POST /api/sql with batch semantics: statements run in
// order and the first error stops the rest.
type Engine struct {
	data   []wire.Row
	config *engineConfig
}

var _ http.Handler = (*Engine)(nil)

// NewEngine returns an engine that answers unmatched SELECTs with the
// provided rows.
func NewEngine(data []wire.Row, opts ...Option) *Engine {
	config := &engineConfig{
		results:     make(map[string]wire.StatementResult),
		sideEffects: make(map[string]func(context.Context) error),
	}
	for _, opt := range opts {
		opt(config)
	}

	return &Engine{
		data:   data,
		config: config,
	}
}

func (e *Engine) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/api/sql" {
		http.NotFound(w, r)
		return
	}

	var body struct {
		Query   *string      `json:"query"`
		Queries []wire.Query `json:"queries"`
	}
	if err := decodeJSONBody(r, &body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	queries := body.Queries
	if body.Query != nil {
		queries = []wire.Query{{Query: *body.Query}}
	}

	var results []wire.StatementResult
	for _, query := range queries {
		result := e.execute(r.Context(), query.Query)
		results = append(results, result)

		// first error aborts the batch
		if _, failed := result.(*wire.ErrorResult); failed {
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = wire.EncodeResponse(w, results)
}

func (e *Engine) execute(ctx context.Context, query string) wire.StatementResult {
	if eff, ok := e.config.sideEffects[query]; ok {
		if err := eff(ctx); err != nil {
			return &wire.ErrorResult{
				Err:     wire.Error{Message: err.Error(), Code: wire.CodeInternalError},
				Notices: []wire.Notice{},
			}
		}
	}

	if e.config.delay > 0 {
		select {
		case <-time.After(e.config.delay):
		case <-ctx.Done():
		}
	}

	if result, ok := e.config.results[query]; ok {
		return result
	}

	// synthesize a tabular result for SELECTs the heuristic can parse;
	// a parse failure means this handler does not apply
	if names, err := sqlparse.SelectColumnNames(query); err == nil {
		return e.tabular(names)
	}

	return &wire.OkResult{Ok: commandTag(query), Notices: []wire.Notice{}}
}

func (e *Engine) tabular(names []string) *wire.RowsResult {
	columns := make([]wire.Column, len(names))
	for i, name := range names {
		// every synthesized column is text
		columns[i] = wire.Column{Name: name, TypeOID: 25, TypeLen: -1, TypeMod: -1}
	}

	rows := e.data
	if rows == nil {
		rows = []wire.Row{}
	}

	return &wire.RowsResult{
		Tag:     fmt.Sprintf("SELECT %d", len(rows)),
		Rows:    rows,
		Desc:    wire.RelationDesc{Columns: columns},
		Notices: []wire.Notice{},
	}
}

func decodeJSONBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// commandTag derives the ok-tag of a non-SELECT statement from its leading
// keywords.
func commandTag(query string) string {
	query = strings.TrimRight(strings.TrimSpace(query), ";")
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "OK"
	}

	first := strings.ToUpper(fields[0])
	switch first {
	case "CREATE", "DROP", "ALTER":
		if len(fields) > 1 {
			return first + " " + strings.ToUpper(fields[1])
		}
	}
	return first
}

// NewRows returns rows in the form {<index>, "row_<index>"} for indexes
// from (inclusive) to to (exclusive).
func NewRows(from, to int) []wire.Row {
	var rows []wire.Row
	for i := from; i < to; i++ {
		rows = append(rows, wire.Row{i, fmt.Sprintf("row_%d", i)})
	}
	return rows
}
