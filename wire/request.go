package wire

import "encoding/json"

type (
	// Query is a single statement in a batch, optionally with bind
	// parameters. A nil element of Params binds SQL NULL.
	Query struct {
		Query  string    `json:"query"`
		Params []*string `json:"params,omitempty"`
	}

	// Request is one batch of SQL statements submitted to the engine in a
	// single call. Statements execute in order and the first error aborts
	// the remainder of the batch.
	Request interface {
		json.Marshaler

		// Statements returns the batch in execution order.
		Statements() []Query
	}
)

// SimpleRequest is the legacy single-statement form of the request body.
type SimpleRequest struct {
	Query string
}

func (r *SimpleRequest) Statements() []Query {
	return []Query{{Query: r.Query}}
}

func (r *SimpleRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Query string `json:"query"`
	}{
		Query: r.Query,
	})
}

// ExtendedRequest carries one or more statements with optional parameters.
type ExtendedRequest struct {
	Queries []Query
}

func (r *ExtendedRequest) Statements() []Query {
	return r.Queries
}

func (r *ExtendedRequest) MarshalJSON() ([]byte, error) {
	queries := r.Queries
	if queries == nil {
		queries = []Query{}
	}

	return json.Marshal(struct {
		Queries []Query `json:"queries"`
	}{
		Queries: queries,
	})
}

// Param is a convenience for building parameter lists inline.
func Param(value string) *string {
	return &value
}
