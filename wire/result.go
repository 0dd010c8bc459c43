package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

type (
	// Row is a single row of a tabular result.
	Row []any

	// Column describes one output column of a row-returning statement.
	Column struct {
		Name    string `json:"name"`
		TypeOID uint32 `json:"type_oid"`
		TypeLen int16  `json:"type_len"`
		TypeMod int32  `json:"type_mod"`
	}

	// RelationDesc describes the shape of a tabular result.
	RelationDesc struct {
		Columns []Column `json:"columns"`
	}

	// Notice is a non-fatal message attached to a statement result.
	Notice struct {
		Message  string `json:"message"`
		Severity string `json:"severity"`
		Detail   string `json:"detail,omitempty"`
		Hint     string `json:"hint,omitempty"`
	}

	// Error is the structured failure of a single statement.
	Error struct {
		Message  string `json:"message"`
		Code     Code   `json:"code"`
		Detail   string `json:"detail,omitempty"`
		Hint     string `json:"hint,omitempty"`
		Position *int   `json:"position,omitempty"`
	}
)

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// StatementResult is the outcome of one executed statement. Exactly one of
// the three variants (RowsResult, OkResult, ErrorResult) stands behind it;
// callers dispatch with a type switch.
type StatementResult interface {
	statementResult()
}

// RowsResult is the result of a row-returning statement.
type RowsResult struct {
	Tag     string
	Rows    []Row
	Desc    RelationDesc
	Notices []Notice
}

// OkResult is the result of a statement without rows, e.g. CREATE or COMMIT.
type OkResult struct {
	Ok      string
	Notices []Notice
}

// ErrorResult marks a failed statement. Statements after it in the same
// batch were not executed.
type ErrorResult struct {
	Err     Error
	Notices []Notice
}

func (*RowsResult) statementResult()  {}
func (*OkResult) statementResult()    {}
func (*ErrorResult) statementResult() {}

// Header returns the column names of the result in order.
func (r *RowsResult) Header() []string {
	header := make([]string, len(r.Desc.Columns))
	for i, col := range r.Desc.Columns {
		header[i] = col.Name
	}
	return header
}

// resultEnvelope is the union of all per-statement fields on the wire.
type resultEnvelope struct {
	Tag     string        `json:"tag,omitempty"`
	Rows    []Row         `json:"rows,omitempty"`
	Desc    *RelationDesc `json:"desc,omitempty"`
	Ok      *string       `json:"ok,omitempty"`
	Error   *Error        `json:"error,omitempty"`
	Notices []Notice      `json:"notices"`
}

func (r *RowsResult) MarshalJSON() ([]byte, error) {
	rows := r.Rows
	if rows == nil {
		rows = []Row{}
	}

	return json.Marshal(struct {
		Tag     string       `json:"tag"`
		Rows    []Row        `json:"rows"`
		Desc    RelationDesc `json:"desc"`
		Notices []Notice     `json:"notices"`
	}{
		Tag:     r.Tag,
		Rows:    rows,
		Desc:    r.Desc,
		Notices: nonNilNotices(r.Notices),
	})
}

func (r *OkResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Ok      string   `json:"ok"`
		Notices []Notice `json:"notices"`
	}{
		Ok:      r.Ok,
		Notices: nonNilNotices(r.Notices),
	})
}

func (r *ErrorResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Error   Error    `json:"error"`
		Notices []Notice `json:"notices"`
	}{
		Error:   r.Err,
		Notices: nonNilNotices(r.Notices),
	})
}

func nonNilNotices(notices []Notice) []Notice {
	if notices == nil {
		return []Notice{}
	}
	return notices
}

// DecodeResult parses a single statement result. The variant is keyed on
// field presence: error wins over rows, rows over ok.
func DecodeResult(data []byte) (StatementResult, error) {
	var env resultEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	notices := nonNilNotices(env.Notices)

	switch {
	case env.Error != nil:
		return &ErrorResult{Err: *env.Error, Notices: notices}, nil

	case env.Rows != nil || env.Desc != nil:
		var desc RelationDesc
		if env.Desc != nil {
			desc = *env.Desc
		}
		rows := env.Rows
		if rows == nil {
			rows = []Row{}
		}
		return &RowsResult{Tag: env.Tag, Rows: rows, Desc: desc, Notices: notices}, nil

	case env.Ok != nil:
		return &OkResult{Ok: *env.Ok, Notices: notices}, nil

	default:
		return nil, errors.New("statement result has no recognizable variant")
	}
}

// DecodeResponse parses the full response body of a batch call.
func DecodeResponse(r io.Reader) ([]StatementResult, error) {
	var body struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	results := make([]StatementResult, 0, len(body.Results))
	for i, raw := range body.Results {
		result, err := DecodeResult(raw)
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// EncodeResponse writes the response body for a batch of results.
func EncodeResponse(w io.Writer, results []StatementResult) error {
	if results == nil {
		results = []StatementResult{}
	}

	body := struct {
		Results []StatementResult `json:"results"`
	}{
		Results: results,
	}

	if err := json.NewEncoder(w).Encode(&body); err != nil {
		return fmt.Errorf("json.Encode: %w", err)
	}
	return nil
}

// FirstError returns the error result of a batch, if any. Results after it
// are not present, since the batch aborts on first failure.
func FirstError(results []StatementResult) *Error {
	for _, result := range results {
		if errRes, ok := result.(*ErrorResult); ok {
			return &errRes.Err
		}
	}
	return nil
}
