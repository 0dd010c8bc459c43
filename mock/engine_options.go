package mock

import (
	"context"
	"time"

	"github.com/quarrydb/console-sql/wire"
)

type engineConfig struct {
	results     map[string]wire.StatementResult
	sideEffects map[string]func(context.Context) error
	delay       time.Duration
}

type Option func(*engineConfig)

// WithResult registers a canned result for an exact query text.
func WithResult(query string, result wire.StatementResult) Option {
	return func(c *engineConfig) {
		if _, ok := c.results[query]; ok {
			panic("result already registered for query: " + query)
		}
		c.results[query] = result
	}
}

// WithError registers a statement error for an exact query text.
func WithError(query string, stmtErr wire.Error) Option {
	return WithResult(query, &wire.ErrorResult{Err: stmtErr, Notices: []wire.Notice{}})
}

// WithSideEffect runs fn before answering the given query. An error from
// fn turns into a statement error.
func WithSideEffect(query string, fn func(context.Context) error) Option {
	return func(c *engineConfig) {
		if _, ok := c.sideEffects[query]; ok {
			panic("side effect already registered for query: " + query)
		}
		c.sideEffects[query] = fn
	}
}

// WithDelay sleeps before answering every statement.
func WithDelay(delay time.Duration) Option {
	return func(c *engineConfig) {
		c.delay = delay
	}
}
