// Package client executes SQL batches against a remote query engine over
// its HTTP and WebSocket APIs.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quarrydb/console-sql/wire"
)

const (
	sqlPath       = "/api/sql"
	sqlStreamPath = "/api/experimental/sql"

	defaultHTTPTimeout = 60 * time.Second
)

// ErrEnvironmentNotEnabled is returned when the target environment is not
// in an enabled state.
var ErrEnvironmentNotEnabled = errors.New("environment is not enabled")

// RequestError is a request-level failure: a non-2xx response with no
// parseable result body. It is distinct from per-statement errors, which
// arrive as wire.ErrorResult items.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected response status %d", e.Status)
	}
	return fmt.Sprintf("unexpected response status %d: %s", e.Status, e.Body)
}

// Client executes SQL batches against one environment.
type Client struct {
	env        *Environment
	httpClient *http.Client
	log        Logger
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger attaches a logger.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

func New(env *Environment, opts ...Option) *Client {
	c := &Client{
		env:        env,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		log:        nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Environment returns the environment this client targets.
func (c *Client) Environment() *Environment {
	return c.env
}

type executeConfig struct {
	cluster string
}

type ExecuteOption func(*executeConfig)

// WithCluster routes the batch to a named compute cluster.
func WithCluster(name string) ExecuteOption {
	return func(cfg *executeConfig) {
		cfg.cluster = name
	}
}

// Execute sends one batch of statements and returns the per-statement
// results in order. A statement error ends the batch: the failed
// statement's result is an *wire.ErrorResult and no results follow it.
func (c *Client) Execute(ctx context.Context, request wire.Request, opts ...ExecuteOption) ([]wire.StatementResult, error) {
	if !c.env.Enabled() {
		return nil, ErrEnvironmentNotEnabled
	}

	var cfg executeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	endpoint, err := c.sqlURL(cfg.cluster)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.env.AuthToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.env.AuthToken)
	}
	requestID := uuid.New().String()
	httpReq.Header.Set("X-Request-Id", requestID)

	c.log.Debugf("executing batch of %d statements, request id %s", len(request.Statements()), requestID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
		reqErr := &RequestError{Status: resp.StatusCode, Body: strings.TrimSpace(string(payload))}
		c.log.Warnf("request %s failed: %s", requestID, reqErr)
		return nil, reqErr
	}

	results, err := wire.DecodeResponse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wire.DecodeResponse: %w", err)
	}

	return results, nil
}

// sqlURL builds the batch endpoint URL. The cluster, when set, travels as
// a session option in the query string.
func (c *Client) sqlURL(cluster string) (string, error) {
	u, err := url.Parse(c.env.Address)
	if err != nil {
		return "", fmt.Errorf("url.Parse: %w", err)
	}
	u.Path = sqlPath

	if cluster != "" {
		sessionOpts, err := json.Marshal(map[string]string{"cluster": cluster})
		if err != nil {
			return "", fmt.Errorf("json.Marshal: %w", err)
		}
		query := url.Values{}
		query.Set("options", string(sessionOpts))
		u.RawQuery = query.Encode()
	}

	return u.String(), nil
}
