// Package runner binds one outstanding SQL request to an interactive
// owner, such as a console view. A runner holds at most one request in
// flight; re-invocation cancels and replaces it, and only the most
// recently started request may write visible state.
package runner

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/quarrydb/console-sql/client"
	"github.com/quarrydb/console-sql/wire"
)

// DefaultTimeout bounds a request when the runner is not configured
// otherwise.
const DefaultTimeout = 10 * time.Second

// Fixed user-facing messages. The UI renders these verbatim.
const (
	TimeoutErrorMessage = "the query timed out"
	DefaultErrorMessage = "there was an error running the query"
)

var (
	errSuperseded = errors.New("superseded by a newer query")
	errTimedOut   = errors.New("query deadline exceeded")
)

// Executor runs one SQL batch. *client.Client satisfies it.
type Executor interface {
	Execute(ctx context.Context, request wire.Request, opts ...client.ExecuteOption) ([]wire.StatementResult, error)
}

// Snapshot is the visible state of a runner at one point in time.
type Snapshot struct {
	State   State
	Loading bool
	// Results of the last applied request, nil until one succeeds.
	Results []wire.StatementResult
	// Err is a fixed user-facing message for transport-level failures.
	Err string
	// DatabaseErr is the structured statement error of the last applied
	// request, if any.
	DatabaseErr *wire.Error
	// HasLoadedOnce is set after the first applied completion.
	HasLoadedOnce bool
}

type Runner struct {
	exec    Executor
	env     *client.Environment
	timeout time.Duration
	log     client.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelCauseFunc
	snap   Snapshot
}

type Option func(*Runner)

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Runner) {
		r.timeout = timeout
	}
}

// WithLogger attaches a logger.
func WithLogger(log client.Logger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

func New(exec Executor, env *client.Environment, opts ...Option) *Runner {
	r := &Runner{
		exec:    exec,
		env:     env,
		timeout: DefaultTimeout,
		log:     nopLogger{},
		snap:    Snapshot{State: StateIdle},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type runConfig struct {
	cluster   string
	onSuccess func([]wire.StatementResult)
	onError   func(string)
	onSettled func()
}

type RunOption func(*runConfig)

// OnCluster routes the request to a named compute cluster.
func OnCluster(name string) RunOption {
	return func(cfg *runConfig) {
		cfg.cluster = name
	}
}

// OnSuccess is invoked with the results of an applied, error-free batch.
func OnSuccess(fn func([]wire.StatementResult)) RunOption {
	return func(cfg *runConfig) {
		cfg.onSuccess = fn
	}
}

// OnError is invoked with the user-facing message of an applied failure.
func OnError(fn func(string)) RunOption {
	return func(cfg *runConfig) {
		cfg.onError = fn
	}
}

// OnSettled is invoked after any applied completion.
func OnSettled(fn func()) RunOption {
	return func(cfg *runConfig) {
		cfg.onSettled = fn
	}
}

// Invocation tracks one call to Run.
type Invocation struct {
	seq  uint64
	done chan struct{}
}

// Done is closed when the invocation settles, whether or not its outcome
// was applied to visible state.
func (i *Invocation) Done() <-chan struct{} {
	return i.done
}

// Run starts the request as the runner's current one. Any in-flight
// request is canceled and replaced, never queued. Run returns nil without
// side effects when the request is nil or the environment is not enabled.
func (r *Runner) Run(request wire.Request, opts ...RunOption) *Invocation {
	if request == nil || !r.env.Enabled() {
		return nil
	}

	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel(errSuperseded)
	}
	r.seq++
	seq := r.seq

	ctx, cancel := context.WithCancelCause(context.Background())
	r.cancel = cancel

	r.snap.State = StateRunning
	r.snap.Loading = true
	r.snap.Err = ""
	r.snap.DatabaseErr = nil
	r.mu.Unlock()

	inv := &Invocation{seq: seq, done: make(chan struct{})}

	timer := time.AfterFunc(r.timeout, func() {
		cancel(errTimedOut)
	})

	var execOpts []client.ExecuteOption
	if cfg.cluster != "" {
		execOpts = append(execOpts, client.WithCluster(cfg.cluster))
	}

	go func() {
		defer close(inv.done)
		defer timer.Stop()

		results, err := r.exec.Execute(ctx, request, execOpts...)
		if err != nil {
			// prefer the cancellation cause over the transport's wrapping
			if cause := context.Cause(ctx); cause != nil {
				err = cause
			}
		}

		r.finish(seq, results, err, &cfg)
	}()

	return inv
}

// Abort cancels the in-flight request, if any, and invalidates its
// response. Used for external teardown, e.g. when the owning view goes
// away.
func (r *Runner) Abort() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel(errSuperseded)
		r.cancel = nil
	}
	// bump so that any in-flight completion is discarded
	r.seq++

	r.snap.State = StateAborted
	r.snap.Loading = false
}

// Snapshot returns the runner's visible state.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

// finish applies one completed request to visible state, unless a newer
// request has been started since: outcomes are applied strictly in
// invocation order, never completion order.
func (r *Runner) finish(seq uint64, results []wire.StatementResult, err error, cfg *runConfig) {
	r.mu.Lock()

	if seq != r.seq {
		// A newer request owns the state now; discard unconditionally.
		// Superseded completions always land here: Run and Abort both
		// bump seq under the lock before canceling.
		r.mu.Unlock()
		return
	}
	r.cancel = nil
	r.snap.Loading = false
	r.snap.HasLoadedOnce = true

	var (
		onError   string
		succeeded bool
	)

	switch {
	case errors.Is(err, errTimedOut):
		r.snap.State = StateFailed
		r.snap.Err = TimeoutErrorMessage
		onError = TimeoutErrorMessage

	case err != nil:
		r.log.Warnf("query failed: %s", err)
		r.snap.State = StateFailed
		r.snap.Err = DefaultErrorMessage
		onError = DefaultErrorMessage

	default:
		r.snap.Results = results
		if stmtErr := wire.FirstError(results); stmtErr != nil {
			r.snap.State = StateFailed
			r.snap.DatabaseErr = stmtErr
			onError = stmtErr.Message
		} else {
			r.snap.State = StateSucceeded
			succeeded = true
		}
	}
	r.mu.Unlock()

	// callbacks run outside the lock
	if onError != "" && cfg.onError != nil {
		cfg.onError(onError)
	}
	if succeeded && cfg.onSuccess != nil {
		cfg.onSuccess(results)
	}
	if cfg.onSettled != nil {
		cfg.onSettled()
	}
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
