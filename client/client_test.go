package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarrydb/console-sql/client"
	"github.com/quarrydb/console-sql/mock"
	"github.com/quarrydb/console-sql/wire"
)

func newTestClient(t *testing.T, handler http.Handler) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return client.New(&client.Environment{
		Address: server.URL,
		State:   client.EnvironmentStateEnabled,
	})
}

func TestExecute_SimpleRequest(t *testing.T) {
	r := require.New(t)

	c := newTestClient(t, mock.NewEngine(mock.NewRows(0, 3)))

	results, err := c.Execute(context.Background(), &wire.SimpleRequest{Query: "SELECT id, name FROM t;"})
	r.NoError(err)
	r.Len(results, 1)

	rows, ok := results[0].(*wire.RowsResult)
	r.True(ok)
	r.Equal([]string{"id", "name"}, rows.Header())
	r.Len(rows.Rows, 3)
}

func TestExecute_BatchAbortsOnFirstError(t *testing.T) {
	r := require.New(t)

	executed := 0
	c := newTestClient(t, mock.NewEngine(nil,
		mock.WithError("CREATE CONNECTION bad;", wire.Error{
			Message: "invalid connection option",
			Code:    wire.CodeSyntaxError,
		}),
		mock.WithSideEffect("SELECT id FROM t;", func(context.Context) error {
			executed++
			return nil
		}),
	))

	results, err := c.Execute(context.Background(), &wire.ExtendedRequest{Queries: []wire.Query{
		{Query: "CREATE CONNECTION bad;"},
		{Query: "SELECT id FROM t;"},
	}})
	r.NoError(err)

	// only the failed statement has a result and the second never ran
	r.Len(results, 1)
	errRes, ok := results[0].(*wire.ErrorResult)
	r.True(ok)
	r.Equal(wire.CodeSyntaxError, errRes.Err.Code)
	r.Equal(0, executed)
}

func TestExecute_ClusterTravelsAsSessionOption(t *testing.T) {
	r := require.New(t)

	var gotOptions string
	handler := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotOptions = req.URL.Query().Get("options")
		_ = wire.EncodeResponse(w, []wire.StatementResult{&wire.OkResult{Ok: "CREATE CONNECTION"}})
	})

	c := newTestClient(t, handler)

	_, err := c.Execute(context.Background(),
		&wire.SimpleRequest{Query: "CREATE CONNECTION c TO KAFKA (BROKER 'b');"},
		client.WithCluster("qry_catalog_server"),
	)
	r.NoError(err)

	var opts map[string]string
	r.NoError(json.Unmarshal([]byte(gotOptions), &opts))
	r.Equal("qry_catalog_server", opts["cluster"])
}

func TestExecute_AuthHeader(t *testing.T) {
	r := require.New(t)

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		_ = wire.EncodeResponse(w, []wire.StatementResult{&wire.OkResult{Ok: "COMMIT"}})
	}))
	t.Cleanup(server.Close)

	c := client.New(&client.Environment{
		Address:   server.URL,
		AuthToken: "app-password",
		State:     client.EnvironmentStateEnabled,
	})

	_, err := c.Execute(context.Background(), &wire.SimpleRequest{Query: "COMMIT;"})
	r.NoError(err)
	r.Equal("Bearer app-password", gotAuth)
}

func TestExecute_RequestLevelFailure(t *testing.T) {
	r := require.New(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	})

	c := newTestClient(t, handler)

	_, err := c.Execute(context.Background(), &wire.SimpleRequest{Query: "SELECT 1 FROM t;"})
	r.Error(err)

	var reqErr *client.RequestError
	r.ErrorAs(err, &reqErr)
	r.Equal(http.StatusInternalServerError, reqErr.Status)
}

func TestExecute_EnvironmentNotEnabled(t *testing.T) {
	r := require.New(t)

	c := client.New(&client.Environment{
		Address: "http://localhost:1",
		State:   client.EnvironmentStateStarting,
	})

	_, err := c.Execute(context.Background(), &wire.SimpleRequest{Query: "SELECT 1 FROM t;"})
	r.ErrorIs(err, client.ErrEnvironmentNotEnabled)
}

func TestExecute_ContextCancellation(t *testing.T) {
	r := require.New(t)

	blocked := make(chan struct{})
	c := newTestClient(t, mock.NewEngine(nil,
		mock.WithSideEffect("SELECT pg_sleep FROM t;", func(ctx context.Context) error {
			close(blocked)
			<-ctx.Done()
			return ctx.Err()
		}),
	))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-blocked
		cancel()
	}()

	_, err := c.Execute(ctx, &wire.SimpleRequest{Query: "SELECT pg_sleep FROM t;"})
	r.Error(err)
	r.ErrorIs(err, context.Canceled)
}
