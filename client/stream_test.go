package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/quarrydb/console-sql/client"
	"github.com/quarrydb/console-sql/wire"
)

func TestSubscribe(t *testing.T) {
	r := require.New(t)

	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/api/experimental/sql" {
			http.NotFound(w, req)
			return
		}

		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var body struct {
			Query string `json:"query"`
		}
		if err := conn.ReadJSON(&body); err != nil || body.Query == "" {
			return
		}

		items := []wire.StatementResult{
			&wire.RowsResult{
				Tag:  "SELECT 1",
				Rows: []wire.Row{{"v"}},
				Desc: wire.RelationDesc{Columns: []wire.Column{{Name: "x", TypeOID: 25, TypeLen: -1, TypeMod: -1}}},
			},
			&wire.OkResult{Ok: "COMMIT"},
		}
		for _, item := range items {
			data, err := json.Marshal(item)
			if err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}

		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
	}))
	t.Cleanup(server.Close)

	c := client.New(&client.Environment{
		Address: server.URL,
		State:   client.EnvironmentStateEnabled,
	})

	stream, err := c.Subscribe(context.Background(), &wire.SimpleRequest{Query: "SELECT x FROM t;"})
	r.NoError(err)

	first, ok := stream.Recv()
	r.True(ok)
	rows, isRows := first.(*wire.RowsResult)
	r.True(isRows)
	r.Equal([]string{"x"}, rows.Header())

	second, ok := stream.Recv()
	r.True(ok)
	okRes, isOk := second.(*wire.OkResult)
	r.True(isOk)
	r.Equal("COMMIT", okRes.Ok)

	_, ok = stream.Recv()
	r.False(ok)

	r.NoError(stream.Close())
}

func TestSubscribe_EnvironmentNotEnabled(t *testing.T) {
	r := require.New(t)

	c := client.New(&client.Environment{
		Address: "http://localhost:1",
		State:   client.EnvironmentStateDisabled,
	})

	_, err := c.Subscribe(context.Background(), &wire.SimpleRequest{Query: "SELECT x FROM t;"})
	r.ErrorIs(err, client.ErrEnvironmentNotEnabled)
}
