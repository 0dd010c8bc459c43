package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/quarrydb/console-sql/wire"
)

const streamPingInterval = 30 * time.Second

// Stream is the WebSocket variant of a batch: statement results arrive one
// item at a time, in the same shape as the HTTP response items.
type Stream struct {
	conn   *websocket.Conn
	items  chan wire.StatementResult
	group  *errgroup.Group
	cancel context.CancelFunc
}

// Subscribe opens the streaming endpoint, submits the request and returns
// a stream of its results. Closing the stream or canceling the context
// tears the connection down.
func (c *Client) Subscribe(ctx context.Context, request wire.Request) (*Stream, error) {
	if !c.env.Enabled() {
		return nil, ErrEnvironmentNotEnabled
	}

	endpoint, err := c.streamURL()
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if c.env.AuthToken != "" {
		header.Set("Authorization", "Bearer "+c.env.AuthToken)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: status %d: %w", endpoint, resp.StatusCode, err)
		}
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}

	if err := conn.WriteJSON(request); err != nil {
		conn.Close()
		return nil, fmt.Errorf("conn.WriteJSON: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	group, gctx := errgroup.WithContext(ctx)

	s := &Stream{
		conn:   conn,
		items:  make(chan wire.StatementResult, 16),
		group:  group,
		cancel: cancel,
	}

	group.Go(func() error {
		defer close(s.items)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				if gctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					return nil
				}
				return fmt.Errorf("conn.ReadMessage: %w", err)
			}

			result, err := wire.DecodeResult(data)
			if err != nil {
				return fmt.Errorf("wire.DecodeResult: %w", err)
			}

			select {
			case s.items <- result:
			case <-gctx.Done():
				return nil
			}
		}
	})

	group.Go(func() error {
		ticker := time.NewTicker(streamPingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deadline := time.Now().Add(5 * time.Second)
				if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
					return fmt.Errorf("conn.WriteControl: %w", err)
				}
			case <-gctx.Done():
				// unblock the reader
				conn.Close()
				return nil
			}
		}
	})

	return s, nil
}

// Recv returns the next statement result. It returns the stream error, or
// nil with ok=false, once the stream ends.
func (s *Stream) Recv() (result wire.StatementResult, ok bool) {
	result, ok = <-s.items
	return result, ok
}

// Close tears the stream down and returns its terminal error, if any. A
// normal server-side close is not an error.
func (s *Stream) Close() error {
	s.cancel()
	s.conn.Close()
	return s.group.Wait()
}

func (c *Client) streamURL() (string, error) {
	u, err := url.Parse(c.env.Address)
	if err != nil {
		return "", fmt.Errorf("url.Parse: %w", err)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	}
	u.Path = sqlStreamPath

	return u.String(), nil
}
