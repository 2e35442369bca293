package livesync

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
)

// Event is one named message from the backend stream.
type Event struct {
	Name string          `json:"event"`
	Data json.RawMessage `json:"data"`
}

// Event names the backend emits.
const (
	EventStatus  = "update_status"
	EventMetrics = "update_metrics"
	EventHealth  = "update_health"
)

// EventConn is a live connection delivering events until closed.
type EventConn interface {
	ReadEvent() (Event, error)
	Close() error
}

// Dialer opens an event connection. Reconnection policy belongs to the
// transport, not to the synchronizer.
type Dialer func(ctx context.Context) (EventConn, error)

type wsConn struct {
	conn *websocket.Conn
}

func (c *wsConn) ReadEvent() (Event, error) {
	var evt Event
	err := c.conn.ReadJSON(&evt)
	return evt, err
}

func (c *wsConn) Close() error { return c.conn.Close() }

// WebsocketDialer dials the backend event stream over a plain websocket
// carrying {"event", "data"} JSON envelopes.
func WebsocketDialer(url string) Dialer {
	return func(ctx context.Context) (EventConn, error) {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		if err != nil {
			return nil, err
		}
		return &wsConn{conn: conn}, nil
	}
}
