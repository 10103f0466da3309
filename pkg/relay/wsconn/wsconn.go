// Package wsconn adapts gorilla/websocket connections to relay.Conn.
package wsconn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"pcbinspect/pkg/relay"

	"github.com/gorilla/websocket"
)

// DefaultHandshakeTimeout bounds the opening handshake.
const DefaultHandshakeTimeout = 10 * time.Second

// Conn wraps a websocket connection.
type Conn struct {
	ws *websocket.Conn
}

var _ relay.Conn = (*Conn)(nil)

// ReadMessage returns the next binary or text message. A normal close from
// the peer is reported as io.EOF.
func (c *Conn) ReadMessage() (relay.Message, error) {
	for {
		typ, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return relay.Message{}, io.EOF
			}

			return relay.Message{}, err
		}

		switch typ {
		case websocket.BinaryMessage:
			return relay.Message{Type: relay.BinaryMessage, Data: data}, nil
		case websocket.TextMessage:
			return relay.Message{Type: relay.TextMessage, Data: data}, nil
		}
	}
}

// Close sends a close frame and closes the underlying connection.
func (c *Conn) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))

	if err := c.ws.Close(); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		return fmt.Errorf("could not close websocket: %w", err)
	}

	return nil
}

// Dialer opens websocket connections to a fixed URL.
type Dialer struct {
	URL    string
	Header http.Header
	dialer *websocket.Dialer
}

var _ relay.Dialer = (*Dialer)(nil)

// NewDialer creates a Dialer for url. A zero timeout selects
// DefaultHandshakeTimeout.
func NewDialer(url string, handshakeTimeout time.Duration) *Dialer {
	if handshakeTimeout <= 0 {
		handshakeTimeout = DefaultHandshakeTimeout
	}

	return &Dialer{
		URL: url,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
	}
}

// Dial opens the connection.
func (d *Dialer) Dial(ctx context.Context) (relay.Conn, error) {
	ws, resp, err := d.dialer.DialContext(ctx, d.URL, d.Header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("could not dial %s (status %d): %w", d.URL, resp.StatusCode, err)
		}

		return nil, fmt.Errorf("could not dial %s: %w", d.URL, err)
	}

	return &Conn{ws: ws}, nil
}
