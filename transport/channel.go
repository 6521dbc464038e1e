// Package transport owns the persistent push sockets. One Channel per
// logical stream (chat, notifications); each keeps at most one live
// connection and schedules a single cancellable reconnect after any close.
package transport

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"social-sync/contract"
	"social-sync/errors"
)

const (
	// Time allowed to write a frame to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum frame size allowed from the peer.
	maxFrameSize = 4096
)

// FrameHandler receives each raw inbound frame. Parsing and dropping of
// malformed frames is the consumer's job; the handler must not block.
type FrameHandler func(data []byte)

type Channel struct {
	name           string
	url            string
	tokens         contract.TokenSource
	handler        FrameHandler
	dialer         *websocket.Dialer
	reconnectDelay time.Duration
	log            *slog.Logger

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
	dialing   bool
	closed    bool
	reconnect *time.Timer
}

func NewChannel(name, url string, tokens contract.TokenSource, handler FrameHandler,
	reconnectDelay time.Duration, log *slog.Logger) *Channel {
	return &Channel{
		name:           name,
		url:            url,
		tokens:         tokens,
		handler:        handler,
		dialer:         websocket.DefaultDialer,
		reconnectDelay: reconnectDelay,
		log:            log,
	}
}

// Connect opens the socket. It is a no-op when a connection is live, a dial
// or a scheduled reconnect is outstanding, the channel was closed, or no
// token is available.
func (c *Channel) Connect(ctx context.Context) {
	c.mu.Lock()
	if c.closed || c.conn != nil || c.dialing || c.reconnect != nil {
		c.mu.Unlock()
		return
	}
	token := c.tokens.Token()
	if token == "" {
		c.mu.Unlock()
		return
	}
	c.dialing = true
	c.mu.Unlock()

	conn, _, err := c.dialer.DialContext(ctx, fmt.Sprintf("%s?token=%s", c.url, token), nil)

	c.mu.Lock()
	c.dialing = false
	if err != nil {
		c.mu.Unlock()
		c.log.Warn("Dial failed", "channel", c.name, "err", err)
		c.scheduleReconnect()
		return
	}
	if c.closed {
		c.mu.Unlock()
		_ = conn.Close()
		return
	}
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	c.log.Info("Channel connected", "channel", c.name)
	go c.readLoop(conn)
	go c.pingLoop(conn)
}

// Send marshals v to JSON and writes it to the live connection. Callers
// must treat ErrNotConnected as an undelivered message: nothing is queued.
func (c *Channel) Send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return errors.ErrNotConnected
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

func (c *Channel) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// ReconnectPending reports whether a reconnect attempt is scheduled.
func (c *Channel) ReconnectPending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reconnect != nil
}

// Close tears the channel down for good: the connection is closed and any
// pending reconnect is cancelled. Used on logout.
func (c *Channel) Close() {
	c.mu.Lock()
	c.closed = true
	if c.reconnect != nil {
		c.reconnect.Stop()
		c.reconnect = nil
	}
	conn := c.conn
	c.conn = nil
	c.connected = false
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

// readLoop pumps frames from the socket to the handler. The application
// runs exactly one reader per connection.
func (c *Channel) readLoop(conn *websocket.Conn) {
	defer c.handleClose(conn)

	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("Channel read error", "channel", c.name, "err", err)
			}
			return
		}
		c.handler(data)
	}
}

func (c *Channel) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for range ticker.C {
		c.mu.Lock()
		current := c.conn
		c.mu.Unlock()
		if current != conn {
			return
		}
		if err := writePing(conn); err != nil {
			return
		}
	}
}

// writePing emits the keepalive as a control frame. Control writes may run
// concurrently with data writes, so a ping can never race a Send.
func writePing(conn *websocket.Conn) error {
	return conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// handleClose clears the handle and schedules one reconnect attempt,
// whatever caused the close. Explicit Close suppresses the reconnect.
func (c *Channel) handleClose(conn *websocket.Conn) {
	_ = conn.Close()

	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
		c.connected = false
	}
	c.mu.Unlock()

	c.log.Info("Channel disconnected", "channel", c.name)
	c.scheduleReconnect()
}

func (c *Channel) scheduleReconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.reconnect != nil || c.conn != nil || c.dialing {
		return
	}
	c.reconnect = time.AfterFunc(c.reconnectDelay, func() {
		c.mu.Lock()
		c.reconnect = nil
		c.mu.Unlock()
		c.Connect(context.Background())
	})
}
