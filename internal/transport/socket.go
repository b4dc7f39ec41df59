package transport

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/blackcrown/lobby/pkg/protocol"
)

const closeFrameTimeout = time.Second

// socketConnection is a websocket client. It never reconnects: once closed,
// a new connection has to be dialed.
type socketConnection struct {
	lifecycle

	ctx    context.Context
	cancel context.CancelFunc
	dialer *websocket.Dialer

	conn       *websocket.Conn // guarded by lifecycle.mutex
	writeMutex sync.Mutex
}

func newSocketConnection(ctx context.Context, address protocol.Address, dialer *websocket.Dialer, logger *zap.Logger) *socketConnection {
	c := &socketConnection{
		dialer: dialer,
	}
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.init(address, logger.Named("websocket").With(zap.String("address", address.String())))

	go c.run()

	return c
}

func (c *socketConnection) Kind() Kind {
	return KindWebsocket
}

func (c *socketConnection) run() {
	conn, _, err := c.dialer.DialContext(c.ctx, c.address.String(), nil)
	if err != nil {
		c.logger.Warn("failed to dial", zap.Error(err))
		c.Close()
		return
	}

	if !c.attach(conn) {
		c.logger.Debug("closed while dialing")
		_ = conn.Close()
		return
	}

	c.markOpen()
	c.readLoop(conn)
}

func (c *socketConnection) attach(conn *websocket.Conn) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.state == StateClosed {
		return false
	}
	c.conn = conn
	return true
}

func (c *socketConnection) detach() *websocket.Conn {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	conn := c.conn
	c.conn = nil
	return conn
}

// openConn returns nil unless the socket is open.
func (c *socketConnection) openConn() *websocket.Conn {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.state != StateOpen {
		return nil
	}
	return c.conn
}

func (c *socketConnection) readLoop(conn *websocket.Conn) {
	defer c.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Warn("connection lost", zap.Error(err))
			} else {
				c.logger.Debug("read loop finished", zap.Error(err))
			}
			return
		}

		message, err := protocol.UnmarshalMessage(data)
		if err != nil {
			c.logger.Debug("dropping malformed frame", zap.Error(err), zap.Int("size", len(data)))
			continue
		}

		c.deliver(message)
	}
}

func (c *socketConnection) Send(message protocol.Message) {
	conn := c.openConn()
	if conn == nil {
		c.logger.Debug("dropping message, socket not open",
			zap.String("type", string(message.Type)),
			zap.Stringer("state", c.State()),
		)
		return
	}

	data, err := protocol.Marshal(message)
	if err != nil {
		c.logger.Warn("failed to marshal message", zap.Error(err))
		return
	}

	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()

	err = conn.WriteMessage(websocket.TextMessage, data)
	if err != nil {
		c.logger.Warn("failed to write message", zap.Error(err))
	}
}

func (c *socketConnection) Close() {
	c.cancel()

	if conn := c.detach(); conn != nil {
		closeMessage := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = conn.WriteControl(websocket.CloseMessage, closeMessage, time.Now().Add(closeFrameTimeout))
		_ = conn.Close()
	}

	c.markClosed()
}
