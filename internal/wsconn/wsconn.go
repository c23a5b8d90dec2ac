// Package wsconn provides a production-grade WebSocket client with reconnection.
package wsconn

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/quantagov/quantum-arb/internal/apperror"
)

// State represents the connection state.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateReconnecting State = "reconnecting"
	StateClosed       State = "closed"
)

// MessageHandler receives inbound messages.
type MessageHandler func(ctx context.Context, msg []byte)

// StateChangeHandler is notified on every state transition. err is non-nil
// when the transition was caused by a failure.
type StateChangeHandler func(state State, err error)

// Config holds WebSocket client configuration.
type Config struct {
	URL            string
	Name           string // label for logs and state callbacks
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	MaxReconnects  int // 0 = infinite
	PingInterval   time.Duration
	PongTimeout    time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxMessageSize int64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(url, name string) Config {
	return Config{
		URL:            url,
		Name:           name,
		InitialBackoff: 1 * time.Second,
		MaxBackoff:     30 * time.Second,
		MaxReconnects:  0, // infinite
		PingInterval:   30 * time.Second,
		PongTimeout:    10 * time.Second,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxMessageSize: 1 << 20,
	}
}

// Client is a WebSocket client with automatic reconnection and
// exponential backoff.
type Client struct {
	config Config

	mu         sync.RWMutex
	state      State
	conn       *websocket.Conn
	onMessage  MessageHandler
	onState    StateChangeHandler
	reconnects int

	done      chan struct{}
	closeOnce sync.Once
}

// New creates a new WebSocket client.
func New(config Config) (*Client, error) {
	if config.URL == "" {
		return nil, apperror.New(apperror.CodeRequiredField,
			apperror.WithContext("wsconn url"),
		)
	}
	if config.MaxMessageSize <= 0 {
		config.MaxMessageSize = 1 << 20
	}
	return &Client{
		config: config,
		state:  StateDisconnected,
		done:   make(chan struct{}),
	}, nil
}

// OnMessage registers the inbound message handler. Must be called before
// Connect.
func (c *Client) OnMessage(handler MessageHandler) {
	c.mu.Lock()
	c.onMessage = handler
	c.mu.Unlock()
}

// OnStateChange registers the state transition handler. Must be called
// before Connect.
func (c *Client) OnStateChange(handler StateChangeHandler) {
	c.mu.Lock()
	c.onState = handler
	c.mu.Unlock()
}

// Connect establishes the connection and starts the read and ping loops.
// On read failure the client redials with exponential backoff until
// MaxReconnects is exhausted or Close is called.
func (c *Client) Connect(ctx context.Context) error {
	c.setState(StateConnecting, nil)

	if err := c.dial(ctx); err != nil {
		appErr := apperror.New(apperror.CodeWebSocketConnectionError,
			apperror.WithCause(err),
			apperror.WithContext(c.config.URL),
		)
		c.setState(StateDisconnected, appErr)
		return appErr
	}

	c.setState(StateConnected, nil)

	go c.readLoop(ctx)
	if c.config.PingInterval > 0 {
		go c.pingLoop(ctx)
	}

	return nil
}

func (c *Client) dial(ctx context.Context) error {
	conn, _, err := websocket.Dial(ctx, c.config.URL, nil)
	if err != nil {
		return err
	}
	conn.SetReadLimit(c.config.MaxMessageSize)

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	return nil
}

// ConnectWithRetry keeps dialing with exponential backoff until the
// connection is established, MaxReconnects is exhausted, or ctx is done.
func (c *Client) ConnectWithRetry(ctx context.Context) error {
	backoff := c.config.InitialBackoff
	attempts := 0

	for {
		err := c.Connect(ctx)
		if err == nil {
			return nil
		}

		attempts++
		if c.config.MaxReconnects > 0 && attempts >= c.config.MaxReconnects {
			return err
		}

		select {
		case <-time.After(backoff):
		case <-c.done:
			return apperror.New(apperror.CodeWebSocketClosed)
		case <-ctx.Done():
			return ctx.Err()
		}

		backoff *= 2
		if backoff > c.config.MaxBackoff {
			backoff = c.config.MaxBackoff
		}
	}
}

// Send sends a raw text message.
func (c *Client) Send(ctx context.Context, msg []byte) error {
	c.mu.RLock()
	conn := c.conn
	state := c.state
	c.mu.RUnlock()

	if conn == nil || state != StateConnected {
		return apperror.New(apperror.CodeWebSocketSendError,
			apperror.WithContext(string(state)),
		)
	}

	if c.config.WriteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.WriteTimeout)
		defer cancel()
	}

	if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
		return apperror.New(apperror.CodeWebSocketSendError, apperror.WithCause(err))
	}
	return nil
}

// SendJSON marshals v and sends it as a text message.
func (c *Client) SendJSON(ctx context.Context, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperror.New(apperror.CodeInvalidFormat, apperror.WithCause(err))
	}
	return c.Send(ctx, data)
}

// State returns the current connection state.
func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// IsConnected reports whether the connection is established.
func (c *Client) IsConnected() bool {
	return c.State() == StateConnected
}

// Close shuts the client down. Safe to call more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
	})

	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		conn.Close(websocket.StatusNormalClosure, "client closing")
	}
	c.setState(StateClosed, nil)
	return nil
}

func (c *Client) readLoop(ctx context.Context) {
	for {
		c.mu.RLock()
		conn := c.conn
		handler := c.onMessage
		c.mu.RUnlock()
		if conn == nil {
			return
		}

		_, data, err := conn.Read(ctx)
		if err != nil {
			if c.isDone() || ctx.Err() != nil {
				return
			}
			if !c.reconnect(ctx, err) {
				return
			}
			continue
		}

		if handler != nil {
			handler(ctx, data)
		}
	}
}

// reconnect redials with exponential backoff. Returns false when the retry
// budget is exhausted or the client is shutting down.
func (c *Client) reconnect(ctx context.Context, cause error) bool {
	c.setState(StateReconnecting, apperror.New(
		apperror.CodeWebSocketReconnecting,
		apperror.WithCause(cause),
	))
	backoff := c.config.InitialBackoff

	for {
		if c.config.MaxReconnects > 0 && c.reconnects >= c.config.MaxReconnects {
			c.setState(StateDisconnected, apperror.New(apperror.CodeWebSocketClosed))
			return false
		}
		c.reconnects++

		select {
		case <-time.After(backoff):
		case <-c.done:
			return false
		case <-ctx.Done():
			return false
		}

		if err := c.dial(ctx); err == nil {
			c.setState(StateConnected, nil)
			return true
		}

		backoff *= 2
		if backoff > c.config.MaxBackoff {
			backoff = c.config.MaxBackoff
		}
	}
}

func (c *Client) pingLoop(ctx context.Context) {
	ticker := time.NewTicker(c.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.RLock()
			conn := c.conn
			state := c.state
			c.mu.RUnlock()
			if conn == nil || state != StateConnected {
				continue
			}

			pingCtx, cancel := context.WithTimeout(ctx, c.config.PongTimeout)
			// Ping failure surfaces as a read error, which triggers
			// the reconnect path.
			_ = conn.Ping(pingCtx)
			cancel()
		case <-c.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) isDone() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *Client) setState(state State, err error) {
	c.mu.Lock()
	changed := c.state != state
	c.state = state
	handler := c.onState
	c.mu.Unlock()

	if changed && handler != nil {
		handler(state, err)
	}
}
