package preview

import (
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// Client wraps one preview WebSocket connection. Writes are serialized so
// broadcasts and command replies can share the connection.
type Client struct {
	conn    *websocket.Conn
	readBuf []string   // Buffer for lines when a message contains multiple lines
	mu      sync.Mutex // Protects readBuf
	writeMu sync.Mutex
}

// NewClient creates a Client from a WebSocket connection.
func NewClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

// ReadLine reads one non-empty command line (blocking). A message holding
// several lines is buffered and returned one line at a time.
func (c *Client) ReadLine() (string, error) {
	for {
		c.mu.Lock()
		if len(c.readBuf) > 0 {
			line := c.readBuf[0]
			c.readBuf = c.readBuf[1:]
			c.mu.Unlock()
			return line, nil
		}
		c.mu.Unlock()

		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return "", err
		}

		var filtered []string
		for _, line := range strings.Split(string(message), "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				filtered = append(filtered, trimmed)
			}
		}
		if len(filtered) == 0 {
			continue
		}

		c.mu.Lock()
		c.readBuf = append(c.readBuf, filtered...)
		c.mu.Unlock()
	}
}

// WriteFrame sends one frame as a JSON text message.
func (c *Client) WriteFrame(f Frame) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(f)
}

// writeFramesLocked sends frames in order. The caller holds writeMu.
func (c *Client) writeFramesLocked(frames []Frame) error {
	for _, f := range frames {
		if err := c.conn.WriteJSON(f); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the WebSocket connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// RemoteAddr returns the remote address as a string.
func (c *Client) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
