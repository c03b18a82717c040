// Package testclient drives a running preview server for smoke tests.
package testclient

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lawnchairsociety/dungeonforge/internal/preview"
)

// TestClient is one WebSocket connection to the preview hub.
type TestClient struct {
	Name   string
	conn   *websocket.Conn
	frames []preview.Frame
	mu     sync.Mutex
	done   chan struct{}
}

// NewTestClient connects to the preview endpoint at url, e.g.
// ws://localhost:8080/ws.
func NewTestClient(name, url string) (*TestClient, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	client := &TestClient{
		Name:   name,
		conn:   conn,
		frames: make([]preview.Frame, 0),
		done:   make(chan struct{}),
	}

	// Start reading frames in background
	go client.readFrames()

	return client, nil
}

// readFrames continuously reads frames from the server
func (c *TestClient) readFrames() {
	defer close(c.done)
	for {
		var f preview.Frame
		if err := c.conn.ReadJSON(&f); err != nil {
			return
		}
		c.mu.Lock()
		c.frames = append(c.frames, f)
		c.mu.Unlock()
	}
}

// SendCommand sends a text command to the server
func (c *TestClient) SendCommand(cmd string) error {
	return c.conn.WriteMessage(websocket.TextMessage, []byte(cmd))
}

// GetFrames returns all frames received so far
func (c *TestClient) GetFrames() []preview.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]preview.Frame, len(c.frames))
	copy(result, c.frames)
	return result
}

// ClearFrames clears the frame buffer
func (c *TestClient) ClearFrames() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = make([]preview.Frame, 0)
}

// WaitForFrame waits for the first frame of type frameType (with timeout)
func (c *TestClient) WaitForFrame(frameType string, timeout time.Duration) (preview.Frame, bool) {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		for _, f := range c.GetFrames() {
			if f.Type == frameType {
				return f, true
			}
		}
		time.Sleep(20 * time.Millisecond)
	}

	return preview.Frame{}, false
}

// WaitForReply waits for a status or error frame and returns it.
func (c *TestClient) WaitForReply(timeout time.Duration) (preview.Frame, bool) {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		for _, f := range c.GetFrames() {
			if f.Type == preview.FrameStatus || f.Type == preview.FrameError {
				return f, true
			}
		}
		time.Sleep(20 * time.Millisecond)
	}

	return preview.Frame{}, false
}

// HasMessage checks if any status or error frame contains text
func (c *TestClient) HasMessage(text string) bool {
	for _, f := range c.GetFrames() {
		if strings.Contains(f.Message, text) {
			return true
		}
	}
	return false
}

// Close closes the client connection and waits for the reader to stop
func (c *TestClient) Close() error {
	err := c.conn.Close()
	<-c.done
	return err
}
