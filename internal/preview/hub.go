// Package preview streams generated dungeons to browsers over WebSocket.
// Hub implements dungeon.TilePainter, so the generator paints straight into
// every connected client.
package preview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lawnchairsociety/dungeonforge/internal/config"
	"github.com/lawnchairsociety/dungeonforge/internal/dungeon"
	"github.com/lawnchairsociety/dungeonforge/internal/grid"
	"github.com/lawnchairsociety/dungeonforge/internal/logger"
)

// Frame types.
const (
	FrameClear  = "clear"
	FrameFloor  = "floor"
	FrameWalls  = "walls"
	FrameStatus = "status"
	FrameError  = "error"
)

// Frame is one JSON message sent to preview clients.
type Frame struct {
	Type    string      `json:"type"`
	Tiles   [][2]int    `json:"tiles,omitempty"`
	Walls   []WallFrame `json:"walls,omitempty"`
	Message string      `json:"message,omitempty"`
}

// WallFrame is a wall tile in a walls frame.
type WallFrame struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Kind    string `json:"kind"`
	Pattern uint8  `json:"pattern"`
}

// RegenerateFunc rebuilds the dungeon from seed. A zero seed asks for a
// fresh one. The returned string is sent back as a status frame.
type RegenerateFunc func(seed int64) (string, error)

// Hub fans painted frames out to preview clients.
type Hub struct {
	cfg          config.PreviewConfig
	onRegenerate RegenerateFunc
	upgrader     websocket.Upgrader
	limiter      *ConnLimiter

	mu      sync.Mutex
	clients map[*Client]struct{}
	frames  []Frame // frames of the current dungeon, replayed to new clients
}

var _ dungeon.TilePainter = (*Hub)(nil)

// NewHub creates a hub. onRegenerate may be nil, in which case
// regenerate commands are refused.
func NewHub(cfg config.PreviewConfig, onRegenerate RegenerateFunc) *Hub {
	h := &Hub{
		cfg:          cfg,
		onRegenerate: onRegenerate,
		limiter:      NewConnLimiter(cfg.Connections),
		clients:      make(map[*Client]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			allowed := h.cfg.WebSocket.IsOriginAllowed(origin, r.Host)
			if !allowed {
				logger.Warning("Preview connection rejected - origin not allowed",
					"origin", origin,
					"host", r.Host,
					"remote_addr", r.RemoteAddr)
			}
			return allowed
		},
	}
	return h
}

// Clear implements dungeon.TilePainter.
func (h *Hub) Clear() {
	h.publish(Frame{Type: FrameClear}, true)
}

// PaintFloorTiles implements dungeon.TilePainter.
func (h *Hub) PaintFloorTiles(floor []grid.Point) {
	tiles := make([][2]int, len(floor))
	for i, p := range floor {
		tiles[i] = [2]int{p.X, p.Y}
	}
	h.publish(Frame{Type: FrameFloor, Tiles: tiles}, false)
}

// PaintWalls implements dungeon.TilePainter.
func (h *Hub) PaintWalls(walls []dungeon.Wall) {
	frames := make([]WallFrame, len(walls))
	for i, w := range walls {
		frames[i] = WallFrame{X: w.Pos.X, Y: w.Pos.Y, Kind: w.Kind.String(), Pattern: w.Pattern}
	}
	h.publish(Frame{Type: FrameWalls, Walls: frames}, false)
}

// publish records f for replay and sends it to every client. A clear frame
// starts a new replay list.
func (h *Hub) publish(f Frame, reset bool) {
	h.mu.Lock()
	if reset {
		h.frames = nil
	}
	h.frames = append(h.frames, f)
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if err := c.WriteFrame(f); err != nil {
			logger.Debug("Preview write failed, dropping client", "remote_addr", c.RemoteAddr(), "error", err)
			h.remove(c)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and serves the client until it leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	release, err := h.limiter.Admit(r.RemoteAddr)
	if err != nil {
		logger.Warning("Preview connection rejected", "remote_addr", r.RemoteAddr, "error", err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	defer release()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Preview upgrade failed", "error", err)
		return
	}
	if h.cfg.WebSocket.MaxMessageSize > 0 {
		conn.SetReadLimit(h.cfg.WebSocket.MaxMessageSize)
	}

	c := NewClient(conn)
	defer func() {
		h.remove(c)
		c.Close()
	}()

	if err := h.register(c); err != nil {
		logger.Debug("Preview replay failed", "remote_addr", c.RemoteAddr(), "error", err)
		return
	}
	slots, addrs := h.limiter.Held()
	logger.Info("Preview client connected", "remote_addr", c.RemoteAddr(), "slots", slots, "addresses", addrs)

	throttle := NewThrottle(h.cfg.Commands)
	for {
		line, err := c.ReadLine()
		if err != nil {
			logger.Info("Preview client disconnected", "remote_addr", c.RemoteAddr())
			return
		}

		reply := Frame{Type: FrameError}
		if ok, wait := throttle.Allow(); ok {
			reply = h.handleCommand(line)
		} else {
			logger.Debug("Preview command throttled", "remote_addr", c.RemoteAddr(), "command", line)
			reply.Message = fmt.Sprintf("too many commands, wait %ds", int(wait.Seconds())+1)
		}
		if err := c.WriteFrame(reply); err != nil {
			return
		}
	}
}

// register adds c and replays the current dungeon to it. Holding the
// client's write lock across registration keeps the replay ahead of any
// broadcast that follows.
func (h *Hub) register(c *Client) error {
	h.mu.Lock()
	frames := append([]Frame(nil), h.frames...)
	c.writeMu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	defer c.writeMu.Unlock()
	return c.writeFramesLocked(frames)
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// handleCommand runs one text command and returns the reply frame.
func (h *Hub) handleCommand(line string) Frame {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Frame{Type: FrameError, Message: "empty command"}
	}
	switch strings.ToLower(fields[0]) {
	case "regenerate":
		if h.onRegenerate == nil {
			return Frame{Type: FrameError, Message: "regeneration is disabled"}
		}
		var seed int64
		if len(fields) > 1 {
			s, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return Frame{Type: FrameError, Message: fmt.Sprintf("invalid seed %q", fields[1])}
			}
			seed = s
		}
		msg, err := h.onRegenerate(seed)
		if err != nil {
			logger.Warning("Preview regenerate failed", "seed", seed, "error", err)
			return Frame{Type: FrameError, Message: err.Error()}
		}
		return Frame{Type: FrameStatus, Message: msg}
	default:
		return Frame{Type: FrameError, Message: fmt.Sprintf("unknown command %q", fields[0])}
	}
}

// Handler returns a mux serving the hub at the configured path.
func (h *Hub) Handler() http.Handler {
	path := h.cfg.Path
	if path == "" {
		path = "/ws"
	}
	mux := http.NewServeMux()
	mux.Handle(path, h)
	return mux
}

// ListenAndServe serves the hub until ctx is cancelled.
func (h *Hub) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              h.cfg.Addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Preview server listening", "address", h.cfg.Addr, "path", h.cfg.Path)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.closeClients()
		return srv.Shutdown(shutdownCtx)
	}
}

func (h *Hub) closeClients() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.Close()
	}
}
