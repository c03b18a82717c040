package preview

import (
	"sync"
	"time"

	"github.com/lawnchairsociety/dungeonforge/internal/config"
)

// Throttle limits how many commands one client may send per time window.
type Throttle struct {
	mu      sync.Mutex
	enabled bool
	max     int
	window  time.Duration
	sent    []time.Time
	nowFunc func() time.Time
}

// NewThrottle creates a throttle from cfg. Missing values fall back to
// 5 commands per 10 seconds.
func NewThrottle(cfg config.CommandsConfig) *Throttle {
	t := &Throttle{
		enabled: cfg.Enabled,
		max:     cfg.MaxCommands,
		window:  time.Duration(cfg.WindowSeconds) * time.Second,
		nowFunc: time.Now,
	}
	if t.max <= 0 {
		t.max = 5
	}
	if t.window <= 0 {
		t.window = 10 * time.Second
	}
	return t
}

// Allow records a command and reports whether it may run. When it may not,
// wait is how long until the oldest command leaves the window.
func (t *Throttle) Allow() (ok bool, wait time.Duration) {
	if !t.enabled {
		return true, 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.nowFunc()
	cutoff := now.Add(-t.window)
	kept := t.sent[:0]
	for _, at := range t.sent {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	t.sent = kept

	if len(t.sent) >= t.max {
		return false, t.sent[0].Add(t.window).Sub(now)
	}
	t.sent = append(t.sent, now)
	return true, 0
}

// Reset clears the recorded commands.
func (t *Throttle) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sent = nil
}
