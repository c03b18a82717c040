package preview

import (
	"errors"
	"net"
	"sync"

	"github.com/lawnchairsociety/dungeonforge/internal/config"
)

var (
	// ErrPreviewFull is returned when every preview slot is taken.
	ErrPreviewFull = errors.New("preview: too many connections")
	// ErrTooManyFromIP is returned when one address holds its share of slots.
	ErrTooManyFromIP = errors.New("preview: too many connections from this address")
)

// ConnLimiter admits preview viewers while the per-address and total slot
// limits allow. A zero limit disables that check.
type ConnLimiter struct {
	mu       sync.Mutex
	perIP    map[string]int
	held     int
	maxPerIP int
	maxTotal int
}

// NewConnLimiter creates a limiter from the preview connection settings.
func NewConnLimiter(cfg config.ConnectionsConfig) *ConnLimiter {
	return &ConnLimiter{
		perIP:    make(map[string]int),
		maxPerIP: cfg.MaxPerIP,
		maxTotal: cfg.MaxTotal,
	}
}

// Admit claims a slot for the viewer at remoteAddr. The returned release
// frees the slot; calling it more than once has no further effect.
func (c *ConnLimiter) Admit(remoteAddr string) (release func(), err error) {
	ip := clientIP(remoteAddr)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxTotal > 0 && c.held >= c.maxTotal {
		return nil, ErrPreviewFull
	}
	if c.maxPerIP > 0 && c.perIP[ip] >= c.maxPerIP {
		return nil, ErrTooManyFromIP
	}
	c.perIP[ip]++
	c.held++

	var once sync.Once
	return func() { once.Do(func() { c.release(ip) }) }, nil
}

// release gives back one slot of ip. Addresses holding nothing leave the
// totals untouched.
func (c *ConnLimiter) release(ip string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.perIP[ip]
	if !ok {
		return
	}
	if n <= 1 {
		delete(c.perIP, ip)
	} else {
		c.perIP[ip] = n - 1
	}
	c.held--
}

// Held returns the number of claimed slots and distinct addresses.
func (c *ConnLimiter) Held() (slots, addrs int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.held, len(c.perIP)
}

// clientIP strips the port from an ip:port remote address.
func clientIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
