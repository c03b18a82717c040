package preview

import (
	"errors"
	"testing"

	"github.com/lawnchairsociety/dungeonforge/internal/config"
)

func admit(t *testing.T, limiter *ConnLimiter, addr string) func() {
	t.Helper()
	release, err := limiter.Admit(addr)
	if err != nil {
		t.Fatalf("Admit(%q) failed: %v", addr, err)
	}
	return release
}

func TestConnLimiter_PerIPLimit(t *testing.T) {
	limiter := NewConnLimiter(config.ConnectionsConfig{MaxPerIP: 2, MaxTotal: 100})

	first := admit(t, limiter, "192.168.1.1:5000")
	admit(t, limiter, "192.168.1.1:5001")
	if _, err := limiter.Admit("192.168.1.1:5002"); !errors.Is(err, ErrTooManyFromIP) {
		t.Errorf("third viewer from same address: got %v, want ErrTooManyFromIP", err)
	}
	admit(t, limiter, "192.168.1.2:5000")

	first()
	admit(t, limiter, "192.168.1.1:5003")
}

func TestConnLimiter_TotalLimit(t *testing.T) {
	limiter := NewConnLimiter(config.ConnectionsConfig{MaxPerIP: 10, MaxTotal: 3})

	var releases []func()
	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1", "10.0.0.3:1"} {
		releases = append(releases, admit(t, limiter, addr))
	}
	if _, err := limiter.Admit("10.0.0.4:1"); !errors.Is(err, ErrPreviewFull) {
		t.Errorf("fourth viewer: got %v, want ErrPreviewFull", err)
	}

	releases[0]()
	admit(t, limiter, "10.0.0.4:1")
}

func TestConnLimiter_Unlimited(t *testing.T) {
	limiter := NewConnLimiter(config.ConnectionsConfig{})

	for i := 0; i < 100; i++ {
		if _, err := limiter.Admit("192.168.1.1:9000"); err != nil {
			t.Fatalf("viewer %d rejected with limits disabled: %v", i, err)
		}
	}
}

func TestConnLimiter_RepeatedReleaseKeepsCount(t *testing.T) {
	limiter := NewConnLimiter(config.ConnectionsConfig{MaxPerIP: 10, MaxTotal: 3})

	admit(t, limiter, "192.168.1.1:1")
	admit(t, limiter, "192.168.1.1:2")
	release := admit(t, limiter, "192.168.1.2:1")

	slots, addrs := limiter.Held()
	if slots != 3 || addrs != 2 {
		t.Fatalf("expected 3 slots from 2 addresses, got %d from %d", slots, addrs)
	}

	release()
	release()
	limiter.release("203.0.113.9")

	slots, addrs = limiter.Held()
	if slots != 2 || addrs != 1 {
		t.Errorf("expected 2 slots from 1 address after release, got %d from %d", slots, addrs)
	}

	// Only the freed slot is available again.
	admit(t, limiter, "192.168.1.3:1")
	if _, err := limiter.Admit("192.168.1.4:1"); !errors.Is(err, ErrPreviewFull) {
		t.Errorf("limit exceeded after repeated release: got %v", err)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"192.168.1.1:12345", "192.168.1.1"},
		{"[::1]:12345", "::1"},
		{"localhost:8080", "localhost"},
		{"192.168.1.1", "192.168.1.1"},
	}

	for _, tt := range tests {
		if got := clientIP(tt.input); got != tt.expected {
			t.Errorf("clientIP(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
