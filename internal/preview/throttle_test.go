package preview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lawnchairsociety/dungeonforge/internal/config"
)

func fakeClock(start time.Time) (func() time.Time, func(time.Duration)) {
	now := start
	return func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) }
}

func TestThrottle_LimitsWithinWindow(t *testing.T) {
	th := NewThrottle(config.CommandsConfig{Enabled: true, MaxCommands: 2, WindowSeconds: 10})
	clock, advance := fakeClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	th.nowFunc = clock

	ok, _ := th.Allow()
	assert.True(t, ok)
	advance(4 * time.Second)
	ok, _ = th.Allow()
	assert.True(t, ok)

	ok, wait := th.Allow()
	assert.False(t, ok)
	assert.Equal(t, 6*time.Second, wait)

	advance(6*time.Second + time.Millisecond)
	ok, _ = th.Allow()
	assert.True(t, ok, "oldest command left the window")
}

func TestThrottle_Disabled(t *testing.T) {
	th := NewThrottle(config.CommandsConfig{Enabled: false, MaxCommands: 1, WindowSeconds: 60})
	for i := 0; i < 20; i++ {
		ok, _ := th.Allow()
		assert.True(t, ok)
	}
}

func TestThrottle_DefaultsAndReset(t *testing.T) {
	th := NewThrottle(config.CommandsConfig{Enabled: true})
	assert.Equal(t, 5, th.max)
	assert.Equal(t, 10*time.Second, th.window)

	for i := 0; i < 5; i++ {
		ok, _ := th.Allow()
		assert.True(t, ok)
	}
	ok, _ := th.Allow()
	assert.False(t, ok)

	th.Reset()
	ok, _ = th.Allow()
	assert.True(t, ok)
}
