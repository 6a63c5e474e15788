package sessions

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestManager_AddGetRemove(t *testing.T) {
	var expired []string
	manager := NewManager("test", time.Minute, WithOnExpire(func(id string, _ string) {
		expired = append(expired, id)
	}))

	id := manager.Add("value")
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, manager.Len())

	value, err := manager.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	assert.True(t, manager.Remove(id))
	assert.False(t, manager.Remove(id))
	assert.Equal(t, []string{id}, expired)

	_, err = manager.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_Sweep(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	manager := NewManager("test", 10*time.Minute, WithClock[int](clock.Now))

	stale := manager.Add(1)
	fresh := manager.Add(2)

	clock.Advance(6 * time.Minute)
	_, err := manager.Get(fresh)
	require.NoError(t, err)

	clock.Advance(6 * time.Minute)
	assert.Equal(t, 1, manager.Sweep())

	_, err = manager.Get(stale)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = manager.Get(fresh)
	assert.NoError(t, err)
}

func TestManager_StartSweeper(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	manager := NewManager("test", time.Minute, WithClock[string](clock.Now))
	manager.Add("idle")

	clock.Advance(2 * time.Minute)

	require.NoError(t, manager.StartSweeper(20*time.Millisecond))
	t.Cleanup(manager.Stop)

	assert.Eventually(t, func() bool {
		return manager.Len() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestManager_Defaults(t *testing.T) {
	manager := NewManager[string]("test", 0)
	assert.Equal(t, DefaultIdleTimeout, manager.idleTimeout)
	manager.Stop()
}
