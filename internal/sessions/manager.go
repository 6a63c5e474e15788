// Package sessions keeps short lived, server side state keyed by a random id
// and drops entries that have been idle for too long.
package sessions

import (
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

const (
	DefaultIdleTimeout   = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

type entry[T any] struct {
	value    T
	lastSeen time.Time
}

// Manager is a concurrency safe registry of sessions of type T.
type Manager[T any] struct {
	name        string
	lock        sync.Mutex
	sessions    map[string]*entry[T]
	idleTimeout time.Duration
	onExpire    func(id string, value T)
	scheduler   *gocron.Scheduler
	now         func() time.Time
}

type Option[T any] func(*Manager[T])

// WithOnExpire registers a callback run for every swept or removed session.
func WithOnExpire[T any](fn func(id string, value T)) Option[T] {
	return func(m *Manager[T]) {
		m.onExpire = fn
	}
}

func WithClock[T any](now func() time.Time) Option[T] {
	return func(m *Manager[T]) {
		m.now = now
	}
}

func NewManager[T any](name string, idleTimeout time.Duration, opts ...Option[T]) *Manager[T] {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	m := &Manager[T]{
		name:        name,
		sessions:    make(map[string]*entry[T]),
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add stores value under a new id and returns it.
func (m *Manager[T]) Add(value T) string {
	id := uuid.NewString()

	m.lock.Lock()
	m.sessions[id] = &entry[T]{value: value, lastSeen: m.now()}
	m.lock.Unlock()

	logrus.WithFields(logrus.Fields{
		"registry": m.name,
		"id":       id,
	}).Debugln("Added session")

	return id
}

// Get returns the session and marks it as used.
func (m *Manager[T]) Get(id string) (T, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		var zero T
		return zero, ErrSessionNotFound
	}
	e.lastSeen = m.now()
	return e.value, nil
}

func (m *Manager[T]) Remove(id string) bool {
	m.lock.Lock()
	e, ok := m.sessions[id]
	delete(m.sessions, id)
	m.lock.Unlock()

	if ok && m.onExpire != nil {
		m.onExpire(id, e.value)
	}
	return ok
}

func (m *Manager[T]) Len() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return len(m.sessions)
}

// Sweep removes every session idle for longer than the idle timeout and
// returns how many were removed.
func (m *Manager[T]) Sweep() int {
	cutoff := m.now().Add(-m.idleTimeout)

	m.lock.Lock()
	expired := make(map[string]T)
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			expired[id] = e.value
			delete(m.sessions, id)
		}
	}
	m.lock.Unlock()

	for id, value := range expired {
		if m.onExpire != nil {
			m.onExpire(id, value)
		}
	}

	if len(expired) > 0 {
		logrus.WithFields(logrus.Fields{
			"registry": m.name,
			"expired":  len(expired),
		}).Infoln("Expired idle sessions")
	}

	return len(expired)
}

// StartSweeper runs Sweep on a gocron schedule until Stop is called.
func (m *Manager[T]) StartSweeper(interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	if _, err := scheduler.Every(interval).Do(func() { m.Sweep() }); err != nil {
		return err
	}

	scheduler.StartAsync()

	m.lock.Lock()
	m.scheduler = scheduler
	m.lock.Unlock()

	logrus.WithFields(logrus.Fields{
		"registry": m.name,
		"interval": interval,
		"idle":     m.idleTimeout,
	}).Debugln("Started session sweeper")

	return nil
}

func (m *Manager[T]) Stop() {
	m.lock.Lock()
	scheduler := m.scheduler
	m.scheduler = nil
	m.lock.Unlock()

	if scheduler != nil {
		scheduler.Stop()
	}
}
