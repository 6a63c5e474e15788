package editor

import (
	"context"
	"time"

	"github.com/thand-io/console/internal/sessions"
)

// Registry keeps the open editors keyed by a random id and unmounts those
// left idle.
type Registry struct {
	deps     Dependencies
	sessions *sessions.Manager[*Session]
}

func NewRegistry(deps Dependencies, idleTimeout time.Duration) *Registry {
	if deps.Stats == nil {
		deps.Stats = &Stats{}
	}
	return &Registry{
		deps: deps,
		sessions: sessions.NewManager("editors", idleTimeout,
			sessions.WithOnExpire(func(_ string, session *Session) {
				session.Unmount()
			}),
		),
	}
}

// Open creates and mounts an editor for applicationID. The editor is
// registered even when mounting raised alerts.
func (r *Registry) Open(ctx context.Context, applicationID string) (string, *Session, error) {
	session := NewWithForm(applicationID, r.deps)
	if err := session.Mount(ctx); err != nil {
		return "", nil, err
	}
	return r.sessions.Add(session), session, nil
}

func (r *Registry) Get(id string) (*Session, error) {
	return r.sessions.Get(id)
}

// Close unmounts and forgets an editor.
func (r *Registry) Close(id string) bool {
	return r.sessions.Remove(id)
}

func (r *Registry) Len() int {
	return r.sessions.Len()
}

func (r *Registry) Stats() *Stats {
	return r.deps.Stats
}

func (r *Registry) StartSweeper(interval time.Duration) error {
	return r.sessions.StartSweeper(interval)
}

func (r *Registry) Stop() {
	r.sessions.Stop()
}
