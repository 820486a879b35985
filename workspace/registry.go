package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopping-helper-admin/crud"
)

// Registry keeps one Workspace per browser session in memory.
type Registry struct {
	backend crud.Backend
	log     *zap.SugaredLogger
	idleTTL time.Duration
	now     func() time.Time

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

func NewRegistry(backend crud.Backend, idleTTL time.Duration, log *zap.SugaredLogger) *Registry {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Registry{
		backend:    backend,
		log:        log,
		idleTTL:    idleTTL,
		now:        time.Now,
		workspaces: make(map[string]*Workspace),
	}
}

// Get returns the workspace for sessionID, creating a fresh session when the
// id is unknown or empty. The returned id is the one to keep in the cookie.
func (r *Registry) Get(sessionID string) (string, *Workspace) {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if w, ok := r.workspaces[sessionID]; ok && sessionID != "" {
		w.touch(now)
		return sessionID, w
	}

	id := uuid.NewString()
	w := New(r.backend, r.log.With("session", id))
	w.touch(now)
	r.workspaces[id] = w
	r.log.Debugw("Workspace created", "session", id)
	return id, w
}

// Sweep drops workspaces idle for longer than the TTL and returns how many went.
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, w := range r.workspaces {
		if w.idleSince(now) > r.idleTTL {
			delete(r.workspaces, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live workspaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// StartSweeper drops idle workspaces every interval until ctx is done.
func (r *Registry) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					r.log.Infow("Idle workspaces removed", "count", n)
				}
			}
		}
	}()
}
