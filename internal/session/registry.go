package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ArowuTest/oripay-exchange-backend/internal/identity"
	"github.com/google/uuid"
)

const minSweepInterval = time.Minute

// Registry keeps one Context per browser session id
type Registry struct {
	provider    identity.Provider
	idleTimeout time.Duration

	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

type entry struct {
	session  *Context
	lastSeen time.Time
}

// NewRegistry creates an empty Registry. Contexts idle for longer than idleTimeout are closed by Sweep.
func NewRegistry(provider identity.Provider, idleTimeout time.Duration) *Registry {
	return &Registry{
		provider:    provider,
		idleTimeout: idleTimeout,
		entries:     make(map[string]*entry),
		now:         time.Now,
	}
}

// Acquire returns the Context of sid. A known Context has its token re-verified so
// revoked or disabled sessions turn signed-out. An unknown sid gets a fresh id and a
// new Context restored from token, which may be empty.
func (r *Registry) Acquire(ctx context.Context, sid, token string) (string, *Context) {
	r.mu.Lock()
	now := r.now()
	if e, ok := r.entries[sid]; ok && sid != "" {
		e.lastSeen = now
		sc := e.session
		r.mu.Unlock()
		_ = sc.Client().Revalidate(ctx)
		return sid, sc
	}

	sid = uuid.NewString()
	sc := r.start(token)
	r.entries[sid] = &entry{session: sc, lastSeen: now}
	r.mu.Unlock()
	log.Printf("[DEBUG] Session: opened %s (restoring=%t)", sid, token != "")
	return sid, sc
}

// Rotate moves the Context of sid under a new id and returns it. An unknown sid
// returns "".
func (r *Registry) Rotate(sid string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sid]
	if !ok || sid == "" {
		return ""
	}
	delete(r.entries, sid)
	fresh := uuid.NewString()
	e.lastSeen = r.now()
	r.entries[fresh] = e
	return fresh
}

// Ephemeral returns a Context for a single bearer-token request. The caller closes it.
func (r *Registry) Ephemeral(token string) *Context {
	return r.start(token)
}

// Remove closes and forgets the Context of sid
func (r *Registry) Remove(sid string) {
	r.mu.Lock()
	e, ok := r.entries[sid]
	delete(r.entries, sid)
	r.mu.Unlock()
	if ok {
		e.session.Close()
	}
}

// Len returns the number of live contexts
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep closes contexts idle for longer than the idle timeout and returns how many it closed
func (r *Registry) Sweep() int {
	if r.idleTimeout <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.idleTimeout)

	r.mu.Lock()
	var stale []*Context
	for sid, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			stale = append(stale, e.session)
			delete(r.entries, sid)
		}
	}
	r.mu.Unlock()

	for _, sc := range stale {
		sc.Close()
	}
	return len(stale)
}

// Run sweeps idle contexts until ctx is done, then closes every context
func (r *Registry) Run(ctx context.Context) {
	interval := r.idleTimeout / 2
	if interval < minSweepInterval {
		interval = minSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.CloseAll()
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.Printf("[INFO] Session: closed %d idle sessions", n)
			}
		}
	}
}

// CloseAll closes and forgets every context
func (r *Registry) CloseAll() {
	r.mu.Lock()
	entries := r.entries
	r.entries = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range entries {
		e.session.Close()
	}
}

func (r *Registry) start(token string) *Context {
	client := identity.NewClient(r.provider)
	sc := New(client)
	client.Start(context.Background(), token)
	return sc
}
