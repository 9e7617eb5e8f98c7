// Package session tracks who is signed in on one user agent. A Context is
// loading until the identity client delivers its first notification, after
// which every subscriber sees the same user/loading pair.
package session

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ArowuTest/oripay-exchange-backend/internal/identity"
)

// State is the session snapshot handed to observers
type State struct {
	User    *identity.User
	Loading bool
}

// Authenticated reports whether a user is signed in
func (s State) Authenticated() bool {
	return !s.Loading && s.User != nil
}

// Observer receives every session state change
type Observer func(State)

// Context holds the session of one user agent. It subscribes to its identity
// client exactly once and tears the subscription down on Close.
type Context struct {
	client *identity.Client

	mu          sync.Mutex
	state       State
	observers   map[uint64]Observer
	nextID      uint64
	closed      bool
	unsubscribe func()

	ready     chan struct{}
	readyOnce sync.Once
}

// New creates a loading Context bound to client
func New(client *identity.Client) *Context {
	c := &Context{
		client:    client,
		state:     State{Loading: true},
		observers: make(map[uint64]Observer),
		ready:     make(chan struct{}),
	}
	c.unsubscribe = client.Subscribe(c.onIdentityChange)
	return c
}

// State returns the current snapshot
func (c *Context) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Ready is closed once the first identity notification has arrived
func (c *Context) Ready() <-chan struct{} {
	return c.ready
}

// Wait blocks until the session has loaded or ctx is done and returns the state at that point
func (c *Context) Wait(ctx context.Context) State {
	select {
	case <-c.ready:
	case <-ctx.Done():
	}
	return c.State()
}

// Subscribe registers fn for every state change and returns its unsubscribe function
func (c *Context) Subscribe(fn Observer) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.observers, id)
			c.mu.Unlock()
		})
	}
}

// Login checks that both credentials are present and delegates to the identity client.
// Provider errors are returned unchanged.
func (c *Context) Login(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return identity.ErrMissingCredentials
	}
	return c.client.SignIn(ctx, email, password)
}

// Logout delegates to the identity client. Local state is cleared by the resulting notification.
func (c *Context) Logout(ctx context.Context) error {
	return c.client.SignOut(ctx)
}

// Client returns the identity client behind this session
func (c *Context) Client() *identity.Client {
	return c.client
}

// Token returns the session token of the signed-in user, "" when signed out
func (c *Context) Token() string {
	return c.client.Token()
}

// Close drops the identity subscription. Later notifications are ignored.
func (c *Context) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.observers = make(map[uint64]Observer)
	unsubscribe := c.unsubscribe
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (c *Context) onIdentityChange(user *identity.User) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state = State{User: user, Loading: false}
	state := c.snapshot()

	ids := make([]uint64, 0, len(c.observers))
	for id := range c.observers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	observers := make([]Observer, 0, len(ids))
	for _, id := range ids {
		observers = append(observers, c.observers[id])
	}
	c.mu.Unlock()

	c.readyOnce.Do(func() { close(c.ready) })
	for _, fn := range observers {
		fn(state)
	}
}

func (c *Context) snapshot() State {
	state := State{Loading: c.state.Loading}
	if c.state.User != nil {
		u := *c.state.User
		state.User = &u
	}
	return state
}
