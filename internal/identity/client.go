package identity

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
)

// Client is the identity handle of one user agent. It holds the current session
// and notifies subscribers, in order, after every change of the signed-in user.
type Client struct {
	provider Provider

	mu        sync.Mutex
	session   *Session
	observers map[uint64]func(*User)
	nextID    uint64

	// serialises notification delivery
	deliverMu sync.Mutex
}

// NewClient creates a new Client with no signed-in user
func NewClient(provider Provider) *Client {
	return &Client{
		provider:  provider,
		observers: make(map[uint64]func(*User)),
	}
}

// Start restores a persisted session token in the background and then emits the first notification.
func (c *Client) Start(ctx context.Context, token string) {
	go func() {
		if token != "" {
			user, err := c.provider.Verify(ctx, token)
			if err != nil {
				log.Printf("[DEBUG] Identity: stored session not restored: %v", err)
			} else {
				c.mu.Lock()
				if c.session == nil {
					c.session = &Session{User: *user, Token: token}
				}
				c.mu.Unlock()
			}
		}
		c.notify()
	}()
}

// Subscribe registers onChange for every change of the signed-in user and returns its unsubscribe function.
func (c *Client) Subscribe(onChange func(*User)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.observers[id] = onChange
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

// SignIn authenticates and makes the identity current. Provider errors are returned unchanged.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	session, err := c.provider.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}
	c.setSession(session)
	c.notify()
	return nil
}

// CreateIdentity registers a new identity and signs it in
func (c *Client) CreateIdentity(ctx context.Context, email, password string) (*User, error) {
	session, err := c.provider.CreateIdentity(ctx, email, password)
	if err != nil {
		return nil, err
	}
	c.setSession(session)
	c.notify()
	user := session.User
	return &user, nil
}

// UpdateDisplayName sets the display name of the signed-in identity
func (c *Client) UpdateDisplayName(ctx context.Context, name string) error {
	user := c.CurrentUser()
	if user == nil {
		return ErrSessionExpired
	}
	if err := c.provider.UpdateDisplayName(ctx, user.UID, name); err != nil {
		return err
	}
	c.mu.Lock()
	if c.session != nil && c.session.User.UID == user.UID {
		c.session.User.DisplayName = name
	}
	c.mu.Unlock()
	c.notify()
	return nil
}

// SignOut ends the session. The local user is cleared even if the provider call fails.
func (c *Client) SignOut(ctx context.Context) error {
	var err error
	if user := c.CurrentUser(); user != nil {
		err = c.provider.SignOut(ctx, user.UID)
		if err != nil {
			log.Printf("[WARN] Identity: provider sign-out failed for %s: %v", user.UID, err)
		}
	}
	c.setSession(nil)
	c.notify()
	return err
}

// Revalidate re-verifies the current session token. A token the provider no longer
// accepts signs the client out locally and ErrSessionExpired or ErrUserDisabled is
// returned. Other provider errors leave the session untouched.
func (c *Client) Revalidate(ctx context.Context) error {
	token := c.Token()
	if token == "" {
		return nil
	}
	if _, err := c.provider.Verify(ctx, token); err != nil {
		if !errors.Is(err, ErrSessionExpired) && !errors.Is(err, ErrUserDisabled) {
			log.Printf("[WARN] Identity: could not re-verify session: %v", err)
			return err
		}
		c.mu.Lock()
		revoked := c.session != nil && c.session.Token == token
		if revoked {
			c.session = nil
		}
		c.mu.Unlock()
		if revoked {
			log.Printf("[INFO] Identity: session revoked: %v", err)
			c.notify()
		}
		return err
	}
	return nil
}

// SendPasswordReset asks the provider to email a reset link
func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	return c.provider.SendPasswordReset(ctx, email)
}

// CurrentUser returns a copy of the signed-in user, nil when signed out
func (c *Client) CurrentUser() *User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	user := c.session.User
	return &user
}

// Token returns the current session token, "" when signed out
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return ""
	}
	return c.session.Token
}

func (c *Client) setSession(session *Session) {
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
}

func (c *Client) notify() {
	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	c.mu.Lock()
	var user *User
	if c.session != nil {
		u := c.session.User
		user = &u
	}
	observers := make([]func(*User), 0, len(c.observers))
	ids := make([]uint64, 0, len(c.observers))
	for id := range c.observers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		observers = append(observers, c.observers[id])
	}
	c.mu.Unlock()

	for _, fn := range observers {
		if user == nil {
			fn(nil)
			continue
		}
		u := *user
		fn(&u)
	}
}
