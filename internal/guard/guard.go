// Package guard decides, per navigation, whether the current session may
// enter a route.
package guard

import (
	"context"
	"log"

	"github.com/ArowuTest/oripay-exchange-backend/internal/session"
)

// State is the outcome of one guard evaluation
type State string

// Guard states. Checking is initial, the others are terminal per navigation.
const (
	Checking     State = "checking"
	Authorized   State = "authorized"
	Unauthorized State = "unauthorized"
	Anonymous    State = "anonymous"
)

// Navigation targets
const (
	LoginPath   = "/login"
	LandingPath = "/dashboard"
)

// Route describes a guarded destination
type Route struct {
	Path      string
	AdminOnly bool
}

// Decision is the result of evaluating a route
type Decision struct {
	State    State  `json:"state"`
	Redirect string `json:"redirect,omitempty"`
	// Replace means the redirect replaces the history entry
	Replace bool `json:"replace,omitempty"`
}

// AdminChecker tests for the admin marker of uid
type AdminChecker interface {
	Exists(ctx context.Context, uid string) (bool, error)
}

// Guard evaluates routes against a session snapshot
type Guard struct {
	admins AdminChecker
}

// New creates a new Guard
func New(admins AdminChecker) *Guard {
	return &Guard{admins: admins}
}

// Evaluate runs the guard for route. The admin marker is looked up on every
// call; a failing lookup is treated as absence.
func (g *Guard) Evaluate(ctx context.Context, state session.State, route Route) Decision {
	if state.Loading {
		return Decision{State: Checking}
	}
	if state.User == nil {
		return Decision{State: Anonymous, Redirect: LoginPath, Replace: true}
	}
	if !route.AdminOnly {
		return Decision{State: Authorized}
	}

	ok, err := g.admins.Exists(ctx, state.User.UID)
	if err != nil {
		log.Printf("[ERROR] Guard: admin lookup failed for %s on %s: %v", state.User.UID, route.Path, err)
		ok = false
	}
	if !ok {
		return Decision{State: Unauthorized, Redirect: LandingPath, Replace: true}
	}
	return Decision{State: Authorized}
}
