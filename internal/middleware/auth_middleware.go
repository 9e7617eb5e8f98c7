package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ArowuTest/oripay-exchange-backend/internal/config"
	"github.com/ArowuTest/oripay-exchange-backend/internal/guard"
	"github.com/ArowuTest/oripay-exchange-backend/internal/identity"
	"github.com/ArowuTest/oripay-exchange-backend/internal/session"
	"github.com/gin-gonic/gin"
)

// Context keys set by the session and guard middleware
const (
	SessionKey   = "session"
	SessionIDKey = "sessionID"
	UserKey      = "user"

	registryKey      = "sessionRegistry"
	sessionConfigKey = "sessionConfig"
)

// Mode selects how the route guard answers a denied request
type Mode int

const (
	// PageMode redirects navigations with 302
	PageMode Mode = iota
	// APIMode answers JSON with 401 or 403
	APIMode
)

const bearerSchema = "Bearer "

// SessionMiddleware attaches the caller's session Context. Browsers are tracked by
// the session cookie and restored from the token cookie; bearer-token callers get a
// Context that lives for the request only. A browser without either cookie gets a
// Context only once a handler asks for one.
func SessionMiddleware(cfg *config.Config, registry *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, bearerSchema) {
			sc := registry.Ephemeral(strings.TrimSpace(authHeader[len(bearerSchema):]))
			defer sc.Close()
			c.Set(SessionKey, sc)
			c.Next()
			return
		}

		c.Set(registryKey, registry)
		c.Set(sessionConfigKey, cfg)
		sid, _ := c.Cookie(cfg.Session.CookieName)
		token, _ := c.Cookie(cfg.Session.TokenCookieName)
		if sid != "" || token != "" {
			acquireSession(c, cfg, registry)
		}
		c.Next()
	}
}

func acquireSession(c *gin.Context, cfg *config.Config, registry *session.Registry) *session.Context {
	sid, _ := c.Cookie(cfg.Session.CookieName)
	token, _ := c.Cookie(cfg.Session.TokenCookieName)
	current, sc := registry.Acquire(c.Request.Context(), sid, token)
	if current != sid {
		setCookie(c, cfg, cfg.Session.CookieName, current, 0)
	}
	c.Set(SessionKey, sc)
	c.Set(SessionIDKey, current)
	return sc
}

// RenewSessionID moves the browser session under a fresh id and reissues the session
// cookie. Called after the signed-in user changes.
func RenewSessionID(c *gin.Context) {
	registry, cfg := sessionSource(c)
	if registry == nil {
		return
	}
	fresh := registry.Rotate(c.GetString(SessionIDKey))
	if fresh == "" {
		return
	}
	c.Set(SessionIDKey, fresh)
	setCookie(c, cfg, cfg.Session.CookieName, fresh, 0)
}

// RouteGuard evaluates the guard for the matched route. While the session is still
// loading after readyTimeout it answers 202 with the checking placeholder.
func RouteGuard(g *guard.Guard, readyTimeout time.Duration, adminOnly bool, mode Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := GetSession(c)
		if sc == nil {
			log.Println("[ERROR] RouteGuard: no session attached to request")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
			return
		}

		waitCtx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		state := sc.Wait(waitCtx)
		cancel()

		route := guard.Route{Path: c.FullPath(), AdminOnly: adminOnly}
		decision := g.Evaluate(c.Request.Context(), state, route)

		switch decision.State {
		case guard.Authorized:
			c.Set(UserKey, state.User)
			c.Next()
		case guard.Checking:
			c.AbortWithStatusJSON(http.StatusAccepted, gin.H{"state": guard.Checking})
		default:
			if mode == PageMode {
				c.Redirect(http.StatusFound, decision.Redirect)
				c.Abort()
				return
			}
			status := http.StatusUnauthorized
			message := identity.Message(identity.ErrSessionExpired)
			if decision.State == guard.Unauthorized {
				status = http.StatusForbidden
				message = "Admin access required"
			}
			c.AbortWithStatusJSON(status, gin.H{
				"error":    message,
				"state":    decision.State,
				"redirect": decision.Redirect,
			})
		}
	}
}

// GetSession returns the session Context attached by SessionMiddleware, opening one
// for a browser that has none yet
func GetSession(c *gin.Context) *session.Context {
	if v, ok := c.Get(SessionKey); ok {
		sc, _ := v.(*session.Context)
		return sc
	}
	registry, cfg := sessionSource(c)
	if registry == nil {
		return nil
	}
	return acquireSession(c, cfg, registry)
}

func sessionSource(c *gin.Context) (*session.Registry, *config.Config) {
	r, _ := c.Get(registryKey)
	v, _ := c.Get(sessionConfigKey)
	registry, _ := r.(*session.Registry)
	cfg, _ := v.(*config.Config)
	if registry == nil || cfg == nil {
		return nil, nil
	}
	return registry, cfg
}

// CurrentUser returns the user admitted by RouteGuard
func CurrentUser(c *gin.Context) *identity.User {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*identity.User)
	return user
}

// SetTokenCookie persists the session token so the session survives a restart
func SetTokenCookie(c *gin.Context, cfg *config.Config, token string) {
	setCookie(c, cfg, cfg.Session.TokenCookieName, token, cfg.JWT.ExpiresIn)
}

// ClearTokenCookie removes the persisted session token
func ClearTokenCookie(c *gin.Context, cfg *config.Config) {
	setCookie(c, cfg, cfg.Session.TokenCookieName, "", -1)
}

func setCookie(c *gin.Context, cfg *config.Config, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", cfg.Session.SecureCookies, true)
}
