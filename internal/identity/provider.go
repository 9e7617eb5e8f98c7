// Package identity owns credentials and sessions. AccountProvider is the server
// side of the identity boundary; Client is the per-user-agent handle that tracks
// the signed-in user and notifies subscribers when it changes.
package identity

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"github.com/ArowuTest/oripay-exchange-backend/internal/utils"
	"github.com/ArowuTest/oripay-exchange-backend/pkg/jwt"
	"github.com/ArowuTest/oripay-exchange-backend/pkg/mailer"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

const (
	minPasswordLength = 6
	resetTokenTTL     = time.Hour
	resetSecretLength = 32
	limiterIdleTTL    = time.Hour
	limiterPruneSize  = 1024
)

// User is an authenticated identity
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// Session is a signed-in identity with its session token
type Session struct {
	User      User
	Token     string
	ExpiresAt time.Time
}

// Provider is the identity boundary
type Provider interface {
	Authenticate(ctx context.Context, email, password string) (*Session, error)
	CreateIdentity(ctx context.Context, email, password string) (*Session, error)
	UpdateDisplayName(ctx context.Context, uid, name string) error
	SignOut(ctx context.Context, uid string) error
	SendPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Verify(ctx context.Context, token string) (*User, error)
	ListIdentities(ctx context.Context) ([]User, error)
}

// ProviderOptions configures an AccountProvider
type ProviderOptions struct {
	ResetURL   string
	LoginRate  float64
	LoginBurst int
}

// Compile-time check to ensure AccountProvider implements Provider
var _ Provider = (*AccountProvider)(nil)

// AccountProvider authenticates against stored accounts with bcrypt hashes and issues JWT sessions
type AccountProvider struct {
	accounts repositories.AccountRepository
	tokens   *jwt.TokenService
	mailer   mailer.Mailer
	resetURL string
	limiter  *attemptLimiter
	now      func() time.Time
}

// NewAccountProvider creates a new AccountProvider
func NewAccountProvider(accounts repositories.AccountRepository, tokens *jwt.TokenService, m mailer.Mailer, opts ProviderOptions) *AccountProvider {
	if opts.LoginBurst <= 0 {
		opts.LoginBurst = 5
	}
	if opts.LoginRate <= 0 {
		opts.LoginRate = 0.2
	}
	return &AccountProvider{
		accounts: accounts,
		tokens:   tokens,
		mailer:   m,
		resetURL: opts.ResetURL,
		limiter:  newAttemptLimiter(rate.Limit(opts.LoginRate), opts.LoginBurst),
		now:      time.Now,
	}
}

// Authenticate checks the credentials and opens a session.
// Unknown email and wrong password are both reported as ErrInvalidCredential.
func (p *AccountProvider) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	email = utils.NormalizeEmail(email)
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !p.limiter.allow(email, p.now()) {
		log.Printf("[WARN] Identity: sign-in throttled for %s", email)
		return nil, ErrTooManyRequests
	}

	account, err := p.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}
	if account.Disabled {
		return nil, ErrUserDisabled
	}
	return p.openSession(account)
}

// CreateIdentity registers a new account and opens a session for it
func (p *AccountProvider) CreateIdentity(ctx context.Context, email, password string) (*Session, error) {
	email = utils.NormalizeEmail(email)
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := p.now()
	account := &models.Account{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyInUse
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	log.Printf("[INFO] Identity: created account %s", account.UID)
	return p.openSession(account)
}

// UpdateDisplayName sets the account display name
func (p *AccountProvider) UpdateDisplayName(ctx context.Context, uid, name string) error {
	account, err := p.findAccount(ctx, uid)
	if err != nil {
		return err
	}
	account.DisplayName = strings.TrimSpace(name)
	return p.accounts.Update(ctx, account)
}

// SignOut invalidates every session token issued to the account so far
func (p *AccountProvider) SignOut(ctx context.Context, uid string) error {
	account, err := p.findAccount(ctx, uid)
	if err != nil {
		return err
	}
	account.SessionEpoch++
	return p.accounts.Update(ctx, account)
}

// SendPasswordReset stores a single-use reset token and queues the reset email
func (p *AccountProvider) SendPasswordReset(ctx context.Context, email string) error {
	email = utils.NormalizeEmail(email)
	if !validEmail(email) {
		return ErrInvalidEmail
	}
	account, err := p.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load account: %w", err)
	}

	secret, err := utils.GenerateRandomString(resetSecretLength)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := account.UID + "." + secret
	expiresAt := p.now().Add(resetTokenTTL)
	account.ResetTokenHash = utils.HashToken(token)
	account.ResetExpiresAt = &expiresAt
	if err := p.accounts.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	return p.mailer.Send(ctx, mailer.Message{
		To:       account.Email,
		Subject:  "Reset your Oripay Exchange password",
		Template: mailer.TemplatePasswordReset,
		Data: map[string]string{
			"resetLink": p.resetURL + "?token=" + token,
			"expiresAt": expiresAt.UTC().Format(time.RFC3339),
		},
	})
}

// ResetPassword consumes a reset token and replaces the password. Existing sessions end.
func (p *AccountProvider) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}
	uid, _, ok := strings.Cut(token, ".")
	if !ok || uid == "" {
		return ErrInvalidResetToken
	}
	account, err := p.accounts.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("failed to load account: %w", err)
	}
	if account.ResetTokenHash == "" || account.ResetExpiresAt == nil || p.now().After(*account.ResetExpiresAt) {
		return ErrInvalidResetToken
	}
	if subtle.ConstantTimeCompare([]byte(account.ResetTokenHash), []byte(utils.HashToken(token))) != 1 {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account.PasswordHash = string(hash)
	account.ResetTokenHash = ""
	account.ResetExpiresAt = nil
	account.SessionEpoch++
	return p.accounts.Update(ctx, account)
}

// Verify restores the identity behind a session token
func (p *AccountProvider) Verify(ctx context.Context, token string) (*User, error) {
	claims, err := p.tokens.Parse(token)
	if err != nil {
		return nil, ErrSessionExpired
	}
	account, err := p.accounts.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account.Disabled {
		return nil, ErrUserDisabled
	}
	if claims.Epoch != account.SessionEpoch {
		return nil, ErrSessionExpired
	}
	user := userFromAccount(account)
	return &user, nil
}

// ListIdentities returns every registered identity
func (p *AccountProvider) ListIdentities(ctx context.Context) ([]User, error) {
	accounts, err := p.accounts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(accounts))
	for _, account := range accounts {
		users = append(users, userFromAccount(account))
	}
	return users, nil
}

func (p *AccountProvider) findAccount(ctx context.Context, uid string) (*models.Account, error) {
	account, err := p.accounts.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return account, nil
}

func (p *AccountProvider) openSession(account *models.Account) (*Session, error) {
	token, expiresAt, err := p.tokens.Issue(account.UID, account.Email, account.DisplayName, account.SessionEpoch)
	if err != nil {
		return nil, err
	}
	return &Session{User: userFromAccount(account), Token: token, ExpiresAt: expiresAt}, nil
}

func userFromAccount(account *models.Account) User {
	return User{UID: account.UID, Email: account.Email, DisplayName: account.DisplayName}
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// attemptLimiter throttles sign-in attempts per email
type attemptLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	buckets map[string]*attemptBucket
}

type attemptBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newAttemptLimiter(limit rate.Limit, burst int) *attemptLimiter {
	return &attemptLimiter{limit: limit, burst: burst, buckets: make(map[string]*attemptBucket)}
}

func (l *attemptLimiter) allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.buckets) > limiterPruneSize {
		for k, b := range l.buckets {
			if now.Sub(b.lastSeen) > limiterIdleTTL {
				delete(l.buckets, k)
			}
		}
	}
	b, ok := l.buckets[key]
	if !ok {
		b = &attemptBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}
