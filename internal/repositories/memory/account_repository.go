package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
)

// Compile-time check to ensure AccountRepository implements the interface
var _ repositories.AccountRepository = (*AccountRepository)(nil)

// AccountRepository keeps identity accounts in process memory
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

// NewAccountRepository creates an empty AccountRepository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]models.Account)}
}

// Create inserts a new account, rejecting duplicate emails
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return repositories.ErrDuplicateEmail
		}
	}
	r.accounts[account.UID] = *account
	return nil
}

// FindByID finds an account by uid
func (r *AccountRepository) FindByID(ctx context.Context, uid string) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[uid]
	if !ok {
		return nil, repositories.ErrDocumentNotFound
	}
	return &account, nil
}

// FindByEmail finds an account by email, ignoring case
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, account := range r.accounts {
		if strings.EqualFold(account.Email, email) {
			found := account
			return &found, nil
		}
	}
	return nil, repositories.ErrDocumentNotFound
}

// Update replaces an existing account
func (r *AccountRepository) Update(ctx context.Context, account *models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.UID]; !ok {
		return repositories.ErrDocumentNotFound
	}
	r.accounts[account.UID] = *account
	return nil
}

// FindAll returns every account ordered by uid
func (r *AccountRepository) FindAll(ctx context.Context) ([]*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	accounts := make([]*models.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		a := account
		accounts = append(accounts, &a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].UID < accounts[j].UID })
	return accounts, nil
}
