package services

import (
	"context"
	"testing"
	"time"

	"github.com/ArowuTest/oripay-exchange-backend/internal/identity"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories/documents"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories/memory"
	"github.com/ArowuTest/oripay-exchange-backend/pkg/jwt"
	"github.com/ArowuTest/oripay-exchange-backend/pkg/mailer"
)

// mockStore wraps the in-memory store; any XxxFunc that is set replaces that call
type mockStore struct {
	*memory.DocumentStore
	GetFunc  func(ctx context.Context, collection, id string) (*repositories.Document, error)
	ListFunc func(ctx context.Context, collection string) ([]*repositories.Document, error)
	SetFunc  func(ctx context.Context, collection, id string, fields repositories.Fields, merge bool) error
}

func newMockStore() *mockStore {
	return &mockStore{DocumentStore: memory.NewDocumentStore()}
}

func (m *mockStore) Get(ctx context.Context, collection, id string) (*repositories.Document, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, collection, id)
	}
	return m.DocumentStore.Get(ctx, collection, id)
}

func (m *mockStore) List(ctx context.Context, collection string) ([]*repositories.Document, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, collection)
	}
	return m.DocumentStore.List(ctx, collection)
}

func (m *mockStore) Set(ctx context.Context, collection, id string, fields repositories.Fields, merge bool) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, collection, id, fields, merge)
	}
	return m.DocumentStore.Set(ctx, collection, id, fields, merge)
}

// fixture wires the services over one in-memory store and account repository
type fixture struct {
	store    *mockStore
	accounts *memory.AccountRepository
	mail     *mailer.LogMailer
	provider *identity.AccountProvider

	users      *documents.UserRepository
	admins     *documents.AdminRepository
	settings   *documents.SystemSettingsRepository
	currencies *documents.CurrencyRepository
	countries  *documents.CountryRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMockStore()
	accounts := memory.NewAccountRepository()
	mail := mailer.NewLogMailer()
	return &fixture{
		store:    store,
		accounts: accounts,
		mail:     mail,
		provider: identity.NewAccountProvider(accounts, jwt.NewTokenService("test-secret", time.Hour), mail,
			identity.ProviderOptions{ResetURL: "https://oripay.example/reset-password"}),
		users:      documents.NewUserRepository(store),
		admins:     documents.NewAdminRepository(store),
		settings:   documents.NewSystemSettingsRepository(store),
		currencies: documents.NewCurrencyRepository(store),
		countries:  documents.NewCountryRepository(store),
	}
}
