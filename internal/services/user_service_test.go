package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ArowuTest/oripay-exchange-backend/internal/identity"
	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(f *fixture) *UserServiceImpl {
	return NewUserService(f.users, f.admins, f.countries, f.provider)
}

func seedProfile(t *testing.T, f *fixture, uid string, mutate func(u *models.User)) {
	t.Helper()
	u := models.DefaultUser()
	u.UID = uid
	u.Email = uid + "@b.com"
	if mutate != nil {
		mutate(&u)
	}
	require.NoError(t, f.users.Create(context.Background(), &u))
}

func TestUserService_KYCReviewTransitions(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)
	ctx := context.Background()
	seedProfile(t, f, "u1", func(u *models.User) { u.KYCStatus = models.KYCStatusPending })
	seedProfile(t, f, "u2", func(u *models.User) { u.KYCStatus = models.KYCStatusPending })

	require.NoError(t, svc.ApproveKYC(ctx, "u1"))
	require.NoError(t, svc.RejectKYC(ctx, "u2"))

	u1, err := svc.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.KYCStatusVerified, u1.KYCStatus)
	u2, err := svc.GetUser(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, models.KYCStatusRejected, u2.KYCStatus)

	assert.ErrorIs(t, svc.ApproveKYC(ctx, "missing"), ErrUserNotFound)
}

func TestUserService_SuspendAndActivate(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)
	ctx := context.Background()
	seedProfile(t, f, "u1", nil)

	require.NoError(t, svc.SuspendUser(ctx, "u1"))
	u, err := svc.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuspended, u.Status)

	require.NoError(t, svc.ActivateUser(ctx, "u1"))
	u, err = svc.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, u.Status)
}

func TestUserService_ListUsersAppliesDefaultsAndSearch(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)
	ctx := context.Background()
	seedProfile(t, f, "u1", func(u *models.User) { u.CompanyName = "Acme Ltd" })
	seedProfile(t, f, "u2", func(u *models.User) {
		u.DisplayName = "Jane"
		u.KYCStatus = models.KYCStatusVerified
	})
	require.NoError(t, f.store.Set(ctx, "users", "u3", repositories.Fields{"email": "bare@b.com"}, false))

	view := svc.ListUsers(ctx, "")
	assert.Nil(t, view.Notification)
	require.Len(t, view.Users, 3)

	byUID := map[string]models.UserSummary{}
	for _, s := range view.Users {
		byUID[s.UID] = s
	}
	assert.Equal(t, "Acme Ltd", byUID["u1"].Name)
	assert.Equal(t, "Jane", byUID["u2"].Name)
	assert.Equal(t, "N/A", byUID["u3"].Name)
	assert.Equal(t, models.StatusActive, byUID["u3"].Status)
	assert.Equal(t, models.KYCStatusPending, byUID["u3"].KYCStatus)
	assert.Equal(t, "N/A", byUID["u3"].CreatedAt)
	assert.NotEqual(t, "N/A", byUID["u1"].CreatedAt)
	assert.Len(t, view.Pending, 2)

	view = svc.ListUsers(ctx, "ACME")
	require.Len(t, view.Users, 1)
	assert.Equal(t, "u1", view.Users[0].UID)
	assert.Len(t, view.Pending, 2)
}

func TestUserService_Dashboard(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)
	ctx := context.Background()
	seedProfile(t, f, "u1", func(u *models.User) {
		u.Directors = []models.Director{{FirstName: "Jane"}}
		u.KYC = &models.KYCSubmission{Status: models.KYCStatusVerified}
		u.Transactions = []models.Transaction{{ID: "t1", Amount: 10, Currency: "KES"}}
	})

	view := svc.Dashboard(ctx, &identity.User{UID: "u1", Email: "u1@b.com"})
	assert.Equal(t, "Jane", view.Name)
	assert.Equal(t, "u1@b.com", view.Email)
	assert.Equal(t, models.DefaultBalance, view.Balance)
	assert.Equal(t, models.KYCStatusVerified, view.KYCStatus)
	assert.Len(t, view.Transactions, 1)

	missing := svc.Dashboard(ctx, &identity.User{UID: "nobody", Email: "n@b.com"})
	assert.Equal(t, models.DefaultDisplayName, missing.Name)
	assert.Equal(t, models.KYCStatusPending, missing.KYCStatus)
	assert.Equal(t, []models.Transaction{}, missing.Transactions)

	named := svc.Dashboard(ctx, &identity.User{UID: "u1", DisplayName: "JD"})
	assert.Equal(t, "JD", named.Name)
}

func TestUserService_AdminStats(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)
	ctx := context.Background()
	seedProfile(t, f, "u1", func(u *models.User) {
		u.KYCStatus = models.KYCStatusPending
		u.Transactions = []models.Transaction{{ID: "t1"}, {ID: "t2"}}
	})
	seedProfile(t, f, "u2", func(u *models.User) { u.KYCStatus = models.KYCStatusVerified })
	require.NoError(t, f.countries.Save(ctx, &models.Country{Code: "KE", Name: "Kenya", Active: true}))
	require.NoError(t, f.countries.Save(ctx, &models.Country{Code: "UG", Name: "Uganda", Active: false}))

	stats := svc.AdminStats(ctx)
	assert.Equal(t, &models.AdminStats{TotalUsers: 2, PendingKYC: 1, TotalTransactions: 2, ActiveCountries: 1}, stats)
}

func TestUserService_LegacyKYCStatusIsNotPending(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, "users", "legacy", repositories.Fields{
		"email": "legacy@b.com",
		"kyc":   map[string]interface{}{"status": models.KYCStatusVerified},
	}, false))
	seedProfile(t, f, "fresh", nil)

	view := svc.ListUsers(ctx, "legacy")
	require.Len(t, view.Users, 1)
	assert.Equal(t, models.KYCStatusVerified, view.Users[0].KYCStatus)
	require.Len(t, view.Pending, 1)
	assert.Equal(t, "fresh", view.Pending[0].UID)

	assert.Equal(t, 1, svc.AdminStats(ctx).PendingKYC)
}

func TestUserService_AdminViewsSurviveStoreFailure(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)
	ctx := context.Background()
	f.store.ListFunc = func(ctx context.Context, collection string) ([]*repositories.Document, error) {
		return nil, errors.New("connection reset")
	}

	view := svc.ListUsers(ctx, "")
	assert.Empty(t, view.Users)
	assert.Empty(t, view.Pending)
	require.NotNil(t, view.Notification)

	stats := svc.AdminStats(ctx)
	assert.Zero(t, stats.TotalUsers)
	require.NotNil(t, stats.Notification)
	assert.Equal(t, models.VariantDestructive, stats.Notification.Variant)
}

func TestUserService_SendPasswordReset(t *testing.T) {
	f := newFixture(t)
	svc := newUserService(f)
	ctx := context.Background()
	created, err := f.provider.CreateIdentity(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	seedProfile(t, f, created.User.UID, func(u *models.User) { u.Email = "a@b.com" })
	seedProfile(t, f, "ghost", func(u *models.User) { u.Email = "ghost@b.com" })

	require.NoError(t, svc.SendPasswordReset(ctx, created.User.UID))
	assert.Len(t, f.mail.Messages(), 1)

	err = svc.SendPasswordReset(ctx, "ghost")
	assert.ErrorIs(t, err, identity.ErrUserNotFound)
	assert.ErrorIs(t, svc.SendPasswordReset(ctx, "missing"), ErrUserNotFound)
}
