package documents

import (
	"context"
	"testing"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(memory.NewDocumentStore())
	ctx := context.Background()

	user := models.DefaultUser()
	user.UID = "u1"
	user.Email = "a@b.com"
	user.CompanyName = "Acme"
	user.KYCStatus = models.KYCStatusPending
	user.Directors = []models.Director{{FirstName: "Jane", LastName: "Doe"}}
	require.NoError(t, repo.Create(ctx, &user))

	got, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UID)
	assert.Equal(t, "Acme", got.CompanyName)
	assert.Equal(t, models.RoleUser, got.Role)
	assert.False(t, got.KYCCompleted)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, "Jane", got.Directors[0].FirstName)
	assert.Equal(t, []models.Transaction{}, got.Transactions)
}

func TestUserRepository_MergeKYCKeepsProfile(t *testing.T) {
	repo := NewUserRepository(memory.NewDocumentStore())
	ctx := context.Background()
	user := models.DefaultUser()
	user.UID = "u1"
	user.CompanyName = "Acme"
	require.NoError(t, repo.Create(ctx, &user))

	require.NoError(t, repo.MergeKYC(ctx, "u1", &models.KYCSubmission{
		IDNumber: "12345678",
		City:     "Nairobi",
		Status:   models.KYCStatusPending,
	}))

	got, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.CompanyName)
	require.NotNil(t, got.KYC)
	assert.Equal(t, "12345678", got.KYC.IDNumber)
	assert.Equal(t, models.KYCStatusPending, got.KYC.Status)
	assert.False(t, got.KYC.SubmittedAt.IsZero())
	assert.Equal(t, models.KYCStatusPending, got.KYCStatus)
	assert.True(t, got.KYCCompleted)
}

func TestUserRepository_UpdateKYCStatusMissingUser(t *testing.T) {
	repo := NewUserRepository(memory.NewDocumentStore())

	err := repo.UpdateKYCStatus(context.Background(), "ghost", models.KYCStatusVerified)
	assert.ErrorIs(t, err, repositories.ErrDocumentNotFound)
}

func TestUserRepository_CreateStubIsIdempotent(t *testing.T) {
	repo := NewUserRepository(memory.NewDocumentStore())
	ctx := context.Background()

	created, err := repo.CreateStub(ctx, "u9", "x@y.com", "X")
	require.NoError(t, err)
	assert.True(t, created)
	created, err = repo.CreateStub(ctx, "u9", "x@y.com", "X")
	require.NoError(t, err)
	assert.False(t, created)

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, users[0].ProfileIncomplete)
	assert.Equal(t, "X", users[0].DisplayName)
}

func TestUserRepository_CreateStubLeavesExistingProfile(t *testing.T) {
	repo := NewUserRepository(memory.NewDocumentStore())
	ctx := context.Background()

	user := models.DefaultUser()
	user.UID = "u1"
	user.Email = "a@b.com"
	user.CompanyName = "Acme Ltd"
	require.NoError(t, repo.Create(ctx, &user))
	before, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)

	created, err := repo.CreateStub(ctx, "u1", "a@b.com", "")
	require.NoError(t, err)
	assert.False(t, created)

	after, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, after.ProfileIncomplete)
	assert.Equal(t, "Acme Ltd", after.CompanyName)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestUser_EffectiveKYCStatus(t *testing.T) {
	u := models.DefaultUser()
	assert.Equal(t, models.KYCStatusPending, u.EffectiveKYCStatus())

	u.KYC = &models.KYCSubmission{Status: models.KYCStatusRejected}
	assert.Equal(t, models.KYCStatusRejected, u.EffectiveKYCStatus())

	u.KYCStatus = models.KYCStatusVerified
	assert.Equal(t, models.KYCStatusVerified, u.EffectiveKYCStatus())
}

func TestAdminRepository_GrantRevoke(t *testing.T) {
	repo := NewAdminRepository(memory.NewDocumentStore())
	ctx := context.Background()

	ok, err := repo.Exists(ctx, "admin-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Grant(ctx, "admin-1", "ops@oripay.com"))
	ok, err = repo.Exists(ctx, "admin-1")
	require.NoError(t, err)
	assert.True(t, ok)

	uids, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin-1"}, uids)

	require.NoError(t, repo.Revoke(ctx, "admin-1"))
	ok, err = repo.Exists(ctx, "admin-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
