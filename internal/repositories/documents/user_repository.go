package documents

import (
	"context"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
)

const collectionUsers = "users"

// Compile-time check to ensure UserRepository implements the interface
var _ repositories.UserRepository = (*UserRepository)(nil)

// UserRepository handles profile records at users/{uid}
type UserRepository struct {
	store repositories.DocumentStore
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store repositories.DocumentStore) *UserRepository {
	return &UserRepository{store: store}
}

// FindByID returns the profile of uid, or ErrDocumentNotFound
func (r *UserRepository) FindByID(ctx context.Context, uid string) (*models.User, error) {
	doc, err := r.store.Get(ctx, collectionUsers, uid)
	if err != nil {
		return nil, err
	}
	user := models.DefaultUser()
	if err := decode(doc, &user); err != nil {
		return nil, err
	}
	user.UID = uid
	normaliseUser(&user)
	return &user, nil
}

// FindAll returns every profile. Malformed records are skipped.
func (r *UserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	docs, err := r.store.List(ctx, collectionUsers)
	if err != nil {
		return nil, err
	}
	users := make([]*models.User, 0, len(docs))
	for _, doc := range docs {
		user := models.DefaultUser()
		if err := decode(doc, &user); err != nil {
			skipMalformed(collectionUsers, err)
			continue
		}
		user.UID = doc.ID
		normaliseUser(&user)
		users = append(users, &user)
	}
	return users, nil
}

// Exists reports whether a profile record exists for uid
func (r *UserRepository) Exists(ctx context.Context, uid string) (bool, error) {
	return exists(ctx, r.store, collectionUsers, uid)
}

// Create writes the full profile record with a server-side createdAt
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	normaliseUser(user)
	fields, err := encode(user)
	if err != nil {
		return err
	}
	fields["createdAt"] = repositories.ServerTimestamp
	return r.store.Set(ctx, collectionUsers, user.UID, fields, false)
}

// CreateStub writes a minimal profile for an identity that has none. An existing
// profile is left untouched and false is returned.
func (r *UserRepository) CreateStub(ctx context.Context, uid, email, displayName string) (bool, error) {
	fields := repositories.Fields{
		"email":             email,
		"role":              models.RoleUser,
		"status":            models.StatusActive,
		"kycCompleted":      false,
		"profileIncomplete": true,
		"createdAt":         repositories.ServerTimestamp,
	}
	if displayName != "" {
		fields["displayName"] = displayName
	}
	return r.store.Create(ctx, collectionUsers, uid, fields)
}

// MergeKYC merges the kyc sub-object and mirrors its status at the top level
func (r *UserRepository) MergeKYC(ctx context.Context, uid string, kyc *models.KYCSubmission) error {
	kycFields, err := encode(kyc)
	if err != nil {
		return err
	}
	kycFields["submittedAt"] = repositories.ServerTimestamp
	return r.store.Set(ctx, collectionUsers, uid, repositories.Fields{
		"kyc":          kycFields,
		"kycStatus":    kyc.Status,
		"kycCompleted": true,
	}, true)
}

// UpdateKYCStatus overwrites the top-level kycStatus
func (r *UserRepository) UpdateKYCStatus(ctx context.Context, uid, status string) error {
	return r.store.Update(ctx, collectionUsers, uid, repositories.Fields{"kycStatus": status})
}

// UpdateStatus overwrites the account status
func (r *UserRepository) UpdateStatus(ctx context.Context, uid, status string) error {
	return r.store.Update(ctx, collectionUsers, uid, repositories.Fields{"status": status})
}
