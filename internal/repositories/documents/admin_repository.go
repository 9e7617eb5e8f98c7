package documents

import (
	"context"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
)

// Compile-time check to ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)

// AdminRepository manages admin marker documents at admins/{uid}
type AdminRepository struct {
	store repositories.DocumentStore
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(store repositories.DocumentStore) *AdminRepository {
	return &AdminRepository{store: store}
}

// Exists reports whether uid carries an admin marker
func (r *AdminRepository) Exists(ctx context.Context, uid string) (bool, error) {
	return exists(ctx, r.store, models.CollectionAdmins, uid)
}

// Grant writes the admin marker for uid
func (r *AdminRepository) Grant(ctx context.Context, uid, email string) error {
	return r.store.Set(ctx, models.CollectionAdmins, uid, repositories.Fields{
		"email":     email,
		"grantedAt": repositories.ServerTimestamp,
	}, false)
}

// Revoke removes the admin marker for uid
func (r *AdminRepository) Revoke(ctx context.Context, uid string) error {
	return r.store.Delete(ctx, models.CollectionAdmins, uid)
}

// FindAll returns the uids carrying an admin marker
func (r *AdminRepository) FindAll(ctx context.Context) ([]string, error) {
	docs, err := r.store.List(ctx, models.CollectionAdmins)
	if err != nil {
		return nil, err
	}
	uids := make([]string, 0, len(docs))
	for _, doc := range docs {
		uids = append(uids, doc.ID)
	}
	return uids, nil
}
