package documents

import (
	"context"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
)

// Compile-time check to ensure SystemSettingsRepository implements the interface
var _ repositories.SystemSettingsRepository = (*SystemSettingsRepository)(nil)

// SystemSettingsRepository handles the settings/platform singleton
type SystemSettingsRepository struct {
	store repositories.DocumentStore
}

// NewSystemSettingsRepository creates a new SystemSettingsRepository
func NewSystemSettingsRepository(store repositories.DocumentStore) *SystemSettingsRepository {
	return &SystemSettingsRepository{store: store}
}

// GetSettings retrieves the current settings, defaults when none were saved
func (r *SystemSettingsRepository) GetSettings(ctx context.Context) (*models.SystemSettings, error) {
	settings := models.DefaultSystemSettings()
	if err := getSingleton(ctx, r.store, models.CollectionSettings, models.SettingsDocumentID, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings overwrites the settings document
func (r *SystemSettingsRepository) UpdateSettings(ctx context.Context, settings *models.SystemSettings) error {
	fields, err := encode(settings)
	if err != nil {
		return err
	}
	fields["updatedAt"] = repositories.ServerTimestamp
	return r.store.Set(ctx, models.CollectionSettings, models.SettingsDocumentID, fields, false)
}
