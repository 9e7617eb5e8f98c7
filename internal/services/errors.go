package services

import (
	"errors"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
)

var (
	// ErrValidation is matched by every ValidationError
	ErrValidation = errors.New("validation failed")
	// ErrMaintenance is returned while the platform is in maintenance mode
	ErrMaintenance = errors.New("platform is under maintenance")
	// ErrProfileNotWritten means the identity exists but its profile record could not be written
	ErrProfileNotWritten = errors.New("account created but profile could not be saved")
)

// ValidationError is a form error caught before any network call
type ValidationError struct {
	Title       string
	Description string
}

func (e *ValidationError) Error() string {
	return e.Title + ": " + e.Description
}

// Unwrap returns ErrValidation
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Notification returns the destructive notification for this error
func (e *ValidationError) Notification() models.Notification {
	return models.Notification{Title: e.Title, Description: e.Description, Variant: models.VariantDestructive}
}

func invalid(title, description string) error {
	return &ValidationError{Title: title, Description: description}
}

// loadFailed is attached to admin views rendered without some of their data
func loadFailed(what string) *models.Notification {
	return &models.Notification{
		Title:       "Error",
		Description: "Failed to load " + what + ".",
		Variant:     models.VariantDestructive,
	}
}
