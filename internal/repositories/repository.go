package repositories

import (
	"context"
	"errors"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
)

var (
	// ErrDocumentNotFound is returned when a document does not exist.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrMalformedDocument is returned when a stored document does not match its schema.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrDuplicateEmail is returned when an account already uses the email.
	ErrDuplicateEmail = errors.New("email already registered")
)

// DocumentStore is a schemaless store of collections of documents keyed by id.
type DocumentStore interface {
	// Get returns ErrDocumentNotFound when the document is absent.
	Get(ctx context.Context, collection, id string) (*Document, error)
	// List returns every document in the collection ordered by id.
	List(ctx context.Context, collection string) ([]*Document, error)
	// Set writes the document. With merge, nested maps are merged into the stored ones.
	Set(ctx context.Context, collection, id string, fields Fields, merge bool) error
	// Create writes the document only if no document has the id and reports whether it did.
	Create(ctx context.Context, collection, id string, fields Fields) (bool, error)
	// Update replaces the given top-level fields of an existing document.
	Update(ctx context.Context, collection, id string, fields Fields) error
	Delete(ctx context.Context, collection, id string) error
	// Add stores the document under a generated id and returns it.
	Add(ctx context.Context, collection string, fields Fields) (string, error)
}

// UserRepository defines the interface for profile records at users/{uid}
type UserRepository interface {
	FindByID(ctx context.Context, uid string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	Exists(ctx context.Context, uid string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	CreateStub(ctx context.Context, uid, email, displayName string) (bool, error)
	MergeKYC(ctx context.Context, uid string, kyc *models.KYCSubmission) error
	UpdateKYCStatus(ctx context.Context, uid, status string) error
	UpdateStatus(ctx context.Context, uid, status string) error
}

// AdminRepository defines the interface for admin marker documents
type AdminRepository interface {
	Exists(ctx context.Context, uid string) (bool, error)
	Grant(ctx context.Context, uid, email string) error
	Revoke(ctx context.Context, uid string) error
	FindAll(ctx context.Context) ([]string, error)
}

// ContentRepository defines the interface for the singleton page documents
type ContentRepository interface {
	GetHomepage(ctx context.Context) (*models.HomepageContent, error)
	SaveHomepage(ctx context.Context, content *models.HomepageContent) error
	GetAbout(ctx context.Context) (*models.AboutContent, error)
	SaveAbout(ctx context.Context, content *models.AboutContent) error
	GetFooter(ctx context.Context) (*models.FooterContent, error)
	SaveFooter(ctx context.Context, content *models.FooterContent) error
}

// ServiceRepository defines the interface for service entries
type ServiceRepository interface {
	FindAll(ctx context.Context) ([]*models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id string) error
}

// AnnouncementRepository defines the interface for announcements
type AnnouncementRepository interface {
	FindAll(ctx context.Context) ([]*models.Announcement, error)
	Create(ctx context.Context, announcement *models.Announcement) error
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id string) error
}

// CurrencyRepository defines the interface for currencies keyed by code
type CurrencyRepository interface {
	FindAll(ctx context.Context) ([]*models.Currency, error)
	FindByCode(ctx context.Context, code string) (*models.Currency, error)
	Save(ctx context.Context, currency *models.Currency) error
	SetActive(ctx context.Context, code string, active bool) error
	Delete(ctx context.Context, code string) error
}

// CountryRepository defines the interface for countries keyed by code
type CountryRepository interface {
	FindAll(ctx context.Context) ([]*models.Country, error)
	FindByCode(ctx context.Context, code string) (*models.Country, error)
	Save(ctx context.Context, country *models.Country) error
	SetActive(ctx context.Context, code string, active bool) error
	Delete(ctx context.Context, code string) error
}

// SystemSettingsRepository defines the interface for the settings singleton
type SystemSettingsRepository interface {
	GetSettings(ctx context.Context) (*models.SystemSettings, error)
	UpdateSettings(ctx context.Context, settings *models.SystemSettings) error
}

// AccountRepository defines the interface for identity provider accounts
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, uid string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	FindAll(ctx context.Context) ([]*models.Account, error)
}
