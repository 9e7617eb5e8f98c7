package services

import (
	"context"

	"github.com/ArowuTest/oripay-exchange-backend/internal/identity"
	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/session"
)

// ContentService defines the interface for the public pages and their admin editors.
// Page loads never fail: missing or unreadable documents fall back to defaults.
type ContentService interface {
	HomePage(ctx context.Context) *models.HomePageView
	ServicesPage(ctx context.Context) *models.ServicesPageView
	AboutPage(ctx context.Context) *models.AboutPageView
	AdminContent(ctx context.Context) *models.AdminContentView

	GetHomepage(ctx context.Context) *models.HomepageContent
	GetAbout(ctx context.Context) *models.AboutContent
	GetFooter(ctx context.Context) *models.FooterContent

	SaveHomepage(ctx context.Context, content *models.HomepageContent) error
	SaveAbout(ctx context.Context, content *models.AboutContent) error
	SaveFooter(ctx context.Context, content *models.FooterContent) error

	CreateService(ctx context.Context, service *models.Service) error
	UpdateService(ctx context.Context, service *models.Service) error
	DeleteService(ctx context.Context, id string) error

	CreateAnnouncement(ctx context.Context, announcement *models.Announcement) error
	UpdateAnnouncement(ctx context.Context, announcement *models.Announcement) error
	DeleteAnnouncement(ctx context.Context, id string) error
}

// AuthService defines the interface for sign-in, sign-out and password resets
type AuthService interface {
	// Login signs the session in and returns where to navigate next
	Login(ctx context.Context, sc *session.Context, req *models.LoginRequest) (string, error)
	Logout(ctx context.Context, sc *session.Context) error
	// RequestPasswordReset emails a reset link. Unknown emails are not reported.
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, req *models.PasswordResetConfirmRequest) error
}

// OnboardingService defines the interface for registration and KYC submission
type OnboardingService interface {
	Register(ctx context.Context, client *identity.Client, req *models.RegistrationRequest) (*models.User, error)
	SubmitKYC(ctx context.Context, uid string, req *models.KYCRequest) (*models.KYCSubmission, error)
}

// ReconciliationService defines the interface for the identity/profile consistency sweep
type ReconciliationService interface {
	Sweep(ctx context.Context, repair bool) (*models.ReconcileReport, error)
}

// UserService defines the interface for customer profiles and their administration
type UserService interface {
	ListUsers(ctx context.Context, search string) *models.AdminUsersView
	GetUser(ctx context.Context, uid string) (*models.User, error)
	ApproveKYC(ctx context.Context, uid string) error
	RejectKYC(ctx context.Context, uid string) error
	SuspendUser(ctx context.Context, uid string) error
	ActivateUser(ctx context.Context, uid string) error
	SendPasswordReset(ctx context.Context, uid string) error
	Dashboard(ctx context.Context, user *identity.User) *models.DashboardView
	AdminStats(ctx context.Context) *models.AdminStats
	IsAdmin(ctx context.Context, uid string) (bool, error)
}

// SystemSettingsService defines the interface for platform settings and reference data
type SystemSettingsService interface {
	GetSettings(ctx context.Context) *models.SystemSettings
	UpdateSettings(ctx context.Context, settings *models.SystemSettings, updatedBy string) error
	AdminSettings(ctx context.Context) *models.AdminSettingsView

	ListCurrencies(ctx context.Context, activeOnly bool) ([]*models.Currency, error)
	SaveCurrency(ctx context.Context, code string, req *models.CurrencyRequest) (*models.Currency, error)
	ToggleCurrency(ctx context.Context, code string) (*models.Currency, error)
	DeleteCurrency(ctx context.Context, code string) error

	ListCountries(ctx context.Context, activeOnly bool) ([]*models.Country, error)
	SaveCountry(ctx context.Context, code string, req *models.CountryRequest) (*models.Country, error)
	ToggleCountry(ctx context.Context, code string) (*models.Country, error)
	DeleteCountry(ctx context.Context, code string) error
}
