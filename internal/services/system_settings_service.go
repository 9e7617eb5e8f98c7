package services

import (
	"context"
	"fmt"
	"log"
	"net/mail"
	"strings"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"github.com/shopspring/decimal"
)

const ratePlaces = 6

// Compile-time check to ensure SystemSettingsServiceImpl implements SystemSettingsService
var _ SystemSettingsService = (*SystemSettingsServiceImpl)(nil)

// SystemSettingsServiceImpl implements SystemSettingsService
type SystemSettingsServiceImpl struct {
	settingsRepo repositories.SystemSettingsRepository
	currencyRepo repositories.CurrencyRepository
	countryRepo  repositories.CountryRepository
}

// NewSystemSettingsService creates a new SystemSettingsServiceImpl
func NewSystemSettingsService(
	settingsRepo repositories.SystemSettingsRepository,
	currencyRepo repositories.CurrencyRepository,
	countryRepo repositories.CountryRepository,
) *SystemSettingsServiceImpl {
	return &SystemSettingsServiceImpl{
		settingsRepo: settingsRepo,
		currencyRepo: currencyRepo,
		countryRepo:  countryRepo,
	}
}

// GetSettings retrieves the current system settings, defaults when they cannot be read
func (s *SystemSettingsServiceImpl) GetSettings(ctx context.Context) *models.SystemSettings {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		log.Printf("[ERROR] Failed to load system settings, using defaults: %v", err)
		d := models.DefaultSystemSettings()
		return &d
	}
	return settings
}

// UpdateSettings validates and overwrites all system settings
func (s *SystemSettingsServiceImpl) UpdateSettings(ctx context.Context, settings *models.SystemSettings, updatedBy string) error {
	if err := validateSettings(settings); err != nil {
		return err
	}
	settings.UpdatedBy = updatedBy
	return s.settingsRepo.UpdateSettings(ctx, settings)
}

// AdminSettings returns the settings page: settings, currencies and countries.
// Data that cannot be read is replaced by defaults or empty lists and the view
// carries an error notification.
func (s *SystemSettingsServiceImpl) AdminSettings(ctx context.Context) *models.AdminSettingsView {
	view := &models.AdminSettingsView{
		Currencies: []models.Currency{},
		Countries:  []models.Country{},
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		log.Printf("[ERROR] Failed to load system settings, using defaults: %v", err)
		view.Settings = models.DefaultSystemSettings()
		view.Notification = loadFailed("settings")
	} else {
		view.Settings = *settings
	}

	currencies, err := s.ListCurrencies(ctx, false)
	if err != nil {
		log.Printf("[ERROR] Failed to load currencies: %v", err)
		view.Notification = loadFailed("settings")
	}
	for _, c := range currencies {
		view.Currencies = append(view.Currencies, *c)
	}

	countries, err := s.ListCountries(ctx, false)
	if err != nil {
		log.Printf("[ERROR] Failed to load countries: %v", err)
		view.Notification = loadFailed("settings")
	}
	for _, c := range countries {
		view.Countries = append(view.Countries, *c)
	}
	return view
}

// ListCurrencies returns the currencies, only active ones when activeOnly is set
func (s *SystemSettingsServiceImpl) ListCurrencies(ctx context.Context, activeOnly bool) ([]*models.Currency, error) {
	currencies, err := s.currencyRepo.FindAll(ctx)
	if err != nil || !activeOnly {
		return currencies, err
	}
	active := make([]*models.Currency, 0, len(currencies))
	for _, c := range currencies {
		if c.Active {
			active = append(active, c)
		}
	}
	return active, nil
}

// SaveCurrency writes the currency under its code. The rate must be positive and is rounded to six places.
func (s *SystemSettingsServiceImpl) SaveCurrency(ctx context.Context, code string, req *models.CurrencyRequest) (*models.Currency, error) {
	code = normaliseCode(code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, invalid("Missing Information", "Currency code and name are required.")
	}
	if !req.Rate.IsPositive() {
		return nil, invalid("Invalid Rate", "Exchange rate must be greater than zero.")
	}

	currency := &models.Currency{
		Code:   code,
		Name:   name,
		Rate:   req.Rate.Round(ratePlaces).InexactFloat64(),
		Active: req.Active == nil || *req.Active,
	}
	if err := s.currencyRepo.Save(ctx, currency); err != nil {
		return nil, err
	}
	return currency, nil
}

// ToggleCurrency flips the active flag of a currency
func (s *SystemSettingsServiceImpl) ToggleCurrency(ctx context.Context, code string) (*models.Currency, error) {
	currency, err := s.currencyRepo.FindByCode(ctx, normaliseCode(code))
	if err != nil {
		return nil, err
	}
	currency.Active = !currency.Active
	if err := s.currencyRepo.SetActive(ctx, currency.Code, currency.Active); err != nil {
		return nil, err
	}
	return currency, nil
}

// DeleteCurrency removes a currency
func (s *SystemSettingsServiceImpl) DeleteCurrency(ctx context.Context, code string) error {
	return s.currencyRepo.Delete(ctx, normaliseCode(code))
}

// ListCountries returns the countries, only active ones when activeOnly is set
func (s *SystemSettingsServiceImpl) ListCountries(ctx context.Context, activeOnly bool) ([]*models.Country, error) {
	countries, err := s.countryRepo.FindAll(ctx)
	if err != nil || !activeOnly {
		return countries, err
	}
	active := make([]*models.Country, 0, len(countries))
	for _, c := range countries {
		if c.Active {
			active = append(active, c)
		}
	}
	return active, nil
}

// SaveCountry writes the country under its code
func (s *SystemSettingsServiceImpl) SaveCountry(ctx context.Context, code string, req *models.CountryRequest) (*models.Country, error) {
	code = normaliseCode(code)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, invalid("Missing Information", "Country code and name are required.")
	}

	country := &models.Country{
		Code:   code,
		Name:   name,
		Flag:   strings.TrimSpace(req.Flag),
		Active: req.Active == nil || *req.Active,
	}
	if err := s.countryRepo.Save(ctx, country); err != nil {
		return nil, err
	}
	return country, nil
}

// ToggleCountry flips the active flag of a country
func (s *SystemSettingsServiceImpl) ToggleCountry(ctx context.Context, code string) (*models.Country, error) {
	country, err := s.countryRepo.FindByCode(ctx, normaliseCode(code))
	if err != nil {
		return nil, err
	}
	country.Active = !country.Active
	if err := s.countryRepo.SetActive(ctx, country.Code, country.Active); err != nil {
		return nil, err
	}
	return country, nil
}

// DeleteCountry removes a country
func (s *SystemSettingsServiceImpl) DeleteCountry(ctx context.Context, code string) error {
	return s.countryRepo.Delete(ctx, normaliseCode(code))
}

// ParseRate parses an exchange rate, rejecting anything that is not a positive number
func ParseRate(value string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, invalid("Invalid Rate", fmt.Sprintf("%q is not a number.", value))
	}
	if !rate.IsPositive() {
		return decimal.Zero, invalid("Invalid Rate", "Exchange rate must be greater than zero.")
	}
	return rate, nil
}

func validateSettings(settings *models.SystemSettings) error {
	for _, v := range []float64{settings.TransactionFee, settings.MinTransaction, settings.MaxTransaction, settings.DailyLimit} {
		if v < 0 {
			return invalid("Invalid Settings", "Fees and limits cannot be negative.")
		}
	}
	if settings.MinTransaction > settings.MaxTransaction {
		return invalid("Invalid Settings", "Minimum transaction cannot exceed the maximum transaction.")
	}
	if settings.SupportEmail != "" {
		if _, err := mail.ParseAddress(settings.SupportEmail); err != nil {
			return invalid("Invalid Settings", "Support email is not a valid email address.")
		}
	}
	return nil
}

func normaliseCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
