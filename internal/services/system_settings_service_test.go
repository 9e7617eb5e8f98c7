package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(f *fixture) *SystemSettingsServiceImpl {
	return NewSystemSettingsService(f.settings, f.currencies, f.countries)
}

func TestSystemSettingsService_UpdateValidation(t *testing.T) {
	f := newFixture(t)
	svc := newSettingsService(f)
	ctx := context.Background()

	settings := models.DefaultSystemSettings()
	settings.MinTransaction = 500
	settings.MaxTransaction = 100
	assert.ErrorIs(t, svc.UpdateSettings(ctx, &settings, "admin1"), ErrValidation)

	settings = models.DefaultSystemSettings()
	settings.TransactionFee = -1
	assert.ErrorIs(t, svc.UpdateSettings(ctx, &settings, "admin1"), ErrValidation)

	settings = models.DefaultSystemSettings()
	settings.SupportEmail = "not an email"
	assert.ErrorIs(t, svc.UpdateSettings(ctx, &settings, "admin1"), ErrValidation)

	settings = models.DefaultSystemSettings()
	settings.TransactionFee = 1.75
	require.NoError(t, svc.UpdateSettings(ctx, &settings, "admin1"))

	got := svc.GetSettings(ctx)
	assert.Equal(t, 1.75, got.TransactionFee)
	assert.Equal(t, "admin1", got.UpdatedBy)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSystemSettingsService_Currencies(t *testing.T) {
	f := newFixture(t)
	svc := newSettingsService(f)
	ctx := context.Background()

	_, err := svc.SaveCurrency(ctx, "usd", &models.CurrencyRequest{Name: "US Dollar"})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.SaveCurrency(ctx, " ", &models.CurrencyRequest{Name: "US Dollar", Rate: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrValidation)

	usd, err := svc.SaveCurrency(ctx, "usd", &models.CurrencyRequest{
		Name: "US Dollar",
		Rate: decimal.RequireFromString("129.123456789"),
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", usd.Code)
	assert.Equal(t, 129.123457, usd.Rate)
	assert.True(t, usd.Active)

	inactive := false
	_, err = svc.SaveCurrency(ctx, "GBP", &models.CurrencyRequest{Name: "Pound", Rate: decimal.NewFromInt(160), Active: &inactive})
	require.NoError(t, err)

	active, err := svc.ListCurrencies(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "USD", active[0].Code)

	toggled, err := svc.ToggleCurrency(ctx, "gbp")
	require.NoError(t, err)
	assert.True(t, toggled.Active)

	_, err = svc.ToggleCurrency(ctx, "EUR")
	assert.ErrorIs(t, err, repositories.ErrDocumentNotFound)

	require.NoError(t, svc.DeleteCurrency(ctx, "usd"))
	all, err := svc.ListCurrencies(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "GBP", all[0].Code)
}

func TestSystemSettingsService_CountriesAndAdminView(t *testing.T) {
	f := newFixture(t)
	svc := newSettingsService(f)
	ctx := context.Background()

	_, err := svc.SaveCountry(ctx, "ke", &models.CountryRequest{})
	assert.ErrorIs(t, err, ErrValidation)

	ke, err := svc.SaveCountry(ctx, "ke", &models.CountryRequest{Name: "Kenya", Flag: "🇰🇪"})
	require.NoError(t, err)
	assert.Equal(t, "KE", ke.Code)

	toggled, err := svc.ToggleCountry(ctx, "KE")
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	view := svc.AdminSettings(ctx)
	assert.Nil(t, view.Notification)
	assert.Equal(t, models.DefaultSystemSettings().SupportEmail, view.Settings.SupportEmail)
	assert.Empty(t, view.Currencies)
	require.Len(t, view.Countries, 1)
	assert.False(t, view.Countries[0].Active)
}

func TestSystemSettingsService_MalformedSettingsFallBackToDefaults(t *testing.T) {
	f := newFixture(t)
	svc := newSettingsService(f)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, models.CollectionSettings, models.SettingsDocumentID,
		repositories.Fields{"transactionFee": "2.5%"}, false))
	_, err := svc.SaveCountry(ctx, "KE", &models.CountryRequest{Name: "Kenya"})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultSystemSettings(), *svc.GetSettings(ctx))

	view := svc.AdminSettings(ctx)
	assert.Equal(t, models.DefaultSystemSettings(), view.Settings)
	require.Len(t, view.Countries, 1)
	require.NotNil(t, view.Notification)
	assert.Equal(t, models.VariantDestructive, view.Notification.Variant)
}

func TestSystemSettingsService_AdminSettingsSurvivesListFailure(t *testing.T) {
	f := newFixture(t)
	svc := newSettingsService(f)
	ctx := context.Background()
	f.store.ListFunc = func(ctx context.Context, collection string) ([]*repositories.Document, error) {
		return nil, errors.New("connection reset")
	}

	view := svc.AdminSettings(ctx)
	assert.Equal(t, models.DefaultSystemSettings().SupportEmail, view.Settings.SupportEmail)
	assert.Equal(t, []models.Currency{}, view.Currencies)
	assert.Equal(t, []models.Country{}, view.Countries)
	require.NotNil(t, view.Notification)
}

func TestParseRate(t *testing.T) {
	rate, err := ParseRate(" 1.5 ")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("1.5")))

	_, err = ParseRate("abc")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = ParseRate("0")
	assert.ErrorIs(t, err, ErrValidation)
}
