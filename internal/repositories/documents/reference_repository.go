package documents

import (
	"context"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
)

// Compile-time checks to ensure the reference data repositories implement the interfaces
var (
	_ repositories.CurrencyRepository = (*CurrencyRepository)(nil)
	_ repositories.CountryRepository  = (*CountryRepository)(nil)
)

// CurrencyRepository handles currencies keyed by code
type CurrencyRepository struct {
	store repositories.DocumentStore
}

// NewCurrencyRepository creates a new CurrencyRepository
func NewCurrencyRepository(store repositories.DocumentStore) *CurrencyRepository {
	return &CurrencyRepository{store: store}
}

// FindAll returns every currency. Malformed entries are skipped.
func (r *CurrencyRepository) FindAll(ctx context.Context) ([]*models.Currency, error) {
	docs, err := r.store.List(ctx, models.CollectionCurrencies)
	if err != nil {
		return nil, err
	}
	currencies := make([]*models.Currency, 0, len(docs))
	for _, doc := range docs {
		currency := models.Currency{Code: doc.ID}
		if err := decode(doc, &currency); err != nil {
			skipMalformed(models.CollectionCurrencies, err)
			continue
		}
		currencies = append(currencies, &currency)
	}
	return currencies, nil
}

// FindByCode finds a currency by its code
func (r *CurrencyRepository) FindByCode(ctx context.Context, code string) (*models.Currency, error) {
	doc, err := r.store.Get(ctx, models.CollectionCurrencies, code)
	if err != nil {
		return nil, err
	}
	currency := models.Currency{Code: code}
	if err := decode(doc, &currency); err != nil {
		return nil, err
	}
	return &currency, nil
}

// Save writes the currency under its code
func (r *CurrencyRepository) Save(ctx context.Context, currency *models.Currency) error {
	fields, err := encode(currency)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, models.CollectionCurrencies, currency.Code, fields, false)
}

// SetActive flips the active flag of an existing currency
func (r *CurrencyRepository) SetActive(ctx context.Context, code string, active bool) error {
	return r.store.Update(ctx, models.CollectionCurrencies, code, repositories.Fields{"active": active})
}

// Delete removes a currency
func (r *CurrencyRepository) Delete(ctx context.Context, code string) error {
	return r.store.Delete(ctx, models.CollectionCurrencies, code)
}

// CountryRepository handles countries keyed by code
type CountryRepository struct {
	store repositories.DocumentStore
}

// NewCountryRepository creates a new CountryRepository
func NewCountryRepository(store repositories.DocumentStore) *CountryRepository {
	return &CountryRepository{store: store}
}

// FindAll returns every country. Malformed entries are skipped.
func (r *CountryRepository) FindAll(ctx context.Context) ([]*models.Country, error) {
	docs, err := r.store.List(ctx, models.CollectionCountries)
	if err != nil {
		return nil, err
	}
	countries := make([]*models.Country, 0, len(docs))
	for _, doc := range docs {
		country := models.Country{Code: doc.ID}
		if err := decode(doc, &country); err != nil {
			skipMalformed(models.CollectionCountries, err)
			continue
		}
		countries = append(countries, &country)
	}
	return countries, nil
}

// FindByCode finds a country by its code
func (r *CountryRepository) FindByCode(ctx context.Context, code string) (*models.Country, error) {
	doc, err := r.store.Get(ctx, models.CollectionCountries, code)
	if err != nil {
		return nil, err
	}
	country := models.Country{Code: code}
	if err := decode(doc, &country); err != nil {
		return nil, err
	}
	return &country, nil
}

// Save writes the country under its code
func (r *CountryRepository) Save(ctx context.Context, country *models.Country) error {
	fields, err := encode(country)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, models.CollectionCountries, country.Code, fields, false)
}

// SetActive flips the active flag of an existing country
func (r *CountryRepository) SetActive(ctx context.Context, code string, active bool) error {
	return r.store.Update(ctx, models.CollectionCountries, code, repositories.Fields{"active": active})
}

// Delete removes a country
func (r *CountryRepository) Delete(ctx context.Context, code string) error {
	return r.store.Delete(ctx, models.CollectionCountries, code)
}
