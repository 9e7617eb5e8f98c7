package models

import "github.com/shopspring/decimal"

// Reference data collections, keyed by business code.
const (
	CollectionCurrencies = "currencies"
	CollectionCountries  = "countries"
)

// Currency is stored at currencies/{code}.
type Currency struct {
	Code   string  `bson:"code" json:"code"`
	Name   string  `bson:"name" json:"name"`
	Rate   float64 `bson:"rate" json:"rate"`
	Active bool    `bson:"active" json:"active"`
}

// Country is stored at countries/{code}.
type Country struct {
	Code   string `bson:"code" json:"code"`
	Name   string `bson:"name" json:"name"`
	Flag   string `bson:"flag,omitempty" json:"flag,omitempty"`
	Active bool   `bson:"active" json:"active"`
}

// CurrencyRequest is the admin payload for a currency entry.
type CurrencyRequest struct {
	Name   string          `json:"name" binding:"required"`
	Rate   decimal.Decimal `json:"rate"`
	Active *bool           `json:"active"`
}

// CountryRequest is the admin payload for a country entry.
type CountryRequest struct {
	Name   string `json:"name" binding:"required"`
	Flag   string `json:"flag"`
	Active *bool  `json:"active"`
}
