package utils

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/shopspring/decimal"
)

// ReferenceWriter stores currencies and countries keyed by code
type ReferenceWriter interface {
	SaveCurrency(ctx context.Context, code string, req *models.CurrencyRequest) (*models.Currency, error)
	SaveCountry(ctx context.Context, code string, req *models.CountryRequest) (*models.Country, error)
}

// ImportResult summarises one CSV import
type ImportResult struct {
	TotalRows int      `json:"totalRows"`
	Saved     int      `json:"saved"`
	Errors    []string `json:"errors"`
}

// CSVImporter loads reference data from CSV files
type CSVImporter struct {
	writer ReferenceWriter
}

// NewCSVImporter creates a new CSVImporter
func NewCSVImporter(writer ReferenceWriter) *CSVImporter {
	return &CSVImporter{writer: writer}
}

// ImportCurrencies reads code, name, rate and an optional active column
func (i *CSVImporter) ImportCurrencies(ctx context.Context, r io.Reader) (*ImportResult, error) {
	return i.importRows(ctx, r, func(header []string) (rowFunc, error) {
		codeIdx := findColumnIndex(header, []string{"Code", "Currency Code", "ISO"})
		nameIdx := findColumnIndex(header, []string{"Name", "Currency", "Currency Name"})
		rateIdx := findColumnIndex(header, []string{"Rate", "Exchange Rate"})
		activeIdx := findColumnIndex(header, []string{"Active", "Enabled"})
		if codeIdx == -1 || nameIdx == -1 || rateIdx == -1 {
			return nil, errors.New("code, name and rate columns are required")
		}

		return func(row []string) error {
			rate, err := decimal.NewFromString(column(row, rateIdx))
			if err != nil {
				return fmt.Errorf("invalid rate %q", column(row, rateIdx))
			}
			req := &models.CurrencyRequest{Name: column(row, nameIdx), Rate: rate, Active: parseActive(row, activeIdx)}
			_, err = i.writer.SaveCurrency(ctx, column(row, codeIdx), req)
			return err
		}, nil
	})
}

// ImportCountries reads code, name and optional flag and active columns
func (i *CSVImporter) ImportCountries(ctx context.Context, r io.Reader) (*ImportResult, error) {
	return i.importRows(ctx, r, func(header []string) (rowFunc, error) {
		codeIdx := findColumnIndex(header, []string{"Code", "Country Code", "ISO"})
		nameIdx := findColumnIndex(header, []string{"Name", "Country", "Country Name"})
		flagIdx := findColumnIndex(header, []string{"Flag"})
		activeIdx := findColumnIndex(header, []string{"Active", "Enabled"})
		if codeIdx == -1 || nameIdx == -1 {
			return nil, errors.New("code and name columns are required")
		}

		return func(row []string) error {
			req := &models.CountryRequest{Name: column(row, nameIdx), Flag: column(row, flagIdx), Active: parseActive(row, activeIdx)}
			_, err := i.writer.SaveCountry(ctx, column(row, codeIdx), req)
			return err
		}, nil
	})
}

type rowFunc func(row []string) error

func (i *CSVImporter) importRows(ctx context.Context, r io.Reader, prepare func(header []string) (rowFunc, error)) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	process, err := prepare(header)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: []string{}}
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		result.TotalRows++
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", result.TotalRows, err))
			continue
		}
		if err := process(row); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", result.TotalRows, err))
			continue
		}
		result.Saved++
	}
	return result, nil
}

// findColumnIndex finds the index of a column by possible names
func findColumnIndex(header []string, possibleNames []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, name := range possibleNames {
			if strings.ToLower(name) == h {
				return i
			}
		}
	}
	return -1
}

func column(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseActive returns nil when the column is absent or blank
func parseActive(row []string, idx int) *bool {
	v := strings.ToLower(column(row, idx))
	if v == "" {
		return nil
	}
	active := v == "yes" || v == "true" || v == "1" || v == "y"
	return &active
}
