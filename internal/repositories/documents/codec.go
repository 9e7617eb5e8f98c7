// Package documents implements the typed repositories on top of a DocumentStore.
// Documents are decoded through BSON into structs pre-filled with defaults, so an
// absent field keeps its default while a present empty array stays empty.
package documents

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
)

func encode(v interface{}) (repositories.Fields, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return repositories.Fields(m), nil
}

// decode unmarshals doc into out, which should already hold the defaults.
func decode(doc *repositories.Document, out interface{}) error {
	data, err := bson.Marshal(bson.M(doc.Fields))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", repositories.ErrMalformedDocument, doc.ID, err)
	}
	if err := bson.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", repositories.ErrMalformedDocument, doc.ID, err)
	}
	return nil
}

// getSingleton loads collection/id into out. An absent document leaves out untouched.
func getSingleton(ctx context.Context, store repositories.DocumentStore, collection, id string, out interface{}) error {
	doc, err := store.Get(ctx, collection, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil
		}
		return err
	}
	return decode(doc, out)
}

func exists(ctx context.Context, store repositories.DocumentStore, collection, id string) (bool, error) {
	_, err := store.Get(ctx, collection, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func skipMalformed(collection string, err error) {
	log.Printf("[WARN] %s: skipping document: %v", collection, err)
}

func normaliseHomepage(c *models.HomepageContent) {
	if c.Features == nil {
		c.Features = []models.Feature{}
	}
	if c.Regions == nil {
		c.Regions = []models.Region{}
	}
}

func normaliseAbout(c *models.AboutContent) {
	if c.Stats == nil {
		c.Stats = []models.Stat{}
	}
	if c.Story == nil {
		c.Story = []string{}
	}
	if c.Values == nil {
		c.Values = []models.Value{}
	}
}

func normaliseFooter(c *models.FooterContent) {
	if c.QuickLinks == nil {
		c.QuickLinks = []models.QuickLink{}
	}
	if c.Services == nil {
		c.Services = []string{}
	}
}

func normaliseService(s *models.Service) {
	if s.Features == nil {
		s.Features = []models.Feature{}
	}
}

func normaliseUser(u *models.User) {
	if u.Directors == nil {
		u.Directors = []models.Director{}
	}
	if u.Transactions == nil {
		u.Transactions = []models.Transaction{}
	}
}
