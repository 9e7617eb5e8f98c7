package documents

import (
	"context"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
)

// Compile-time check to ensure ContentRepository implements the interface
var _ repositories.ContentRepository = (*ContentRepository)(nil)

// ContentRepository reads and writes the homepage, about and footer singletons
type ContentRepository struct {
	store repositories.DocumentStore
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(store repositories.DocumentStore) *ContentRepository {
	return &ContentRepository{store: store}
}

// GetHomepage returns the homepage content, defaults when never saved
func (r *ContentRepository) GetHomepage(ctx context.Context) (*models.HomepageContent, error) {
	content := models.DefaultHomepageContent()
	if err := getSingleton(ctx, r.store, models.CollectionHomepage, models.ContentDocumentID, &content); err != nil {
		return nil, err
	}
	normaliseHomepage(&content)
	return &content, nil
}

// SaveHomepage overwrites the homepage document
func (r *ContentRepository) SaveHomepage(ctx context.Context, content *models.HomepageContent) error {
	normaliseHomepage(content)
	return r.save(ctx, models.CollectionHomepage, content)
}

// GetAbout returns the about page content
func (r *ContentRepository) GetAbout(ctx context.Context) (*models.AboutContent, error) {
	content := models.DefaultAboutContent()
	if err := getSingleton(ctx, r.store, models.CollectionAbout, models.ContentDocumentID, &content); err != nil {
		return nil, err
	}
	normaliseAbout(&content)
	return &content, nil
}

// SaveAbout overwrites the about document
func (r *ContentRepository) SaveAbout(ctx context.Context, content *models.AboutContent) error {
	normaliseAbout(content)
	return r.save(ctx, models.CollectionAbout, content)
}

// GetFooter returns the footer content
func (r *ContentRepository) GetFooter(ctx context.Context) (*models.FooterContent, error) {
	content := models.DefaultFooterContent()
	if err := getSingleton(ctx, r.store, models.CollectionFooter, models.ContentDocumentID, &content); err != nil {
		return nil, err
	}
	normaliseFooter(&content)
	return &content, nil
}

// SaveFooter overwrites the footer document
func (r *ContentRepository) SaveFooter(ctx context.Context, content *models.FooterContent) error {
	normaliseFooter(content)
	return r.save(ctx, models.CollectionFooter, content)
}

func (r *ContentRepository) save(ctx context.Context, collection string, content interface{}) error {
	fields, err := encode(content)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, collection, models.ContentDocumentID, fields, false)
}
