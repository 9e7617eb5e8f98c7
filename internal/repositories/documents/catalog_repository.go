package documents

import (
	"context"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
)

const (
	collectionServices      = "services"
	collectionAnnouncements = "announcements"
)

// Compile-time checks to ensure the catalog repositories implement the interfaces
var (
	_ repositories.ServiceRepository      = (*ServiceRepository)(nil)
	_ repositories.AnnouncementRepository = (*AnnouncementRepository)(nil)
)

// ServiceRepository handles the services collection
type ServiceRepository struct {
	store repositories.DocumentStore
}

// NewServiceRepository creates a new ServiceRepository
func NewServiceRepository(store repositories.DocumentStore) *ServiceRepository {
	return &ServiceRepository{store: store}
}

// FindAll returns every service entry. Malformed entries are skipped.
func (r *ServiceRepository) FindAll(ctx context.Context) ([]*models.Service, error) {
	docs, err := r.store.List(ctx, collectionServices)
	if err != nil {
		return nil, err
	}
	services := make([]*models.Service, 0, len(docs))
	for _, doc := range docs {
		service := models.DefaultService()
		if err := decode(doc, &service); err != nil {
			skipMalformed(collectionServices, err)
			continue
		}
		service.ID = doc.ID
		normaliseService(&service)
		services = append(services, &service)
	}
	return services, nil
}

// Create adds a service and sets its generated ID
func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	normaliseService(service)
	fields, err := encode(service)
	if err != nil {
		return err
	}
	id, err := r.store.Add(ctx, collectionServices, fields)
	if err != nil {
		return err
	}
	service.ID = id
	return nil
}

// Update overwrites the fields of an existing service
func (r *ServiceRepository) Update(ctx context.Context, service *models.Service) error {
	normaliseService(service)
	fields, err := encode(service)
	if err != nil {
		return err
	}
	return r.store.Update(ctx, collectionServices, service.ID, fields)
}

// Delete removes a service
func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, collectionServices, id)
}

// AnnouncementRepository handles the announcements collection
type AnnouncementRepository struct {
	store repositories.DocumentStore
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(store repositories.DocumentStore) *AnnouncementRepository {
	return &AnnouncementRepository{store: store}
}

// FindAll returns every announcement. Malformed entries are skipped.
func (r *AnnouncementRepository) FindAll(ctx context.Context) ([]*models.Announcement, error) {
	docs, err := r.store.List(ctx, collectionAnnouncements)
	if err != nil {
		return nil, err
	}
	announcements := make([]*models.Announcement, 0, len(docs))
	for _, doc := range docs {
		announcement := models.DefaultAnnouncement()
		if err := decode(doc, &announcement); err != nil {
			skipMalformed(collectionAnnouncements, err)
			continue
		}
		announcement.ID = doc.ID
		announcements = append(announcements, &announcement)
	}
	return announcements, nil
}

// Create adds an announcement and sets its generated ID
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	fields, err := encode(announcement)
	if err != nil {
		return err
	}
	id, err := r.store.Add(ctx, collectionAnnouncements, fields)
	if err != nil {
		return err
	}
	announcement.ID = id
	return nil
}

// Update overwrites the fields of an existing announcement
func (r *AnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	fields, err := encode(announcement)
	if err != nil {
		return err
	}
	return r.store.Update(ctx, collectionAnnouncements, announcement.ID, fields)
}

// Delete removes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, collectionAnnouncements, id)
}
