package services

import (
	"context"
	"log"
	"strings"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"github.com/google/uuid"
)

// Compile-time check to ensure ContentServiceImpl implements ContentService
var _ ContentService = (*ContentServiceImpl)(nil)

// ContentServiceImpl implements ContentService
type ContentServiceImpl struct {
	contentRepo      repositories.ContentRepository
	serviceRepo      repositories.ServiceRepository
	announcementRepo repositories.AnnouncementRepository
}

// NewContentService creates a new ContentServiceImpl
func NewContentService(
	contentRepo repositories.ContentRepository,
	serviceRepo repositories.ServiceRepository,
	announcementRepo repositories.AnnouncementRepository,
) *ContentServiceImpl {
	return &ContentServiceImpl{
		contentRepo:      contentRepo,
		serviceRepo:      serviceRepo,
		announcementRepo: announcementRepo,
	}
}

// HomePage returns the homepage with its active announcements and the footer
func (s *ContentServiceImpl) HomePage(ctx context.Context) *models.HomePageView {
	announcements := s.announcements(ctx)
	active := make([]models.Announcement, 0, len(announcements))
	for _, a := range announcements {
		if a.Active {
			active = append(active, a)
		}
	}
	return &models.HomePageView{
		Content:       *s.GetHomepage(ctx),
		Announcements: active,
		Footer:        *s.GetFooter(ctx),
	}
}

// ServicesPage returns the active services and the footer
func (s *ContentServiceImpl) ServicesPage(ctx context.Context) *models.ServicesPageView {
	services := s.services(ctx)
	active := make([]models.Service, 0, len(services))
	for _, svc := range services {
		if svc.Active {
			active = append(active, svc)
		}
	}
	return &models.ServicesPageView{Services: active, Footer: *s.GetFooter(ctx)}
}

// AboutPage returns the about content and the footer
func (s *ContentServiceImpl) AboutPage(ctx context.Context) *models.AboutPageView {
	return &models.AboutPageView{About: *s.GetAbout(ctx), Footer: *s.GetFooter(ctx)}
}

// AdminContent returns everything the content editor shows
func (s *ContentServiceImpl) AdminContent(ctx context.Context) *models.AdminContentView {
	return &models.AdminContentView{
		Services:      s.services(ctx),
		Announcements: s.announcements(ctx),
		Homepage:      *s.GetHomepage(ctx),
	}
}

// GetHomepage returns the homepage content, defaults on any load failure
func (s *ContentServiceImpl) GetHomepage(ctx context.Context) *models.HomepageContent {
	content, err := s.contentRepo.GetHomepage(ctx)
	if err != nil {
		log.Printf("[ERROR] Failed to load homepage content: %v", err)
		d := models.DefaultHomepageContent()
		return &d
	}
	return content
}

// GetAbout returns the about content, defaults on any load failure
func (s *ContentServiceImpl) GetAbout(ctx context.Context) *models.AboutContent {
	content, err := s.contentRepo.GetAbout(ctx)
	if err != nil {
		log.Printf("[ERROR] Failed to load about content: %v", err)
		d := models.DefaultAboutContent()
		return &d
	}
	return content
}

// GetFooter returns the footer content, defaults on any load failure
func (s *ContentServiceImpl) GetFooter(ctx context.Context) *models.FooterContent {
	content, err := s.contentRepo.GetFooter(ctx)
	if err != nil {
		log.Printf("[ERROR] Failed to load footer content: %v", err)
		d := models.DefaultFooterContent()
		return &d
	}
	return content
}

// SaveHomepage overwrites the homepage. Features and regions without an id get one.
func (s *ContentServiceImpl) SaveHomepage(ctx context.Context, content *models.HomepageContent) error {
	assignFeatureIDs(content.Features)
	for i := range content.Regions {
		if content.Regions[i].ID == "" {
			content.Regions[i].ID = uuid.NewString()
		}
	}
	return s.contentRepo.SaveHomepage(ctx, content)
}

// SaveAbout overwrites the about page
func (s *ContentServiceImpl) SaveAbout(ctx context.Context, content *models.AboutContent) error {
	return s.contentRepo.SaveAbout(ctx, content)
}

// SaveFooter overwrites the footer
func (s *ContentServiceImpl) SaveFooter(ctx context.Context, content *models.FooterContent) error {
	return s.contentRepo.SaveFooter(ctx, content)
}

// CreateService validates and stores a new service entry
func (s *ContentServiceImpl) CreateService(ctx context.Context, service *models.Service) error {
	if err := prepareService(service); err != nil {
		return err
	}
	return s.serviceRepo.Create(ctx, service)
}

// UpdateService validates and overwrites an existing service entry
func (s *ContentServiceImpl) UpdateService(ctx context.Context, service *models.Service) error {
	if err := prepareService(service); err != nil {
		return err
	}
	return s.serviceRepo.Update(ctx, service)
}

// DeleteService removes a service entry
func (s *ContentServiceImpl) DeleteService(ctx context.Context, id string) error {
	return s.serviceRepo.Delete(ctx, id)
}

// CreateAnnouncement validates and stores a new announcement
func (s *ContentServiceImpl) CreateAnnouncement(ctx context.Context, announcement *models.Announcement) error {
	if err := validateAnnouncement(announcement); err != nil {
		return err
	}
	return s.announcementRepo.Create(ctx, announcement)
}

// UpdateAnnouncement validates and overwrites an existing announcement
func (s *ContentServiceImpl) UpdateAnnouncement(ctx context.Context, announcement *models.Announcement) error {
	if err := validateAnnouncement(announcement); err != nil {
		return err
	}
	return s.announcementRepo.Update(ctx, announcement)
}

// DeleteAnnouncement removes an announcement
func (s *ContentServiceImpl) DeleteAnnouncement(ctx context.Context, id string) error {
	return s.announcementRepo.Delete(ctx, id)
}

func (s *ContentServiceImpl) services(ctx context.Context) []models.Service {
	list, err := s.serviceRepo.FindAll(ctx)
	if err != nil {
		log.Printf("[ERROR] Failed to load services: %v", err)
		return []models.Service{}
	}
	out := make([]models.Service, 0, len(list))
	for _, svc := range list {
		out = append(out, *svc)
	}
	return out
}

func (s *ContentServiceImpl) announcements(ctx context.Context) []models.Announcement {
	list, err := s.announcementRepo.FindAll(ctx)
	if err != nil {
		log.Printf("[ERROR] Failed to load announcements: %v", err)
		return []models.Announcement{}
	}
	out := make([]models.Announcement, 0, len(list))
	for _, a := range list {
		out = append(out, *a)
	}
	return out
}

func prepareService(service *models.Service) error {
	service.Name = strings.TrimSpace(service.Name)
	service.Description = strings.TrimSpace(service.Description)
	if service.Name == "" || service.Description == "" {
		return invalid("Missing Information", "Service name and description are required.")
	}
	if service.Icon == "" {
		service.Icon = models.DefaultServiceIcon
	}
	assignFeatureIDs(service.Features)
	return nil
}

func validateAnnouncement(announcement *models.Announcement) error {
	announcement.Title = strings.TrimSpace(announcement.Title)
	if announcement.Title == "" || strings.TrimSpace(announcement.Content) == "" {
		return invalid("Missing Information", "Announcement title and content are required.")
	}
	return nil
}

func assignFeatureIDs(features []models.Feature) {
	for i := range features {
		if features[i].ID == "" {
			features[i].ID = uuid.NewString()
		}
	}
}
