package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories/documents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentService(store repositories.DocumentStore) *ContentServiceImpl {
	return NewContentService(
		documents.NewContentRepository(store),
		documents.NewServiceRepository(store),
		documents.NewAnnouncementRepository(store),
	)
}

func TestContentService_DefaultsWhenNothingSaved(t *testing.T) {
	svc := newContentService(newMockStore())

	home := svc.HomePage(context.Background())
	assert.Equal(t, models.DefaultHomepageContent(), home.Content)
	assert.Empty(t, home.Announcements)
	assert.Equal(t, models.DefaultFooterContent(), home.Footer)
}

func TestContentService_LoadErrorsFallBackToDefaults(t *testing.T) {
	store := newMockStore()
	store.GetFunc = func(ctx context.Context, collection, id string) (*repositories.Document, error) {
		return nil, errors.New("permission denied")
	}
	store.ListFunc = func(ctx context.Context, collection string) ([]*repositories.Document, error) {
		return nil, errors.New("network failure")
	}
	svc := newContentService(store)

	about := svc.AboutPage(context.Background())
	assert.Equal(t, models.DefaultAboutContent(), about.About)
	services := svc.ServicesPage(context.Background())
	assert.Equal(t, []models.Service{}, services.Services)
	assert.Equal(t, models.DefaultFooterContent(), services.Footer)
}

func TestContentService_EmptyArraysRoundTrip(t *testing.T) {
	svc := newContentService(newMockStore())
	ctx := context.Background()

	about := models.DefaultAboutContent()
	about.HeroTitle = "X"
	about.Stats = []models.Stat{}
	require.NoError(t, svc.SaveAbout(ctx, &about))

	got := svc.GetAbout(ctx)
	assert.Equal(t, "X", got.HeroTitle)
	assert.NotNil(t, got.Stats)
	assert.Empty(t, got.Stats)

	home := models.DefaultHomepageContent()
	home.HeroTitle = "Custom"
	home.Features = []models.Feature{{Title: "Fast"}}
	require.NoError(t, svc.SaveHomepage(ctx, &home))

	saved := svc.GetHomepage(ctx)
	assert.Equal(t, "Custom", saved.HeroTitle)
	require.Len(t, saved.Features, 1)
	assert.NotEmpty(t, saved.Features[0].ID)
}

func TestContentService_ServicesCRUD(t *testing.T) {
	svc := newContentService(newMockStore())
	ctx := context.Background()

	err := svc.CreateService(ctx, &models.Service{Name: "Remittance"})
	assert.ErrorIs(t, err, ErrValidation)

	visible := models.DefaultService()
	visible.Name = "Remittance"
	visible.Description = "Send money home"
	visible.Icon = ""
	require.NoError(t, svc.CreateService(ctx, &visible))
	assert.NotEmpty(t, visible.ID)
	assert.Equal(t, models.DefaultServiceIcon, visible.Icon)

	hidden := models.DefaultService()
	hidden.Name = "FX"
	hidden.Description = "Currency exchange"
	hidden.Active = false
	require.NoError(t, svc.CreateService(ctx, &hidden))

	page := svc.ServicesPage(ctx)
	require.Len(t, page.Services, 1)
	assert.Equal(t, "Remittance", page.Services[0].Name)
	assert.Len(t, svc.AdminContent(ctx).Services, 2)

	hidden.Active = true
	require.NoError(t, svc.UpdateService(ctx, &hidden))
	assert.Len(t, svc.ServicesPage(ctx).Services, 2)

	require.NoError(t, svc.DeleteService(ctx, visible.ID))
	assert.Len(t, svc.ServicesPage(ctx).Services, 1)
}

func TestContentService_Announcements(t *testing.T) {
	svc := newContentService(newMockStore())
	ctx := context.Background()

	err := svc.CreateAnnouncement(ctx, &models.Announcement{Title: "Hello"})
	assert.ErrorIs(t, err, ErrValidation)

	a := models.DefaultAnnouncement()
	a.Title = "New corridor"
	a.Content = "Kenya to UK now live"
	require.NoError(t, svc.CreateAnnouncement(ctx, &a))

	home := svc.HomePage(ctx)
	require.Len(t, home.Announcements, 1)
	assert.Equal(t, "New corridor", home.Announcements[0].Title)

	a.Active = false
	require.NoError(t, svc.UpdateAnnouncement(ctx, &a))
	assert.Empty(t, svc.HomePage(ctx).Announcements)
	assert.Len(t, svc.AdminContent(ctx).Announcements, 1)

	require.NoError(t, svc.DeleteAnnouncement(ctx, a.ID))
	assert.Empty(t, svc.AdminContent(ctx).Announcements)
}
