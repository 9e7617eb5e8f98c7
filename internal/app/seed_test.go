package app

import (
	"context"
	"strings"
	"testing"

	"github.com/ArowuTest/oripay-exchange-backend/internal/config"
	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
homepage:
  heroTitle: Send money across Africa
  heroSubtitle: Fast settlement for businesses
  features:
    - title: Low fees
      description: Transparent pricing
  regions:
    - name: Kenya
      flag: "🇰🇪"
footer:
  companyName: Oripay Exchange
  contact:
    email: hello@oripay.test
services:
  - name: Business Payments
    description: Pay suppliers abroad
  - name: Payroll
    description: Pay staff in any currency
    active: false
announcements:
  - title: Now live in Uganda
    content: Send to UGX today.
`

func memoryConfig() *config.Config {
	cfg := &config.Config{}
	cfg.MongoDB.URI = config.MemoryStoreURI
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600
	return cfg
}

func TestLoadSeed(t *testing.T) {
	seed, err := LoadSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)

	require.NotNil(t, seed.Homepage)
	assert.Equal(t, "Send money across Africa", seed.Homepage.HeroTitle)
	require.Len(t, seed.Homepage.Features, 1)
	assert.Equal(t, "🇰🇪", seed.Homepage.Regions[0].Flag)
	assert.Nil(t, seed.About)

	require.Len(t, seed.Services, 2)
	assert.True(t, seed.Services[0].Active)
	assert.Equal(t, models.DefaultServiceIcon, seed.Services[0].Icon)
	assert.False(t, seed.Services[1].Active)
	require.Len(t, seed.Announcements, 1)
	assert.True(t, seed.Announcements[0].Active)
}

func TestLoadSeed_InvalidYAML(t *testing.T) {
	_, err := LoadSeed(strings.NewReader("services: [unterminated"))
	assert.Error(t, err)
}

func TestApplySeed(t *testing.T) {
	ctx := context.Background()
	a, err := Open(ctx, memoryConfig())
	require.NoError(t, err)
	defer a.Close(ctx)

	seed, err := LoadSeed(strings.NewReader(seedYAML))
	require.NoError(t, err)

	content := services.NewContentService(a.Repos.Content, a.Repos.Services, a.Repos.Announcements)
	result, err := ApplySeed(ctx, content, seed)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Pages)
	assert.Equal(t, 2, result.Services)
	assert.Equal(t, 1, result.Announcements)

	home := content.HomePage(ctx)
	assert.Equal(t, "Send money across Africa", home.Content.HeroTitle)
	assert.NotEmpty(t, home.Content.Features[0].ID)
	assert.Len(t, home.Announcements, 1)
	assert.Equal(t, "Oripay Exchange", home.Footer.CompanyName)

	page := content.ServicesPage(ctx)
	require.Len(t, page.Services, 1)
	assert.Equal(t, "Business Payments", page.Services[0].Name)
}

func TestApplySeed_RejectsIncompleteService(t *testing.T) {
	ctx := context.Background()
	a, err := Open(ctx, memoryConfig())
	require.NoError(t, err)
	defer a.Close(ctx)

	seed := &Seed{Services: []models.Service{{Name: "No description"}}}
	content := services.NewContentService(a.Repos.Content, a.Repos.Services, a.Repos.Announcements)
	_, err = ApplySeed(ctx, content, seed)
	assert.ErrorIs(t, err, services.ErrValidation)
}
