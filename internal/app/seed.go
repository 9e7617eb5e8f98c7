package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/services"
	"gopkg.in/yaml.v3"
)

// Seed is the content bundle loaded by seed-content. Keys use the JSON field names;
// services and announcements start from their defaults.
type Seed struct {
	Homepage      *models.HomepageContent
	About         *models.AboutContent
	Footer        *models.FooterContent
	Services      []models.Service
	Announcements []models.Announcement
}

// SeedResult counts what was written
type SeedResult struct {
	Pages         int
	Services      int
	Announcements int
}

// LoadSeed parses a YAML seed bundle
func LoadSeed(r io.Reader) (*Seed, error) {
	var raw interface{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	// yaml.v3 yields map[string]interface{} for string keys, which encoding/json accepts
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert seed: %w", err)
	}
	var bundle struct {
		Homepage      *models.HomepageContent `json:"homepage"`
		About         *models.AboutContent    `json:"about"`
		Footer        *models.FooterContent   `json:"footer"`
		Services      []json.RawMessage       `json:"services"`
		Announcements []json.RawMessage       `json:"announcements"`
	}
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	seed := &Seed{Homepage: bundle.Homepage, About: bundle.About, Footer: bundle.Footer}
	for i, msg := range bundle.Services {
		service := models.DefaultService()
		if err := json.Unmarshal(msg, &service); err != nil {
			return nil, fmt.Errorf("service %d: %w", i, err)
		}
		seed.Services = append(seed.Services, service)
	}
	for i, msg := range bundle.Announcements {
		announcement := models.DefaultAnnouncement()
		if err := json.Unmarshal(msg, &announcement); err != nil {
			return nil, fmt.Errorf("announcement %d: %w", i, err)
		}
		seed.Announcements = append(seed.Announcements, announcement)
	}
	return seed, nil
}

// ApplySeed writes the bundle through the content service so the editor validation applies
func ApplySeed(ctx context.Context, content services.ContentService, seed *Seed) (*SeedResult, error) {
	result := &SeedResult{}
	if seed.Homepage != nil {
		if err := content.SaveHomepage(ctx, seed.Homepage); err != nil {
			return result, fmt.Errorf("homepage: %w", err)
		}
		result.Pages++
	}
	if seed.About != nil {
		if err := content.SaveAbout(ctx, seed.About); err != nil {
			return result, fmt.Errorf("about: %w", err)
		}
		result.Pages++
	}
	if seed.Footer != nil {
		if err := content.SaveFooter(ctx, seed.Footer); err != nil {
			return result, fmt.Errorf("footer: %w", err)
		}
		result.Pages++
	}
	for i := range seed.Services {
		if err := content.CreateService(ctx, &seed.Services[i]); err != nil {
			return result, fmt.Errorf("service %q: %w", seed.Services[i].Name, err)
		}
		result.Services++
	}
	for i := range seed.Announcements {
		if err := content.CreateAnnouncement(ctx, &seed.Announcements[i]); err != nil {
			return result, fmt.Errorf("announcement %q: %w", seed.Announcements[i].Title, err)
		}
		result.Announcements++
	}
	log.Printf("[INFO] Seed applied: %d pages, %d services, %d announcements",
		result.Pages, result.Services, result.Announcements)
	return result, nil
}
