package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/ArowuTest/oripay-exchange-backend/internal/identity"
	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"github.com/ArowuTest/oripay-exchange-backend/internal/utils"
	"golang.org/x/sync/errgroup"
)

// Onboarding notifications.
var (
	RegistrationSucceeded = models.Notification{
		Title:       "Registration Successful",
		Description: "Please complete your KYC process.",
		Variant:     models.VariantDefault,
	}
	KYCSubmitted = models.Notification{
		Title:       "KYC Submitted Successfully",
		Description: "Your verification is under review. We'll notify you soon!",
		Variant:     models.VariantDefault,
	}
)

// Compile-time check to ensure OnboardingServiceImpl implements OnboardingService
var _ OnboardingService = (*OnboardingServiceImpl)(nil)

// OnboardingServiceImpl implements company registration followed by KYC submission.
// The identity is created before the profile record is written and is never rolled
// back; ReconciliationServiceImpl finds identities left without a profile.
type OnboardingServiceImpl struct {
	userRepo     repositories.UserRepository
	settingsRepo repositories.SystemSettingsRepository
}

// NewOnboardingService creates a new OnboardingServiceImpl
func NewOnboardingService(userRepo repositories.UserRepository, settingsRepo repositories.SystemSettingsRepository) *OnboardingServiceImpl {
	return &OnboardingServiceImpl{userRepo: userRepo, settingsRepo: settingsRepo}
}

// Register creates the identity, signs it in on client and writes the company profile.
// Validation failures are returned before anything is sent to the identity provider.
func (s *OnboardingServiceImpl) Register(ctx context.Context, client *identity.Client, req *models.RegistrationRequest) (*models.User, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}
	settings := s.settings(ctx)
	if settings.MaintenanceMode {
		return nil, ErrMaintenance
	}

	created, err := client.CreateIdentity(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	displayName := strings.TrimSpace(req.Directors[0].FirstName)
	if err := client.UpdateDisplayName(ctx, displayName); err != nil {
		log.Printf("[ERROR] Onboarding: identity %s created but display name not set: %v", created.UID, err)
		return nil, fmt.Errorf("%w: %w", ErrProfileNotWritten, err)
	}

	user := models.DefaultUser()
	user.UID = created.UID
	user.BusinessType = strings.TrimSpace(req.BusinessType)
	user.CompanyName = strings.TrimSpace(req.CompanyName)
	user.Email = created.Email
	user.Phone = strings.TrimSpace(req.Phone)
	user.COINumber = strings.TrimSpace(req.COINumber)
	user.DisplayName = displayName
	user.KYCCompleted = false
	user.KYCStatus = models.KYCStatusPending
	user.Directors = make([]models.Director, len(req.Directors))

	jobs := []encodeJob{
		{upload: req.COIFile, dst: &user.Files.COIBase64},
		{upload: req.CR12File, dst: &user.Files.CR12Base64},
		{upload: req.CompanyKRAFile, dst: &user.Files.CompanyKRABase64},
	}
	for i, d := range req.Directors {
		user.Directors[i] = models.Director{
			FirstName: strings.TrimSpace(d.FirstName),
			LastName:  strings.TrimSpace(d.LastName),
		}
		jobs = append(jobs,
			encodeJob{upload: d.IDFile, dst: &user.Directors[i].IDFileBase64},
			encodeJob{upload: d.KRAFile, dst: &user.Directors[i].KRAFileBase64},
		)
	}
	if err := encodeUploads(ctx, jobs); err != nil {
		log.Printf("[ERROR] Onboarding: identity %s created but documents not encoded: %v", created.UID, err)
		return nil, fmt.Errorf("%w: %w", ErrProfileNotWritten, err)
	}

	if err := s.userRepo.Create(ctx, &user); err != nil {
		log.Printf("[ERROR] Onboarding: identity %s has no profile record: %v", created.UID, err)
		return nil, fmt.Errorf("%w: %w", ErrProfileNotWritten, err)
	}
	log.Printf("[INFO] Onboarding: registered %s (%s)", created.UID, user.CompanyName)
	return &user, nil
}

// SubmitKYC merges the verification details and both documents into the profile of uid
func (s *OnboardingServiceImpl) SubmitKYC(ctx context.Context, uid string, req *models.KYCRequest) (*models.KYCSubmission, error) {
	if err := validateKYC(req); err != nil {
		return nil, err
	}
	settings := s.settings(ctx)
	if settings.MaintenanceMode {
		return nil, ErrMaintenance
	}

	submission := &models.KYCSubmission{
		IDNumber:    strings.TrimSpace(req.IDNumber),
		KRAPin:      strings.TrimSpace(req.KRAPin),
		DateOfBirth: strings.TrimSpace(req.DateOfBirth),
		Address:     strings.TrimSpace(req.Address),
		City:        strings.TrimSpace(req.City),
		Country:     strings.TrimSpace(req.Country),
		Status:      models.KYCStatusPending,
	}
	if settings.AutoKYCApproval {
		submission.Status = models.KYCStatusVerified
	}

	err := encodeUploads(ctx, []encodeJob{
		{upload: req.IDDocument, dst: &submission.IDDocumentBase64},
		{upload: req.Selfie, dst: &submission.SelfieBase64},
	})
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.MergeKYC(ctx, uid, submission); err != nil {
		return nil, fmt.Errorf("failed to save KYC submission: %w", err)
	}
	log.Printf("[INFO] Onboarding: KYC submitted for %s (status %s)", uid, submission.Status)
	return submission, nil
}

// settings returns the platform settings, defaults when they cannot be read
func (s *OnboardingServiceImpl) settings(ctx context.Context) *models.SystemSettings {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		log.Printf("[WARN] Onboarding: using default settings: %v", err)
		d := models.DefaultSystemSettings()
		return &d
	}
	return settings
}

type encodeJob struct {
	upload *models.Upload
	dst    *string
}

// encodeUploads converts every upload to a data URL concurrently
func encodeUploads(ctx context.Context, jobs []encodeJob) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		job := job
		if !job.upload.Present() {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			*job.dst = utils.DataURL(job.upload.Content)
			return nil
		})
	}
	return g.Wait()
}

func validateRegistration(req *models.RegistrationRequest) error {
	if req.Password != req.ConfirmPassword {
		return invalid("Password Mismatch", "Passwords do not match.")
	}
	if blank(req.BusinessType, req.CompanyName, req.Email, req.Phone, req.COINumber) || req.Password == "" {
		return invalid("Missing Information", "Please fill in all required fields.")
	}
	if !req.COIFile.Present() || !req.CR12File.Present() || !req.CompanyKRAFile.Present() {
		return invalid("Missing Documents", "Please upload the certificate of incorporation, CR12 and company KRA PIN.")
	}
	if len(req.Directors) == 0 {
		return invalid("Missing Director Details", "Please add at least one director.")
	}
	for _, d := range req.Directors {
		if blank(d.FirstName, d.LastName) || !d.IDFile.Present() || !d.KRAFile.Present() {
			return invalid("Missing Director Details", "Each director needs a first name, last name, ID document and KRA PIN.")
		}
	}
	return nil
}

func validateKYC(req *models.KYCRequest) error {
	if !req.IDDocument.Present() || !req.Selfie.Present() {
		return invalid("Missing Documents", "Please upload both ID document and selfie.")
	}
	if blank(req.IDNumber, req.KRAPin, req.DateOfBirth, req.Address, req.City, req.Country) {
		return invalid("Missing Information", "Please fill in all required fields.")
	}
	return nil
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
