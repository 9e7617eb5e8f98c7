package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ArowuTest/oripay-exchange-backend/internal/identity"
	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"github.com/ArowuTest/oripay-exchange-backend/internal/utils"
	"golang.org/x/sync/errgroup"
)

// ErrUserNotFound is returned when no profile record exists for a uid
var ErrUserNotFound = errors.New("user not found")

// Compile-time check to ensure UserServiceImpl implements UserService
var _ UserService = (*UserServiceImpl)(nil)

// UserServiceImpl handles customer profiles and their administration
type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	adminRepo   repositories.AdminRepository
	countryRepo repositories.CountryRepository
	provider    identity.Provider
}

// NewUserService creates a new UserServiceImpl
func NewUserService(
	userRepo repositories.UserRepository,
	adminRepo repositories.AdminRepository,
	countryRepo repositories.CountryRepository,
	provider identity.Provider,
) *UserServiceImpl {
	return &UserServiceImpl{
		userRepo:    userRepo,
		adminRepo:   adminRepo,
		countryRepo: countryRepo,
		provider:    provider,
	}
}

// ListUsers returns the user list, optionally filtered by name or email, and the pending KYC queue.
// When the profiles cannot be read both lists are empty and the view carries an error notification.
func (s *UserServiceImpl) ListUsers(ctx context.Context, search string) *models.AdminUsersView {
	view := &models.AdminUsersView{Users: []models.UserSummary{}, Pending: []models.UserSummary{}}
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		log.Printf("[ERROR] Failed to load users: %v", err)
		view.Notification = loadFailed("users")
		return view
	}
	search = strings.ToLower(strings.TrimSpace(search))

	for _, u := range users {
		summary := summarise(u)
		if summary.KYCStatus == models.KYCStatusPending {
			view.Pending = append(view.Pending, summary)
		}
		if search == "" ||
			strings.Contains(strings.ToLower(summary.Name), search) ||
			strings.Contains(strings.ToLower(summary.Email), search) {
			view.Users = append(view.Users, summary)
		}
	}
	return view
}

// GetUser retrieves a profile by uid
func (s *UserServiceImpl) GetUser(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, uid)
	if errors.Is(err, repositories.ErrDocumentNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// ApproveKYC overwrites kycStatus with verified
func (s *UserServiceImpl) ApproveKYC(ctx context.Context, uid string) error {
	return s.setKYCStatus(ctx, uid, models.KYCStatusVerified)
}

// RejectKYC overwrites kycStatus with rejected
func (s *UserServiceImpl) RejectKYC(ctx context.Context, uid string) error {
	return s.setKYCStatus(ctx, uid, models.KYCStatusRejected)
}

// SuspendUser marks the account suspended
func (s *UserServiceImpl) SuspendUser(ctx context.Context, uid string) error {
	return s.setStatus(ctx, uid, models.StatusSuspended)
}

// ActivateUser marks the account active
func (s *UserServiceImpl) ActivateUser(ctx context.Context, uid string) error {
	return s.setStatus(ctx, uid, models.StatusActive)
}

// SendPasswordReset emails a reset link to the profile's email address
func (s *UserServiceImpl) SendPasswordReset(ctx context.Context, uid string) error {
	user, err := s.GetUser(ctx, uid)
	if err != nil {
		return err
	}
	if user.Email == "" {
		return invalid("Missing Email", "This user has no email address on file.")
	}
	return s.provider.SendPasswordReset(ctx, user.Email)
}

// Dashboard builds the customer dashboard of the signed-in user. A missing or
// unreadable profile renders with defaults.
func (s *UserServiceImpl) Dashboard(ctx context.Context, current *identity.User) *models.DashboardView {
	profile := models.DefaultUser()
	if p, err := s.userRepo.FindByID(ctx, current.UID); err != nil {
		if !errors.Is(err, repositories.ErrDocumentNotFound) {
			log.Printf("[ERROR] Failed to load profile %s: %v", current.UID, err)
		}
	} else {
		profile = *p
	}

	var firstDirector string
	if len(profile.Directors) > 0 {
		firstDirector = profile.Directors[0].FirstName
	}
	return &models.DashboardView{
		Name:         utils.FirstNonEmpty(current.DisplayName, firstDirector, models.DefaultDisplayName),
		Email:        current.Email,
		Balance:      utils.FirstNonEmpty(profile.Balance, models.DefaultBalance),
		KYCStatus:    profile.EffectiveKYCStatus(),
		Status:       utils.FirstNonEmpty(profile.Status, models.StatusActive),
		Transactions: profile.Transactions,
	}
}

// AdminStats computes the admin dashboard figures concurrently. Figures that cannot
// be read stay zero and the stats carry an error notification.
func (s *UserServiceImpl) AdminStats(ctx context.Context) *models.AdminStats {
	stats := &models.AdminStats{}
	var g errgroup.Group

	g.Go(func() error {
		users, err := s.userRepo.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}
		stats.TotalUsers = len(users)
		for _, u := range users {
			if u.EffectiveKYCStatus() == models.KYCStatusPending {
				stats.PendingKYC++
			}
			stats.TotalTransactions += len(u.Transactions)
		}
		return nil
	})
	g.Go(func() error {
		countries, err := s.countryRepo.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load countries: %w", err)
		}
		for _, c := range countries {
			if c.Active {
				stats.ActiveCountries++
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("[ERROR] Admin stats incomplete: %v", err)
		stats.Notification = loadFailed("dashboard figures")
	}
	return stats
}

// IsAdmin reports whether uid carries the admin marker
func (s *UserServiceImpl) IsAdmin(ctx context.Context, uid string) (bool, error) {
	return s.adminRepo.Exists(ctx, uid)
}

func (s *UserServiceImpl) setKYCStatus(ctx context.Context, uid, status string) error {
	err := s.userRepo.UpdateKYCStatus(ctx, uid, status)
	if errors.Is(err, repositories.ErrDocumentNotFound) {
		return ErrUserNotFound
	}
	if err == nil {
		log.Printf("[INFO] KYC for %s set to %s", uid, status)
	}
	return err
}

func (s *UserServiceImpl) setStatus(ctx context.Context, uid, status string) error {
	err := s.userRepo.UpdateStatus(ctx, uid, status)
	if errors.Is(err, repositories.ErrDocumentNotFound) {
		return ErrUserNotFound
	}
	if err == nil {
		log.Printf("[INFO] User %s set to %s", uid, status)
	}
	return err
}

// summarise builds an admin list row; status falls back to active
func summarise(u *models.User) models.UserSummary {
	return models.UserSummary{
		UID:       u.UID,
		Name:      u.AdminDisplayName(),
		Email:     u.Email,
		Status:    utils.FirstNonEmpty(u.Status, models.StatusActive),
		KYCStatus: u.EffectiveKYCStatus(),
		CreatedAt: utils.FormatDate(u.CreatedAt),
	}
}
