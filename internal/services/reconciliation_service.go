package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ArowuTest/oripay-exchange-backend/internal/identity"
	"github.com/ArowuTest/oripay-exchange-backend/internal/models"
	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
)

// Compile-time check to ensure ReconciliationServiceImpl implements ReconciliationService
var _ ReconciliationService = (*ReconciliationServiceImpl)(nil)

// ReconciliationServiceImpl finds identities that registration left without a profile record
type ReconciliationServiceImpl struct {
	provider  identity.Provider
	userRepo  repositories.UserRepository
	adminRepo repositories.AdminRepository
}

// NewReconciliationService creates a new ReconciliationServiceImpl
func NewReconciliationService(provider identity.Provider, userRepo repositories.UserRepository, adminRepo repositories.AdminRepository) *ReconciliationServiceImpl {
	return &ReconciliationServiceImpl{provider: provider, userRepo: userRepo, adminRepo: adminRepo}
}

// Sweep lists identities without a profile record. Admin identities are skipped.
// With repair, each orphan gets a stub profile flagged profileIncomplete. The stub is
// only written while no profile exists, so a registration that lands mid-sweep keeps
// its record.
func (s *ReconciliationServiceImpl) Sweep(ctx context.Context, repair bool) (*models.ReconcileReport, error) {
	identities, err := s.provider.ListIdentities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}

	report := &models.ReconcileReport{Orphans: []string{}}
	for _, u := range identities {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Checked++

		isAdmin, err := s.adminRepo.Exists(ctx, u.UID)
		if err != nil {
			return report, fmt.Errorf("failed to check admin marker for %s: %w", u.UID, err)
		}
		if isAdmin {
			continue
		}
		ok, err := s.userRepo.Exists(ctx, u.UID)
		if err != nil {
			return report, fmt.Errorf("failed to check profile for %s: %w", u.UID, err)
		}
		if ok {
			continue
		}

		report.Orphans = append(report.Orphans, u.UID)
		if !repair {
			continue
		}
		created, err := s.userRepo.CreateStub(ctx, u.UID, u.Email, u.DisplayName)
		if err != nil {
			return report, fmt.Errorf("failed to write stub profile for %s: %w", u.UID, err)
		}
		if !created {
			log.Printf("[DEBUG] Reconcile: profile for %s appeared during the sweep", u.UID)
			continue
		}
		report.Repaired++
		log.Printf("[INFO] Reconcile: wrote stub profile for %s", u.UID)
	}

	if len(report.Orphans) > 0 {
		log.Printf("[WARN] Reconcile: %d of %d identities have no profile record (repaired %d)",
			len(report.Orphans), report.Checked, report.Repaired)
	}
	return report, nil
}

// Run sweeps every interval until ctx is done
func (s *ReconciliationServiceImpl) Run(ctx context.Context, interval time.Duration, repair bool) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx, repair); err != nil && ctx.Err() == nil {
				log.Printf("[ERROR] Reconcile: sweep failed: %v", err)
			}
		}
	}
}
