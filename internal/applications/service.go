// Package applications is the application ledger. It owns the single write
// transition of the portal: absent → applied, at most once per
// (student, opening) pair.
package applications

import (
	"context"
	"errors"
	"fmt"

	"github.com/placementhub/placementhub/backend/go-services/internal/authz"
	"github.com/placementhub/placementhub/backend/go-services/internal/faults"
	"github.com/placementhub/placementhub/backend/go-services/internal/models"
	"github.com/placementhub/placementhub/backend/go-services/internal/store"
)

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// ListForStudent returns the student's applications, empty when there are
// none. Statuses are passed through untouched; transitions past "applied"
// happen outside this service and are display-only here.
func (s *Service) ListForStudent(ctx context.Context, studentID string) ([]models.Application, error) {
	apps, err := s.store.ListApplicationsForStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// Apply records actingUser's application to openingID. A second apply for
// the same pair fails with ErrAlreadyApplied rather than silently
// succeeding, so callers can tell "recorded" from "nothing happened".
//
// The pre-check reads the authoritative store, not a cached snapshot, and
// the store itself rejects duplicates atomically — a concurrent apply from
// another session that slips past the pre-check still resolves to
// ErrAlreadyApplied.
func (s *Service) Apply(ctx context.Context, actingUser models.User, openingID string) (*models.Application, error) {
	if !authz.CanPerform(actingUser.Role, authz.ActionApply) {
		return nil, fmt.Errorf("apply as %s: %w", actingUser.Role, faults.ErrForbidden)
	}
	if openingID == "" {
		return nil, faults.Validationf("opening_id is required")
	}

	existing, err := s.store.ListApplicationsForStudent(ctx, actingUser.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing applications: %w", err)
	}
	for _, a := range existing {
		if a.OpeningID == openingID {
			return nil, faults.ErrAlreadyApplied
		}
	}

	created, err := s.store.CreateApplication(ctx, &models.Application{
		StudentID: actingUser.ID,
		OpeningID: openingID,
		Status:    models.StatusApplied,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateApplication) {
			return nil, faults.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("create application: %w", err)
	}
	return created, nil
}
