// Package openings is the opening catalog: unauthenticated listing plus
// role-gated creation.
package openings

import (
	"context"
	"fmt"
	"strings"

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

// List returns every opening. Reads are open to all roles; filtering is a
// client concern.
func (s *Service) List(ctx context.Context) ([]models.Opening, error) {
	out, err := s.store.ListOpenings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list openings: %w", err)
	}
	return out, nil
}

// Create validates draft and stores a new opening on behalf of actingUser.
// Only the placement cell may post openings.
func (s *Service) Create(ctx context.Context, draft models.OpeningDraft, actingUser models.User) (*models.Opening, error) {
	if !authz.CanPerform(actingUser.Role, authz.ActionCreateOpening) {
		return nil, fmt.Errorf("create opening as %s: %w", actingUser.Role, faults.ErrForbidden)
	}
	if strings.TrimSpace(draft.Title) == "" {
		return nil, faults.Validationf("title is required")
	}
	if strings.TrimSpace(draft.Company) == "" {
		return nil, faults.Validationf("company is required")
	}
	if draft.StipendMin != nil && draft.StipendMax != nil && *draft.StipendMin > *draft.StipendMax {
		return nil, faults.Validationf("stipend_min %v exceeds stipend_max %v", *draft.StipendMin, *draft.StipendMax)
	}

	prob := 0.0
	if draft.PlacementConversionProb != nil {
		prob = *draft.PlacementConversionProb
	}
	created, err := s.store.CreateOpening(ctx, &models.Opening{
		Title:                   strings.TrimSpace(draft.Title),
		Company:                 strings.TrimSpace(draft.Company),
		Department:              strings.TrimSpace(draft.Department),
		Description:             draft.Description,
		SkillsRequired:          NormalizeSkills(draft.SkillsRequired),
		StipendMin:              draft.StipendMin,
		StipendMax:              draft.StipendMax,
		PlacementConversionProb: prob,
		Deadline:                draft.Deadline,
		CreatedBy:               actingUser.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("create opening: %w", err)
	}
	return created, nil
}

// NormalizeSkills splits a comma-separated skill string into tags: trimmed,
// empty entries dropped, order preserved. Duplicates are kept as typed —
// repeating a tag repeats emphasis in the posting.
func NormalizeSkills(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
