package openings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/placementhub/placementhub/backend/go-services/internal/faults"
	"github.com/placementhub/placementhub/backend/go-services/internal/models"
	"github.com/placementhub/placementhub/backend/go-services/internal/store/memory"
)

func placementUser() models.User {
	return models.User{ID: "u-pc", Email: "cell@x.com", Role: models.RolePlacement}
}

func TestCreateAndList(t *testing.T) {
	st := memory.New()
	svc := NewService(st)
	ctx := context.Background()

	min, max := 20000.0, 50000.0
	created, err := svc.Create(ctx, models.OpeningDraft{
		Title:          "Backend Intern",
		Company:        "Acme",
		SkillsRequired: "Go, Postgres",
		StipendMin:     &min,
		StipendMax:     &max,
	}, placementUser())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "u-pc", created.CreatedBy)
	require.Equal(t, []string{"Go", "Postgres"}, created.SkillsRequired)
	require.Zero(t, created.PlacementConversionProb)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, created.ID, list[0].ID)
}

func TestCreateForbiddenForOtherRoles(t *testing.T) {
	st := memory.New()
	svc := NewService(st)
	ctx := context.Background()

	for _, role := range []models.Role{models.RoleStudent, models.RoleMentor, models.RoleRecruiter} {
		_, err := svc.Create(ctx, models.OpeningDraft{Title: "T", Company: "C"}, models.User{ID: "u1", Role: role})
		require.ErrorIs(t, err, faults.ErrForbidden, "role %s", role)
	}

	// nothing was created
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCreateValidation(t *testing.T) {
	st := memory.New()
	svc := NewService(st)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.OpeningDraft{Title: "", Company: "C"}, placementUser())
	require.ErrorIs(t, err, faults.ErrValidation)

	_, err = svc.Create(ctx, models.OpeningDraft{Title: "T", Company: "  "}, placementUser())
	require.ErrorIs(t, err, faults.ErrValidation)

	min, max := 50000.0, 20000.0
	_, err = svc.Create(ctx, models.OpeningDraft{Title: "T", Company: "C", StipendMin: &min, StipendMax: &max}, placementUser())
	require.ErrorIs(t, err, faults.ErrValidation)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestNormalizeSkills(t *testing.T) {
	require.Equal(t, []string{"Python", "React", "Go"}, NormalizeSkills("Python,  React ,, Go"))
	require.Empty(t, NormalizeSkills(""))
	require.Empty(t, NormalizeSkills(" , ,"))
	// duplicates preserved, order preserved
	require.Equal(t, []string{"Go", "Go"}, NormalizeSkills("Go,Go"))
}
