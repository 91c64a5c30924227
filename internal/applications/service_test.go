package applications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/placementhub/placementhub/backend/go-services/internal/faults"
	"github.com/placementhub/placementhub/backend/go-services/internal/models"
	"github.com/placementhub/placementhub/backend/go-services/internal/store/memory"
)

func student() models.User {
	return models.User{ID: "s1", Email: "a@x.com", Role: models.RoleStudent}
}

func TestApplyThenDuplicate(t *testing.T) {
	svc := NewService(memory.New())
	ctx := context.Background()

	app, err := svc.Apply(ctx, student(), "o1")
	require.NoError(t, err)
	require.NotEmpty(t, app.ID)
	require.Equal(t, models.StatusApplied, app.Status)

	_, err = svc.Apply(ctx, student(), "o1")
	require.ErrorIs(t, err, faults.ErrAlreadyApplied)

	apps, err := svc.ListForStudent(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.Equal(t, "o1", apps[0].OpeningID)
}

func TestApplyForbiddenForNonStudents(t *testing.T) {
	svc := NewService(memory.New())
	ctx := context.Background()

	for _, role := range []models.Role{models.RoleMentor, models.RolePlacement, models.RoleRecruiter} {
		_, err := svc.Apply(ctx, models.User{ID: "u1", Role: role}, "o1")
		require.ErrorIs(t, err, faults.ErrForbidden, "role %s", role)
	}
}

func TestApplyRequiresOpening(t *testing.T) {
	svc := NewService(memory.New())
	_, err := svc.Apply(context.Background(), student(), "")
	require.ErrorIs(t, err, faults.ErrValidation)
}

// A duplicate written by another session between the pre-check and the
// store write must still come back as AlreadyApplied.
func TestApplyStoreConflictBypassingPrecheck(t *testing.T) {
	st := memory.New()
	svc := NewService(st)
	ctx := context.Background()

	// the other session writes directly to the store
	_, err := st.CreateApplication(ctx, &models.Application{StudentID: "s1", OpeningID: "o1", Status: models.StatusApplied})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, student(), "o1")
	require.ErrorIs(t, err, faults.ErrAlreadyApplied)

	apps, err := svc.ListForStudent(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, apps, 1)
}

// staleReadStore returns an empty list (stale snapshot) while the underlying
// store already holds the duplicate, forcing the conflict onto the write path.
type staleReadStore struct {
	*memory.Store
}

func (s staleReadStore) ListApplicationsForStudent(ctx context.Context, studentID string) ([]models.Application, error) {
	return []models.Application{}, nil
}

func TestApplyConflictSurfacedByWritePath(t *testing.T) {
	st := memory.New()
	ctx := context.Background()
	_, err := st.CreateApplication(ctx, &models.Application{StudentID: "s1", OpeningID: "o1", Status: models.StatusApplied})
	require.NoError(t, err)

	svc := NewService(staleReadStore{st})
	_, err = svc.Apply(ctx, student(), "o1")
	require.ErrorIs(t, err, faults.ErrAlreadyApplied)
}

func TestListForStudentEmpty(t *testing.T) {
	svc := NewService(memory.New())
	apps, err := svc.ListForStudent(context.Background(), "nobody")
	require.NoError(t, err)
	require.NotNil(t, apps)
	require.Empty(t, apps)
}

func TestForeignStatusesPassThrough(t *testing.T) {
	st := memory.New()
	svc := NewService(st)
	ctx := context.Background()

	_, err := st.CreateApplication(ctx, &models.Application{StudentID: "s1", OpeningID: "o1", Status: "under_review"})
	require.NoError(t, err)

	apps, err := svc.ListForStudent(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, models.ApplicationStatus("under_review"), apps[0].Status)
}
