package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/placementhub/placementhub/backend/go-services/internal/faults"
	"github.com/placementhub/placementhub/backend/go-services/internal/models"
	"github.com/placementhub/placementhub/backend/go-services/internal/store"
	"github.com/placementhub/placementhub/backend/go-services/internal/store/memory"
)

func TestResolveCreatesThenReturnsSameUser(t *testing.T) {
	svc := NewService(memory.New())
	ctx := context.Background()

	first, err := svc.Resolve(ctx, "a@x.com", models.UserDraft{Name: "Asha", Role: models.RoleStudent, Department: "CSE"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.Equal(t, models.RoleStudent, first.Role)
	require.True(t, first.IsActive)
	require.Empty(t, first.Skills)
	require.Nil(t, first.ResumeURL)

	// second resolve with a conflicting draft returns the original profile
	second, err := svc.Resolve(ctx, "a@x.com", models.UserDraft{Name: "Mallory", Role: models.RolePlacement})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Asha", second.Name)
	require.Equal(t, models.RoleStudent, second.Role)
}

func TestResolveValidation(t *testing.T) {
	svc := NewService(memory.New())
	ctx := context.Background()

	_, err := svc.Resolve(ctx, "", models.UserDraft{Name: "A", Role: models.RoleStudent})
	require.ErrorIs(t, err, faults.ErrValidation)

	_, err = svc.Resolve(ctx, "not-an-email", models.UserDraft{Name: "A", Role: models.RoleStudent})
	require.ErrorIs(t, err, faults.ErrValidation)

	_, err = svc.Resolve(ctx, "a@x.com", models.UserDraft{Name: "", Role: models.RoleStudent})
	require.ErrorIs(t, err, faults.ErrValidation)

	_, err = svc.Resolve(ctx, "a@x.com", models.UserDraft{Name: "A", Role: "superuser"})
	require.ErrorIs(t, err, faults.ErrValidation)
}

// racingStore simulates losing the create race: the first lookup misses,
// the create is rejected as taken, the re-query finds the winner.
type racingStore struct {
	store.Store
	looked  bool
	winner  models.User
	creates int
}

func (r *racingStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if !r.looked {
		r.looked = true
		return nil, store.ErrNotFound
	}
	cp := r.winner
	return &cp, nil
}

func (r *racingStore) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	r.creates++
	return nil, store.ErrEmailTaken
}

func TestResolveAdoptsRaceWinner(t *testing.T) {
	rs := &racingStore{winner: models.User{ID: "u9", Email: "a@x.com", Name: "Winner", Role: models.RoleStudent}}
	svc := NewService(rs)

	u, err := svc.Resolve(context.Background(), "a@x.com", models.UserDraft{Name: "Loser", Role: models.RoleMentor})
	require.NoError(t, err)
	require.Equal(t, "u9", u.ID)
	require.Equal(t, "Winner", u.Name)
	require.Equal(t, 1, rs.creates)
}

// downStore fails every call with a transport-style error.
type downStore struct {
	store.Store
}

func (downStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func TestResolveBackendUnavailable(t *testing.T) {
	svc := NewService(downStore{})
	_, err := svc.Resolve(context.Background(), "a@x.com", models.UserDraft{Name: "A", Role: models.RoleStudent})
	require.ErrorIs(t, err, faults.ErrBackendUnavailable)
}
