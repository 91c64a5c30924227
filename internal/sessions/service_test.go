package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/placementhub/placementhub/backend/go-services/internal/models"
)

func TestSessionLifecycle(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()
	user := models.User{ID: "u1", Email: "a@x.com", Name: "A", Role: models.RoleStudent}

	sess, err := svc.CreateSession(ctx, user, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	require.Equal(t, user, sess.User)

	got, err := svc.Validate(ctx, sess.Token)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "u1", got.User.ID)

	// logout: the session is gone in one step
	require.NoError(t, svc.Destroy(ctx, sess.Token))
	got, err = svc.Validate(ctx, sess.Token)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestValidateUnknownToken(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	got, err := svc.Validate(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestValidateExpiredSession(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	sess, err := svc.CreateSession(ctx, models.User{ID: "u1"}, -time.Second)
	require.NoError(t, err)

	got, err := svc.Validate(ctx, sess.Token)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestTokensAreUnique(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	a, err := svc.CreateSession(ctx, models.User{ID: "u1"}, time.Minute)
	require.NoError(t, err)
	b, err := svc.CreateSession(ctx, models.User{ID: "u1"}, time.Minute)
	require.NoError(t, err)
	require.NotEqual(t, a.Token, b.Token)
}
