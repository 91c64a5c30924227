package sessions

import (
	"time"

	"github.com/placementhub/placementhub/backend/go-services/internal/models"
)

// Session caches a resolved identity under an opaque token for the lifetime
// of a sign-in. It is a cache only: the entity store stays the source of
// truth for the user record, and logout removes the session in one delete
// so no stale identity survives into the next sign-in.
type Session struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}
