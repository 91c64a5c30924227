package tokens

import (
	"context"

	"github.com/placementhub/placementhub/backend/go-services/internal/models"
	"github.com/placementhub/placementhub/backend/go-services/internal/sessions"
)

// Verifier turns a raw access token back into the cached identity. The
// session lookup is what makes logout effective: a structurally valid token
// whose session is gone resolves to no identity.
type Verifier struct {
	mgr      *Manager
	sessions *sessions.Service
}

func NewVerifier(mgr *Manager, s *sessions.Service) *Verifier {
	return &Verifier{mgr: mgr, sessions: s}
}

// Identify returns the user behind raw, or (nil, nil) when the token is
// invalid, expired, or its session has been destroyed.
func (v *Verifier) Identify(ctx context.Context, raw string) (*models.User, error) {
	claims, err := v.mgr.Parse(raw)
	if err != nil {
		return nil, nil
	}
	sess, err := v.sessions.Validate(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	return &sess.User, nil
}
