// Package identity resolves an email to a stable portal user.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/placementhub/placementhub/backend/go-services/internal/faults"
	"github.com/placementhub/placementhub/backend/go-services/internal/models"
	"github.com/placementhub/placementhub/backend/go-services/internal/store"
)

// Service implements find-or-create identity resolution. Knowing an email is
// sufficient to become that user; no credential is checked. That contract is
// inherited from the upstream portal and kept deliberately.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Resolve returns the user registered under email, creating one from draft
// when none exists. For a returning user the draft is ignored entirely, so a
// known email cannot be re-registered under a different role.
//
// Two racing resolutions for the same unseen email may both attempt the
// create; the store rejects the loser with ErrEmailTaken and Resolve adopts
// the winner by re-querying.
func (s *Service) Resolve(ctx context.Context, email string, draft models.UserDraft) (*models.User, error) {
	email = strings.TrimSpace(email)
	if err := checkEmail(email); err != nil {
		return nil, err
	}

	u, err := s.store.FindUserByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, backendErr("lookup user", err)
	}

	if strings.TrimSpace(draft.Name) == "" {
		return nil, faults.Validationf("name is required for a new profile")
	}
	if !models.ValidRole(draft.Role) {
		return nil, faults.Validationf("unknown role %q", draft.Role)
	}

	created, err := s.store.CreateUser(ctx, &models.User{
		Email:      email,
		Name:       strings.TrimSpace(draft.Name),
		Role:       draft.Role,
		Department: strings.TrimSpace(draft.Department),
		Skills:     []string{},
		ResumeURL:  nil,
		IsActive:   true,
	})
	if err == nil {
		return created, nil
	}
	if errors.Is(err, store.ErrEmailTaken) {
		// lost the create race; the existing record wins
		existing, qerr := s.store.FindUserByEmail(ctx, email)
		if qerr != nil {
			return nil, backendErr("re-query user after create conflict", qerr)
		}
		return existing, nil
	}
	return nil, backendErr("create user", err)
}

func checkEmail(email string) error {
	if email == "" {
		return faults.Validationf("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return faults.Validationf("%q is not an email address", email)
	}
	return nil
}

func backendErr(op string, err error) error {
	if errors.Is(err, faults.ErrBackendUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %v", op, faults.ErrBackendUnavailable, err)
}
