// Package store defines the boundary to the authoritative entity store.
// Every entity lives behind this interface; the portal services hold only
// transient copies. Implementations must enforce the two uniqueness
// invariants (email per user, one application per (student, opening) pair)
// atomically — the service-level pre-checks are a UX convenience, not the
// correctness mechanism.
package store

import (
	"context"
	"errors"

	"github.com/placementhub/placementhub/backend/go-services/internal/models"
)

var (
	// ErrNotFound is returned by lookups that match nothing.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned by CreateUser when a user with the same
	// email already exists. Callers re-query and adopt the winner.
	ErrEmailTaken = errors.New("email already registered")

	// ErrDuplicateApplication is returned by CreateApplication when the
	// (student, opening) pair already holds an application.
	ErrDuplicateApplication = errors.New("duplicate application")
)

// Store is the persistence contract for portal entities.
type Store interface {
	// FindUserByEmail returns the user with exactly this email, or
	// ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// CreateUser persists u (ID must be empty) and returns the stored copy
	// with its assigned id, or ErrEmailTaken.
	CreateUser(ctx context.Context, u *models.User) (*models.User, error)

	// ListOpenings returns all openings.
	ListOpenings(ctx context.Context) ([]models.Opening, error)

	// CreateOpening persists o (ID must be empty) and returns the stored
	// copy with its assigned id.
	CreateOpening(ctx context.Context, o *models.Opening) (*models.Opening, error)

	// ListApplicationsForStudent returns the student's applications, empty
	// slice when there are none.
	ListApplicationsForStudent(ctx context.Context, studentID string) ([]models.Application, error)

	// CreateApplication persists a (ID must be empty) and returns the
	// stored copy with its assigned id, or ErrDuplicateApplication.
	CreateApplication(ctx context.Context, a *models.Application) (*models.Application, error)
}
