// Package memory provides an in-memory Store used for single-process
// deployments and unit tests. It is the sole arbiter of the uniqueness
// invariants in those setups, so both conflict checks happen under the
// write lock.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/placementhub/placementhub/backend/go-services/internal/models"
	"github.com/placementhub/placementhub/backend/go-services/internal/store"
)

type Store struct {
	mu           sync.RWMutex
	users        map[string]*models.User
	openings     map[string]*models.Opening
	applications map[string]*models.Application
	openingOrder []string
}

func New() *Store {
	return &Store{
		users:        make(map[string]*models.User),
		openings:     make(map[string]*models.Opening),
		applications: make(map[string]*models.Application),
	}
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return nil, store.ErrEmailTaken
		}
	}
	cp := *u
	cp.ID = uuid.NewString()
	if cp.Skills == nil {
		cp.Skills = []string{}
	}
	s.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *Store) ListOpenings(ctx context.Context) ([]models.Opening, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Opening, 0, len(s.openingOrder))
	for _, id := range s.openingOrder {
		out = append(out, *s.openings[id])
	}
	return out, nil
}

func (s *Store) CreateOpening(ctx context.Context, o *models.Opening) (*models.Opening, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *o
	cp.ID = uuid.NewString()
	if cp.SkillsRequired == nil {
		cp.SkillsRequired = []string{}
	}
	s.openings[cp.ID] = &cp
	s.openingOrder = append(s.openingOrder, cp.ID)
	out := cp
	return &out, nil
}

func (s *Store) ListApplicationsForStudent(ctx context.Context, studentID string) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Application, 0)
	for _, a := range s.applications {
		if a.StudentID == studentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *Store) CreateApplication(ctx context.Context, a *models.Application) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.applications {
		if existing.StudentID == a.StudentID && existing.OpeningID == a.OpeningID {
			return nil, store.ErrDuplicateApplication
		}
	}
	cp := *a
	cp.ID = uuid.NewString()
	s.applications[cp.ID] = &cp
	out := cp
	return &out, nil
}
