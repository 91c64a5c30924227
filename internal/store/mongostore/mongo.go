// Package mongostore implements the entity store on MongoDB. Unique indexes
// on users.email and applications (studentId, openingId) make Mongo the
// arbiter of the two uniqueness invariants; duplicate-key failures are
// mapped onto the store's conflict sentinels.
package mongostore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/placementhub/placementhub/backend/go-services/internal/models"
	"github.com/placementhub/placementhub/backend/go-services/internal/store"
)

type Store struct {
	users        *mongo.Collection
	openings     *mongo.Collection
	applications *mongo.Collection
}

// New wires the store onto the given database. Call EnsureIndexes once at
// startup before serving traffic.
func New(db *mongo.Database) *Store {
	return &Store{
		users:        db.Collection("users"),
		openings:     db.Collection("openings"),
		applications: db.Collection("applications"),
	}
}

// EnsureIndexes creates the unique indexes backing the store invariants.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}
	_, err = s.applications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "studentId", Value: 1}, {Key: "openingId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("applications pair index: %w", err)
	}
	return nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	cp := *u
	cp.ID = uuid.NewString()
	if cp.Skills == nil {
		cp.Skills = []string{}
	}
	if _, err := s.users.InsertOne(ctx, &cp); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, store.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &cp, nil
}

func (s *Store) ListOpenings(ctx context.Context) ([]models.Opening, error) {
	cur, err := s.openings.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list openings: %w", err)
	}
	defer cur.Close(ctx)
	out := make([]models.Opening, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode openings: %w", err)
	}
	return out, nil
}

func (s *Store) CreateOpening(ctx context.Context, o *models.Opening) (*models.Opening, error) {
	cp := *o
	cp.ID = uuid.NewString()
	if cp.SkillsRequired == nil {
		cp.SkillsRequired = []string{}
	}
	if _, err := s.openings.InsertOne(ctx, &cp); err != nil {
		return nil, fmt.Errorf("insert opening: %w", err)
	}
	return &cp, nil
}

func (s *Store) ListApplicationsForStudent(ctx context.Context, studentID string) ([]models.Application, error) {
	cur, err := s.applications.Find(ctx, bson.M{"studentId": studentID})
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cur.Close(ctx)
	out := make([]models.Application, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}
	return out, nil
}

func (s *Store) CreateApplication(ctx context.Context, a *models.Application) (*models.Application, error) {
	cp := *a
	cp.ID = uuid.NewString()
	if _, err := s.applications.InsertOne(ctx, &cp); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, store.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return &cp, nil
}
