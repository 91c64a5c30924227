// Command seed loads a handful of demo users and openings into a portal
// store over its REST boundary. Useful for local frontend work against an
// empty backend.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/placementhub/placementhub/backend/go-services/internal/models"
	"github.com/placementhub/placementhub/backend/go-services/internal/store"
	"github.com/placementhub/placementhub/backend/go-services/internal/store/rest"
)

func main() {
	baseURL := flag.String("store", "http://localhost:8000", "base URL of the entity store")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := rest.New(*baseURL, nil)

	users := []models.User{
		{Email: "cell@campus.edu", Name: "Placement Cell", Role: models.RolePlacement, Skills: []string{}, IsActive: true},
		{Email: "asha@campus.edu", Name: "Asha Rao", Role: models.RoleStudent, Department: "CSE", Skills: []string{}, IsActive: true},
		{Email: "mentor@campus.edu", Name: "Prof. Iyer", Role: models.RoleMentor, Department: "CSE", Skills: []string{}, IsActive: true},
	}
	var cellID string
	for _, u := range users {
		created, err := client.CreateUser(ctx, &u)
		if err != nil {
			if errors.Is(err, store.ErrEmailTaken) {
				log.Printf("user %s already present, skipping", u.Email)
				continue
			}
			log.Fatalf("create user %s: %v", u.Email, err)
		}
		log.Printf("created user %s (%s)", created.Email, created.ID)
		if created.Role == models.RolePlacement {
			cellID = created.ID
		}
	}

	min1, max1 := 25000.0, 40000.0
	openings := []models.Opening{
		{Title: "Backend Intern", Company: "Acme Systems", SkillsRequired: []string{"Go", "Postgres"}, StipendMin: &min1, StipendMax: &max1, CreatedBy: cellID},
		{Title: "Frontend Intern", Company: "Pixel Labs", SkillsRequired: []string{"React", "TypeScript"}, CreatedBy: cellID},
		{Title: "Data Analyst Trainee", Company: "Quanta", SkillsRequired: []string{"Python", "SQL"}, PlacementConversionProb: 0.6, CreatedBy: cellID},
	}
	for _, o := range openings {
		created, err := client.CreateOpening(ctx, &o)
		if err != nil {
			log.Fatalf("create opening %q: %v", o.Title, err)
		}
		log.Printf("created opening %q (%s)", created.Title, created.ID)
	}
}
