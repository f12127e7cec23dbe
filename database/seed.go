package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"sahara/models"
)

// AdminSeedRepository mirrors the admin repository interface; declared locally
// to avoid an import cycle with sahara/database/repository/admin.
type AdminSeedRepository interface {
	Create(admin *models.Admin) error
	GetByID(id string) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
}

// ExperienceSeedRepository mirrors the experience repository interface;
// declared locally to avoid an import cycle with
// sahara/database/repository/experience.
type ExperienceSeedRepository interface {
	GetByID(id string) (*models.Experience, error)
	GetAll() ([]models.Experience, error)
	Upsert(exp *models.Experience) error
}

// defaultExperiences is the catalog shipped with a fresh install. Catalog
// management happens outside this service.
var defaultExperiences = []models.Experience{
	{Title: "Desert Safari", Slug: "desert-safari", PricePerPerson: 150, Duration: "Full day",
		Description: "A 4x4 dune ride deep into the erg with a traditional lunch stop."},
	{Title: "Sunset Camel Trek", Slug: "sunset-camel-trek", PricePerPerson: 100, Duration: "3 hours",
		Description: "Caravan ride over the dunes timed for the golden hour."},
	{Title: "Luxury Desert Camp", Slug: "luxury-desert-camp", PricePerPerson: 250, Duration: "Overnight",
		Description: "Private tented camp with dinner under the stars."},
	{Title: "Stargazing Night Tour", Slug: "stargazing-night-tour", PricePerPerson: 80, Duration: "4 hours",
		Description: "Guided telescope session far from any light pollution."},
	{Title: "Nomadic Lifestyle Experience", Slug: "nomadic-lifestyle-experience", PricePerPerson: 120, Duration: "Full day",
		Description: "A day with a Berber family: bread baking, weaving, tea."},
}

// SeedAdmin creates the dashboard administrator if it does not exist yet.
func SeedAdmin(repo AdminSeedRepository, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("seed admin requires ADMIN_EMAIL and ADMIN_PASSWORD")
	}

	if existing, err := repo.GetByEmail(email); err == nil && existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.Admin{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
	}
	return repo.Create(admin)
}

// SeedExperiences upserts the default catalog, keyed by slug.
func SeedExperiences(repo ExperienceSeedRepository) error {
	for _, exp := range defaultExperiences {
		e := exp
		e.ID = uuid.New().String()
		e.CreatedAt = time.Now()
		if err := repo.Upsert(&e); err != nil {
			return err
		}
	}
	return nil
}
