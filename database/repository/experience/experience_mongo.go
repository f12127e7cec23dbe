package experienceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sahara/database"
	"sahara/models"
	"sahara/utils"
)

// ErrNotFound is returned when no experience matches the given id. Callers
// decide on fallback behavior; the repository never fabricates records.
var ErrNotFound = errors.New("experience not found")

// ExperienceRepository is the read-only catalog collaborator contract.
type ExperienceRepository interface {
	GetByID(id string) (*models.Experience, error)
	GetAll() ([]models.Experience, error)
	Upsert(exp *models.Experience) error
}

// MongoExperienceRepo implements ExperienceRepository using MongoDB.
type MongoExperienceRepo struct {
	coll *mongo.Collection
}

// NewMongoExperienceRepo creates a new instance of ExperienceRepository using MongoDB.
func NewMongoExperienceRepo() ExperienceRepository {
	coll := database.Collection("experiences")
	repo := &MongoExperienceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to create experience indexes: %v", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoExperienceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an experience by its unique ID.
func (r *MongoExperienceRepo) GetByID(id string) (*models.Experience, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var exp models.Experience
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&exp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch experience with id %s: %w", id, err)
	}
	return &exp, nil
}

// GetAll retrieves the full catalog.
func (r *MongoExperienceRepo) GetAll() ([]models.Experience, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve experiences: %w", err)
	}
	defer cursor.Close(ctx)

	var experiences []models.Experience
	for cursor.Next(ctx) {
		var e models.Experience
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode experience: %w", err)
		}
		experiences = append(experiences, e)
	}
	return experiences, nil
}

// Upsert inserts or replaces a catalog entry by slug. Used by seeding only.
func (r *MongoExperienceRepo) Upsert(exp *models.Experience) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"slug": exp.Slug}, exp, opts); err != nil {
		return fmt.Errorf("failed to upsert experience %s: %w", exp.Slug, err)
	}
	return nil
}
