package contactRepo

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

// ErrNotFound is returned when no contact message matches the given id.
var ErrNotFound = errors.New("contact not found")

// ContactRepository defines the interface for contact message data access.
type ContactRepository interface {
	Create(contact *models.Contact) error
	GetAll() ([]models.Contact, error)
	Delete(id string) error
}

// MongoContactRepo implements ContactRepository using MongoDB.
type MongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo creates a new instance of ContactRepository using MongoDB.
func NewMongoContactRepo() ContactRepository {
	coll := database.Collection("contacts")
	repo := &MongoContactRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to create contact indexes: %v", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoContactRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new contact document.
func (r *MongoContactRepo) Create(contact *models.Contact) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, contact)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// GetAll retrieves all contact messages, newest first.
func (r *MongoContactRepo) GetAll() ([]models.Contact, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve contacts: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	for cursor.Next(ctx) {
		var c models.Contact
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

// Delete removes a contact document by its ID.
func (r *MongoContactRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete contact with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
