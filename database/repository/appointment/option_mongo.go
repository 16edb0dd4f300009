package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"dentax/database"
	"dentax/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOptionRepo implements OptionRepository using MongoDB.
type MongoOptionRepo struct {
	coll *mongo.Collection
}

// NewMongoOptionRepo creates a new instance of OptionRepository using MongoDB.
func NewMongoOptionRepo() OptionRepository {
	coll := database.Collection("AppointmentOptions")
	repo := &MongoOptionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoOptionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll returns every appointment option.
func (r *MongoOptionRepo) GetAll() ([]models.AppointmentOption, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment options: %w", err)
	}
	defer cursor.Close(ctx)

	var opts []models.AppointmentOption
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode appointment options: %w", err)
	}
	return opts, nil
}

// GetNames returns the name-only projection of every option.
func (r *MongoOptionRepo) GetNames() ([]models.SpecialtyRef, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	findOpts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch specialties: %w", err)
	}
	defer cursor.Close(ctx)

	var refs []models.SpecialtyRef
	if err := cursor.All(ctx, &refs); err != nil {
		return nil, fmt.Errorf("failed to decode specialties: %w", err)
	}
	return refs, nil
}
