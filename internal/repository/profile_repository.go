package repository

import (
	"context"

	"story-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProfileRepository is the durable backing for learner profiles. The engine
// itself only needs get/put-by-key; everything else is snapshot reads for
// reporting.
type ProfileRepository struct {
	Col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{Col: db.Collection("profiles")}
}

func (r *ProfileRepository) FindByKey(ctx context.Context, key string) (*models.LearnerProfile, error) {
	var profile models.LearnerProfile
	err := r.Col.FindOne(ctx, bson.M{"_id": key}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.LearnerProfile) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile, opts)
	return err
}

func (r *ProfileRepository) List(ctx context.Context, limit int64) ([]models.LearnerProfile, error) {
	opts := options.Find().SetLimit(limit)
	cursor, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []models.LearnerProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
