package repository

import (
	"context"

	"story-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// unlockRecord wraps an achievement with the profile it belongs to.
type unlockRecord struct {
	ProfileKey  string             `bson:"profile_key"`
	Achievement models.Achievement `bson:"achievement"`
}

type AchievementRepository struct {
	Col *mongo.Collection
}

func NewAchievementRepository(db *mongo.Database) *AchievementRepository {
	return &AchievementRepository{Col: db.Collection("achievements")}
}

func (r *AchievementRepository) Record(ctx context.Context, profileKey string, achievements []models.Achievement) error {
	if len(achievements) == 0 {
		return nil
	}
	docs := make([]interface{}, len(achievements))
	for i, a := range achievements {
		docs[i] = unlockRecord{ProfileKey: profileKey, Achievement: a}
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

func (r *AchievementRepository) FindByProfile(ctx context.Context, profileKey string) ([]models.Achievement, error) {
	cursor, err := r.Col.Find(ctx, bson.M{"profile_key": profileKey})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []unlockRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	achievements := make([]models.Achievement, len(records))
	for i, rec := range records {
		achievements[i] = rec.Achievement
	}
	return achievements, nil
}
