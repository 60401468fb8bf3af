package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hirelens/internal/model"
)

type RecommendationRepo interface {
	Save(ctx context.Context, rec *model.FinalRecommendation) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.FinalRecommendation, error)
	TopByScore(ctx context.Context, limit int) ([]*model.FinalRecommendation, error)
}

type recommendationRepo struct {
	collection *mongo.Collection
}

func NewRecommendationRepo(db *mongo.Database) RecommendationRepo {
	return &recommendationRepo{collection: db.Collection("recommendations")}
}

// Save upserts by session id: re-running an evaluation replaces the
// previous verdict for the same session.
func (r *recommendationRepo) Save(ctx context.Context, rec *model.FinalRecommendation) error {
	opts := optionsReplaceUpsert()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": rec.SessionID}, rec, opts)
	return err
}

func (r *recommendationRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.FinalRecommendation, error) {
	var rec model.FinalRecommendation
	if err := r.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// TopByScore lists stored recommendations ordered best-first.
func (r *recommendationRepo) TopByScore(ctx context.Context, limit int) ([]*model.FinalRecommendation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "finalScore", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []*model.FinalRecommendation
	if err = cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// optionsReplaceUpsert is shared by the upserting repositories.
func optionsReplaceUpsert() *options.ReplaceOptions {
	return options.Replace().SetUpsert(true)
}
