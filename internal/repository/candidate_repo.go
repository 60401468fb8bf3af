package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hirelens/internal/model"
)

type CandidateRepo interface {
	Create(ctx context.Context, candidate *model.Candidate) error
	GetByID(ctx context.Context, id string) (*model.Candidate, error)
	GetByEmail(ctx context.Context, email string) (*model.Candidate, error)
	Upsert(ctx context.Context, candidate *model.Candidate) error
}

type candidateRepo struct {
	collection *mongo.Collection
}

func NewCandidateRepo(db *mongo.Database) CandidateRepo {
	return &candidateRepo{collection: db.Collection("candidates")}
}

func (r *candidateRepo) Create(ctx context.Context, candidate *model.Candidate) error {
	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, candidate)
	return err
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepo) GetByEmail(ctx context.Context, email string) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// Upsert replaces the candidate keyed by email, keeping the stored
// record in sync when the same person applies again.
func (r *candidateRepo) Upsert(ctx context.Context, candidate *model.Candidate) error {
	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = time.Now().UTC()
	}
	opts := optionsReplaceUpsert()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"email": candidate.Email}, candidate, opts)
	return err
}
