package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hirelens/internal/model"
)

type SessionRepo interface {
	Create(ctx context.Context, session *model.InterviewSession) error
	GetByID(ctx context.Context, id string) (*model.InterviewSession, error)
	GetByCandidateID(ctx context.Context, candidateID string) ([]*model.InterviewSession, error)
	Update(ctx context.Context, session *model.InterviewSession) error
	Delete(ctx context.Context, id string) error
}

type sessionRepo struct {
	collection *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{collection: db.Collection("sessions")}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.InterviewSession) error {
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.InterviewSession, error) {
	var session model.InterviewSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) GetByCandidateID(ctx context.Context, candidateID string) ([]*model.InterviewSession, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"candidateId": candidateID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.InterviewSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepo) Update(ctx context.Context, session *model.InterviewSession) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": session.ID}, bson.M{"$set": session})
	return err
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
