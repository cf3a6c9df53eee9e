package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

// SessionRepo handles MongoDB operations for quiz sessions
type SessionRepo interface {
	Create(ctx context.Context, session *model.QuizSession) error
	GetByID(ctx context.Context, id string) (*model.QuizSession, error)
	SaveResult(ctx context.Context, id string, result *model.QuizResult) error
	SaveAIExplanation(ctx context.Context, id, explanation string) error
	ListRecent(ctx context.Context, limit int64) ([]*model.QuizSession, error)
}

type sessionRepo struct {
	collection *mongo.Collection
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{
		collection: db.Collection("quiz_sessions"),
	}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.QuizSession) error {
	session.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.QuizSession, error) {
	var session model.QuizSession
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) SaveResult(ctx context.Context, id string, result *model.QuizResult) error {
	now := time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"result":      result,
			"completedAt": now,
		},
	})
	return err
}

func (r *sessionRepo) SaveAIExplanation(ctx context.Context, id, explanation string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"aiExplanation": explanation},
	})
	return err
}

func (r *sessionRepo) ListRecent(ctx context.Context, limit int64) ([]*model.QuizSession, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.QuizSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
