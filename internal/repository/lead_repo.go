package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

// LeadRepo handles MongoDB operations for WhatsApp contact leads
type LeadRepo interface {
	Create(ctx context.Context, lead *model.Lead) error
	List(ctx context.Context, limit int64) ([]*model.Lead, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type leadRepo struct {
	collection *mongo.Collection
}

// NewLeadRepo creates a new lead repository
func NewLeadRepo(db *mongo.Database) LeadRepo {
	return &leadRepo{
		collection: db.Collection("leads"),
	}
}

func (r *leadRepo) Create(ctx context.Context, lead *model.Lead) error {
	lead.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, lead)
	return err
}

func (r *leadRepo) List(ctx context.Context, limit int64) ([]*model.Lead, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []*model.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *leadRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
}
