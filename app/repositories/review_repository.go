package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/pkg/metrics"
)

// ReviewRepository handles the reviews collection.
type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(col *mongo.Collection) *ReviewRepository {
	return &ReviewRepository{col: col}
}

// All returns every review.
func (r *ReviewRepository) All(ctx context.Context) ([]models.Review, error) {
	defer metrics.ObserveMongoOp("find", time.Now())

	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("reviews: find: %w", err)
	}

	reviews := []models.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("reviews: decode: %w", err)
	}
	return reviews, nil
}

// Create inserts a review and returns its id.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	defer metrics.ObserveMongoOp("insert", time.Now())

	res, err := r.col.InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("reviews: insert: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}
