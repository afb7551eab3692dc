package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/pkg/metrics"
)

// PaymentRepository handles the payments collection, including the
// dashboard aggregations that join back into the menu collection.
type PaymentRepository struct {
	col     *mongo.Collection
	menuCol string
}

func NewPaymentRepository(col *mongo.Collection, menuCol string) *PaymentRepository {
	return &PaymentRepository{col: col, menuCol: menuCol}
}

// Insert records a completed payment and returns its id.
func (r *PaymentRepository) Insert(ctx context.Context, p *models.Payment) (primitive.ObjectID, error) {
	defer metrics.ObserveMongoOp("insert", time.Now())

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("payments: insert: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindByEmail returns the payment history for email, newest first.
func (r *PaymentRepository) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	defer metrics.ObserveMongoOp("find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("payments: find: %w", err)
	}

	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("payments: decode: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) EstimatedCount(ctx context.Context) (int64, error) {
	defer metrics.ObserveMongoOp("count", time.Now())

	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("payments: count: %w", err)
	}
	return n, nil
}

// Revenue sums the price field across all payments. Returns 0 when no
// payments exist.
func (r *PaymentRepository) Revenue(ctx context.Context) (float64, error) {
	defer metrics.ObserveMongoOp("aggregate", time.Now())

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"totalRevenue": bson.M{"$sum": "$price"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("payments: revenue: %w", err)
	}

	var buckets []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &buckets); err != nil {
		return 0, fmt.Errorf("payments: revenue decode: %w", err)
	}
	if len(buckets) == 0 {
		return 0, nil
	}
	return buckets[0].TotalRevenue, nil
}

// CategoryStats unwinds the purchased item ids, joins them against the
// menu collection and groups order count and revenue per category. Item
// ids with no matching menu document drop out of the join.
func (r *PaymentRepository) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	defer metrics.ObserveMongoOp("aggregate", time.Now())

	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuItemIds"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         r.menuCol,
			"localField":   "menuItemIds",
			"foreignField": "_id",
			"as":           "menuItems",
		}}},
		{{Key: "$unwind", Value: "$menuItems"}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$menuItems.category",
			"quantity": bson.M{"$sum": 1},
			"revenue":  bson.M{"$sum": "$menuItems.price"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":      0,
			"category": "$_id",
			"quantity": "$quantity",
			"revenue":  "$revenue",
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("payments: category stats: %w", err)
	}

	stats := []models.CategoryStat{}
	if err := cur.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("payments: category stats decode: %w", err)
	}
	return stats, nil
}
