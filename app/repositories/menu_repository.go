package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/pkg/metrics"
)

// MenuRepository handles the menu collection.
type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(col *mongo.Collection) *MenuRepository {
	return &MenuRepository{col: col}
}

// All returns every menu item.
func (r *MenuRepository) All(ctx context.Context) ([]models.MenuItem, error) {
	defer metrics.ObserveMongoOp("find", time.Now())

	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("menu: find: %w", err)
	}

	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("menu: decode: %w", err)
	}
	return items, nil
}

// FindByID returns one menu item, or (nil, nil) when absent.
func (r *MenuRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	defer metrics.ObserveMongoOp("find", time.Now())

	var item models.MenuItem
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("menu: find by id: %w", err)
	}
	return &item, nil
}

// Create inserts a new menu item and returns its id.
func (r *MenuRepository) Create(ctx context.Context, item *models.MenuItem) (primitive.ObjectID, error) {
	defer metrics.ObserveMongoOp("insert", time.Now())

	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("menu: insert: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Update applies the non-nil fields of patch to the item.
func (r *MenuRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.MenuItemPatch) (int64, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Recipe != nil {
		set["recipe"] = *patch.Recipe
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if len(set) == 0 {
		return 0, nil
	}

	defer metrics.ObserveMongoOp("update", time.Now())

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("menu: update: %w", err)
	}
	return res.ModifiedCount, nil
}

// Delete removes the menu item by id.
func (r *MenuRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	defer metrics.ObserveMongoOp("delete", time.Now())

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("menu: delete: %w", err)
	}
	return res.DeletedCount, nil
}

// EstimatedCount returns the fast metadata-based document count.
func (r *MenuRepository) EstimatedCount(ctx context.Context) (int64, error) {
	defer metrics.ObserveMongoOp("count", time.Now())
	return r.col.EstimatedDocumentCount(ctx)
}
