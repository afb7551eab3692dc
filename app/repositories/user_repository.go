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

// ErrAlreadyExists signals an idempotent duplicate signup, not a failure.
var ErrAlreadyExists = errors.New("user already exists")

// UserRepository handles the users collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(col *mongo.Collection) *UserRepository {
	return &UserRepository{col: col}
}

// All returns every user record.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	defer metrics.ObserveMongoOp("find", time.Now())

	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("users: find: %w", err)
	}

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("users: decode: %w", err)
	}
	return users, nil
}

// FindByEmail returns the user with the given email, or (nil, nil) when no
// record exists.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	defer metrics.ObserveMongoOp("find", time.Now())

	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("users: find by email: %w", err)
	}
	return &user, nil
}

// Create inserts the user unless the email is already present. A duplicate
// returns ErrAlreadyExists and leaves the existing record untouched.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	existing, err := r.FindByEmail(ctx, user.Email)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if existing != nil {
		return primitive.NilObjectID, ErrAlreadyExists
	}

	defer metrics.ObserveMongoOp("insert", time.Now())

	user.Created = time.Now().UTC()
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("users: insert: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Promote sets the user's role to admin. There is no demotion path.
func (r *UserRepository) Promote(ctx context.Context, id primitive.ObjectID) (int64, error) {
	defer metrics.ObserveMongoOp("update", time.Now())

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
	)
	if err != nil {
		return 0, fmt.Errorf("users: promote: %w", err)
	}
	return res.ModifiedCount, nil
}

// Delete removes the user record by id.
func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	defer metrics.ObserveMongoOp("delete", time.Now())

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("users: delete: %w", err)
	}
	return res.DeletedCount, nil
}

// IsAdmin resolves the user's admin status fresh from the collection.
// Used by the admin gate on every request — promotions must be visible on
// the very next call.
func (r *UserRepository) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// EstimatedCount returns the fast metadata-based document count.
func (r *UserRepository) EstimatedCount(ctx context.Context) (int64, error) {
	defer metrics.ObserveMongoOp("count", time.Now())
	return r.col.EstimatedDocumentCount(ctx)
}
