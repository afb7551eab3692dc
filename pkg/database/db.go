// Package database owns the MongoDB client lifecycle.
//
// Connect once at startup, pass *DB (explicit collection handles) to the
// repositories, and Disconnect on shutdown. Handlers never reach for a
// package-level client.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/bistro/config"
)

// Collection names in the application database.
const (
	ColMenu     = "menu"
	ColUsers    = "users"
	ColReviews  = "reviews"
	ColCarts    = "carts"
	ColPayments = "payments"
	ColLogs     = "logs"
)

// DB bundles the connected client and its database handle.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect opens the MongoDB client, verifies the connection with a ping, and
// returns the handle bundle.
func Connect(ctx context.Context) (*DB, error) {
	clientOpts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return &DB{
		Client:   client,
		Database: client.Database(config.MongoDB()),
	}, nil
}

// Collection returns a handle to the named collection.
func (db *DB) Collection(name string) *mongo.Collection {
	return db.Database.Collection(name)
}

// Disconnect closes the client with a bounded timeout.
func (db *DB) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.Client.Disconnect(ctx)
}
