package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Lehari1/citypulse/config"
)

var client *mongo.Client
var db *mongo.Database

// Connect establishes a singleton MongoDB connection.
func Connect(ctx context.Context, cfg *config.Config) error {
	if client != nil && db != nil {
		return nil
	}

	start := time.Now()
	log.Printf("mongo: connecting uri=%s db=%s", redactURI(cfg.MongoURI), cfg.MongoDB)

	dctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	c, err := mongo.Connect(dctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	if err = c.Ping(dctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return fmt.Errorf("mongo ping: %w", err)
	}

	client = c
	db = c.Database(cfg.MongoDB)

	if err := createIndexes(); err != nil {
		log.Printf("mongo: index creation warnings: %v", err)
	}

	log.Printf("mongo: connected ok in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	defer func() { client, db = nil, nil }()
	return client.Disconnect(ctx)
}

func Col(name string) *mongo.Collection {
	if db == nil {
		panic("database not connected: call database.Connect first")
	}
	return db.Collection(name)
}

// --- internal ---

func createIndexes() error {
	if db == nil {
		return errors.New("db is nil")
	}
	ctxIdx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []string
	col := Col("reports")

	// 2dsphere keeps proximity queries possible later on
	if _, err := col.Indexes().CreateOne(ctxIdx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	}); err != nil {
		errs = append(errs, "location: "+err.Error())
	}
	if _, err := col.Indexes().CreateOne(ctxIdx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}},
	}); err != nil {
		errs = append(errs, "user: "+err.Error())
	}
	if _, err := col.Indexes().CreateOne(ctxIdx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	}); err != nil {
		errs = append(errs, "timestamp: "+err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func redactURI(raw string) string {
	if raw == "" || !strings.Contains(raw, "://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = url.UserPassword("****", "****")
	return u.String()
}
