package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates all indexes the repositories rely on. Safe to call on
// every startup; CreateMany is a no-op for indexes that already exist.
//
// The unique compound index on deliverables (project_id, name, version) backs
// the version counter: two concurrent creates that race on the max-version
// lookup collide here instead of storing the same version twice.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		clientsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		projectsCollection: {
			{Keys: bson.D{{Key: "client_id", Value: 1}}},
		},
		tasksCollection: {
			{Keys: bson.D{{Key: "project_id", Value: 1}}},
			{Keys: bson.D{{Key: "assignee_id", Value: 1}}},
		},
		deliverablesCollection: {
			{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "name", Value: 1}, {Key: "version", Value: 1}}, Options: unique},
		},
		timeEntriesCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
			{Keys: bson.D{{Key: "project_id", Value: 1}}},
		},
		invoicesCollection: {
			{Keys: bson.D{{Key: "number", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "client_id", Value: 1}}},
		},
		activitiesCollection: {
			{Keys: bson.D{{Key: "occurred_at", Value: -1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
