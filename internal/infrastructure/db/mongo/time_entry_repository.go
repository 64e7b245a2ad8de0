package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

const timeEntriesCollection = "time_entries"

// TimeEntryRepository persists time entries.
type TimeEntryRepository struct {
	coll *mongo.Collection
}

func NewTimeEntryRepository(db *mongo.Database) *TimeEntryRepository {
	return &TimeEntryRepository{coll: db.Collection(timeEntriesCollection)}
}

func (r *TimeEntryRepository) Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *e
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert time entry: %w", err)
	}
	return &created, nil
}

func (r *TimeEntryRepository) FindByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.TimeEntry
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTimeEntryNotFound
		}
		return nil, fmt.Errorf("find time entry: %w", err)
	}
	return &e, nil
}

func (r *TimeEntryRepository) List(ctx context.Context, filter ports.ListTimeEntriesFilter) ([]*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.ProjectID != "" {
		query["project_id"] = filter.ProjectID
	}
	if filter.ProjectIDs != nil {
		query["project_id"] = bson.M{"$in": filter.ProjectIDs}
	}
	if filter.BillableOnly {
		query["billable"] = true
	}

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "started_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer cur.Close(ctx)

	entries := []*domain.TimeEntry{}
	for cur.Next(ctx) {
		var e domain.TimeEntry
		if err := cur.Decode(&e); err != nil {
			return nil, fmt.Errorf("decode time entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, cur.Err()
}

func (r *TimeEntryRepository) Update(ctx context.Context, e *domain.TimeEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		return fmt.Errorf("update time entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTimeEntryNotFound
	}
	return nil
}

func (r *TimeEntryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTimeEntryNotFound
	}
	return nil
}

func (r *TimeEntryRepository) CountByProject(ctx context.Context, projectID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"project_id": projectID})
}
