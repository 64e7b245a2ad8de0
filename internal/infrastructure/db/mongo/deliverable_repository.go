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

const deliverablesCollection = "deliverables"

// DeliverableRepository persists deliverables.
type DeliverableRepository struct {
	coll *mongo.Collection
}

func NewDeliverableRepository(db *mongo.Database) *DeliverableRepository {
	return &DeliverableRepository{coll: db.Collection(deliverablesCollection)}
}

func (r *DeliverableRepository) Create(ctx context.Context, d *domain.Deliverable) (*domain.Deliverable, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *d
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert deliverable: %w", err)
	}
	return &created, nil
}

func (r *DeliverableRepository) FindByID(ctx context.Context, id string) (*domain.Deliverable, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.Deliverable
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDeliverableNotFound
		}
		return nil, fmt.Errorf("find deliverable: %w", err)
	}
	return &d, nil
}

func (r *DeliverableRepository) List(ctx context.Context, filter ports.ListDeliverablesFilter) ([]*domain.Deliverable, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ProjectID != "" {
		query["project_id"] = filter.ProjectID
	}
	if filter.ProjectIDs != nil {
		query["project_id"] = bson.M{"$in": filter.ProjectIDs}
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Name != "" {
		query["name"] = filter.Name
	}

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
	}))
	if err != nil {
		return nil, fmt.Errorf("list deliverables: %w", err)
	}
	defer cur.Close(ctx)

	deliverables := []*domain.Deliverable{}
	for cur.Next(ctx) {
		var d domain.Deliverable
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode deliverable: %w", err)
		}
		deliverables = append(deliverables, &d)
	}
	return deliverables, cur.Err()
}

func (r *DeliverableRepository) Update(ctx context.Context, d *domain.Deliverable) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": d.ID}, d)
	if err != nil {
		return fmt.Errorf("update deliverable: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDeliverableNotFound
	}
	return nil
}

func (r *DeliverableRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete deliverable: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDeliverableNotFound
	}
	return nil
}

// MaxVersion returns the highest version stored for (projectID, name), or 0
// when no deliverable with that name exists under the project.
func (r *DeliverableRepository) MaxVersion(ctx context.Context, projectID, name string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.Deliverable
	err := r.coll.FindOne(ctx,
		bson.M{"project_id": projectID, "name": name},
		options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}}),
	).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, fmt.Errorf("max deliverable version: %w", err)
	}
	return d.Version, nil
}

func (r *DeliverableRepository) CountByProject(ctx context.Context, projectID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"project_id": projectID})
}
