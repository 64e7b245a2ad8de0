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

const invoicesCollection = "invoices"

// InvoiceRepository persists invoices. Line items are embedded in the invoice
// document, so replace-on-update is a single atomic write.
type InvoiceRepository struct {
	coll *mongo.Collection
}

func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{coll: db.Collection(invoicesCollection)}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *inv
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	return &created, nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var inv domain.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&inv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("find invoice: %w", err)
	}
	return &inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context, filter ports.ListInvoicesFilter) ([]*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ClientID != "" {
		query["client_id"] = filter.ClientID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "issue_date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer cur.Close(ctx)

	invoices := []*domain.Invoice{}
	for cur.Next(ctx) {
		var inv domain.Invoice
		if err := cur.Decode(&inv); err != nil {
			return nil, fmt.Errorf("decode invoice: %w", err)
		}
		invoices = append(invoices, &inv)
	}
	return invoices, cur.Err()
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *domain.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": inv.ID}, inv)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}
