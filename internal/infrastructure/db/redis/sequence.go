package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// InvoiceSequence allocates invoice numbers from a per-year Redis counter.
// INCR is atomic, so numbers are unique and gap-free across API instances.
// Key format: invoice_seq:<year>
type InvoiceSequence struct {
	client *redis.Client
}

// NewInvoiceSequence creates an InvoiceSequence wrapping the given client.
func NewInvoiceSequence(client *redis.Client) *InvoiceSequence {
	return &InvoiceSequence{client: client}
}

// Next returns the next counter value for the given year, starting at 1.
func (s *InvoiceSequence) Next(ctx context.Context, year int) (int64, error) {
	n, err := s.client.Incr(ctx, s.key(year)).Result()
	if err != nil {
		return 0, fmt.Errorf("invoice sequence: %w", err)
	}
	return n, nil
}

func (s *InvoiceSequence) key(year int) string {
	return fmt.Sprintf("invoice_seq:%d", year)
}
