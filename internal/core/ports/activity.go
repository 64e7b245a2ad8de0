package ports

import (
	"context"
	"time"

	"github.com/creomotion/agency-api/internal/core/domain"
)

// ActivityInput is one audit-feed record queued after a successful mutation.
type ActivityInput struct {
	ActorID    string
	ActorEmail string
	Action     string
	Entity     string
	EntityID   string
	OccurredAt time.Time
}

// ActivityRepository defines persistence for the audit feed.
type ActivityRepository interface {
	Insert(ctx context.Context, a *domain.Activity) error
	ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error)
}

// ActivityService records and reads the audit feed. Record is called from the
// dispatcher workers, never from the request path.
type ActivityService interface {
	Record(ctx context.Context, input ActivityInput) error
	Recent(ctx context.Context, limit int) ([]*domain.Activity, error)
}
