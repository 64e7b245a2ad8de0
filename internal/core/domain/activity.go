package domain

import "time"

// Activity is one entry in the back-office audit feed, recorded
// asynchronously after a successful mutation.
type Activity struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	ActorID    string    `json:"actor_id" bson:"actor_id"`
	ActorEmail string    `json:"actor_email" bson:"actor_email"`
	Action     string    `json:"action" bson:"action"`
	Entity     string    `json:"entity" bson:"entity"`
	EntityID   string    `json:"entity_id" bson:"entity_id"`
	OccurredAt time.Time `json:"occurred_at" bson:"occurred_at"`
}
