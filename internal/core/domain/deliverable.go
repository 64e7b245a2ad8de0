package domain

import "time"

// DeliverableStatus represents the review state of a deliverable version.
type DeliverableStatus string

const (
	DeliverableDraft    DeliverableStatus = "DRAFT"
	DeliverableInReview DeliverableStatus = "IN_REVIEW"
	DeliverableApproved DeliverableStatus = "APPROVED"
	DeliverableRejected DeliverableStatus = "REJECTED"
)

// deliverableTransitions defines the allowed review state machine. A rejected
// deliverable can be resubmitted for review; approval is terminal.
var deliverableTransitions = map[DeliverableStatus][]DeliverableStatus{
	DeliverableDraft:    {DeliverableInReview},
	DeliverableInReview: {DeliverableApproved, DeliverableRejected},
	DeliverableRejected: {DeliverableInReview},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s DeliverableStatus) CanTransitionTo(next DeliverableStatus) bool {
	for _, allowed := range deliverableTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsReviewDecision reports whether s is one of the two states a portal client
// is allowed to apply.
func (s DeliverableStatus) IsReviewDecision() bool {
	return s == DeliverableApproved || s == DeliverableRejected
}

// ValidDeliverableStatus reports whether s is a known deliverable status.
func ValidDeliverableStatus(s DeliverableStatus) bool {
	switch s {
	case DeliverableDraft, DeliverableInReview, DeliverableApproved, DeliverableRejected:
		return true
	}
	return false
}

// Deliverable is a reviewable artifact produced for a project. Version is
// scoped to (project_id, name) and starts at 1; re-uploading the same name
// under the same project allocates the next version.
type Deliverable struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	ProjectID   string            `json:"project_id" bson:"project_id"`
	Name        string            `json:"name" bson:"name"`
	Version     int               `json:"version" bson:"version"`
	Status      DeliverableStatus `json:"status" bson:"status"`
	FileURL     string            `json:"file_url,omitempty" bson:"file_url,omitempty"`
	Notes       string            `json:"notes,omitempty" bson:"notes,omitempty"`
	ReviewToken string            `json:"review_token,omitempty" bson:"review_token,omitempty"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" bson:"updated_at"`
}
