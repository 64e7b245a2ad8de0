package domain

import "time"

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "PLANNING"
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectArchived  ProjectStatus = "ARCHIVED"
)

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted, ProjectArchived:
		return true
	}
	return false
}

// Project is a client engagement grouping tasks, deliverables and time.
type Project struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	ClientID    string        `json:"client_id" bson:"client_id"`
	Name        string        `json:"name" bson:"name"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Status      ProjectStatus `json:"status" bson:"status"`
	StartDate   time.Time     `json:"start_date" bson:"start_date"`
	DueDate     time.Time     `json:"due_date,omitempty" bson:"due_date,omitempty"`
	BudgetCents int64         `json:"budget_cents,omitempty" bson:"budget_cents,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
