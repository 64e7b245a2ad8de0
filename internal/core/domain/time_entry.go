package domain

import "time"

// TimeEntry records work performed by a staff user against a project, and
// optionally against a specific task within it.
type TimeEntry struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	UserID          string    `json:"user_id" bson:"user_id"`
	ProjectID       string    `json:"project_id" bson:"project_id"`
	TaskID          string    `json:"task_id,omitempty" bson:"task_id,omitempty"`
	Description     string    `json:"description" bson:"description"`
	StartedAt       time.Time `json:"started_at" bson:"started_at"`
	DurationMinutes int       `json:"duration_minutes" bson:"duration_minutes"`
	Billable        bool      `json:"billable" bson:"billable"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}
