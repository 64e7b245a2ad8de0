package domain

import "time"

// TaskStatus represents the board column a task sits in.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskReview     TaskStatus = "REVIEW"
	TaskDone       TaskStatus = "DONE"
)

// ValidTaskStatus reports whether s is a known task status.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskReview, TaskDone:
		return true
	}
	return false
}

// TaskPriority orders tasks within a column.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// ValidTaskPriority reports whether p is a known priority.
func ValidTaskPriority(p TaskPriority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task is a unit of work inside a project, optionally assigned to a staff user.
type Task struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	ProjectID   string       `json:"project_id" bson:"project_id"`
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Status      TaskStatus   `json:"status" bson:"status"`
	Priority    TaskPriority `json:"priority" bson:"priority"`
	AssigneeID  string       `json:"assignee_id,omitempty" bson:"assignee_id,omitempty"`
	DueDate     time.Time    `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" bson:"updated_at"`
}
