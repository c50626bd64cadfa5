package model

import "time"

// DueDateNotSet is the sentinel stored when a task has no resolved due date.
const DueDateNotSet = "Not set"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
)

// TaskPriority is the urgency bucket of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// TaskSource records how a task came to exist.
type TaskSource string

const (
	TaskSourceChat   TaskSource = "chat"
	TaskSourceManual TaskSource = "manual"
)

// Extraction links a chat-derived task back to the message it came from.
type Extraction struct {
	MessageID  string    `json:"message_id"`
	Timestamp  time.Time `json:"timestamp"`
	Confidence float64   `json:"confidence"` // heuristic score in [0,1], not a probability
}

// Task is a unit of work, either extracted from chat or created manually.
// Optional fields use pointers (Progress) or empty values (Assignee,
// Deadline, Status, Priority) to distinguish "unset" from a real value.
type Task struct {
	ID          string       `json:"id"`
	WorkspaceID string       `json:"workspace_id"`
	RoomID      string       `json:"room_id,omitempty"`
	Title       string       `json:"title"`
	Owner       string       `json:"owner"`
	Assignee    string       `json:"assignee,omitempty"`
	Completed   bool         `json:"completed"`
	DueDate     string       `json:"due_date"` // ISO date or DueDateNotSet
	Deadline    string       `json:"deadline,omitempty"` // original phrase text
	Progress    *int         `json:"progress,omitempty"` // 0–100
	Status      TaskStatus   `json:"status,omitempty"`
	Priority    TaskPriority `json:"priority,omitempty"`
	Source      TaskSource   `json:"source"`
	Extracted   *Extraction  `json:"extracted_from,omitempty"`
}
