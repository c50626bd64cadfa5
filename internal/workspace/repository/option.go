package repository

import (
	"time"

	"rima-workspace/internal/model"
)

// CreateWorkspaceOptions holds the parameters for creating a workspace.
type CreateWorkspaceOptions struct {
	Title    string
	Budget   string
	Deadline string
	Progress *int
}

// CreateRoomOptions holds the parameters for creating a room.
type CreateRoomOptions struct {
	WorkspaceID string
	Title       string
}

// CreateMessageOptions holds the parameters for storing one message.
// RoomID is empty for workspace-level messages.
type CreateMessageOptions struct {
	WorkspaceID string
	RoomID      string
	Sender      model.Sender
	Content     string
	Timestamp   time.Time
}

// ListMessagesOptions scopes and bounds a message listing. A zero
// Limit means the default page size.
type ListMessagesOptions struct {
	WorkspaceID string
	RoomID      string
	Limit       int
}

// CreateTaskOptions holds the parameters for persisting a task. ID is
// optional: extracted tasks carry their deterministic IDs and are
// upserted, manual tasks leave it empty and get a generated one.
type CreateTaskOptions struct {
	ID          string
	WorkspaceID string
	RoomID      string
	Title       string
	Owner       string
	Assignee    string
	DueDate     string
	Deadline    string
	Status      model.TaskStatus
	Priority    model.TaskPriority
	Progress    *int
	Source      model.TaskSource
	Extracted   *model.Extraction
}

// UpdateTaskStatusOptions holds a completion transition.
type UpdateTaskStatusOptions struct {
	TaskID    string
	Completed bool
	Status    model.TaskStatus
}

// CreateSpendingOptions holds the parameters for one spending entry.
type CreateSpendingOptions struct {
	WorkspaceID string
	Amount      string
	Category    string
}

// AddMemberOptions attaches a user to a workspace.
type AddMemberOptions struct {
	WorkspaceID string
	User        model.User
}
