package workspace

import (
	"rima-workspace/internal/dashboard"
	"rima-workspace/internal/model"
)

// CreateWorkspaceInput is the input for workspace creation. Budget and
// Deadline are free-form display strings, empty means unset.
type CreateWorkspaceInput struct {
	Title    string
	Budget   string
	Deadline string
	Members  []model.User
}

type CreateWorkspaceOutput struct {
	Workspace model.Workspace
}

type ListWorkspacesOutput struct {
	Workspaces []model.Workspace
	Count      int
}

type DetailWorkspaceOutput struct {
	Workspace model.Workspace
}

type CreateRoomInput struct {
	WorkspaceID string
	Title       string
}

type CreateRoomOutput struct {
	Room model.Room
}

type ListRoomsOutput struct {
	Rooms []model.Room
	Count int
}

// PostMessageInput carries one user message. RoomID is optional; an
// empty value posts to the workspace-level conversation.
type PostMessageInput struct {
	WorkspaceID string
	RoomID      string
	Content     string
}

// PostMessageOutput returns the stored user message together with the
// assistant's reply.
type PostMessageOutput struct {
	Message model.Message
	Reply   model.Message
}

type ListMessagesInput struct {
	WorkspaceID string
	RoomID      string
	Limit       int
}

type ListMessagesOutput struct {
	Messages []model.Message
	Count    int
}

type ExtractTasksInput struct {
	WorkspaceID string
	RoomID      string
}

type ExtractTasksOutput struct {
	Tasks []model.Task
	Count int
}

type CreateTaskInput struct {
	WorkspaceID string
	RoomID      string
	Title       string
	Assignee    string
	DueDate     string
	Priority    model.TaskPriority
}

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
	Count int
}

type SetTaskCompletionInput struct {
	TaskID    string
	Completed bool
}

type SetTaskCompletionOutput struct {
	Task model.Task
}

type AddSpendingInput struct {
	WorkspaceID string
	Amount      string
	Category    string
}

type AddSpendingOutput struct {
	Entry model.SpendingEntry
}

// PresetView is one rendered dashboard widget.
type PresetView struct {
	ID    string
	Title string
	Icon  string
	Data  dashboard.RenderData
}

type DashboardOutput struct {
	Presets []PresetView
}

type InsightsInput struct {
	WorkspaceID string
	RoomID      string
}

type InsightsOutput struct {
	Insights []model.Insight
}
