package workspace

import (
	"context"

	"rima-workspace/internal/model"
)

// UseCase defines the business logic interface for the workspace domain.
type UseCase interface {
	// CreateWorkspace creates a workspace with an optional budget and deadline.
	CreateWorkspace(ctx context.Context, sc model.Scope, input CreateWorkspaceInput) (CreateWorkspaceOutput, error)

	// ListWorkspaces returns all workspaces, core fields only.
	ListWorkspaces(ctx context.Context, sc model.Scope) (ListWorkspacesOutput, error)

	// DetailWorkspace returns the full aggregate snapshot of one workspace.
	DetailWorkspace(ctx context.Context, sc model.Scope, id string) (DetailWorkspaceOutput, error)

	// CreateRoom adds a chat room to a workspace.
	CreateRoom(ctx context.Context, sc model.Scope, input CreateRoomInput) (CreateRoomOutput, error)

	// ListRooms returns the rooms of a workspace.
	ListRooms(ctx context.Context, sc model.Scope, workspaceID string) (ListRoomsOutput, error)

	// PostMessage stores the user's message and the assistant's simulated
	// reply. Messages are immutable once stored.
	PostMessage(ctx context.Context, sc model.Scope, input PostMessageInput) (PostMessageOutput, error)

	// ListMessages returns messages newest-last, workspace- or room-scoped.
	ListMessages(ctx context.Context, sc model.Scope, input ListMessagesInput) (ListMessagesOutput, error)

	// ExtractTasks runs the task extractor over stored messages and
	// persists the derived tasks.
	ExtractTasks(ctx context.Context, sc model.Scope, input ExtractTasksInput) (ExtractTasksOutput, error)

	// CreateTask adds a manually entered task.
	CreateTask(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)

	// ListTasks returns the tasks of a workspace.
	ListTasks(ctx context.Context, sc model.Scope, workspaceID string) (ListTasksOutput, error)

	// SetTaskCompletion marks a task completed or reopens it.
	SetTaskCompletion(ctx context.Context, sc model.Scope, input SetTaskCompletionInput) (SetTaskCompletionOutput, error)

	// AddSpending records a spending entry against the workspace budget.
	AddSpending(ctx context.Context, sc model.Scope, input AddSpendingInput) (AddSpendingOutput, error)

	// Dashboard returns the relevant presets rendered for the workspace.
	Dashboard(ctx context.Context, sc model.Scope, workspaceID string) (DashboardOutput, error)

	// Insights generates insights over the current snapshot, optionally
	// scoped to one room.
	Insights(ctx context.Context, sc model.Scope, input InsightsInput) (InsightsOutput, error)
}
