package repository

import (
	"context"

	"rima-workspace/internal/model"
)

// Repository is the persistence interface for the workspace domain.
// Reads that find nothing return zero values, not errors.
type Repository interface {
	CreateWorkspace(ctx context.Context, opt CreateWorkspaceOptions) (model.Workspace, error)
	ListWorkspaces(ctx context.Context) ([]model.Workspace, error)
	GetWorkspace(ctx context.Context, id string) (model.Workspace, error)

	CreateRoom(ctx context.Context, opt CreateRoomOptions) (model.Room, error)
	ListRooms(ctx context.Context, workspaceID string) ([]model.Room, error)
	GetRoom(ctx context.Context, id string) (model.Room, error)

	CreateMessage(ctx context.Context, opt CreateMessageOptions) (model.Message, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]model.Message, error)

	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	CreateTasksBatch(ctx context.Context, opts []CreateTaskOptions) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, workspaceID string) ([]model.Task, error)
	UpdateTaskStatus(ctx context.Context, opt UpdateTaskStatusOptions) (model.Task, error)

	CreateSpending(ctx context.Context, opt CreateSpendingOptions) (model.SpendingEntry, error)
	ListSpending(ctx context.Context, workspaceID string) ([]model.SpendingEntry, error)

	ListMembers(ctx context.Context, workspaceID string) ([]model.User, error)
	AddMember(ctx context.Context, opt AddMemberOptions) (model.User, error)
}
