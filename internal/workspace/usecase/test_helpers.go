package usecase

import (
	"context"

	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo implements repository.Repository with overridable function
// fields. Unset fields return zero values, matching the repository
// convention for missing data.
type mockRepo struct {
	createWorkspaceFunc  func(ctx context.Context, opt repository.CreateWorkspaceOptions) (model.Workspace, error)
	listWorkspacesFunc   func(ctx context.Context) ([]model.Workspace, error)
	getWorkspaceFunc     func(ctx context.Context, id string) (model.Workspace, error)
	createRoomFunc       func(ctx context.Context, opt repository.CreateRoomOptions) (model.Room, error)
	listRoomsFunc        func(ctx context.Context, workspaceID string) ([]model.Room, error)
	getRoomFunc          func(ctx context.Context, id string) (model.Room, error)
	createMessageFunc    func(ctx context.Context, opt repository.CreateMessageOptions) (model.Message, error)
	listMessagesFunc     func(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error)
	createTaskFunc       func(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error)
	createTasksBatchFunc func(ctx context.Context, opts []repository.CreateTaskOptions) ([]model.Task, error)
	getTaskFunc          func(ctx context.Context, id string) (model.Task, error)
	listTasksFunc        func(ctx context.Context, workspaceID string) ([]model.Task, error)
	updateTaskStatusFunc func(ctx context.Context, opt repository.UpdateTaskStatusOptions) (model.Task, error)
	createSpendingFunc   func(ctx context.Context, opt repository.CreateSpendingOptions) (model.SpendingEntry, error)
	listSpendingFunc     func(ctx context.Context, workspaceID string) ([]model.SpendingEntry, error)
	listMembersFunc      func(ctx context.Context, workspaceID string) ([]model.User, error)
	addMemberFunc        func(ctx context.Context, opt repository.AddMemberOptions) (model.User, error)
}

var _ repository.Repository = (*mockRepo)(nil)

func (m *mockRepo) CreateWorkspace(ctx context.Context, opt repository.CreateWorkspaceOptions) (model.Workspace, error) {
	if m.createWorkspaceFunc != nil {
		return m.createWorkspaceFunc(ctx, opt)
	}
	return model.Workspace{}, nil
}

func (m *mockRepo) ListWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	if m.listWorkspacesFunc != nil {
		return m.listWorkspacesFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepo) GetWorkspace(ctx context.Context, id string) (model.Workspace, error) {
	if m.getWorkspaceFunc != nil {
		return m.getWorkspaceFunc(ctx, id)
	}
	return model.Workspace{}, nil
}

func (m *mockRepo) CreateRoom(ctx context.Context, opt repository.CreateRoomOptions) (model.Room, error) {
	if m.createRoomFunc != nil {
		return m.createRoomFunc(ctx, opt)
	}
	return model.Room{}, nil
}

func (m *mockRepo) ListRooms(ctx context.Context, workspaceID string) ([]model.Room, error) {
	if m.listRoomsFunc != nil {
		return m.listRoomsFunc(ctx, workspaceID)
	}
	return nil, nil
}

func (m *mockRepo) GetRoom(ctx context.Context, id string) (model.Room, error) {
	if m.getRoomFunc != nil {
		return m.getRoomFunc(ctx, id)
	}
	return model.Room{}, nil
}

func (m *mockRepo) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.Message, error) {
	if m.createMessageFunc != nil {
		return m.createMessageFunc(ctx, opt)
	}
	return model.Message{}, nil
}

func (m *mockRepo) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	if m.listMessagesFunc != nil {
		return m.listMessagesFunc(ctx, opt)
	}
	return nil, nil
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.createTaskFunc != nil {
		return m.createTaskFunc(ctx, opt)
	}
	return model.Task{}, nil
}

func (m *mockRepo) CreateTasksBatch(ctx context.Context, opts []repository.CreateTaskOptions) ([]model.Task, error) {
	if m.createTasksBatchFunc != nil {
		return m.createTasksBatchFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	if m.getTaskFunc != nil {
		return m.getTaskFunc(ctx, id)
	}
	return model.Task{}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, workspaceID string) ([]model.Task, error) {
	if m.listTasksFunc != nil {
		return m.listTasksFunc(ctx, workspaceID)
	}
	return nil, nil
}

func (m *mockRepo) UpdateTaskStatus(ctx context.Context, opt repository.UpdateTaskStatusOptions) (model.Task, error) {
	if m.updateTaskStatusFunc != nil {
		return m.updateTaskStatusFunc(ctx, opt)
	}
	return model.Task{}, nil
}

func (m *mockRepo) CreateSpending(ctx context.Context, opt repository.CreateSpendingOptions) (model.SpendingEntry, error) {
	if m.createSpendingFunc != nil {
		return m.createSpendingFunc(ctx, opt)
	}
	return model.SpendingEntry{}, nil
}

func (m *mockRepo) ListSpending(ctx context.Context, workspaceID string) ([]model.SpendingEntry, error) {
	if m.listSpendingFunc != nil {
		return m.listSpendingFunc(ctx, workspaceID)
	}
	return nil, nil
}

func (m *mockRepo) ListMembers(ctx context.Context, workspaceID string) ([]model.User, error) {
	if m.listMembersFunc != nil {
		return m.listMembersFunc(ctx, workspaceID)
	}
	return nil, nil
}

func (m *mockRepo) AddMember(ctx context.Context, opt repository.AddMemberOptions) (model.User, error) {
	if m.addMemberFunc != nil {
		return m.addMemberFunc(ctx, opt)
	}
	return opt.User, nil
}
