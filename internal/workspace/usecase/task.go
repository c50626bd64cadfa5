package usecase

import (
	"context"

	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace"
	"rima-workspace/internal/workspace/repository"
)

// ExtractTasks runs the extractor over stored messages and persists
// the derived tasks. Deterministic task IDs make re-extraction an
// upsert rather than a duplication.
func (uc *implUseCase) ExtractTasks(ctx context.Context, sc model.Scope, input workspace.ExtractTasksInput) (workspace.ExtractTasksOutput, error) {
	ws, err := uc.repo.GetWorkspace(ctx, input.WorkspaceID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExtractTasks GetWorkspace: %v", err)
		return workspace.ExtractTasksOutput{}, err
	}
	if ws.ID == "" {
		return workspace.ExtractTasksOutput{}, workspace.ErrWorkspaceNotFound
	}

	if input.RoomID != "" {
		if _, err := uc.requireRoom(ctx, ws.ID, input.RoomID); err != nil {
			return workspace.ExtractTasksOutput{}, err
		}
	}

	messages, err := uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
		WorkspaceID: ws.ID,
		RoomID:      input.RoomID,
		Limit:       snapshotMessageLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExtractTasks ListMessages: %v", err)
		return workspace.ExtractTasksOutput{}, err
	}

	extracted := uc.extractor.ExtractFromMessages(messages, ws.ID, input.RoomID)
	if len(extracted) == 0 {
		return workspace.ExtractTasksOutput{}, nil
	}

	opts := make([]repository.CreateTaskOptions, len(extracted))
	for i, task := range extracted {
		opts[i] = repository.CreateTaskOptions{
			ID:          task.ID,
			WorkspaceID: task.WorkspaceID,
			RoomID:      task.RoomID,
			Title:       task.Title,
			Owner:       task.Owner,
			Assignee:    task.Assignee,
			DueDate:     task.DueDate,
			Deadline:    task.Deadline,
			Status:      task.Status,
			Priority:    task.Priority,
			Progress:    task.Progress,
			Source:      model.TaskSourceChat,
			Extracted:   task.Extracted,
		}
	}

	tasks, err := uc.repo.CreateTasksBatch(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExtractTasks CreateTasksBatch: %v", err)
		return workspace.ExtractTasksOutput{}, err
	}

	return workspace.ExtractTasksOutput{Tasks: tasks, Count: len(tasks)}, nil
}

// CreateTask adds a manually entered task owned by the caller.
func (uc *implUseCase) CreateTask(ctx context.Context, sc model.Scope, input workspace.CreateTaskInput) (workspace.CreateTaskOutput, error) {
	if emptyTitle(input.Title) {
		return workspace.CreateTaskOutput{}, workspace.ErrEmptyTitle
	}

	ws, err := uc.repo.GetWorkspace(ctx, input.WorkspaceID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTask GetWorkspace: %v", err)
		return workspace.CreateTaskOutput{}, err
	}
	if ws.ID == "" {
		return workspace.CreateTaskOutput{}, workspace.ErrWorkspaceNotFound
	}

	if input.RoomID != "" {
		if _, err := uc.requireRoom(ctx, ws.ID, input.RoomID); err != nil {
			return workspace.CreateTaskOutput{}, err
		}
	}

	task, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		WorkspaceID: ws.ID,
		RoomID:      input.RoomID,
		Title:       input.Title,
		Owner:       sc.Username,
		Assignee:    input.Assignee,
		DueDate:     input.DueDate,
		Status:      model.TaskStatusPending,
		Priority:    input.Priority,
		Source:      model.TaskSourceManual,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTask CreateTask: %v", err)
		return workspace.CreateTaskOutput{}, err
	}

	return workspace.CreateTaskOutput{Task: task}, nil
}

// ListTasks returns the tasks of a workspace.
func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope, workspaceID string) (workspace.ListTasksOutput, error) {
	ws, err := uc.repo.GetWorkspace(ctx, workspaceID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks GetWorkspace: %v", err)
		return workspace.ListTasksOutput{}, err
	}
	if ws.ID == "" {
		return workspace.ListTasksOutput{}, workspace.ErrWorkspaceNotFound
	}

	tasks, err := uc.repo.ListTasks(ctx, ws.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks ListTasks: %v", err)
		return workspace.ListTasksOutput{}, err
	}

	return workspace.ListTasksOutput{Tasks: tasks, Count: len(tasks)}, nil
}

// SetTaskCompletion marks a task completed or reopens it as pending.
// Completion toggling lives here; the extractor only reports what the
// chat said.
func (uc *implUseCase) SetTaskCompletion(ctx context.Context, sc model.Scope, input workspace.SetTaskCompletionInput) (workspace.SetTaskCompletionOutput, error) {
	task, err := uc.repo.GetTask(ctx, input.TaskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetTaskCompletion GetTask: %v", err)
		return workspace.SetTaskCompletionOutput{}, err
	}
	if task.ID == "" {
		return workspace.SetTaskCompletionOutput{}, workspace.ErrTaskNotFound
	}

	status := model.TaskStatusPending
	if input.Completed {
		status = model.TaskStatusCompleted
	}

	updated, err := uc.repo.UpdateTaskStatus(ctx, repository.UpdateTaskStatusOptions{
		TaskID:    task.ID,
		Completed: input.Completed,
		Status:    status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetTaskCompletion UpdateTaskStatus: %v", err)
		return workspace.SetTaskCompletionOutput{}, err
	}

	return workspace.SetTaskCompletionOutput{Task: updated}, nil
}
