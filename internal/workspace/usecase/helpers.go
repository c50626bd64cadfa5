package usecase

import (
	"context"
	"strings"

	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace"
	"rima-workspace/internal/workspace/repository"
)

// snapshotMessageLimit bounds how much conversation history the
// dashboard and insight paths load per render.
const snapshotMessageLimit = 100

// loadSnapshot assembles the full workspace aggregate: core fields
// plus members, tasks, spending, workspace-level messages and rooms.
func (uc *implUseCase) loadSnapshot(ctx context.Context, workspaceID string) (model.Workspace, error) {
	ws, err := uc.repo.GetWorkspace(ctx, workspaceID)
	if err != nil {
		return model.Workspace{}, err
	}
	if ws.ID == "" {
		return model.Workspace{}, workspace.ErrWorkspaceNotFound
	}

	if ws.Members, err = uc.repo.ListMembers(ctx, ws.ID); err != nil {
		return model.Workspace{}, err
	}
	if ws.Tasks, err = uc.repo.ListTasks(ctx, ws.ID); err != nil {
		return model.Workspace{}, err
	}
	if ws.Spending, err = uc.repo.ListSpending(ctx, ws.ID); err != nil {
		return model.Workspace{}, err
	}
	if ws.Messages, err = uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
		WorkspaceID: ws.ID,
		Limit:       snapshotMessageLimit,
	}); err != nil {
		return model.Workspace{}, err
	}
	if ws.Rooms, err = uc.repo.ListRooms(ctx, ws.ID); err != nil {
		return model.Workspace{}, err
	}

	return ws, nil
}

// requireRoom resolves a room and checks it belongs to the workspace.
func (uc *implUseCase) requireRoom(ctx context.Context, workspaceID, roomID string) (model.Room, error) {
	room, err := uc.repo.GetRoom(ctx, roomID)
	if err != nil {
		return model.Room{}, err
	}
	if room.ID == "" || room.WorkspaceID != workspaceID {
		return model.Room{}, workspace.ErrRoomNotFound
	}
	return room, nil
}

func emptyTitle(title string) bool {
	return strings.TrimSpace(title) == ""
}
