package usecase

import (
	"context"

	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace"
	"rima-workspace/internal/workspace/repository"
)

// CreateRoom adds a chat room to an existing workspace.
func (uc *implUseCase) CreateRoom(ctx context.Context, sc model.Scope, input workspace.CreateRoomInput) (workspace.CreateRoomOutput, error) {
	if emptyTitle(input.Title) {
		return workspace.CreateRoomOutput{}, workspace.ErrEmptyTitle
	}

	ws, err := uc.repo.GetWorkspace(ctx, input.WorkspaceID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateRoom GetWorkspace: %v", err)
		return workspace.CreateRoomOutput{}, err
	}
	if ws.ID == "" {
		return workspace.CreateRoomOutput{}, workspace.ErrWorkspaceNotFound
	}

	room, err := uc.repo.CreateRoom(ctx, repository.CreateRoomOptions{
		WorkspaceID: ws.ID,
		Title:       input.Title,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateRoom CreateRoom: %v", err)
		return workspace.CreateRoomOutput{}, err
	}

	return workspace.CreateRoomOutput{Room: room}, nil
}

// ListRooms returns the rooms of a workspace.
func (uc *implUseCase) ListRooms(ctx context.Context, sc model.Scope, workspaceID string) (workspace.ListRoomsOutput, error) {
	ws, err := uc.repo.GetWorkspace(ctx, workspaceID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRooms GetWorkspace: %v", err)
		return workspace.ListRoomsOutput{}, err
	}
	if ws.ID == "" {
		return workspace.ListRoomsOutput{}, workspace.ErrWorkspaceNotFound
	}

	rooms, err := uc.repo.ListRooms(ctx, ws.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRooms ListRooms: %v", err)
		return workspace.ListRoomsOutput{}, err
	}

	return workspace.ListRoomsOutput{Rooms: rooms, Count: len(rooms)}, nil
}
