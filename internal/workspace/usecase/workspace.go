package usecase

import (
	"context"

	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace"
	"rima-workspace/internal/workspace/repository"
)

// CreateWorkspace creates a workspace and attaches the initial members.
func (uc *implUseCase) CreateWorkspace(ctx context.Context, sc model.Scope, input workspace.CreateWorkspaceInput) (workspace.CreateWorkspaceOutput, error) {
	if emptyTitle(input.Title) {
		return workspace.CreateWorkspaceOutput{}, workspace.ErrEmptyTitle
	}

	ws, err := uc.repo.CreateWorkspace(ctx, repository.CreateWorkspaceOptions{
		Title:    input.Title,
		Budget:   input.Budget,
		Deadline: input.Deadline,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateWorkspace CreateWorkspace: %v", err)
		return workspace.CreateWorkspaceOutput{}, err
	}

	for _, member := range input.Members {
		added, err := uc.repo.AddMember(ctx, repository.AddMemberOptions{
			WorkspaceID: ws.ID,
			User:        member,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.CreateWorkspace AddMember: %v", err)
			return workspace.CreateWorkspaceOutput{}, err
		}
		ws.Members = append(ws.Members, added)
	}

	return workspace.CreateWorkspaceOutput{Workspace: ws}, nil
}

// ListWorkspaces returns all workspaces, core fields only.
func (uc *implUseCase) ListWorkspaces(ctx context.Context, sc model.Scope) (workspace.ListWorkspacesOutput, error) {
	workspaces, err := uc.repo.ListWorkspaces(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListWorkspaces: %v", err)
		return workspace.ListWorkspacesOutput{}, err
	}

	return workspace.ListWorkspacesOutput{
		Workspaces: workspaces,
		Count:      len(workspaces),
	}, nil
}

// DetailWorkspace returns the full aggregate snapshot.
func (uc *implUseCase) DetailWorkspace(ctx context.Context, sc model.Scope, id string) (workspace.DetailWorkspaceOutput, error) {
	ws, err := uc.loadSnapshot(ctx, id)
	if err != nil {
		if err != workspace.ErrWorkspaceNotFound {
			uc.l.Errorf(ctx, "uc.DetailWorkspace loadSnapshot: %v", err)
		}
		return workspace.DetailWorkspaceOutput{}, err
	}

	return workspace.DetailWorkspaceOutput{Workspace: ws}, nil
}
