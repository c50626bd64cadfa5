package usecase

import (
	"context"

	"rima-workspace/internal/dashboard"
	"rima-workspace/internal/insight"
	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace"
	"rima-workspace/internal/workspace/repository"
)

// Dashboard returns the relevant presets rendered over the current
// workspace snapshot.
func (uc *implUseCase) Dashboard(ctx context.Context, sc model.Scope, workspaceID string) (workspace.DashboardOutput, error) {
	ws, err := uc.loadSnapshot(ctx, workspaceID)
	if err != nil {
		if err != workspace.ErrWorkspaceNotFound {
			uc.l.Errorf(ctx, "uc.Dashboard loadSnapshot: %v", err)
		}
		return workspace.DashboardOutput{}, err
	}

	presets := dashboard.RelevantPresets(ws)
	views := make([]workspace.PresetView, len(presets))
	for i, p := range presets {
		views[i] = workspace.PresetView{
			ID:    p.ID,
			Title: p.Title,
			Icon:  p.Icon,
			Data:  p.RenderData(ws),
		}
	}

	return workspace.DashboardOutput{Presets: views}, nil
}

// Insights generates insights over the current snapshot, optionally
// scoped to one room's conversation.
func (uc *implUseCase) Insights(ctx context.Context, sc model.Scope, input workspace.InsightsInput) (workspace.InsightsOutput, error) {
	ws, err := uc.loadSnapshot(ctx, input.WorkspaceID)
	if err != nil {
		if err != workspace.ErrWorkspaceNotFound {
			uc.l.Errorf(ctx, "uc.Insights loadSnapshot: %v", err)
		}
		return workspace.InsightsOutput{}, err
	}

	snap := insight.Snapshot{Workspace: ws}
	if input.RoomID != "" {
		room, err := uc.requireRoom(ctx, ws.ID, input.RoomID)
		if err != nil {
			return workspace.InsightsOutput{}, err
		}
		if room.Messages, err = uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
			WorkspaceID: ws.ID,
			RoomID:      room.ID,
			Limit:       snapshotMessageLimit,
		}); err != nil {
			uc.l.Errorf(ctx, "uc.Insights ListMessages: %v", err)
			return workspace.InsightsOutput{}, err
		}
		snap.Room = &room
	}

	insights, err := uc.insights.Generate(ctx, snap)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Insights Generate: %v", err)
		return workspace.InsightsOutput{}, err
	}

	return workspace.InsightsOutput{Insights: insights}, nil
}
