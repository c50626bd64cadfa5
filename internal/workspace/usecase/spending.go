package usecase

import (
	"context"
	"strings"

	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace"
	"rima-workspace/internal/workspace/repository"
)

// AddSpending records a spending entry. The amount stays free text;
// numeric interpretation happens at render time.
func (uc *implUseCase) AddSpending(ctx context.Context, sc model.Scope, input workspace.AddSpendingInput) (workspace.AddSpendingOutput, error) {
	if strings.TrimSpace(input.Amount) == "" {
		return workspace.AddSpendingOutput{}, workspace.ErrEmptyAmount
	}

	ws, err := uc.repo.GetWorkspace(ctx, input.WorkspaceID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddSpending GetWorkspace: %v", err)
		return workspace.AddSpendingOutput{}, err
	}
	if ws.ID == "" {
		return workspace.AddSpendingOutput{}, workspace.ErrWorkspaceNotFound
	}

	entry, err := uc.repo.CreateSpending(ctx, repository.CreateSpendingOptions{
		WorkspaceID: ws.ID,
		Amount:      input.Amount,
		Category:    input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddSpending CreateSpending: %v", err)
		return workspace.AddSpendingOutput{}, err
	}

	return workspace.AddSpendingOutput{Entry: entry}, nil
}
