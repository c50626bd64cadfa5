package usecase

import (
	"context"
	"errors"
	"testing"

	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace"
)

func TestDashboard(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		uc := newTestUseCase(t, &mockRepo{})

		_, err := uc.Dashboard(context.Background(), testScope, "nope")
		if !errors.Is(err, workspace.ErrWorkspaceNotFound) {
			t.Errorf("error = %v, want ErrWorkspaceNotFound", err)
		}
	})

	t.Run("Only Relevant Presets", func(t *testing.T) {
		repo := &mockRepo{
			getWorkspaceFunc: func(ctx context.Context, id string) (model.Workspace, error) {
				return model.Workspace{ID: id, Title: "Launch", Deadline: "2026-01-01"}, nil
			},
		}
		uc := newTestUseCase(t, repo)

		out, err := uc.Dashboard(context.Background(), testScope, "ws-1")
		if err != nil {
			t.Fatalf("Dashboard() error = %v", err)
		}
		if len(out.Presets) != 1 {
			t.Fatalf("expected 1 preset, got %d", len(out.Presets))
		}
		if out.Presets[0].ID != "deadline" || out.Presets[0].Data.Value != "2026-01-01" {
			t.Errorf("unexpected preset: %+v", out.Presets[0])
		}
	})

	t.Run("Renders Aggregates", func(t *testing.T) {
		repo := &mockRepo{
			getWorkspaceFunc: func(ctx context.Context, id string) (model.Workspace, error) {
				return model.Workspace{ID: id, Title: "Launch", Budget: "€1000"}, nil
			},
			listSpendingFunc: func(ctx context.Context, workspaceID string) ([]model.SpendingEntry, error) {
				return []model.SpendingEntry{
					{ID: "s1", Amount: "€400"},
					{ID: "s2", Amount: "€99.5"},
				}, nil
			},
		}
		uc := newTestUseCase(t, repo)

		out, err := uc.Dashboard(context.Background(), testScope, "ws-1")
		if err != nil {
			t.Fatalf("Dashboard() error = %v", err)
		}
		if len(out.Presets) != 2 {
			t.Fatalf("expected budget and spending presets, got %+v", out.Presets)
		}
		if out.Presets[1].ID != "spending" || out.Presets[1].Data.Value != "€499.50" {
			t.Errorf("unexpected spending preset: %+v", out.Presets[1])
		}
	})
}

func TestInsights(t *testing.T) {
	repoWithBudget := func(spendingAmount string) *mockRepo {
		return &mockRepo{
			getWorkspaceFunc: func(ctx context.Context, id string) (model.Workspace, error) {
				return model.Workspace{ID: id, Title: "Launch", Budget: "€1000"}, nil
			},
			listSpendingFunc: func(ctx context.Context, workspaceID string) ([]model.SpendingEntry, error) {
				return []model.SpendingEntry{{ID: "s1", Amount: spendingAmount}}, nil
			},
			getRoomFunc: func(ctx context.Context, id string) (model.Room, error) {
				return model.Room{ID: id, WorkspaceID: "ws-1", Title: "general"}, nil
			},
		}
	}

	hasFinance := func(insights []model.Insight) bool {
		for _, in := range insights {
			if in.Category == model.InsightFinance {
				return true
			}
		}
		return false
	}

	t.Run("Workspace Scope Includes Finance", func(t *testing.T) {
		uc := newTestUseCase(t, repoWithBudget("€900"))

		out, err := uc.Insights(context.Background(), testScope, workspace.InsightsInput{WorkspaceID: "ws-1"})
		if err != nil {
			t.Fatalf("Insights() error = %v", err)
		}
		if !hasFinance(out.Insights) {
			t.Errorf("expected a finance insight, got %+v", out.Insights)
		}
	})

	t.Run("Room Scope Skips Finance", func(t *testing.T) {
		uc := newTestUseCase(t, repoWithBudget("€900"))

		out, err := uc.Insights(context.Background(), testScope, workspace.InsightsInput{
			WorkspaceID: "ws-1",
			RoomID:      "r1",
		})
		if err != nil {
			t.Fatalf("Insights() error = %v", err)
		}
		if hasFinance(out.Insights) {
			t.Errorf("finance insight should not apply at room scope: %+v", out.Insights)
		}
	})

	t.Run("Empty Workspace Falls Back", func(t *testing.T) {
		repo := &mockRepo{
			getWorkspaceFunc: func(ctx context.Context, id string) (model.Workspace, error) {
				return model.Workspace{ID: id, Title: "Launch"}, nil
			},
		}
		uc := newTestUseCase(t, repo)

		out, err := uc.Insights(context.Background(), testScope, workspace.InsightsInput{WorkspaceID: "ws-1"})
		if err != nil {
			t.Fatalf("Insights() error = %v", err)
		}
		if len(out.Insights) != 1 || out.Insights[0].Category != model.InsightSocial {
			t.Fatalf("expected the single fallback insight, got %+v", out.Insights)
		}
	})
}
