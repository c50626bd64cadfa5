package insight_test

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"rima-workspace/internal/insight"
	"rima-workspace/internal/model"
	"rima-workspace/pkg/log"
)

func newGenerator() insight.Generator {
	return insight.New(log.NewNoop(), insight.NoDelay())
}

func generate(t *testing.T, snap insight.Snapshot) []model.Insight {
	t.Helper()
	got, err := newGenerator().Generate(context.Background(), snap)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return got
}

func financeInsights(insights []model.Insight) []model.Insight {
	var out []model.Insight
	for _, in := range insights {
		if in.Category == model.InsightFinance {
			out = append(out, in)
		}
	}
	return out
}

func TestGenerate_BudgetBands(t *testing.T) {
	workspaceWithSpending := func(amount string) model.Workspace {
		return model.Workspace{
			ID:       "ws-1",
			Title:    "Launch",
			Budget:   "€1000",
			Spending: []model.SpendingEntry{{ID: "s1", Amount: amount, Category: "venue"}},
		}
	}

	t.Run("Over 80 Percent", func(t *testing.T) {
		got := generate(t, insight.Snapshot{Workspace: workspaceWithSpending("€900")})

		finance := financeInsights(got)
		if len(finance) != 1 {
			t.Fatalf("expected exactly one finance insight, got %d", len(finance))
		}
		if !strings.Contains(finance[0].Text, "review expenses") {
			t.Errorf("expected 'review expenses' language, got %q", finance[0].Text)
		}
	})

	t.Run("Under 50 Percent", func(t *testing.T) {
		got := generate(t, insight.Snapshot{Workspace: workspaceWithSpending("€100")})

		finance := financeInsights(got)
		if len(finance) != 1 {
			t.Fatalf("expected exactly one finance insight, got %d", len(finance))
		}
		if !strings.Contains(finance[0].Text, "efficiently") {
			t.Errorf("expected 'efficiently' language, got %q", finance[0].Text)
		}
	})

	// 50-80% is a silent band: no finance insight is produced there.
	t.Run("Mid Band Is Silent", func(t *testing.T) {
		got := generate(t, insight.Snapshot{Workspace: workspaceWithSpending("€600")})

		if finance := financeInsights(got); len(finance) != 0 {
			t.Errorf("expected no finance insight at 60%%, got %+v", finance)
		}
	})

	// A budget string that parses to zero has no percentage to band;
	// no finance insight may leak an infinite or NaN figure.
	t.Run("Unparseable Budget Is Silent", func(t *testing.T) {
		for _, budget := range []string{"TBD", "€0"} {
			ws := workspaceWithSpending("€100")
			ws.Budget = budget
			got := generate(t, insight.Snapshot{Workspace: ws})

			if finance := financeInsights(got); len(finance) != 0 {
				t.Errorf("budget %q: expected no finance insight, got %+v", budget, finance)
			}
		}
	})

	t.Run("Room Scope Skips Budget", func(t *testing.T) {
		ws := workspaceWithSpending("€900")
		got := generate(t, insight.Snapshot{
			Workspace: ws,
			Room:      &model.Room{ID: "r1", WorkspaceID: ws.ID, Title: "general"},
		})

		if finance := financeInsights(got); len(finance) != 0 {
			t.Errorf("expected no finance insight at room scope, got %+v", finance)
		}
	})
}

func TestGenerate_OpenQuestions(t *testing.T) {
	msg := func(content string) model.Message {
		return model.Message{
			ID:      "m1",
			Sender:  model.UserSender(model.User{ID: "u1", Name: "Ana"}),
			Content: content,
		}
	}

	t.Run("Counts Question Messages", func(t *testing.T) {
		ws := model.Workspace{
			ID:    "ws-1",
			Title: "Launch",
			Messages: []model.Message{
				msg("when is the venue booked?"),
				msg("I'll check tomorrow"),
				msg("did we confirm catering?"),
			},
		}

		got := generate(t, insight.Snapshot{Workspace: ws})
		if len(got) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(got))
		}
		if got[0].Category != model.InsightSocial {
			t.Errorf("expected social category, got %q", got[0].Category)
		}
		if !strings.Contains(got[0].Text, "2 open questions") {
			t.Errorf("expected count of 2 questions, got %q", got[0].Text)
		}
	})

	t.Run("Only Last Ten Messages", func(t *testing.T) {
		ws := model.Workspace{ID: "ws-1", Title: "Launch"}
		ws.Messages = append(ws.Messages, msg("old question?"))
		for i := 0; i < 10; i++ {
			ws.Messages = append(ws.Messages, msg(fmt.Sprintf("status update %d", i)))
		}

		got := generate(t, insight.Snapshot{Workspace: ws})
		for _, in := range got {
			if strings.Contains(in.Text, "open question") {
				t.Errorf("question outside the last 10 messages was counted: %q", in.Text)
			}
		}
	})
}

func TestGenerate_TaskHealth(t *testing.T) {
	t.Run("Overdue Wins Over Planning", func(t *testing.T) {
		ws := model.Workspace{
			ID:    "ws-1",
			Title: "Launch",
			Tasks: []model.Task{
				{ID: "t1", Title: "Book venue", Status: model.TaskStatusPending, DueDate: "Overdue since Monday"},
				{ID: "t2", Title: "Send invites", Status: model.TaskStatusInProgress, DueDate: "2026-09-01"},
			},
		}

		got := generate(t, insight.Snapshot{Workspace: ws})
		if len(got) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(got))
		}
		if got[0].Category != model.InsightRisk {
			t.Errorf("expected risk category, got %q", got[0].Category)
		}
		if !strings.Contains(got[0].Text, "1 overdue") {
			t.Errorf("expected overdue count of 1, got %q", got[0].Text)
		}
	})

	t.Run("Open Tasks On Track", func(t *testing.T) {
		ws := model.Workspace{
			ID:    "ws-1",
			Title: "Launch",
			Tasks: []model.Task{
				{ID: "t1", Title: "Book venue", Status: model.TaskStatusPending, DueDate: "2026-09-01"},
				{ID: "t2", Title: "Send invites", Status: model.TaskStatusCompleted},
			},
		}

		got := generate(t, insight.Snapshot{Workspace: ws})
		if len(got) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(got))
		}
		if got[0].Category != model.InsightPlanning {
			t.Errorf("expected planning category, got %q", got[0].Category)
		}
		if !strings.Contains(got[0].Text, "on track") {
			t.Errorf("expected 'on track' language, got %q", got[0].Text)
		}
	})

	t.Run("All Completed Yields Nothing", func(t *testing.T) {
		ws := model.Workspace{
			ID:    "ws-1",
			Title: "Launch",
			Tasks: []model.Task{
				{ID: "t1", Title: "Book venue", Status: model.TaskStatusCompleted},
			},
		}

		got := generate(t, insight.Snapshot{Workspace: ws})
		if len(got) != 1 || got[0].Category != model.InsightSocial {
			t.Fatalf("expected only the fallback insight, got %+v", got)
		}
	})
}

func TestGenerate_ProgressBands(t *testing.T) {
	withProgress := func(p int) insight.Snapshot {
		return insight.Snapshot{Workspace: model.Workspace{ID: "ws-1", Title: "Launch", Progress: &p}}
	}

	t.Run("Approaching Completion", func(t *testing.T) {
		got := generate(t, withProgress(90))
		if len(got) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(got))
		}
		if got[0].Category != model.InsightPlanning || !strings.Contains(got[0].Text, "approaching completion") {
			t.Errorf("unexpected insight: %+v", got[0])
		}
	})

	t.Run("Early Stages", func(t *testing.T) {
		got := generate(t, withProgress(10))
		if len(got) != 1 {
			t.Fatalf("expected 1 insight, got %d", len(got))
		}
		if !strings.Contains(got[0].Text, "early stages") {
			t.Errorf("unexpected insight: %+v", got[0])
		}
	})

	// 25-75% is silent; an otherwise empty workspace falls back.
	t.Run("Mid Band Falls Through", func(t *testing.T) {
		got := generate(t, withProgress(50))
		if len(got) != 1 || got[0].Category != model.InsightSocial {
			t.Fatalf("expected only the fallback insight, got %+v", got)
		}
	})
}

func TestGenerate_Collaboration(t *testing.T) {
	ws := model.Workspace{
		ID:    "ws-1",
		Title: "Launch",
		Members: []model.User{
			{ID: "u1", Name: "Ana"},
			{ID: "u2", Name: "Sam"},
			{ID: "u3", Name: "Lena"},
		},
	}

	got := generate(t, insight.Snapshot{Workspace: ws})
	if len(got) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(got))
	}
	if got[0].Category != model.InsightSocial || !strings.Contains(got[0].Text, "3 people") {
		t.Errorf("unexpected insight: %+v", got[0])
	}
}

func TestGenerate_Fallback(t *testing.T) {
	t.Run("Workspace Title", func(t *testing.T) {
		got := generate(t, insight.Snapshot{Workspace: model.Workspace{ID: "ws-1", Title: "Side Projects"}})
		if len(got) != 1 {
			t.Fatalf("expected exactly one fallback insight, got %d", len(got))
		}
		if !strings.Contains(got[0].Text, "Side Projects") {
			t.Errorf("fallback should reference the workspace title, got %q", got[0].Text)
		}
	})

	t.Run("Room Title", func(t *testing.T) {
		got := generate(t, insight.Snapshot{
			Workspace: model.Workspace{ID: "ws-1", Title: "Side Projects"},
			Room:      &model.Room{ID: "r1", WorkspaceID: "ws-1", Title: "design-chat"},
		})
		if len(got) != 1 {
			t.Fatalf("expected exactly one fallback insight, got %d", len(got))
		}
		if !strings.Contains(got[0].Text, "design-chat") {
			t.Errorf("fallback should reference the room title, got %q", got[0].Text)
		}
	})
}

func TestGenerate_RulesAppendIndependently(t *testing.T) {
	progress := 90
	ws := model.Workspace{
		ID:       "ws-1",
		Title:    "Launch",
		Budget:   "€1000",
		Progress: &progress,
		Members:  []model.User{{ID: "u1", Name: "Ana"}, {ID: "u2", Name: "Sam"}},
		Messages: []model.Message{
			{ID: "m1", Sender: model.UserSender(model.User{ID: "u1", Name: "Ana"}), Content: "who owns the venue booking?"},
		},
		Tasks:    []model.Task{{ID: "t1", Title: "Book venue", Status: model.TaskStatusPending}},
		Spending: []model.SpendingEntry{{ID: "s1", Amount: "€900", Category: "venue"}},
	}

	got := generate(t, insight.Snapshot{Workspace: ws})
	if len(got) != 5 {
		t.Fatalf("expected 5 insights (questions, tasks, budget, members, progress), got %d: %+v", len(got), got)
	}

	wantCategories := []model.InsightCategory{
		model.InsightSocial,
		model.InsightPlanning,
		model.InsightFinance,
		model.InsightSocial,
		model.InsightPlanning,
	}
	for i, want := range wantCategories {
		if got[i].Category != want {
			t.Errorf("insight %d: category = %q, want %q", i, got[i].Category, want)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	ws := model.Workspace{
		ID:       "ws-1",
		Title:    "Launch",
		Budget:   "€1000",
		Spending: []model.SpendingEntry{{ID: "s1", Amount: "€900", Category: "venue"}},
		Members:  []model.User{{ID: "u1", Name: "Ana"}, {ID: "u2", Name: "Sam"}},
	}
	snap := insight.Snapshot{Workspace: ws}

	gen := insight.New(log.NewNoop(), insight.NoDelay())

	first, err := gen.Generate(context.Background(), snap)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Mutating a returned slice must not leak into later results.
	if len(first) > 0 {
		first[0].Text = "tampered"
	}

	second, err := gen.Generate(context.Background(), snap)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for _, in := range second {
		if in.Text == "tampered" {
			t.Fatal("cached insight was mutated through a returned slice")
		}
	}

	third, err := gen.Generate(context.Background(), snap)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !reflect.DeepEqual(second, third) {
		t.Errorf("repeated generation differs:\n%+v\n%+v", second, third)
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	gen := insight.New(log.NewNoop(), insight.NewSleepDelayer(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, insight.Snapshot{Workspace: model.Workspace{ID: "ws-1", Title: "Launch"}})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
