package insight

import (
	"fmt"
	"strings"

	"rima-workspace/internal/dashboard"
	"rima-workspace/internal/model"
)

const recentMessageWindow = 10

// evaluate runs the fixed rule cascade over a snapshot. Rules append
// independently; they are not mutually exclusive. The mid-band gaps in
// the budget and progress rules (50-80% and 25-75% produce nothing)
// are intentional: only the extremes are flagged.
func evaluate(snap Snapshot) []model.Insight {
	var insights []model.Insight

	if in := openQuestions(snap.messages()); in != nil {
		insights = append(insights, *in)
	}

	if in := taskHealth(snap.Workspace.Tasks); in != nil {
		insights = append(insights, *in)
	}

	if snap.Room == nil {
		if in := budgetUsage(snap.Workspace); in != nil {
			insights = append(insights, *in)
		}
	}

	if len(snap.Workspace.Members) > 1 {
		insights = append(insights, model.Insight{
			Category: model.InsightSocial,
			Text:     fmt.Sprintf("%d people are collaborating here. Keep the conversation going.", len(snap.Workspace.Members)),
			Icon:     "👥",
		})
	}

	if in := progressStage(snap.Workspace.Progress); in != nil {
		insights = append(insights, *in)
	}

	if len(insights) == 0 {
		insights = append(insights, model.Insight{
			Category: model.InsightSocial,
			Text:     fmt.Sprintf("It's quiet in %s right now. Post a message or add a task to get things moving.", snap.title()),
			Icon:     "💬",
		})
	}

	return insights
}

func openQuestions(messages []model.Message) *model.Insight {
	if len(messages) > recentMessageWindow {
		messages = messages[len(messages)-recentMessageWindow:]
	}

	count := 0
	for _, m := range messages {
		if strings.Contains(m.Content, "?") {
			count++
		}
	}
	if count == 0 {
		return nil
	}

	return &model.Insight{
		Category: model.InsightSocial,
		Text:     fmt.Sprintf("There are %d open questions in the recent conversation. Consider following up.", count),
		Icon:     "❓",
	}
}

func taskHealth(tasks []model.Task) *model.Insight {
	if len(tasks) == 0 {
		return nil
	}

	overdue := 0
	open := 0
	for _, t := range tasks {
		if t.Status == model.TaskStatusCompleted {
			continue
		}
		open++
		if strings.Contains(strings.ToLower(t.DueDate), "overdue") {
			overdue++
		}
	}

	if overdue > 0 {
		return &model.Insight{
			Category: model.InsightRisk,
			Text:     fmt.Sprintf("%d overdue tasks need attention before they block progress.", overdue),
			Icon:     "⚠️",
		}
	}
	if open > 0 {
		return &model.Insight{
			Category: model.InsightPlanning,
			Text:     fmt.Sprintf("%d open tasks are on track. Keep the momentum up.", open),
			Icon:     "📋",
		}
	}
	return nil
}

func budgetUsage(ws model.Workspace) *model.Insight {
	if ws.Budget == "" || len(ws.Spending) == 0 {
		return nil
	}

	budget := dashboard.ParseAmount(ws.Budget)
	if budget <= 0 {
		// Unparseable or zero budgets ("TBD", "€0") have no usable
		// percentage; stay silent rather than report infinity.
		return nil
	}
	spent := dashboard.TotalSpending(ws.Spending)
	percent := spent / budget * 100

	switch {
	case percent > 80:
		return &model.Insight{
			Category: model.InsightFinance,
			Text:     fmt.Sprintf("Spending has reached %.0f%% of the budget. Time to review expenses.", percent),
			Icon:     "💰",
		}
	case percent < 50:
		return &model.Insight{
			Category: model.InsightFinance,
			Text:     fmt.Sprintf("Only %.0f%% of the budget is used. Resources are being managed efficiently.", percent),
			Icon:     "💰",
		}
	default:
		return nil
	}
}

func progressStage(progress *int) *model.Insight {
	if progress == nil {
		return nil
	}

	switch {
	case *progress > 75:
		return &model.Insight{
			Category: model.InsightPlanning,
			Text:     fmt.Sprintf("The project is approaching completion at %d%%. Plan the final wrap-up.", *progress),
			Icon:     "📈",
		}
	case *progress < 25:
		return &model.Insight{
			Category: model.InsightPlanning,
			Text:     fmt.Sprintf("The project is in its early stages at %d%%. A good time to settle priorities.", *progress),
			Icon:     "🌱",
		}
	default:
		return nil
	}
}
