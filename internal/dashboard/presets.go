package dashboard

import (
	"fmt"
	"regexp"
	"strconv"

	"rima-workspace/internal/model"
)

var reNonAmount = regexp.MustCompile(`[^0-9.\-]`)

// ParseAmount reads a currency amount out of a free-form string such
// as "€1,200" or "$300.50". Every character outside [0-9.-] is
// stripped before parsing; anything that still fails to parse counts
// as zero.
func ParseAmount(s string) float64 {
	cleaned := reNonAmount.ReplaceAllString(s, "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// TotalSpending sums the parsed amounts of all spending entries.
func TotalSpending(entries []model.SpendingEntry) float64 {
	var total float64
	for _, e := range entries {
		total += ParseAmount(e.Amount)
	}
	return total
}

func completedTaskCount(tasks []model.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Status == model.TaskStatusCompleted {
			n++
		}
	}
	return n
}

// Presets returns the fixed widget catalogue in display order. The
// slice is rebuilt on every call so callers may not mutate shared
// state through it.
func Presets() []Preset {
	return []Preset{
		{
			ID:    "budget",
			Title: "Budget",
			Icon:  "💰",
			IsRelevant: func(ws model.Workspace) bool {
				return ws.Budget != ""
			},
			RenderData: func(ws model.Workspace) RenderData {
				return RenderData{Value: ws.Budget, Label: "Total Budget"}
			},
		},
		{
			ID:    "deadline",
			Title: "Deadline",
			Icon:  "📅",
			IsRelevant: func(ws model.Workspace) bool {
				return ws.Deadline != ""
			},
			RenderData: func(ws model.Workspace) RenderData {
				return RenderData{Value: ws.Deadline, Label: "Project Deadline"}
			},
		},
		{
			ID:    "team",
			Title: "Team",
			Icon:  "👥",
			IsRelevant: func(ws model.Workspace) bool {
				return len(ws.Members) > 0
			},
			RenderData: func(ws model.Workspace) RenderData {
				return RenderData{
					Value:   len(ws.Members),
					Label:   "Team Members",
					Members: ws.Members,
				}
			},
		},
		{
			ID:    "tasks",
			Title: "Tasks",
			Icon:  "✅",
			IsRelevant: func(ws model.Workspace) bool {
				return len(ws.Tasks) > 0
			},
			RenderData: func(ws model.Workspace) RenderData {
				return RenderData{
					Value: fmt.Sprintf("%d/%d", completedTaskCount(ws.Tasks), len(ws.Tasks)),
					Label: "Tasks Completed",
					Tasks: ws.Tasks,
				}
			},
		},
		{
			ID:    "progress",
			Title: "Progress",
			Icon:  "📈",
			IsRelevant: func(ws model.Workspace) bool {
				return ws.Progress != nil
			},
			RenderData: func(ws model.Workspace) RenderData {
				value := ""
				if ws.Progress != nil {
					value = fmt.Sprintf("%d%%", *ws.Progress)
				}
				return RenderData{
					Value:    value,
					Label:    "Overall Progress",
					Progress: ws.Progress,
				}
			},
		},
		{
			ID:    "spending",
			Title: "Spending",
			Icon:  "💸",
			IsRelevant: func(ws model.Workspace) bool {
				return len(ws.Spending) > 0
			},
			RenderData: func(ws model.Workspace) RenderData {
				return RenderData{
					Value: fmt.Sprintf("€%.2f", TotalSpending(ws.Spending)),
					Label: "Total Spending",
				}
			},
		},
	}
}

// RelevantPresets filters the catalogue down to the widgets whose
// relevance predicate holds for the given workspace, preserving
// catalogue order.
func RelevantPresets(ws model.Workspace) []Preset {
	var out []Preset
	for _, p := range Presets() {
		if p.IsRelevant(ws) {
			out = append(out, p)
		}
	}
	return out
}
