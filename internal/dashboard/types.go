package dashboard

import "rima-workspace/internal/model"

// RenderData is the rendered payload of one widget. Value is the
// headline figure (string or number depending on the preset); the
// optional slices carry the detail rows some widgets display.
type RenderData struct {
	Value    any          `json:"value"`
	Label    string       `json:"label"`
	Members  []model.User `json:"members,omitempty"`
	Tasks    []model.Task `json:"tasks,omitempty"`
	Progress *int         `json:"progress,omitempty"`
}

// Preset is a named, conditionally-relevant dashboard widget: a
// relevance predicate plus a pure render projection over the workspace
// snapshot. Presets have no state and no lifecycle.
type Preset struct {
	ID         string
	Title      string
	Icon       string
	IsRelevant func(ws model.Workspace) bool
	RenderData func(ws model.Workspace) RenderData
}
