package model

// SpendingEntry is a single recorded expense. Amount is free text as
// entered ("€120", "90.50"); numeric interpretation happens at render
// time and coerces garbage to zero.
type SpendingEntry struct {
	ID       string `json:"id"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
}

// Room is a sub-conversation within a workspace with its own members
// and messages. Rooms nest exactly one level below workspaces.
type Room struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Title       string    `json:"title"`
	Members     []User    `json:"members,omitempty"`
	Messages    []Message `json:"messages,omitempty"`
}

// Workspace is the top-level aggregate: rooms, members, tasks, chat
// history and planning metadata. Empty string / nil mean "not set" for
// the optional fields.
type Workspace struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Budget   string          `json:"budget,omitempty"`   // free text, e.g. "€1000"
	Deadline string          `json:"deadline,omitempty"` // free text or ISO date
	Progress *int            `json:"progress,omitempty"` // 0–100
	Members  []User          `json:"members,omitempty"`
	Tasks    []Task          `json:"tasks,omitempty"`
	Spending []SpendingEntry `json:"spending,omitempty"`
	Messages []Message       `json:"messages,omitempty"`
	Rooms    []Room          `json:"rooms,omitempty"`
}
