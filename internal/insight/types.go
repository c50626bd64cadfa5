package insight

import "rima-workspace/internal/model"

// Snapshot is the immutable aggregate state one generation run
// evaluates. Room is nil for workspace-level generation; when set,
// message-derived rules read the room's conversation instead of the
// workspace's, and budget analysis is skipped.
type Snapshot struct {
	Workspace model.Workspace
	Room      *model.Room
}

func (s Snapshot) messages() []model.Message {
	if s.Room != nil {
		return s.Room.Messages
	}
	return s.Workspace.Messages
}

func (s Snapshot) title() string {
	if s.Room != nil {
		return s.Room.Title
	}
	return s.Workspace.Title
}
