package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace/repository"
)

const defaultMessageLimit = 50

type messageRow struct {
	ID           string    `db:"id"`
	WorkspaceID  string    `db:"workspace_id"`
	RoomID       string    `db:"room_id"`
	SenderKind   string    `db:"sender_kind"`
	SenderID     string    `db:"sender_id"`
	SenderName   string    `db:"sender_name"`
	SenderAvatar string    `db:"sender_avatar"`
	Content      string    `db:"content"`
	Timestamp    time.Time `db:"ts"`
}

func (row messageRow) toModel() model.Message {
	sender := model.AssistantSender()
	if model.SenderKind(row.SenderKind) == model.SenderUser {
		sender = model.UserSender(model.User{
			ID:     row.SenderID,
			Name:   row.SenderName,
			Avatar: row.SenderAvatar,
		})
	}

	return model.Message{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		RoomID:      row.RoomID,
		Sender:      sender,
		Content:     row.Content,
		Timestamp:   row.Timestamp,
	}
}

func (r *implRepository) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.Message, error) {
	id := uuid.New().String()

	ts := opt.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	var senderID, senderName, senderAvatar string
	if opt.Sender.User != nil {
		senderID = opt.Sender.User.ID
		senderName = opt.Sender.User.Name
		senderAvatar = opt.Sender.User.Avatar
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (id, workspace_id, room_id, sender_kind, sender_id, sender_name, sender_avatar, content, ts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, opt.WorkspaceID, opt.RoomID, string(opt.Sender.Kind),
		senderID, senderName, senderAvatar, opt.Content, ts,
	)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.CreateMessage.Exec: %v", err)
		return model.Message{}, repository.ErrDatabase
	}

	return model.Message{
		ID:          id,
		WorkspaceID: opt.WorkspaceID,
		RoomID:      opt.RoomID,
		Sender:      opt.Sender,
		Content:     opt.Content,
		Timestamp:   ts,
	}, nil
}

// ListMessages returns messages oldest-first so the newest is last.
// The limit bounds the tail of the conversation, not its head.
func (r *implRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultMessageLimit
	}

	query := `
		SELECT * FROM (
			SELECT * FROM messages
			WHERE workspace_id = ? AND room_id = ?
			ORDER BY ts DESC, id DESC
			LIMIT ?
		) ORDER BY ts ASC, id ASC`

	var rows []messageRow
	err := r.db.SelectContext(ctx, &rows, query, opt.WorkspaceID, opt.RoomID, limit)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.ListMessages.Select: %v", err)
		return nil, repository.ErrDatabase
	}

	messages := make([]model.Message, len(rows))
	for i, row := range rows {
		messages[i] = row.toModel()
	}
	return messages, nil
}
