package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace/repository"
)

type roomRow struct {
	ID          string    `db:"id"`
	WorkspaceID string    `db:"workspace_id"`
	Title       string    `db:"title"`
	CreatedAt   time.Time `db:"created_at"`
}

func (row roomRow) toModel() model.Room {
	return model.Room{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		Title:       row.Title,
	}
}

func (r *implRepository) CreateRoom(ctx context.Context, opt repository.CreateRoomOptions) (model.Room, error) {
	id := uuid.New().String()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rooms (id, workspace_id, title, created_at)
		VALUES (?, ?, ?, ?)`,
		id, opt.WorkspaceID, opt.Title, time.Now().UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.CreateRoom.Exec: %v", err)
		return model.Room{}, repository.ErrDatabase
	}

	return model.Room{ID: id, WorkspaceID: opt.WorkspaceID, Title: opt.Title}, nil
}

func (r *implRepository) ListRooms(ctx context.Context, workspaceID string) ([]model.Room, error) {
	var rows []roomRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM rooms WHERE workspace_id = ? ORDER BY created_at", workspaceID)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.ListRooms.Select: %v", err)
		return nil, repository.ErrDatabase
	}

	rooms := make([]model.Room, len(rows))
	for i, row := range rows {
		rooms[i] = row.toModel()
	}
	return rooms, nil
}

func (r *implRepository) GetRoom(ctx context.Context, id string) (model.Room, error) {
	var row roomRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM rooms WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Room{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "sqlite.GetRoom.Get: %v", err)
		return model.Room{}, repository.ErrDatabase
	}
	return row.toModel(), nil
}
