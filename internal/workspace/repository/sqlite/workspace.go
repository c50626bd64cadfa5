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

type workspaceRow struct {
	ID        string        `db:"id"`
	Title     string        `db:"title"`
	Budget    string        `db:"budget"`
	Deadline  string        `db:"deadline"`
	Progress  sql.NullInt64 `db:"progress"`
	CreatedAt time.Time     `db:"created_at"`
}

func (row workspaceRow) toModel() model.Workspace {
	ws := model.Workspace{
		ID:       row.ID,
		Title:    row.Title,
		Budget:   row.Budget,
		Deadline: row.Deadline,
	}
	if row.Progress.Valid {
		p := int(row.Progress.Int64)
		ws.Progress = &p
	}
	return ws
}

func (r *implRepository) CreateWorkspace(ctx context.Context, opt repository.CreateWorkspaceOptions) (model.Workspace, error) {
	id := uuid.New().String()

	var progress sql.NullInt64
	if opt.Progress != nil {
		progress = sql.NullInt64{Int64: int64(*opt.Progress), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO workspaces (id, title, budget, deadline, progress, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, opt.Title, opt.Budget, opt.Deadline, progress, time.Now().UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.CreateWorkspace.Exec: %v", err)
		return model.Workspace{}, repository.ErrDatabase
	}

	return model.Workspace{
		ID:       id,
		Title:    opt.Title,
		Budget:   opt.Budget,
		Deadline: opt.Deadline,
		Progress: opt.Progress,
	}, nil
}

func (r *implRepository) ListWorkspaces(ctx context.Context) ([]model.Workspace, error) {
	var rows []workspaceRow
	err := r.db.SelectContext(ctx, &rows, "SELECT * FROM workspaces ORDER BY created_at")
	if err != nil {
		r.l.Errorf(ctx, "sqlite.ListWorkspaces.Select: %v", err)
		return nil, repository.ErrDatabase
	}

	workspaces := make([]model.Workspace, len(rows))
	for i, row := range rows {
		workspaces[i] = row.toModel()
	}
	return workspaces, nil
}

func (r *implRepository) GetWorkspace(ctx context.Context, id string) (model.Workspace, error) {
	var row workspaceRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM workspaces WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Workspace{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "sqlite.GetWorkspace.Get: %v", err)
		return model.Workspace{}, repository.ErrDatabase
	}
	return row.toModel(), nil
}

type memberRow struct {
	WorkspaceID string `db:"workspace_id"`
	UserID      string `db:"user_id"`
	Name        string `db:"name"`
	Avatar      string `db:"avatar"`
}

func (r *implRepository) ListMembers(ctx context.Context, workspaceID string) ([]model.User, error) {
	var rows []memberRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM members WHERE workspace_id = ? ORDER BY name", workspaceID)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.ListMembers.Select: %v", err)
		return nil, repository.ErrDatabase
	}

	members := make([]model.User, len(rows))
	for i, row := range rows {
		members[i] = model.User{ID: row.UserID, Name: row.Name, Avatar: row.Avatar}
	}
	return members, nil
}

func (r *implRepository) AddMember(ctx context.Context, opt repository.AddMemberOptions) (model.User, error) {
	user := opt.User
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO members (workspace_id, user_id, name, avatar)
		VALUES (?, ?, ?, ?)`,
		opt.WorkspaceID, user.ID, user.Name, user.Avatar,
	)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.AddMember.Exec: %v", err)
		return model.User{}, repository.ErrDatabase
	}

	return user, nil
}
