package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace/repository"
)

type taskRow struct {
	ID                  string          `db:"id"`
	WorkspaceID         string          `db:"workspace_id"`
	RoomID              string          `db:"room_id"`
	Title               string          `db:"title"`
	Owner               string          `db:"owner"`
	Assignee            string          `db:"assignee"`
	Completed           int             `db:"completed"`
	DueDate             string          `db:"due_date"`
	Deadline            string          `db:"deadline"`
	Progress            sql.NullInt64   `db:"progress"`
	Status              string          `db:"status"`
	Priority            string          `db:"priority"`
	Source              string          `db:"source"`
	ExtractedMessageID  string          `db:"extracted_message_id"`
	ExtractedTS         sql.NullTime    `db:"extracted_ts"`
	ExtractedConfidence sql.NullFloat64 `db:"extracted_confidence"`
	CreatedAt           time.Time       `db:"created_at"`
}

func (row taskRow) toModel() model.Task {
	task := model.Task{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		RoomID:      row.RoomID,
		Title:       row.Title,
		Owner:       row.Owner,
		Assignee:    row.Assignee,
		Completed:   row.Completed != 0,
		DueDate:     row.DueDate,
		Deadline:    row.Deadline,
		Status:      model.TaskStatus(row.Status),
		Priority:    model.TaskPriority(row.Priority),
		Source:      model.TaskSource(row.Source),
	}
	if row.Progress.Valid {
		p := int(row.Progress.Int64)
		task.Progress = &p
	}
	if row.ExtractedMessageID != "" {
		task.Extracted = &model.Extraction{
			MessageID:  row.ExtractedMessageID,
			Timestamp:  row.ExtractedTS.Time,
			Confidence: row.ExtractedConfidence.Float64,
		}
	}
	return task
}

func insertTask(ctx context.Context, execer sqlx.ExecerContext, opt repository.CreateTaskOptions) (model.Task, error) {
	id := opt.ID
	if id == "" {
		id = uuid.New().String()
	}

	dueDate := opt.DueDate
	if dueDate == "" {
		dueDate = model.DueDateNotSet
	}

	var progress sql.NullInt64
	if opt.Progress != nil {
		progress = sql.NullInt64{Int64: int64(*opt.Progress), Valid: true}
	}

	var extractedID string
	var extractedTS sql.NullTime
	var extractedConfidence sql.NullFloat64
	if opt.Extracted != nil {
		extractedID = opt.Extracted.MessageID
		extractedTS = sql.NullTime{Time: opt.Extracted.Timestamp, Valid: true}
		extractedConfidence = sql.NullFloat64{Float64: opt.Extracted.Confidence, Valid: true}
	}

	completed := 0
	if opt.Status == model.TaskStatusCompleted {
		completed = 1
	}

	// Extracted tasks carry deterministic IDs; re-extracting the same
	// conversation overwrites the same rows instead of duplicating them.
	_, err := execer.ExecContext(ctx, `
		INSERT OR REPLACE INTO tasks (
			id, workspace_id, room_id, title, owner, assignee,
			completed, due_date, deadline, progress, status, priority,
			source, extracted_message_id, extracted_ts, extracted_confidence, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, opt.WorkspaceID, opt.RoomID, opt.Title, opt.Owner, opt.Assignee,
		completed, dueDate, opt.Deadline, progress, string(opt.Status), string(opt.Priority),
		string(opt.Source), extractedID, extractedTS, extractedConfidence, time.Now().UTC(),
	)
	if err != nil {
		return model.Task{}, err
	}

	return model.Task{
		ID:          id,
		WorkspaceID: opt.WorkspaceID,
		RoomID:      opt.RoomID,
		Title:       opt.Title,
		Owner:       opt.Owner,
		Assignee:    opt.Assignee,
		Completed:   completed != 0,
		DueDate:     dueDate,
		Deadline:    opt.Deadline,
		Progress:    opt.Progress,
		Status:      opt.Status,
		Priority:    opt.Priority,
		Source:      opt.Source,
		Extracted:   opt.Extracted,
	}, nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	task, err := insertTask(ctx, r.db, opt)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.CreateTask.Exec: %v", err)
		return model.Task{}, repository.ErrDatabase
	}
	return task, nil
}

func (r *implRepository) CreateTasksBatch(ctx context.Context, opts []repository.CreateTaskOptions) ([]model.Task, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.CreateTasksBatch.Begin: %v", err)
		return nil, repository.ErrDatabase
	}
	defer tx.Rollback()

	tasks := make([]model.Task, 0, len(opts))
	for _, opt := range opts {
		task, err := insertTask(ctx, tx, opt)
		if err != nil {
			r.l.Errorf(ctx, "sqlite.CreateTasksBatch.Exec: %v", err)
			return nil, repository.ErrDatabase
		}
		tasks = append(tasks, task)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "sqlite.CreateTasksBatch.Commit: %v", err)
		return nil, repository.ErrDatabase
	}
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "sqlite.GetTask.Get: %v", err)
		return model.Task{}, repository.ErrDatabase
	}
	return row.toModel(), nil
}

func (r *implRepository) ListTasks(ctx context.Context, workspaceID string) ([]model.Task, error) {
	var rows []taskRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM tasks WHERE workspace_id = ? ORDER BY created_at, id", workspaceID)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.ListTasks.Select: %v", err)
		return nil, repository.ErrDatabase
	}

	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}
	return tasks, nil
}

func (r *implRepository) UpdateTaskStatus(ctx context.Context, opt repository.UpdateTaskStatusOptions) (model.Task, error) {
	completed := 0
	if opt.Completed {
		completed = 1
	}

	_, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET completed = ?, status = ? WHERE id = ?",
		completed, string(opt.Status), opt.TaskID,
	)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.UpdateTaskStatus.Exec: %v", err)
		return model.Task{}, repository.ErrDatabase
	}

	return r.GetTask(ctx, opt.TaskID)
}
