package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rima-workspace/internal/model"
	"rima-workspace/internal/workspace/repository"
)

type spendingRow struct {
	ID          string    `db:"id"`
	WorkspaceID string    `db:"workspace_id"`
	Amount      string    `db:"amount"`
	Category    string    `db:"category"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r *implRepository) CreateSpending(ctx context.Context, opt repository.CreateSpendingOptions) (model.SpendingEntry, error) {
	id := uuid.New().String()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO spending (id, workspace_id, amount, category, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		id, opt.WorkspaceID, opt.Amount, opt.Category, time.Now().UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.CreateSpending.Exec: %v", err)
		return model.SpendingEntry{}, repository.ErrDatabase
	}

	return model.SpendingEntry{ID: id, Amount: opt.Amount, Category: opt.Category}, nil
}

func (r *implRepository) ListSpending(ctx context.Context, workspaceID string) ([]model.SpendingEntry, error) {
	var rows []spendingRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM spending WHERE workspace_id = ? ORDER BY created_at, id", workspaceID)
	if err != nil {
		r.l.Errorf(ctx, "sqlite.ListSpending.Select: %v", err)
		return nil, repository.ErrDatabase
	}

	entries := make([]model.SpendingEntry, len(rows))
	for i, row := range rows {
		entries[i] = model.SpendingEntry{ID: row.ID, Amount: row.Amount, Category: row.Category}
	}
	return entries, nil
}
