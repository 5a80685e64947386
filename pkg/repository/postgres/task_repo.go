package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ricardossantis/nestTasksManager/pkg/task"
)

// TaskRepository stores tasks scoped by their owning user.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// Create inserts the task with status OPEN regardless of what the
// entity carries; the initial state is not caller-controlled. The
// entity's timestamps are written as-is so the row matches what the
// caller already holds.
func (r *TaskRepository) Create(ctx context.Context, t task.Task) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO tasks (id, owner_id, title, description, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, t.ID, t.OwnerID, strings.TrimSpace(t.Title), t.Description, task.StatusOpen, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *TaskRepository) GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (task.Task, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, title, description, status, created_at, updated_at
FROM tasks WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, err
	}
	return t, nil
}

// buildListQuery assembles the WHERE clause for a filtered list as an
// explicit conjunction: owner id always, status equality when set, and
// a case-insensitive substring match over title OR description when a
// search term is present.
func buildListQuery(ownerID uuid.UUID, f task.Filter, limit, offset int) (string, []any) {
	var sb strings.Builder
	args := []any{ownerID}
	sb.WriteString(`
SELECT id, owner_id, title, description, status, created_at, updated_at
FROM tasks WHERE owner_id = $1`)
	if f.Status != nil {
		args = append(args, *f.Status)
		fmt.Fprintf(&sb, " AND status = $%d", len(args))
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		args = append(args, "%"+term+"%")
		fmt.Fprintf(&sb, " AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	args = append(args, limit)
	fmt.Fprintf(&sb, " ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	return sb.String(), args
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, f task.Filter, limit, offset int) ([]task.Task, error) {
	if limit <= 0 {
		limit = 50
	}
	sql, args := buildListQuery(ownerID, f, limit, offset)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

// Save persists the mutable state (status) as a single owner-scoped
// UPDATE, so a concurrent delete surfaces as not-found rather than a
// resurrected row.
func (r *TaskRepository) Save(ctx context.Context, t task.Task) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE tasks SET status = $1, updated_at = $2 WHERE id = $3 AND owner_id = $4
`, t.Status, t.UpdatedAt, t.ID, t.OwnerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return task.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	var created, updated time.Time
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Status, &created, &updated); err != nil {
		return task.Task{}, err
	}
	t.CreatedAt = created.UTC()
	t.UpdatedAt = updated.UTC()
	return t, nil
}
