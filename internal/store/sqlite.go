package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at the given path.
// The schema is created automatically if it doesn't exist, and parent
// directories are created as needed. maxOpen/maxIdle bound the connection
// pool; values <= 0 fall back to defaults.
func NewSQLiteStore(path string, maxOpen, maxIdle int) (*SQLiteStore, error) {
	logger := slog.Default().With("component", "store")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if maxOpen <= 0 {
		maxOpen = 10
	}
	if maxIdle <= 0 {
		maxIdle = 2
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)

	// WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db, logger: logger}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("SQLite store initialized", "path", path, "pool_max", maxOpen, "pool_min", maxIdle)
	return s, nil
}

// createSchema creates the todos table and its indexes if they don't exist.
func (s *SQLiteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS todos (
			id          TEXT PRIMARY KEY,
			owner_id    TEXT NOT NULL,
			owner_email TEXT NOT NULL,
			owner_name  TEXT NOT NULL,
			title       TEXT NOT NULL,
			description TEXT,
			completed   INTEGER NOT NULL DEFAULT 0,
			priority    TEXT NOT NULL DEFAULT 'medium',
			due_date    TEXT,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL,

			CHECK (priority IN ('low', 'medium', 'high'))
		);

		CREATE INDEX IF NOT EXISTS idx_todos_owner ON todos(owner_id);
		CREATE INDEX IF NOT EXISTS idx_todos_owner_completed ON todos(owner_id, completed);
		CREATE INDEX IF NOT EXISTS idx_todos_owner_priority ON todos(owner_id, priority);
		CREATE INDEX IF NOT EXISTS idx_todos_due_date ON todos(due_date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.logger.Info("closing SQLite store")
	return s.db.Close()
}

// Create inserts a new todo with a fresh id. created_at and updated_at are
// both stamped to the same instant.
func (s *SQLiteStore) Create(ctx context.Context, input CreateInput, owner Owner) (*Todo, error) {
	now := time.Now().UTC().Truncate(time.Second)

	todo := &Todo{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		Owner:       owner,
	}
	if todo.Priority == "" {
		todo.Priority = PriorityMedium
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO todos (id, owner_id, owner_email, owner_name, title, description, completed, priority, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?, ?, ?)
	`, todo.ID, owner.ID, owner.Email, owner.Name, todo.Title, nullString(todo.Description),
		todo.Priority, formatTime(todo.DueDate),
		todo.CreatedAt.Format(time.RFC3339), todo.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("inserting todo: %w", err)
	}

	s.logger.Debug("created todo", "id", todo.ID, "owner", owner.ID)
	return todo, nil
}

const todoColumns = `id, owner_id, owner_email, owner_name, title, description, completed, priority, due_date, created_at, updated_at`

// GetByID retrieves a todo by id, scoped to the owner. Returns ErrNotFound
// when id and owner don't jointly match.
func (s *SQLiteStore) GetByID(ctx context.Context, id, ownerID string) (*Todo, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos WHERE id = ? AND owner_id = ?
	`, id, ownerID)

	todo, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying todo: %w", err)
	}
	return todo, nil
}

// List returns the caller's todos matching the filter, newest first, plus the
// total count of matches before pagination.
func (s *SQLiteStore) List(ctx context.Context, ownerID string, filter ListFilter) ([]*Todo, int, error) {
	where := `WHERE owner_id = ?`
	args := []any{ownerID}

	if filter.Completed != nil {
		where += ` AND completed = ?`
		args = append(args, boolToInt(*filter.Completed))
	}
	if filter.Priority != "" {
		where += ` AND priority = ?`
		args = append(args, filter.Priority)
	}
	if filter.Search != "" {
		where += ` AND (LOWER(title) LIKE ? OR LOWER(IFNULL(description, '')) LIKE ?)`
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting todos: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	// rowid tie-break keeps same-second creations in a stable order.
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos `+where+`
		ORDER BY created_at DESC, rowid DESC
		LIMIT ? OFFSET ?
	`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var todos []*Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning todo row: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating todo rows: %w", err)
	}

	return todos, total, nil
}

// Update applies the fields present in the partial set and refreshes
// updated_at. An empty field set is a pure read: the current row is returned
// and updated_at is not touched. Returns ErrNotFound when id and owner don't
// jointly match.
func (s *SQLiteStore) Update(ctx context.Context, id, ownerID string, fields UpdateFields) (*Todo, error) {
	if fields.Empty() {
		return s.GetByID(ctx, id, ownerID)
	}

	set := []string{}
	args := []any{}

	if fields.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *fields.Title)
	}
	if fields.Description != nil {
		set = append(set, "description = ?")
		args = append(args, nullString(*fields.Description))
	}
	if fields.Completed != nil {
		set = append(set, "completed = ?")
		args = append(args, boolToInt(*fields.Completed))
	}
	if fields.Priority != nil {
		set = append(set, "priority = ?")
		args = append(args, *fields.Priority)
	}
	if fields.DueDate != nil {
		set = append(set, "due_date = ?")
		args = append(args, formatTime(fields.DueDate))
	}

	set = append(set, "updated_at = ?")
	args = append(args, time.Now().UTC().Truncate(time.Second).Format(time.RFC3339))
	args = append(args, id, ownerID)

	result, err := s.db.ExecContext(ctx, `
		UPDATE todos SET `+strings.Join(set, ", ")+` WHERE id = ? AND owner_id = ?
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("updating todo: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("getting rows affected: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	s.logger.Debug("updated todo", "id", id, "owner", ownerID)
	return s.GetByID(ctx, id, ownerID)
}

// Delete removes a todo. Returns true iff a row was removed; a miss is not
// an error.
func (s *SQLiteStore) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("deleting todo: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting rows affected: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	s.logger.Debug("deleted todo", "id", id, "owner", ownerID)
	return true, nil
}

// Stats aggregates the caller's todos. Overdue counts incomplete items whose
// due date is strictly before now.
func (s *SQLiteStore) Stats(ctx context.Context, ownerID string) (*Stats, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	var stats Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(completed), 0),
		       COALESCE(SUM(CASE WHEN completed = 0 AND due_date IS NOT NULL AND due_date < ? THEN 1 ELSE 0 END), 0)
		FROM todos WHERE owner_id = ?
	`, now, ownerID).Scan(&stats.Total, &stats.Completed, &stats.Overdue)
	if err != nil {
		return nil, fmt.Errorf("querying stats: %w", err)
	}

	stats.Pending = stats.Total - stats.Completed
	return &stats, nil
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(row scanner) (*Todo, error) {
	var t Todo
	var description, dueDate sql.NullString
	var completed int
	var createdAt, updatedAt string

	err := row.Scan(&t.ID, &t.Owner.ID, &t.Owner.Email, &t.Owner.Name,
		&t.Title, &description, &completed, &t.Priority, &dueDate, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	t.Description = description.String
	t.Completed = completed != 0

	t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	if dueDate.Valid {
		d, err := time.Parse(time.RFC3339, dueDate.String)
		if err != nil {
			return nil, fmt.Errorf("parsing due_date: %w", err)
		}
		t.DueDate = &d
	}

	return &t, nil
}

// nullString returns nil for empty strings so they store as NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// formatTime renders an optional timestamp as RFC3339 UTC, or NULL.
func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
