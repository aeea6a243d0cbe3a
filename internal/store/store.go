package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no todo matches the given id for the caller.
// An id owned by a different caller and a nonexistent id are deliberately
// indistinguishable: the joint id+owner predicate is the only access-control
// mechanism.
var ErrNotFound = errors.New("todo not found")

// Priority levels for todos.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Pagination bounds for list queries.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Owner is the caller identity captured on a todo at creation time.
// Only ID participates in access scoping; email and name are display
// metadata denormalized for convenience.
type Owner struct {
	ID    string
	Email string
	Name  string
}

// Todo represents a single todo item owned by exactly one caller.
type Todo struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Priority    string // low, medium, high
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Owner       Owner
}

// CreateInput holds the fields a caller may set when creating a todo.
type CreateInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
}

// UpdateFields holds a partial set of changes. Nil fields are left untouched.
type UpdateFields struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *string
	DueDate     *time.Time
}

// Empty reports whether no field is set. An empty update is a pure read:
// it must not touch updated_at.
func (f UpdateFields) Empty() bool {
	return f.Title == nil && f.Description == nil && f.Completed == nil &&
		f.Priority == nil && f.DueDate == nil
}

// ListFilter narrows and pages a list query. Zero values mean "no filter";
// a nil Completed is distinct from false.
type ListFilter struct {
	Completed *bool
	Priority  string
	Search    string // case-insensitive substring over title OR description
	Limit     int
	Offset    int
}

// Stats is the aggregate view of a caller's todos. Overdue counts incomplete
// items whose due date is strictly in the past; items without a due date are
// never overdue.
type Stats struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
}

// Store defines owner-scoped persistence for todos.
type Store interface {
	Create(ctx context.Context, input CreateInput, owner Owner) (*Todo, error)
	GetByID(ctx context.Context, id, ownerID string) (*Todo, error)
	List(ctx context.Context, ownerID string, filter ListFilter) ([]*Todo, int, error)
	Update(ctx context.Context, id, ownerID string, fields UpdateFields) (*Todo, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
	Stats(ctx context.Context, ownerID string) (*Stats, error)

	// Close releases any resources held by the store.
	Close() error
}
