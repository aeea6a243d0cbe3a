package tools

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StrongMonkey/mcp-todo-list-server/internal/identity"
	"github.com/StrongMonkey/mcp-todo-list-server/internal/store"
)

func newTestTools(t *testing.T) *TodoTools {
	t.Helper()
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"), 0, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return New(s)
}

func callerCtx(id string) context.Context {
	return identity.WithContext(context.Background(), identity.Identity{
		ID:    id,
		Email: id + "@example.com",
		Name:  id,
	})
}

func callReq(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

// resultText extracts the first text block; every handler leads with one.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "first content block should be text, got %T", res.Content[0])
	return tc.Text
}

func TestCreateTodo(t *testing.T) {
	tt := newTestTools(t)
	ctx := callerCtx("alice")

	res, err := tt.handleCreateTodo(ctx, callReq(map[string]any{
		"title":       "Buy groceries",
		"description": "milk, eggs",
		"priority":    "high",
		"due_date":    "2026-09-15",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "Created todo:")
	assert.Contains(t, text, "Buy groceries")
	assert.Contains(t, text, "(!)")
	assert.Contains(t, text, "milk, eggs")
	assert.Contains(t, text, "Due: 2026-09-15")
}

func TestCreateTodo_EmptyPriorityDefaults(t *testing.T) {
	tt := newTestTools(t)

	res, err := tt.handleCreateTodo(callerCtx("alice"), callReq(map[string]any{
		"title":    "no strong feelings",
		"priority": "",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "(-)")
}

func TestCreateTodo_ValidationFailures(t *testing.T) {
	tt := newTestTools(t)
	ctx := callerCtx("alice")

	cases := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing title", map[string]any{}, `invalid argument "title": required`},
		{"empty title", map[string]any{"title": ""}, `invalid argument "title": required`},
		{"title too long", map[string]any{"title": strings.Repeat("x", 256)}, `invalid argument "title"`},
		{"description too long", map[string]any{"title": "ok", "description": strings.Repeat("x", 1001)}, `invalid argument "description"`},
		{"bad priority", map[string]any{"title": "ok", "priority": "urgent"}, "must be one of low, medium, high"},
		{"bad due date", map[string]any{"title": "ok", "due_date": "tomorrow"}, `invalid argument "due_date"`},
		{"non-string title", map[string]any{"title": 42}, "must be a string"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tt.handleCreateTodo(ctx, callReq(tc.args))
			require.NoError(t, err, "validation failures must not surface as handler errors")
			assert.True(t, res.IsError)
			assert.Contains(t, resultText(t, res), tc.want)
		})
	}

	// Nothing was persisted along the way.
	res, err := tt.handleListTodos(ctx, callReq(nil))
	require.NoError(t, err)
	assert.Equal(t, "No todos found.", resultText(t, res))
}

func TestGetTodo_NotFound(t *testing.T) {
	tt := newTestTools(t)

	res, err := tt.handleGetTodo(callerCtx("alice"), callReq(map[string]any{"id": "nope"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "todo not found: nope")
}

func TestGetTodo_OwnerIsolation(t *testing.T) {
	tt := newTestTools(t)

	created, err := tt.store.Create(context.Background(), store.CreateInput{Title: "secret"}, store.Owner{ID: "alice"})
	require.NoError(t, err)

	res, err := tt.handleGetTodo(callerCtx("mallory"), callReq(map[string]any{"id": created.ID}))
	require.NoError(t, err)
	assert.True(t, res.IsError, "foreign todos must look like missing ones")

	res, err = tt.handleGetTodo(callerCtx("alice"), callReq(map[string]any{"id": created.ID}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "secret")
}

func TestListTodos(t *testing.T) {
	tt := newTestTools(t)
	ctx := callerCtx("alice")

	for _, title := range []string{"one", "two", "three"} {
		_, err := tt.store.Create(context.Background(), store.CreateInput{Title: title}, store.Owner{ID: "alice"})
		require.NoError(t, err)
	}

	res, err := tt.handleListTodos(ctx, callReq(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Showing 3 of 3 todos:")

	res, err = tt.handleListTodos(ctx, callReq(map[string]any{"limit": float64(2)}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Showing 2 of 3 todos:")

	res, err = tt.handleListTodos(ctx, callReq(map[string]any{"search": "TWO"}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Showing 1 of 1 todos:")
}

func TestListTodos_BadArguments(t *testing.T) {
	tt := newTestTools(t)
	ctx := callerCtx("alice")

	for _, args := range []map[string]any{
		{"limit": float64(0)},
		{"limit": float64(101)},
		{"limit": 2.5},
		{"offset": float64(-1)},
		{"completed": "yes"},
	} {
		res, err := tt.handleListTodos(ctx, callReq(args))
		require.NoError(t, err)
		assert.True(t, res.IsError, "args %v should fail validation", args)
	}
}

func TestUpdateTodo_Partial(t *testing.T) {
	tt := newTestTools(t)
	ctx := callerCtx("alice")

	created, err := tt.store.Create(context.Background(), store.CreateInput{Title: "old", Description: "keep"}, store.Owner{ID: "alice"})
	require.NoError(t, err)

	res, err := tt.handleUpdateTodo(ctx, callReq(map[string]any{"id": created.ID, "title": "new"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "Updated todo:")
	assert.Contains(t, text, "new")
	assert.Contains(t, text, "keep")
}

func TestUpdateTodo_EmptyPriorityRejected(t *testing.T) {
	tt := newTestTools(t)
	ctx := callerCtx("alice")

	created, err := tt.store.Create(context.Background(), store.CreateInput{Title: "important", Priority: store.PriorityHigh}, store.Owner{ID: "alice"})
	require.NoError(t, err)

	// An explicit empty string is an enum violation, not a request for the
	// default: it must fail fast without touching the row.
	res, err := tt.handleUpdateTodo(ctx, callReq(map[string]any{"id": created.ID, "priority": ""}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "must be one of low, medium, high")

	got, err := tt.store.GetByID(context.Background(), created.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, store.PriorityHigh, got.Priority, "rejected update must not change priority")
}

func TestListTodos_EmptyPriorityRejected(t *testing.T) {
	tt := newTestTools(t)
	ctx := callerCtx("alice")

	_, err := tt.store.Create(context.Background(), store.CreateInput{Title: "important", Priority: store.PriorityHigh}, store.Owner{ID: "alice"})
	require.NoError(t, err)

	res, err := tt.handleListTodos(ctx, callReq(map[string]any{"priority": ""}))
	require.NoError(t, err)
	assert.True(t, res.IsError, "empty priority must not silently narrow to medium")
	assert.Contains(t, resultText(t, res), "must be one of low, medium, high")
}

func TestUpdateTodo_NotFound(t *testing.T) {
	tt := newTestTools(t)

	res, err := tt.handleUpdateTodo(callerCtx("alice"), callReq(map[string]any{"id": "nope", "title": "x"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "todo not found: nope")
}

func TestDeleteTodo(t *testing.T) {
	tt := newTestTools(t)
	ctx := callerCtx("alice")

	created, err := tt.store.Create(context.Background(), store.CreateInput{Title: "doomed"}, store.Owner{ID: "alice"})
	require.NoError(t, err)

	res, err := tt.handleDeleteTodo(ctx, callReq(map[string]any{"id": created.ID}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Deleted todo "+created.ID)

	// Second delete reports not-found, still without a handler error.
	res, err = tt.handleDeleteTodo(ctx, callReq(map[string]any{"id": created.ID}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "todo not found")
}

func TestCompleteTodo(t *testing.T) {
	tt := newTestTools(t)
	ctx := callerCtx("alice")

	created, err := tt.store.Create(context.Background(), store.CreateInput{Title: "finish me"}, store.Owner{ID: "alice"})
	require.NoError(t, err)

	res, err := tt.handleCompleteTodo(ctx, callReq(map[string]any{"id": created.ID}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "Completed todo:")
	assert.Contains(t, text, "[x]")

	got, err := tt.store.GetByID(context.Background(), created.ID, "alice")
	require.NoError(t, err)
	assert.True(t, got.Completed)
}

func TestGetTodoStats(t *testing.T) {
	tt := newTestTools(t)
	ctx := callerCtx("alice")

	created, err := tt.store.Create(context.Background(), store.CreateInput{Title: "done"}, store.Owner{ID: "alice"})
	require.NoError(t, err)
	_, err = tt.handleCompleteTodo(ctx, callReq(map[string]any{"id": created.ID}))
	require.NoError(t, err)
	_, err = tt.store.Create(context.Background(), store.CreateInput{Title: "pending"}, store.Owner{ID: "alice"})
	require.NoError(t, err)

	res, err := tt.handleGetTodoStats(ctx, callReq(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "Total:      2")
	assert.Contains(t, text, "Completed:  1")
	assert.Contains(t, text, "Pending:    1")
	assert.Contains(t, text, "Overdue:    0")
	assert.Contains(t, text, "Completion: 50%")
}

func TestGetTodoStats_Empty(t *testing.T) {
	tt := newTestTools(t)

	res, err := tt.handleGetTodoStats(callerCtx("nobody"), callReq(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Completion: 0%")
}

func TestGetTodoResources(t *testing.T) {
	tt := newTestTools(t)
	ctx := callerCtx("alice")

	created, err := tt.store.Create(context.Background(), store.CreateInput{Title: "linked", Priority: store.PriorityHigh}, store.Owner{ID: "alice"})
	require.NoError(t, err)
	_, err = tt.store.Create(context.Background(), store.CreateInput{Title: "not yours"}, store.Owner{ID: "bob"})
	require.NoError(t, err)

	res, err := tt.handleGetTodoResources(ctx, callReq(nil))
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 2)

	assert.Contains(t, resultText(t, res), "1 todo resources (of 1 todos):")

	link, ok := res.Content[1].(mcp.ResourceLink)
	require.True(t, ok, "expected resource link, got %T", res.Content[1])
	assert.Equal(t, "todo://"+created.ID, link.URI)
	assert.Equal(t, "linked", link.Name)
	assert.Contains(t, link.Description, "pending, high priority")
	assert.Equal(t, "application/json", link.MIMEType)
}
