// Package tools binds each named todo operation to its argument validator,
// store call, and result formatter. Handlers never surface a Go error to the
// transport: every logical failure (validation, not-found, storage) becomes a
// successful-transport result carrying an error-flavored text block.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/StrongMonkey/mcp-todo-list-server/internal/identity"
	"github.com/StrongMonkey/mcp-todo-list-server/internal/resources"
	"github.com/StrongMonkey/mcp-todo-list-server/internal/store"
)

// TodoTools holds the shared dependencies of all tool handlers.
type TodoTools struct {
	store  store.Store
	logger *slog.Logger
}

// New creates the tool handler set backed by the given store.
func New(s store.Store) *TodoTools {
	return &TodoTools{
		store:  s,
		logger: slog.Default().With("component", "tools"),
	}
}

func (t *TodoTools) handleCreateTodo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	caller := identity.FromContext(ctx)

	args, err := parseCreateArgs(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	todo, err := t.store.Create(ctx, store.CreateInput{
		Title:       args.title,
		Description: args.description,
		Priority:    args.priority,
		DueDate:     args.dueDate,
	}, store.Owner{ID: caller.ID, Email: caller.Email, Name: caller.Name})
	if err != nil {
		t.logger.Error("create todo failed", "owner", caller.ID, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("create todo: %v", err)), nil
	}

	return mcp.NewToolResultText("Created todo:\n\n" + formatTodo(todo)), nil
}

func (t *TodoTools) handleGetTodo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	caller := identity.FromContext(ctx)

	id, err := requireID(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	todo, err := t.store.GetByID(ctx, id, caller.ID)
	if errors.Is(err, store.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("todo not found: %s", id)), nil
	}
	if err != nil {
		t.logger.Error("get todo failed", "id", id, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("get todo: %v", err)), nil
	}

	return mcp.NewToolResultText(formatTodo(todo)), nil
}

func (t *TodoTools) handleListTodos(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	caller := identity.FromContext(ctx)

	filter, err := parseFilterArgs(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	todos, total, err := t.store.List(ctx, caller.ID, filter)
	if err != nil {
		t.logger.Error("list todos failed", "owner", caller.ID, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("list todos: %v", err)), nil
	}

	return mcp.NewToolResultText(formatTodoList(todos, total)), nil
}

func (t *TodoTools) handleUpdateTodo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	caller := identity.FromContext(ctx)

	args, err := parseUpdateArgs(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	todo, err := t.store.Update(ctx, args.id, caller.ID, args.fields)
	if errors.Is(err, store.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("todo not found: %s", args.id)), nil
	}
	if err != nil {
		t.logger.Error("update todo failed", "id", args.id, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("update todo: %v", err)), nil
	}

	return mcp.NewToolResultText("Updated todo:\n\n" + formatTodo(todo)), nil
}

func (t *TodoTools) handleDeleteTodo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	caller := identity.FromContext(ctx)

	id, err := requireID(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	deleted, err := t.store.Delete(ctx, id, caller.ID)
	if err != nil {
		t.logger.Error("delete todo failed", "id", id, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("delete todo: %v", err)), nil
	}
	if !deleted {
		return mcp.NewToolResultError(fmt.Sprintf("todo not found: %s", id)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Deleted todo %s", id)), nil
}

func (t *TodoTools) handleCompleteTodo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	caller := identity.FromContext(ctx)

	id, err := requireID(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	completed := true
	todo, err := t.store.Update(ctx, id, caller.ID, store.UpdateFields{Completed: &completed})
	if errors.Is(err, store.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("todo not found: %s", id)), nil
	}
	if err != nil {
		t.logger.Error("complete todo failed", "id", id, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("complete todo: %v", err)), nil
	}

	return mcp.NewToolResultText("Completed todo:\n\n" + formatTodo(todo)), nil
}

func (t *TodoTools) handleGetTodoStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	caller := identity.FromContext(ctx)

	stats, err := t.store.Stats(ctx, caller.ID)
	if err != nil {
		t.logger.Error("todo stats failed", "owner", caller.ID, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("todo stats: %v", err)), nil
	}

	return mcp.NewToolResultText(formatStats(stats)), nil
}

// handleGetTodoResources lists the caller's todos as addressable resource
// links alongside a text summary, so clients can fetch individual items via
// the todo:// scheme.
func (t *TodoTools) handleGetTodoResources(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	caller := identity.FromContext(ctx)

	todos, total, err := t.store.List(ctx, caller.ID, store.ListFilter{Limit: store.MaxLimit})
	if err != nil {
		t.logger.Error("todo resources failed", "owner", caller.ID, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("todo resources: %v", err)), nil
	}

	content := []mcp.Content{
		mcp.NewTextContent(fmt.Sprintf("%d todo resources (of %d todos):", len(todos), total)),
	}
	for _, todo := range todos {
		content = append(content, mcp.NewResourceLink(
			resources.TodoURI(todo.ID),
			todo.Title,
			resourceDescription(todo),
			"application/json",
		))
	}

	return &mcp.CallToolResult{Content: content}, nil
}
