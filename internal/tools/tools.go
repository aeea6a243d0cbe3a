package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerTools returns the full tool table: each tool's declarative input
// schema paired with its handler.
func (t *TodoTools) ServerTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("createTodo",
				mcp.WithDescription("Create a new todo item."),
				mcp.WithString("title", mcp.Required(), mcp.Description("Todo title (1-255 characters)")),
				mcp.WithString("description", mcp.Description("Optional longer description (up to 1000 characters)")),
				mcp.WithString("priority", mcp.Description("Priority, defaults to medium"), mcp.Enum("low", "medium", "high")),
				mcp.WithString("due_date", mcp.Description("Due date as RFC 3339 timestamp or YYYY-MM-DD")),
			),
			Handler: t.handleCreateTodo,
		},
		{
			Tool: mcp.NewTool("getTodo",
				mcp.WithDescription("Get a single todo by id."),
				mcp.WithString("id", mcp.Required(), mcp.Description("Todo id")),
			),
			Handler: t.handleGetTodo,
		},
		{
			Tool: mcp.NewTool("listTodos",
				mcp.WithDescription("List todos with optional filters and pagination. Returns newest first."),
				mcp.WithBoolean("completed", mcp.Description("Filter by completion state")),
				mcp.WithString("priority", mcp.Description("Filter by priority"), mcp.Enum("low", "medium", "high")),
				mcp.WithString("search", mcp.Description("Case-insensitive substring match against title or description")),
				mcp.WithNumber("limit", mcp.Description("Page size, 1-100 (default 50)")),
				mcp.WithNumber("offset", mcp.Description("Number of items to skip (default 0)")),
			),
			Handler: t.handleListTodos,
		},
		{
			Tool: mcp.NewTool("updateTodo",
				mcp.WithDescription("Update a todo. Only provided fields are changed; providing none returns the current item."),
				mcp.WithString("id", mcp.Required(), mcp.Description("Todo id")),
				mcp.WithString("title", mcp.Description("New title (1-255 characters)")),
				mcp.WithString("description", mcp.Description("New description (up to 1000 characters)")),
				mcp.WithBoolean("completed", mcp.Description("New completion state")),
				mcp.WithString("priority", mcp.Description("New priority"), mcp.Enum("low", "medium", "high")),
				mcp.WithString("due_date", mcp.Description("New due date as RFC 3339 timestamp or YYYY-MM-DD")),
			),
			Handler: t.handleUpdateTodo,
		},
		{
			Tool: mcp.NewTool("deleteTodo",
				mcp.WithDescription("Delete a todo permanently."),
				mcp.WithString("id", mcp.Required(), mcp.Description("Todo id")),
			),
			Handler: t.handleDeleteTodo,
		},
		{
			Tool: mcp.NewTool("completeTodo",
				mcp.WithDescription("Mark a todo as completed."),
				mcp.WithString("id", mcp.Required(), mcp.Description("Todo id")),
			),
			Handler: t.handleCompleteTodo,
		},
		{
			Tool: mcp.NewTool("getTodoStats",
				mcp.WithDescription("Get aggregate statistics: total, completed, pending, overdue, and completion percentage."),
			),
			Handler: t.handleGetTodoStats,
		},
		{
			Tool: mcp.NewTool("getTodoResources",
				mcp.WithDescription("List todos as todo:// resource links that can be read individually. Returns at most the first 100 todos, newest first."),
			),
			Handler: t.handleGetTodoResources,
		},
	}
}
