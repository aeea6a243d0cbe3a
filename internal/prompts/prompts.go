// Package prompts defines the createTodo prompt template.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// CreateTodoPrompt describes a template for drafting a new todo. All
// arguments are optional; omitted ones appear as bracketed placeholders in
// the generated message.
func CreateTodoPrompt() mcp.Prompt {
	return mcp.NewPrompt("create-todo",
		mcp.WithPromptDescription("Draft a new todo item from title, description, priority, and due date."),
		mcp.WithArgument("title", mcp.ArgumentDescription("Todo title")),
		mcp.WithArgument("description", mcp.ArgumentDescription("Longer description")),
		mcp.WithArgument("priority", mcp.ArgumentDescription("Priority: low, medium, or high")),
		mcp.WithArgument("due_date", mcp.ArgumentDescription("Due date")),
	)
}

// HandleCreateTodo renders the prompt as a single user-role message.
func HandleCreateTodo(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := req.Params.Arguments

	orPlaceholder := func(key string) string {
		if v := args[key]; v != "" {
			return v
		}
		return "[" + key + "]"
	}

	text := fmt.Sprintf(
		"Create a todo with title %q, description %q, priority %q, and due date %q. "+
			"Fill in any bracketed placeholder with a sensible value before calling createTodo.",
		orPlaceholder("title"),
		orPlaceholder("description"),
		orPlaceholder("priority"),
		orPlaceholder("due_date"),
	)

	return mcp.NewGetPromptResult("Create a new todo", []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	}), nil
}
