package tools

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/StrongMonkey/mcp-todo-list-server/internal/store"
)

// formatTodo renders one item as a human-readable block: completion marker,
// priority, title, then indented detail lines.
func formatTodo(t *store.Todo) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", check, priorityMarker(t.Priority), t.Title)
	if t.DueDate != nil {
		fmt.Fprintf(&b, "    Due: %s\n", t.DueDate.UTC().Format(time.RFC3339))
	}
	if t.Description != "" {
		fmt.Fprintf(&b, "    %s\n", t.Description)
	}
	fmt.Fprintf(&b, "    Created: %s | Updated: %s\n",
		t.CreatedAt.UTC().Format(time.RFC3339), t.UpdatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "    ID: %s", t.ID)
	return b.String()
}

func priorityMarker(priority string) string {
	switch priority {
	case store.PriorityHigh:
		return "(!)"
	case store.PriorityLow:
		return "(.)"
	default:
		return "(-)"
	}
}

func formatTodoList(todos []*store.Todo, total int) string {
	if total == 0 {
		return "No todos found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Showing %d of %d todos:\n", len(todos), total)
	for _, t := range todos {
		b.WriteString("\n")
		b.WriteString(formatTodo(t))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatStats renders the aggregate report in a fixed order. Completion
// percentage is 0 when there are no todos at all.
func formatStats(s *store.Stats) string {
	pct := 0
	if s.Total > 0 {
		pct = int(math.Round(100 * float64(s.Completed) / float64(s.Total)))
	}

	var b strings.Builder
	b.WriteString("Todo statistics:\n\n")
	fmt.Fprintf(&b, "Total:      %d\n", s.Total)
	fmt.Fprintf(&b, "Completed:  %d\n", s.Completed)
	fmt.Fprintf(&b, "Pending:    %d\n", s.Pending)
	fmt.Fprintf(&b, "Overdue:    %d\n", s.Overdue)
	fmt.Fprintf(&b, "Completion: %d%%", pct)
	return b.String()
}

// resourceDescription composes the short description attached to a todo's
// resource link: completion state, priority, optional due date.
func resourceDescription(t *store.Todo) string {
	state := "pending"
	if t.Completed {
		state = "completed"
	}
	desc := fmt.Sprintf("%s, %s priority", state, t.Priority)
	if t.DueDate != nil {
		desc += ", due " + t.DueDate.UTC().Format("2006-01-02")
	}
	return desc
}
