package tools

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/StrongMonkey/mcp-todo-list-server/internal/store"
)

// Field length limits, in characters.
const (
	maxTitleLen       = 255
	maxDescriptionLen = 1000
)

// ValidationError names the argument and the constraint it violated.
// Validators fail fast on the first violation and never partially apply.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Constraint)
}

func invalid(field, constraint string) *ValidationError {
	return &ValidationError{Field: field, Constraint: constraint}
}

type createArgs struct {
	title       string
	description string
	priority    string
	dueDate     *time.Time
}

func parseCreateArgs(req mcp.CallToolRequest) (createArgs, error) {
	args := req.GetArguments()
	var out createArgs

	title, ok, err := stringArg(args, "title")
	if err != nil {
		return out, err
	}
	if !ok || title == "" {
		return out, invalid("title", "required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return out, invalid("title", fmt.Sprintf("must be at most %d characters", maxTitleLen))
	}
	out.title = title

	if desc, ok, err := stringArg(args, "description"); err != nil {
		return out, err
	} else if ok {
		if utf8.RuneCountInString(desc) > maxDescriptionLen {
			return out, invalid("description", fmt.Sprintf("must be at most %d characters", maxDescriptionLen))
		}
		out.description = desc
	}

	priority, err := priorityArg(args)
	if err != nil {
		return out, err
	}
	out.priority = priority

	out.dueDate, err = dueDateArg(args)
	if err != nil {
		return out, err
	}

	return out, nil
}

type updateArgs struct {
	id     string
	fields store.UpdateFields
}

func parseUpdateArgs(req mcp.CallToolRequest) (updateArgs, error) {
	args := req.GetArguments()
	var out updateArgs

	id, err := requireID(req)
	if err != nil {
		return out, err
	}
	out.id = id

	if title, ok, err := stringArg(args, "title"); err != nil {
		return out, err
	} else if ok {
		if title == "" {
			return out, invalid("title", "must not be empty")
		}
		if utf8.RuneCountInString(title) > maxTitleLen {
			return out, invalid("title", fmt.Sprintf("must be at most %d characters", maxTitleLen))
		}
		out.fields.Title = &title
	}

	if desc, ok, err := stringArg(args, "description"); err != nil {
		return out, err
	} else if ok {
		if utf8.RuneCountInString(desc) > maxDescriptionLen {
			return out, invalid("description", fmt.Sprintf("must be at most %d characters", maxDescriptionLen))
		}
		out.fields.Description = &desc
	}

	if completed, ok, err := boolArg(args, "completed"); err != nil {
		return out, err
	} else if ok {
		out.fields.Completed = &completed
	}

	if raw, ok, err := stringArg(args, "priority"); err != nil {
		return out, err
	} else if ok {
		priority, err := validPriority(raw)
		if err != nil {
			return out, err
		}
		out.fields.Priority = &priority
	}

	due, err := dueDateArg(args)
	if err != nil {
		return out, err
	}
	out.fields.DueDate = due

	return out, nil
}

func parseFilterArgs(req mcp.CallToolRequest) (store.ListFilter, error) {
	args := req.GetArguments()
	filter := store.ListFilter{Limit: store.DefaultLimit}

	if completed, ok, err := boolArg(args, "completed"); err != nil {
		return filter, err
	} else if ok {
		filter.Completed = &completed
	}

	if raw, ok, err := stringArg(args, "priority"); err != nil {
		return filter, err
	} else if ok {
		priority, err := validPriority(raw)
		if err != nil {
			return filter, err
		}
		filter.Priority = priority
	}

	if search, ok, err := stringArg(args, "search"); err != nil {
		return filter, err
	} else if ok {
		filter.Search = search
	}

	if limit, ok, err := intArg(args, "limit"); err != nil {
		return filter, err
	} else if ok {
		if limit < 1 || limit > store.MaxLimit {
			return filter, invalid("limit", fmt.Sprintf("must be between 1 and %d", store.MaxLimit))
		}
		filter.Limit = limit
	}

	if offset, ok, err := intArg(args, "offset"); err != nil {
		return filter, err
	} else if ok {
		if offset < 0 {
			return filter, invalid("offset", "must not be negative")
		}
		filter.Offset = offset
	}

	return filter, nil
}

// requireID validates the single-id argument shared by get/delete/complete.
func requireID(req mcp.CallToolRequest) (string, error) {
	id, ok, err := stringArg(req.GetArguments(), "id")
	if err != nil {
		return "", err
	}
	if !ok || id == "" {
		return "", invalid("id", "required")
	}
	return id, nil
}

// priorityArg resolves the create-time priority: absent or empty falls back
// to medium. Update and filter paths call validPriority directly instead,
// where a present value (even "") must be a real enum member.
func priorityArg(args map[string]any) (string, error) {
	priority, ok, err := stringArg(args, "priority")
	if err != nil {
		return "", err
	}
	if !ok || priority == "" {
		return store.PriorityMedium, nil
	}
	return validPriority(priority)
}

func validPriority(priority string) (string, error) {
	switch priority {
	case store.PriorityLow, store.PriorityMedium, store.PriorityHigh:
		return priority, nil
	}
	return "", invalid("priority", "must be one of low, medium, high")
}

func dueDateArg(args map[string]any) (*time.Time, error) {
	raw, ok, err := stringArg(args, "due_date")
	if err != nil || !ok || raw == "" {
		return nil, err
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	return nil, invalid("due_date", "must be an RFC 3339 timestamp or YYYY-MM-DD date")
}

// stringArg returns (value, present, error). Presence with a non-string
// value is a validation error, not a silent default.
func stringArg(args map[string]any, key string) (string, bool, error) {
	raw, present := args[key]
	if !present || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, invalid(key, "must be a string")
	}
	return s, true, nil
}

func boolArg(args map[string]any, key string) (bool, bool, error) {
	raw, present := args[key]
	if !present || raw == nil {
		return false, false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, false, invalid(key, "must be a boolean")
	}
	return b, true, nil
}

// intArg accepts both float64 (JSON numbers) and int (tests, Go callers).
func intArg(args map[string]any, key string) (int, bool, error) {
	raw, present := args[key]
	if !present || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, false, invalid(key, "must be an integer")
		}
		return int(v), true, nil
	case int:
		return v, true, nil
	}
	return 0, false, invalid(key, "must be an integer")
}
