// Package resources resolves todo:// addresses to items. Unlike tool calls,
// resource reads propagate failures to the transport: a missing item is a
// read error, not an error-flavored content block.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/StrongMonkey/mcp-todo-list-server/internal/identity"
	"github.com/StrongMonkey/mcp-todo-list-server/internal/store"
)

// Scheme is the URI scheme prefix for todo resources.
const Scheme = "todo://"

// StatsURI is the reserved address aliasing the aggregate statistics query.
const StatsURI = Scheme + "stats"

// TodoURI returns the resource address of a single item.
func TodoURI(id string) string {
	return Scheme + id
}

// Handler resolves resource reads against the store, scoped to the caller
// identity carried in the request context.
type Handler struct {
	store store.Store
}

// NewHandler creates a resource handler backed by the given store.
func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

// TodoTemplate describes the todo://{id} resource template.
func (h *Handler) TodoTemplate() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(Scheme+"{id}", "Todo Item",
		mcp.WithTemplateDescription("A single todo item, addressed by id, serialized as JSON."),
		mcp.WithTemplateMIMEType("application/json"),
	)
}

// HandleTodo resolves todo://<id> to the caller's item. Errors (including
// not-found) propagate to the transport as genuine read failures.
func (h *Handler) HandleTodo(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	caller := identity.FromContext(ctx)
	uri := req.Params.URI

	id := strings.TrimPrefix(uri, Scheme)
	if id == uri || id == "" {
		return nil, fmt.Errorf("invalid todo resource URI: %s", uri)
	}

	todo, err := h.store.GetByID(ctx, id, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", uri, err)
	}

	return jsonContents(uri, todoOutput(todo))
}

// StatsResource describes the todo://stats alias.
func (h *Handler) StatsResource() mcp.Resource {
	return mcp.NewResource(StatsURI, "Todo Statistics",
		mcp.WithResourceDescription("Aggregate todo statistics for the caller: total, completed, pending, overdue."),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStats serves todo://stats with the same aggregate the getTodoStats
// tool computes.
func (h *Handler) HandleStats(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	caller := identity.FromContext(ctx)

	stats, err := h.store.Stats(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", StatsURI, err)
	}

	return jsonContents(req.Params.URI, statsJSON{
		Total:     stats.Total,
		Completed: stats.Completed,
		Pending:   stats.Pending,
		Overdue:   stats.Overdue,
	})
}

// TodoJSON is the wire shape of a todo item resource.
type TodoJSON struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Completed   bool    `json:"completed"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	Owner       string  `json:"owner"`
}

type statsJSON struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

func todoOutput(t *store.Todo) TodoJSON {
	out := TodoJSON{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
		Owner:       t.Owner.ID,
	}
	if t.DueDate != nil {
		s := t.DueDate.UTC().Format(time.RFC3339)
		out.DueDate = &s
	}
	return out
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(b),
		},
	}, nil
}
