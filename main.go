package main

import (
	"log"
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"github.com/StrongMonkey/mcp-todo-list-server/internal/config"
	"github.com/StrongMonkey/mcp-todo-list-server/internal/identity"
	"github.com/StrongMonkey/mcp-todo-list-server/internal/prompts"
	"github.com/StrongMonkey/mcp-todo-list-server/internal/resources"
	"github.com/StrongMonkey/mcp-todo-list-server/internal/store"
	"github.com/StrongMonkey/mcp-todo-list-server/internal/tools"
)

func main() {
	log.SetFlags(log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[todo-mcp] ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	st, err := store.NewSQLiteStore(cfg.DatabasePath, cfg.PoolMaxConns, cfg.PoolMinConns)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	mcpServer := server.NewMCPServer(
		"mcp-todo-list-server",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	)

	mcpServer.AddTools(tools.New(st).ServerTools()...)

	res := resources.NewHandler(st)
	mcpServer.AddResource(res.StatsResource(), res.HandleStats)
	mcpServer.AddResourceTemplate(res.TodoTemplate(), res.HandleTodo)

	mcpServer.AddPrompt(prompts.CreateTodoPrompt(), prompts.HandleCreateTodo)

	streamServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithEndpointPath("/mcp"),
		server.WithStateLess(true),
		server.WithHTTPContextFunc(identity.HTTPContextFunc),
	)

	// Custom mux so the landing page and MCP endpoint share one listener
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			handleLandingPage(w, r)
			return
		}
		http.NotFound(w, r)
	})
	mux.Handle("/mcp", streamServer)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	log.Printf("Todo MCP server listening on %s", cfg.Addr)
	log.Printf("  Landing page: http://localhost%s/", cfg.Addr)
	log.Printf("  MCP endpoint: http://localhost%s/mcp", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
