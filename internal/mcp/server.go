package mcp

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winbridge/internal/remote"
)

const (
	ServerName    = "winbridge"
	ServerVersion = "0.1.0"
)

// Server is the MCP server exposing host window control.
type Server struct {
	mcpServer  *mcpsdk.Server
	controller *remote.Controller
	logger     *slog.Logger
}

// NewServer creates an MCP server backed by the given controller.
func NewServer(controller *remote.Controller, logger *slog.Logger) *Server {
	s := &Server{
		controller: controller,
		logger:     logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "create_window",
		Description: "Create a window in the UI host. Omitted options use the host's defaults; omitting the position lets the host auto-place the window. load_target may be an absolute URL or a path relative to the local content server. Blocks until the host reports the new window's id (up to timeout, default 30s).",
	}, s.handleCreateWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "create_view",
		Description: "Create an embedded view in the UI host. Omitted options use the host's defaults. Blocks until the host reports the new view's id (up to timeout, default 30s).",
	}, s.handleCreateView)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the ids of currently-live host windows, in creation order. The list is kept in sync with the host's close notifications.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_views",
		Description: "List the ids of currently-live host views, in creation order.",
	}, s.handleListViews)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_quit_behavior",
		Description: "Set whether the UI host process exits once its last window closes. Forwarded to the host unchanged.",
	}, s.handleSetQuitBehavior)
}
