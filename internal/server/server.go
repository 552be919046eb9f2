package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/averycrespi/misc-mcp/internal/tools"
	"github.com/averycrespi/misc-mcp/pkg/project"
	"github.com/averycrespi/misc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &MiscServer{}

// MiscServer represents the misc MCP server
type MiscServer struct {
	mcpServer *server.MCPServer
	registry  *tools.Registry
	config    types.Config
	stdin     io.Reader
	stdout    io.Writer
}

// NewMiscServer creates a new misc MCP server exposing every tool in the registry
func NewMiscServer(config types.Config, registry *tools.Registry) (*MiscServer, error) {
	mcpServer := server.NewMCPServer(
		project.Name,
		project.Version,
		server.WithToolCapabilities(true),
	)

	s := &MiscServer{
		mcpServer: mcpServer,
		registry:  registry,
		config:    config,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
	}
	if err := s.registerTools(); err != nil {
		return nil, err
	}
	return s, nil
}

// MCPServer returns the underlying MCP server
func (s *MiscServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Serve serves MCP requests over stdio until ctx is canceled or stdin closes
func (s *MiscServer) Serve(ctx context.Context) error {
	slog.Info("Starting misc MCP server",
		"version", project.Version,
		"workspace_root", s.config.WorkspaceRoot,
		"strings_path", s.config.StringsPath,
		"tools", len(s.registry.Tools()))

	stdio := server.NewStdioServer(s.mcpServer)
	if err := stdio.Listen(ctx, s.stdin, s.stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	slog.Info("Misc MCP server stopped")
	return nil
}

func (s *MiscServer) registerTools() error {
	for _, tool := range s.registry.Tools() {
		handler, err := s.registry.Handler(tool.Name)
		if err != nil {
			return fmt.Errorf("failed to register tool %s: %w", tool.Name, err)
		}
		s.mcpServer.AddTool(tool, server.ToolHandlerFunc(handler))
	}
	return nil
}
