package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is an MCP tool definition paired with its handler
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// HandlerFunc handles a single tool call
type HandlerFunc func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
