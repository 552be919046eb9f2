package tools

import (
	"context"
	"log/slog"

	"github.com/averycrespi/misc-mcp/internal/encoding"

	"github.com/mark3labs/mcp-go/mcp"
)

// EncodeBase64Tool handles base64 encoding requests
type EncodeBase64Tool struct{}

// NewEncodeBase64Tool creates a new base64 encoding tool
func NewEncodeBase64Tool() *EncodeBase64Tool {
	return &EncodeBase64Tool{}
}

// GetTool returns the MCP tool definition
func (t *EncodeBase64Tool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolEncodeBase64,
		mcp.WithDescription("Encode a plain text string as base64, using its UTF-8 bytes"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Plain text to encode")),
	)
	return tool
}

// Handle processes the tool request
func (t *EncodeBase64Tool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := mcp.ParseString(req, "text", "")

	slog.Debug("MCP tool called", "tool", ToolEncodeBase64, "length", len(text))

	return mcp.NewToolResultText(encoding.EncodeBase64(text)), nil
}
