package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/misc-mcp/internal/encoding"

	"github.com/mark3labs/mcp-go/mcp"
)

// DecodeBase64Tool handles base64 decoding requests
type DecodeBase64Tool struct{}

// NewDecodeBase64Tool creates a new base64 decoding tool
func NewDecodeBase64Tool() *DecodeBase64Tool {
	return &DecodeBase64Tool{}
}

// GetTool returns the MCP tool definition
func (t *DecodeBase64Tool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolDecodeBase64,
		mcp.WithDescription("Decode base64 text into a UTF-8 string"),
		mcp.WithString("base64_text", mcp.Required(), mcp.Description("Base64 encoded text")),
	)
	return tool
}

// Handle processes the tool request
func (t *DecodeBase64Tool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	encoded := mcp.ParseString(req, "base64_text", "")

	slog.Debug("MCP tool called", "tool", ToolDecodeBase64, "length", len(encoded))

	decoded, err := encoding.DecodeBase64(encoded)
	if err != nil {
		slog.Debug("Failed to decode base64", "tool", ToolDecodeBase64, "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Decoding failed: %v", err)), nil
	}

	return mcp.NewToolResultText(decoded), nil
}
