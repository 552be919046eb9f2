package tools

import (
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ResolvePath converts a tool file path to a local path. Relative paths are
// resolved against the workspace root; file:// URIs are accepted.
func ResolvePath(filePath string, workspaceRoot string) string {
	filePath = strings.TrimPrefix(filePath, "file://")

	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(workspaceRoot, filePath)
	}

	return filepath.Clean(filePath)
}

// ResultText joins the text content of a tool result
func ResultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}

	var parts []string
	for _, content := range result.Content {
		switch c := content.(type) {
		case mcp.TextContent:
			parts = append(parts, c.Text)
		case *mcp.TextContent:
			parts = append(parts, c.Text)
		}
	}

	return strings.Join(parts, "\n")
}
