package tools

import (
	"context"
	"log/slog"

	"github.com/averycrespi/misc-mcp/internal/search"
	"github.com/averycrespi/misc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// SearchByStringsTool handles string search requests backed by the strings command
type SearchByStringsTool struct {
	searcher *search.StringsSearcher
	config   types.Config
}

// NewSearchByStringsTool creates a new strings-backed search tool
func NewSearchByStringsTool(extractor types.StringsExtractor, config types.Config) *SearchByStringsTool {
	return &SearchByStringsTool{
		searcher: search.NewStringsSearcher(extractor, config.ContextLines),
		config:   config,
	}
}

// GetTool returns the MCP tool definition
func (t *SearchByStringsTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolSearchByStrings,
		mcp.WithDescription("Search a file (text or binary) for a string using the strings command, "+
			"returning each matching printable string with the strings around it"),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Path to the file to search")),
		mcp.WithString("search_text", mcp.Required(), mcp.Description("Literal, case-sensitive text to search for")),
		mcp.WithNumber(
			"min_length",
			mcp.Description("Minimum length of printable strings passed to strings -n"),
			mcp.DefaultNumber(float64(t.config.DefaultMinLength)),
			mcp.Min(1),
		),
		mcp.WithString(
			"format",
			mcp.Description("Output format"),
			mcp.Enum(FormatText, FormatJSON),
			mcp.DefaultString(FormatText),
		),
	)
	return tool
}

// Handle processes the tool request
func (t *SearchByStringsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath := mcp.ParseString(req, "file_path", "")
	if filePath == "" {
		slog.Debug("MCP tool called with missing file_path parameter", "tool", ToolSearchByStrings)
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}

	searchText := mcp.ParseString(req, "search_text", "")
	if searchText == "" {
		slog.Debug("MCP tool called with missing search_text parameter", "tool", ToolSearchByStrings)
		return mcp.NewToolResultError("search_text parameter is required"), nil
	}

	minLength := mcp.ParseInt(req, "min_length", t.config.DefaultMinLength)

	format, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resolvedPath := ResolvePath(filePath, t.config.WorkspaceRoot)
	slog.Debug("MCP tool called",
		"tool", ToolSearchByStrings,
		"file_path", resolvedPath,
		"search_text", searchText,
		"min_length", minLength)

	report, err := t.searcher.Search(ctx, resolvedPath, searchText, minLength)
	if err != nil {
		slog.Debug("Strings search failed",
			"tool", ToolSearchByStrings,
			"file_path", resolvedPath,
			"kind", search.KindOf(err).String(),
			"error", err)
		return searchErrorResult(err, format), nil
	}

	slog.Debug("MCP tool completed successfully",
		"tool", ToolSearchByStrings,
		"file_path", resolvedPath,
		"match_count", report.Count)

	return reportResult(report, format), nil
}
