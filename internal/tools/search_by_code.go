package tools

import (
	"context"
	"log/slog"

	"github.com/averycrespi/misc-mcp/internal/search"
	"github.com/averycrespi/misc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// SearchByCodeTool handles in-process string search requests
type SearchByCodeTool struct {
	searcher *search.NativeSearcher
	config   types.Config
}

// NewSearchByCodeTool creates a new in-process search tool
func NewSearchByCodeTool(config types.Config) *SearchByCodeTool {
	return &SearchByCodeTool{
		searcher: search.NewNativeSearcher(config.ContextLines, config.ContextBytes),
		config:   config,
	}
}

// GetTool returns the MCP tool definition
func (t *SearchByCodeTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolSearchByCode,
		mcp.WithDescription("Search a file for a string without external tools. "+
			"Text files report line numbers with surrounding lines; "+
			"binary files report byte offsets with surrounding bytes. "+
			"In binary files case_sensitive=false folds ASCII letters only"),
		mcp.WithString("file_path", mcp.Required(), mcp.Description("Path to the file to search")),
		mcp.WithString("search_text", mcp.Required(), mcp.Description("Literal text to search for")),
		mcp.WithBoolean(
			"case_sensitive",
			mcp.Description("Match case exactly. When false, text files fold Unicode case and binary files fold ASCII letters only"),
			mcp.DefaultBool(true),
		),
		mcp.WithBoolean(
			"show_context",
			mcp.Description("Include the lines around each text match"),
			mcp.DefaultBool(true),
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
func (t *SearchByCodeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath := mcp.ParseString(req, "file_path", "")
	if filePath == "" {
		slog.Debug("MCP tool called with missing file_path parameter", "tool", ToolSearchByCode)
		return mcp.NewToolResultError("file_path parameter is required"), nil
	}

	searchText := mcp.ParseString(req, "search_text", "")
	if searchText == "" {
		slog.Debug("MCP tool called with missing search_text parameter", "tool", ToolSearchByCode)
		return mcp.NewToolResultError("search_text parameter is required"), nil
	}

	defaults := search.DefaultNativeOptions()
	opts := search.NativeOptions{
		CaseSensitive: mcp.ParseBoolean(req, "case_sensitive", defaults.CaseSensitive),
		ShowContext:   mcp.ParseBoolean(req, "show_context", defaults.ShowContext),
	}

	format, err := parseFormat(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resolvedPath := ResolvePath(filePath, t.config.WorkspaceRoot)
	slog.Debug("MCP tool called",
		"tool", ToolSearchByCode,
		"file_path", resolvedPath,
		"search_text", searchText,
		"case_sensitive", opts.CaseSensitive,
		"show_context", opts.ShowContext)

	report, err := t.searcher.Search(ctx, resolvedPath, searchText, opts)
	if err != nil {
		slog.Debug("Native search failed",
			"tool", ToolSearchByCode,
			"file_path", resolvedPath,
			"kind", search.KindOf(err).String(),
			"error", err)
		return searchErrorResult(err, format), nil
	}

	slog.Debug("MCP tool completed successfully",
		"tool", ToolSearchByCode,
		"file_path", resolvedPath,
		"mode", report.Mode.String(),
		"match_count", report.Count)

	return reportResult(report, format), nil
}
