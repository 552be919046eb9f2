package tools

import (
	"encoding/json"
	"fmt"

	"github.com/averycrespi/misc-mcp/internal/results"
	"github.com/averycrespi/misc-mcp/internal/search"

	"github.com/mark3labs/mcp-go/mcp"
)

// ErrorResult represents the JSON structure of a failed search
type ErrorResult struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// parseFormat returns the requested output format, defaulting to text
func parseFormat(req mcp.CallToolRequest) (string, error) {
	format := mcp.ParseString(req, "format", FormatText)
	switch format {
	case FormatText, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format '%s', expected '%s' or '%s'", format, FormatText, FormatJSON)
	}
}

// reportResult renders a search report in the requested format
func reportResult(report *results.Report, format string) *mcp.CallToolResult {
	if format != FormatJSON {
		return mcp.NewToolResultText(report.Text())
	}

	out, err := report.JSON()
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(out)
}

// searchErrorResult renders a search failure as an error result
func searchErrorResult(err error, format string) *mcp.CallToolResult {
	if format != FormatJSON {
		return mcp.NewToolResultError(err.Error())
	}

	jsonBytes, marshalErr := json.MarshalIndent(ErrorResult{
		Kind:    search.KindOf(err).String(),
		Message: err.Error(),
	}, "", "  ")
	if marshalErr != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(string(jsonBytes))
}
