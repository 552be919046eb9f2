package main

import (
	"github.com/averycrespi/misc-mcp/internal/tools"

	"github.com/spf13/cobra"
)

func searchCmd(flags *globalFlags) *cobra.Command {
	var (
		ignoreCase bool
		noContext  bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "search FILE TEXT",
		Short: "Search a file for text without external tools",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return callTool(cmd, flags, tools.ToolSearchByCode, map[string]any{
				"file_path":      args[0],
				"search_text":    args[1],
				"case_sensitive": !ignoreCase,
				"show_context":   !noContext,
				"format":         outputFormat(asJSON),
			})
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Match case-insensitively")
	cmd.Flags().BoolVar(&noContext, "no-context", false, "Omit surrounding lines")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func stringsSearchCmd(flags *globalFlags) *cobra.Command {
	var (
		minLength int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "strings-search FILE TEXT",
		Short: "Search the printable strings of a file using the strings command",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			callArgs := map[string]any{
				"file_path":   args[0],
				"search_text": args[1],
				"format":      outputFormat(asJSON),
			}
			if cmd.Flags().Changed("min-length") {
				callArgs["min_length"] = minLength
			}
			return callTool(cmd, flags, tools.ToolSearchByStrings, callArgs)
		},
	}

	cmd.Flags().IntVarP(&minLength, "min-length", "n", 4, "Minimum printable string length")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func encodeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "encode TEXT",
		Short: "Encode text as base64",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return callTool(cmd, flags, tools.ToolEncodeBase64, map[string]any{"text": args[0]})
		},
	}
}

func decodeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "decode BASE64",
		Short: "Decode base64 into UTF-8 text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return callTool(cmd, flags, tools.ToolDecodeBase64, map[string]any{"base64_text": args[0]})
		},
	}
}

func outputFormat(asJSON bool) string {
	if asJSON {
		return tools.FormatJSON
	}
	return tools.FormatText
}
