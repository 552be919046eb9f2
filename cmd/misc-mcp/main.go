package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/averycrespi/misc-mcp/internal/config"
	"github.com/averycrespi/misc-mcp/internal/search"
	"github.com/averycrespi/misc-mcp/internal/server"
	"github.com/averycrespi/misc-mcp/internal/tools"
	"github.com/averycrespi/misc-mcp/pkg/project"
	"github.com/averycrespi/misc-mcp/pkg/types"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	configPath    string
	logLevel      string
	workspaceRoot string
	stringsPath   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           project.Name,
		Short:         "MCP server with base64 and file string search tools",
		Version:       project.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}

	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flags.workspaceRoot, "workspace-root", "", "Directory relative file paths resolve against")
	root.PersistentFlags().StringVar(&flags.stringsPath, "strings-path", "", "Path to the strings binary")

	root.AddCommand(serveCmd(flags))
	root.AddCommand(searchCmd(flags))
	root.AddCommand(stringsSearchCmd(flags))
	root.AddCommand(encodeCmd(flags))
	root.AddCommand(decodeCmd(flags))

	return root
}

func serveCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
}

func runServe(cmd *cobra.Command, flags *globalFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return reportError(cmd, err)
	}

	if stat, err := os.Stat(cfg.WorkspaceRoot); err != nil || !stat.IsDir() {
		return reportError(cmd, fmt.Errorf("invalid workspace root: %s", cfg.WorkspaceRoot))
	}

	registry, err := newRegistry(cfg)
	if err != nil {
		return reportError(cmd, err)
	}

	miscServer, err := server.NewMiscServer(cfg, registry)
	if err != nil {
		return reportError(cmd, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := miscServer.Serve(ctx); err != nil {
		return reportError(cmd, err)
	}
	return nil
}

// loadConfig layers the persistent flags over the file and environment
// configuration and installs the logger.
func loadConfig(flags *globalFlags) (types.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return types.Config{}, err
	}

	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.workspaceRoot != "" {
		cfg.WorkspaceRoot = flags.workspaceRoot
	}
	if flags.stringsPath != "" {
		cfg.StringsPath = flags.stringsPath
	}

	if err := config.Validate(cfg); err != nil {
		return types.Config{}, err
	}

	if absPath, err := filepath.Abs(cfg.WorkspaceRoot); err == nil {
		cfg.WorkspaceRoot = absPath
	}

	// stdout carries MCP frames, so logs go to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.SlogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Debug("Loaded configuration", "config", fmt.Sprintf("%+v", cfg))
	return cfg, nil
}

func newRegistry(cfg types.Config) (*tools.Registry, error) {
	extractor := search.NewExecExtractor(cfg.StringsPath, cfg.StringsTimeout)
	registry, err := tools.NewDefaultRegistry(cfg, extractor)
	if err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	return registry, nil
}

func reportError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return err
}

// callTool runs a single tool through the registry and prints its result
func callTool(cmd *cobra.Command, flags *globalFlags, name string, args map[string]any) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return reportError(cmd, err)
	}

	registry, err := newRegistry(cfg)
	if err != nil {
		return reportError(cmd, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := registry.Call(ctx, name, args)
	if err != nil {
		return reportError(cmd, err)
	}

	text := tools.ResultText(result)
	if result.IsError {
		fmt.Fprintln(cmd.ErrOrStderr(), text)
		return errors.New(text)
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
