package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/averycrespi/misc-mcp/pkg/types"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/xeipuuv/gojsonschema"
)

type registeredTool struct {
	tool   Tool
	def    mcp.Tool
	schema *gojsonschema.Schema
}

// Registry holds the tools exposed by the server, in registration order.
// It is built explicitly by the hosting layer.
type Registry struct {
	tools  []*registeredTool
	byName map[string]*registeredTool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*registeredTool),
	}
}

// NewDefaultRegistry creates a registry with every misc-mcp tool
func NewDefaultRegistry(config types.Config, extractor types.StringsExtractor) (*Registry, error) {
	r := NewRegistry()
	for _, tool := range []Tool{
		NewEncodeBase64Tool(),
		NewDecodeBase64Tool(),
		NewSearchByStringsTool(extractor, config),
		NewSearchByCodeTool(config),
	} {
		if err := r.Add(tool); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add registers a tool. Tool names must be unique.
func (r *Registry) Add(tool Tool) error {
	def := tool.GetTool()
	if def.Name == "" {
		return fmt.Errorf("tool name must not be empty")
	}
	if _, exists := r.byName[def.Name]; exists {
		return fmt.Errorf("tool %s is already registered", def.Name)
	}

	schemaJSON, err := json.Marshal(def.InputSchema)
	if err != nil {
		return fmt.Errorf("failed to marshal input schema for tool %s: %w", def.Name, err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		return fmt.Errorf("failed to compile input schema for tool %s: %w", def.Name, err)
	}

	entry := &registeredTool{tool: tool, def: def, schema: schema}
	r.tools = append(r.tools, entry)
	r.byName[def.Name] = entry

	slog.Debug("Registered tool", "tool", def.Name)
	return nil
}

// Tools returns the tool definitions in registration order
func (r *Registry) Tools() []mcp.Tool {
	defs := make([]mcp.Tool, 0, len(r.tools))
	for _, entry := range r.tools {
		defs = append(defs, entry.def)
	}
	return defs
}

// Lookup returns the tool registered under name
func (r *Registry) Lookup(name string) (Tool, bool) {
	entry, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return entry.tool, true
}

// Handler returns the wrapped handler for the named tool. The wrapper
// validates arguments against the tool's input schema, tags the call with
// an ID for logging and converts handler errors into error results.
func (r *Registry) Handler(name string) (HandlerFunc, error) {
	entry, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", name)
	}

	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := slog.With("tool", name, "call_id", uuid.NewString())
		logger.Debug("Handling tool call")

		if err := validateArguments(entry.schema, req.GetArguments()); err != nil {
			logger.Debug("Rejected tool arguments", "error", err)
			return mcp.NewToolResultError(fmt.Sprintf("Invalid arguments for %s: %v", name, err)), nil
		}

		result, err := entry.tool.Handle(ctx, req)
		if err != nil {
			logger.Error("Tool handler failed", "error", err)
			return mcp.NewToolResultError(fmt.Sprintf("Tool %s failed: %v", name, err)), nil
		}

		logger.Debug("Tool call completed", "is_error", result.IsError)
		return result, nil
	}, nil
}

// Call invokes the named tool directly with the given arguments
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	handler, err := r.Handler(name)
	if err != nil {
		return nil, err
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	return handler(ctx, req)
}

func validateArguments(schema *gojsonschema.Schema, args map[string]any) error {
	if args == nil {
		args = map[string]any{}
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var msgs []string
	for _, resultErr := range result.Errors() {
		msgs = append(msgs, resultErr.String())
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
