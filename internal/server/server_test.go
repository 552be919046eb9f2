package server

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/averycrespi/misc-mcp/internal/config"
	"github.com/averycrespi/misc-mcp/internal/search"
	"github.com/averycrespi/misc-mcp/internal/tools"
	"github.com/averycrespi/misc-mcp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcResponse struct {
	ID     int             `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) (*MiscServer, types.Config) {
	t.Helper()
	cfg := config.Defaults()
	cfg.WorkspaceRoot = t.TempDir()

	registry, err := tools.NewDefaultRegistry(cfg, search.NewExecExtractor(cfg.StringsPath, cfg.StringsTimeout))
	require.NoError(t, err)

	s, err := NewMiscServer(cfg, registry)
	require.NoError(t, err)
	return s, cfg
}

func sendMessage(t *testing.T, s *MiscServer, message string) rpcResponse {
	t.Helper()
	reply := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(message))
	require.NotNil(t, reply)

	raw, err := json.Marshal(reply)
	require.NoError(t, err)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	return resp
}

func TestInitialize(t *testing.T) {
	s, _ := newTestServer(t)

	resp := sendMessage(t, s, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{`+
		`"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}}}`)
	require.Nil(t, resp.Error)

	var result struct {
		ServerInfo struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"serverInfo"`
		Capabilities struct {
			Tools map[string]any `json:"tools"`
		} `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))

	assert.Equal(t, "misc-mcp", result.ServerInfo.Name)
	assert.NotNil(t, result.Capabilities.Tools)
}

func TestListTools(t *testing.T) {
	s, _ := newTestServer(t)

	resp := sendMessage(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	require.Nil(t, resp.Error)

	var result struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))

	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		tools.ToolEncodeBase64,
		tools.ToolDecodeBase64,
		tools.ToolSearchByStrings,
		tools.ToolSearchByCode,
	}, names)
}

type callResult struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	IsError bool `json:"isError"`
}

func callTool(t *testing.T, s *MiscServer, params string) callResult {
	t.Helper()
	resp := sendMessage(t, s, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":`+params+`}`)
	require.Nil(t, resp.Error)

	var result callResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Content, 1)
	return result
}

func TestCallTools(t *testing.T) {
	s, cfg := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.WorkspaceRoot, "notes.txt"), []byte("first\nsecret=42\nlast\n"), 0o644))

	result := callTool(t, s, `{"name":"encode_base64","arguments":{"text":"hello"}}`)
	assert.False(t, result.IsError)
	assert.Equal(t, "aGVsbG8=", result.Content[0].Text)

	result = callTool(t, s, `{"name":"decode_base64","arguments":{"base64_text":"aGVsbG8="}}`)
	assert.False(t, result.IsError)
	assert.Equal(t, "hello", result.Content[0].Text)

	result = callTool(t, s, `{"name":"search_string_in_file_by_code","arguments":{"file_path":"notes.txt","search_text":"secret"}}`)
	assert.False(t, result.IsError)
	assert.Contains(t, result.Content[0].Text, "Found 1 match in file")
	assert.Contains(t, result.Content[0].Text, ">>> secret=42")
}

func TestCallToolInvalidArguments(t *testing.T) {
	s, _ := newTestServer(t)

	result := callTool(t, s, `{"name":"search_string_in_file_by_code","arguments":{"search_text":"x"}}`)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content[0].Text, "Invalid arguments for search_string_in_file_by_code")
}
