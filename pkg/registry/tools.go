package registry

import (
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// capabilityTools binds each capability name a descriptor may declare to
// the MCP tool definitions the sandbox's dev-tool surface exposes for
// it. Tool names match the vocabulary the LLM executor classifies
// (write_file/edit_file become file artifacts, see pkg/llmexec), so a
// descriptor's AllowedTools is exactly the set of tool calls its
// subagent's stream may legally contain.
var capabilityTools = map[string][]Capability{
	"file_write": {
		{
			Name:        "write_file",
			Description: "Create or overwrite a file in the sandbox working directory",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"path":{"type":"string"},"content":{"type":"string"}},"required":["path","content"]}`),
		},
		{
			Name:        "edit_file",
			Description: "Apply an edit to an existing file in the sandbox working directory",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"path":{"type":"string"},"content":{"type":"string"}},"required":["path","content"]}`),
		},
	},
	"search": {
		{
			Name:        "search",
			Description: "Search the sandbox file tree and prior artifacts for a pattern",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"query":{"type":"string"},"path":{"type":"string"}},"required":["query"]}`),
		},
	},
	"artifact_reference": {
		{
			Name:        "resolve_artifacts",
			Description: "Resolve @agent/name artifact references into their latest payloads",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"refs":{"type":"array","items":{"type":"string"}}},"required":["refs"]}`),
		},
	},
	"api_test": {
		{
			Name:        "http_request",
			Description: "Issue an HTTP request against the generated app's preview URL",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"method":{"type":"string"},"path":{"type":"string"},"body":{"type":"string"}},"required":["method","path"]}`),
		},
	},
}

// toolsForCapabilities expands a descriptor's capability names into the
// concrete tool definitions they grant. Unknown capability names grant
// nothing; the catalog validates names it cares about, not this table.
func toolsForCapabilities(capabilities []string) []mcp.Tool {
	var tools []mcp.Tool
	for _, name := range capabilities {
		tools = append(tools, capabilityTools[name]...)
	}
	return tools
}
