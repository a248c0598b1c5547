package server

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/pexelstools/go-pexels-mcp/pexels"
)

// decodeArgs unmarshals the raw tool arguments into v. Absent
// arguments leave v at its zero value.
func decodeArgs(req *mcp.CallToolRequest, v any) error {
	args := json.RawMessage(req.Params.Arguments)
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	return nil
}

// errorResult wraps a message in an IsError tool result. Upstream API
// failures are reported this way rather than as protocol errors, so
// the calling model sees the message and can react to it.
func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

func (s *Server) toolError(tool string, err error) (*mcp.CallToolResult, error) {
	s.logger.Warn("tool call failed", zap.String("tool", tool), zap.Error(err))
	return errorResult(err.Error()), nil
}

// jsonResult renders v as indented JSON, appending a quota line when
// the response carried usable rate telemetry.
func jsonResult(v any, resp *pexels.Response) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	text := string(data)
	if resp != nil && resp.Rate != nil &&
		resp.Rate.Limit != pexels.RateUnknown && resp.Rate.Remaining != pexels.RateUnknown {
		text += fmt.Sprintf("\n\nAPI quota: %d/%d requests remaining", resp.Rate.Remaining, resp.Rate.Limit)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func float(v float64) *float64 {
	return &v
}

// Shared schema fragments for the pagination parameters every list
// tool accepts.
func pageSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "integer",
		Description: "Page number to fetch (default 1).",
		Minimum:     float(1),
	}
}

func perPageSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "integer",
		Description: "Results per page (default 15, max 80).",
		Minimum:     float(1),
		Maximum:     float(80),
	}
}
