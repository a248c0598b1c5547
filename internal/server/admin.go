package server

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type setAPIKeyArgs struct {
	APIKey string `json:"api_key"`
}

func (s *Server) registerAdminTools() {
	s.mcp.AddTool(&mcp.Tool{
		Name:        "set_api_key",
		Description: "Replace the Pexels API key used for all subsequent requests. Use this when the server was started without a key or the key has been rotated.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"api_key": {
					Type:        "string",
					Description: "The Pexels API key.",
				},
			},
			Required: []string{"api_key"},
		},
	}, s.setAPIKey)
}

func (s *Server) setAPIKey(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args setAPIKeyArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}
	if args.APIKey == "" {
		return errorResult("api_key must not be empty"), nil
	}

	s.client.SetAPIKey(args.APIKey)
	s.logger.Info("API key replaced")

	return textResult("API key updated. Subsequent requests will use the new key."), nil
}
