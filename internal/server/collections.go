package server

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pexelstools/go-pexels-mcp/pexels"
)

type listCollectionsArgs struct {
	Page    int `json:"page,omitempty"`
	PerPage int `json:"per_page,omitempty"`
}

type collectionMediaArgs struct {
	ID      string `json:"id"`
	Type    string `json:"type,omitempty"`
	Sort    string `json:"sort,omitempty"`
	Page    int    `json:"page,omitempty"`
	PerPage int    `json:"per_page,omitempty"`
}

func (s *Server) registerCollectionTools() {
	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_featured_collections",
		Description: "Fetch the featured Pexels collections.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"page":     pageSchema(),
				"per_page": perPageSchema(),
			},
		},
	}, s.getFeaturedCollections)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_my_collections",
		Description: "Fetch the collections owned by the account behind the configured API key. Requires an API key with collection access; the upstream error is reported otherwise.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"page":     pageSchema(),
				"per_page": perPageSchema(),
			},
		},
	}, s.getMyCollections)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_collection_media",
		Description: "Fetch the media items of a collection by its ID. The result mixes photos and videos, each tagged with its type.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"id": {
					Type:        "string",
					Description: "Collection ID, e.g. \"hoxyyjd\".",
				},
				"type": {
					Type:        "string",
					Description: "Restrict results to one media type.",
					Enum:        []any{"photos", "videos"},
				},
				"sort": {
					Type:        "string",
					Description: "Sort order of the media items.",
					Enum:        []any{"asc", "desc"},
				},
				"page":     pageSchema(),
				"per_page": perPageSchema(),
			},
			Required: []string{"id"},
		},
	}, s.getCollectionMedia)
}

func (s *Server) getFeaturedCollections(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listCollectionsArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}

	page, resp, err := s.client.Collections.Featured(ctx, &pexels.ListOptions{
		Page:    args.Page,
		PerPage: args.PerPage,
	})
	if err != nil {
		return s.toolError("get_featured_collections", err)
	}

	return jsonResult(page, resp)
}

func (s *Server) getMyCollections(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listCollectionsArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}

	page, resp, err := s.client.Collections.Mine(ctx, &pexels.ListOptions{
		Page:    args.Page,
		PerPage: args.PerPage,
	})
	if err != nil {
		return s.toolError("get_my_collections", err)
	}

	return jsonResult(page, resp)
}

func (s *Server) getCollectionMedia(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args collectionMediaArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}

	opts := &pexels.CollectionMediaOptions{
		Type:        args.Type,
		Sort:        args.Sort,
		ListOptions: pexels.ListOptions{Page: args.Page, PerPage: args.PerPage},
	}
	page, resp, err := s.client.Collections.Media(ctx, args.ID, opts)
	if err != nil {
		return s.toolError("get_collection_media", err)
	}

	return jsonResult(page, resp)
}
