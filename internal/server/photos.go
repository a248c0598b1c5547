package server

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pexelstools/go-pexels-mcp/pexels"
)

type searchPhotosArgs struct {
	Query       string `json:"query"`
	Orientation string `json:"orientation,omitempty"`
	Size        string `json:"size,omitempty"`
	Color       string `json:"color,omitempty"`
	Locale      string `json:"locale,omitempty"`
	Page        int    `json:"page,omitempty"`
	PerPage     int    `json:"per_page,omitempty"`
}

type curatedPhotosArgs struct {
	Page    int `json:"page,omitempty"`
	PerPage int `json:"per_page,omitempty"`
}

type getPhotoArgs struct {
	ID int64 `json:"id"`
}

func (s *Server) registerPhotoTools() {
	s.mcp.AddTool(&mcp.Tool{
		Name:        "search_photos",
		Description: "Search Pexels for photos matching a natural-language query. Supports filtering by orientation, minimum size, color and locale, plus pagination.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"query": {
					Type:        "string",
					Description: "Search query, e.g. \"red car\" or \"ocean waves\".",
				},
				"orientation": {
					Type:        "string",
					Description: "Desired photo orientation.",
					Enum:        []any{"landscape", "portrait", "square"},
				},
				"size": {
					Type:        "string",
					Description: "Minimum photo size.",
					Enum:        []any{"large", "medium", "small"},
				},
				"color": {
					Type:        "string",
					Description: "Desired photo color, a name like \"red\" or a hex code like \"#ff0000\".",
				},
				"locale": {
					Type:        "string",
					Description: "Locale of the search query, e.g. \"en-US\".",
				},
				"page":     pageSchema(),
				"per_page": perPageSchema(),
			},
			Required: []string{"query"},
		},
	}, s.searchPhotos)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_curated_photos",
		Description: "Fetch the current curated photo feed, a rotating selection hand-picked by the Pexels team.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"page":     pageSchema(),
				"per_page": perPageSchema(),
			},
		},
	}, s.getCuratedPhotos)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_photo",
		Description: "Fetch a single photo by its numeric Pexels ID, including all rendition URLs.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"id": {
					Type:        "integer",
					Description: "Numeric photo ID.",
				},
			},
			Required: []string{"id"},
		},
	}, s.getPhoto)
}

func (s *Server) searchPhotos(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args searchPhotosArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}

	opts := &pexels.PhotoSearchOptions{
		Orientation: args.Orientation,
		Size:        args.Size,
		Color:       args.Color,
		Locale:      args.Locale,
		ListOptions: pexels.ListOptions{Page: args.Page, PerPage: args.PerPage},
	}
	page, resp, err := s.client.Photos.Search(ctx, args.Query, opts)
	if err != nil {
		return s.toolError("search_photos", err)
	}

	return jsonResult(page, resp)
}

func (s *Server) getCuratedPhotos(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args curatedPhotosArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}

	page, resp, err := s.client.Photos.Curated(ctx, &pexels.ListOptions{
		Page:    args.Page,
		PerPage: args.PerPage,
	})
	if err != nil {
		return s.toolError("get_curated_photos", err)
	}

	return jsonResult(page, resp)
}

func (s *Server) getPhoto(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args getPhotoArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}

	photo, resp, err := s.client.Photos.Get(ctx, args.ID)
	if err != nil {
		return s.toolError("get_photo", err)
	}

	return jsonResult(photo, resp)
}
