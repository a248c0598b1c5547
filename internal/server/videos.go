package server

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pexelstools/go-pexels-mcp/pexels"
)

type searchVideosArgs struct {
	Query       string `json:"query"`
	Orientation string `json:"orientation,omitempty"`
	Size        string `json:"size,omitempty"`
	Locale      string `json:"locale,omitempty"`
	Page        int    `json:"page,omitempty"`
	PerPage     int    `json:"per_page,omitempty"`
}

type popularVideosArgs struct {
	MinWidth    int `json:"min_width,omitempty"`
	MinHeight   int `json:"min_height,omitempty"`
	MinDuration int `json:"min_duration,omitempty"`
	MaxDuration int `json:"max_duration,omitempty"`
	Page        int `json:"page,omitempty"`
	PerPage     int `json:"per_page,omitempty"`
}

type getVideoArgs struct {
	ID int64 `json:"id"`
}

func (s *Server) registerVideoTools() {
	s.mcp.AddTool(&mcp.Tool{
		Name:        "search_videos",
		Description: "Search Pexels for videos matching a natural-language query. Supports filtering by orientation, minimum size and locale, plus pagination.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"query": {
					Type:        "string",
					Description: "Search query, e.g. \"ocean waves\".",
				},
				"orientation": {
					Type:        "string",
					Description: "Desired video orientation.",
					Enum:        []any{"landscape", "portrait", "square"},
				},
				"size": {
					Type:        "string",
					Description: "Minimum video size.",
					Enum:        []any{"large", "medium", "small"},
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
	}, s.searchVideos)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_popular_videos",
		Description: "Fetch the current popular videos, optionally constrained by minimum dimensions and duration bounds.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"min_width": {
					Type:        "integer",
					Description: "Minimum video width in pixels.",
				},
				"min_height": {
					Type:        "integer",
					Description: "Minimum video height in pixels.",
				},
				"min_duration": {
					Type:        "integer",
					Description: "Minimum video duration in seconds.",
				},
				"max_duration": {
					Type:        "integer",
					Description: "Maximum video duration in seconds.",
				},
				"page":     pageSchema(),
				"per_page": perPageSchema(),
			},
		},
	}, s.getPopularVideos)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_video",
		Description: "Fetch a single video by its numeric Pexels ID, including all encoded files and preview frames.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"id": {
					Type:        "integer",
					Description: "Numeric video ID.",
				},
			},
			Required: []string{"id"},
		},
	}, s.getVideo)
}

func (s *Server) searchVideos(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args searchVideosArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}

	opts := &pexels.VideoSearchOptions{
		Orientation: args.Orientation,
		Size:        args.Size,
		Locale:      args.Locale,
		ListOptions: pexels.ListOptions{Page: args.Page, PerPage: args.PerPage},
	}
	page, resp, err := s.client.Videos.Search(ctx, args.Query, opts)
	if err != nil {
		return s.toolError("search_videos", err)
	}

	return jsonResult(page, resp)
}

func (s *Server) getPopularVideos(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args popularVideosArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}

	opts := &pexels.PopularVideoOptions{
		MinWidth:    args.MinWidth,
		MinHeight:   args.MinHeight,
		MinDuration: args.MinDuration,
		MaxDuration: args.MaxDuration,
		ListOptions: pexels.ListOptions{Page: args.Page, PerPage: args.PerPage},
	}
	page, resp, err := s.client.Videos.Popular(ctx, opts)
	if err != nil {
		return s.toolError("get_popular_videos", err)
	}

	return jsonResult(page, resp)
}

func (s *Server) getVideo(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args getVideoArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}

	video, resp, err := s.client.Videos.Get(ctx, args.ID)
	if err != nil {
		return s.toolError("get_video", err)
	}

	return jsonResult(video, resp)
}
