package server

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type downloadPhotoArgs struct {
	ID   int64  `json:"id"`
	Size string `json:"size,omitempty"`
}

type downloadVideoArgs struct {
	ID      int64  `json:"id"`
	Quality string `json:"quality,omitempty"`
}

func (s *Server) registerDownloadTools() {
	s.mcp.AddTool(&mcp.Tool{
		Name:        "download_photo",
		Description: "Resolve the direct download URL for a photo in the requested rendition. Falls back to the original rendition when the requested one is unavailable.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"id": {
					Type:        "integer",
					Description: "Numeric photo ID.",
				},
				"size": {
					Type:        "string",
					Description: "Rendition to download (default original).",
					Enum:        []any{"original", "large2x", "large", "medium", "small", "portrait", "landscape", "tiny"},
				},
			},
			Required: []string{"id"},
		},
	}, s.downloadPhoto)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "download_video",
		Description: "Resolve the direct download URL for a video file of the requested quality. Falls back to the first available file when no file matches.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"id": {
					Type:        "integer",
					Description: "Numeric video ID.",
				},
				"quality": {
					Type:        "string",
					Description: "Desired video quality (default hd).",
					Enum:        []any{"hd", "sd"},
				},
			},
			Required: []string{"id"},
		},
	}, s.downloadVideo)
}

func (s *Server) downloadPhoto(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args downloadPhotoArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}
	if args.Size == "" {
		args.Size = "original"
	}

	photo, resp, err := s.client.Photos.Get(ctx, args.ID)
	if err != nil {
		return s.toolError("download_photo", err)
	}

	link := photo.SourceBySize(args.Size)
	if link == "" {
		return errorResult(fmt.Sprintf("photo %d has no download links", args.ID)), nil
	}

	return jsonResult(map[string]any{
		"id":   photo.ID,
		"size": args.Size,
		"url":  link,
		"alt":  photo.Alt,
	}, resp)
}

func (s *Server) downloadVideo(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args downloadVideoArgs
	if err := decodeArgs(req, &args); err != nil {
		return errorResult(err.Error()), nil
	}
	if args.Quality == "" {
		args.Quality = "hd"
	}

	video, resp, err := s.client.Videos.Get(ctx, args.ID)
	if err != nil {
		return s.toolError("download_video", err)
	}

	file := video.FileByQuality(args.Quality)
	if file == nil {
		return errorResult(fmt.Sprintf("video %d has no downloadable files", args.ID)), nil
	}

	return jsonResult(map[string]any{
		"id":        video.ID,
		"quality":   file.Quality,
		"file_type": file.FileType,
		"width":     file.Width,
		"height":    file.Height,
		"url":       file.Link,
	}, resp)
}
