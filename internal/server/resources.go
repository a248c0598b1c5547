package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Resource URIs address a single media item by ID, e.g.
// pexels-photo://1181292. The ID is carried in the host part of the
// URI.
const (
	photoURIScheme      = "pexels-photo"
	videoURIScheme      = "pexels-video"
	collectionURIScheme = "pexels-collection"
)

func (s *Server) registerResources() {
	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		Name:        "photo",
		URITemplate: photoURIScheme + "://{id}",
		Description: "A single Pexels photo, addressed by its numeric ID.",
		MIMEType:    "application/json",
	}, s.readPhotoResource)

	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		Name:        "video",
		URITemplate: videoURIScheme + "://{id}",
		Description: "A single Pexels video, addressed by its numeric ID.",
		MIMEType:    "application/json",
	}, s.readVideoResource)

	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		Name:        "collection",
		URITemplate: collectionURIScheme + "://{id}",
		Description: "The media items of a Pexels collection, addressed by its ID.",
		MIMEType:    "application/json",
	}, s.readCollectionResource)
}

// resourceID extracts the ID from a URI like pexels-photo://1181292
// after verifying the scheme.
func resourceID(uri, scheme string) (string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid resource URI %q: %w", uri, err)
	}
	if parsed.Scheme != scheme {
		return "", fmt.Errorf("unexpected resource scheme %q, want %q", parsed.Scheme, scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("resource URI %q carries no ID", uri)
	}
	return parsed.Host, nil
}

func numericResourceID(uri, scheme string) (int64, error) {
	raw, err := resourceID(uri, scheme)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("resource ID %q is not numeric", raw)
	}
	return id, nil
}

func resourceResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) readPhotoResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI
	id, err := numericResourceID(uri, photoURIScheme)
	if err != nil {
		return nil, err
	}

	photo, _, err := s.client.Photos.Get(ctx, id)
	if err != nil {
		s.logger.Warn("resource read failed", zap.String("uri", uri), zap.Error(err))
		return nil, err
	}

	return resourceResult(uri, photo)
}

func (s *Server) readVideoResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI
	id, err := numericResourceID(uri, videoURIScheme)
	if err != nil {
		return nil, err
	}

	video, _, err := s.client.Videos.Get(ctx, id)
	if err != nil {
		s.logger.Warn("resource read failed", zap.String("uri", uri), zap.Error(err))
		return nil, err
	}

	return resourceResult(uri, video)
}

func (s *Server) readCollectionResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI
	id, err := resourceID(uri, collectionURIScheme)
	if err != nil {
		return nil, err
	}

	page, _, err := s.client.Collections.Media(ctx, id, nil)
	if err != nil {
		s.logger.Warn("resource read failed", zap.String("uri", uri), zap.Error(err))
		return nil, err
	}

	return resourceResult(uri, page)
}
