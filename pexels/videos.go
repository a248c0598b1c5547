package pexels

import (
	"context"
	"fmt"
)

type videoSearchOptions struct {
	Query string `url:"query"`

	VideoSearchOptions
}

// Search retrieves videos matching the query.
func (s *VideosService) Search(ctx context.Context, query string, opts *VideoSearchOptions) (*VideoPage, *Response, error) {
	reqOpts := videoSearchOptions{Query: query}
	if opts != nil {
		reqOpts.VideoSearchOptions = *opts
	}

	u, err := addOptions("videos/search", reqOpts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest(u)
	if err != nil {
		return nil, nil, err
	}

	page := new(VideoPage)
	resp, err := s.client.Do(ctx, req, page)
	if err != nil {
		return nil, resp, err
	}

	return page, resp, nil
}

// Popular retrieves the current popular videos.
func (s *VideosService) Popular(ctx context.Context, opts *PopularVideoOptions) (*VideoPage, *Response, error) {
	u, err := addOptions("videos/popular", opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest(u)
	if err != nil {
		return nil, nil, err
	}

	page := new(VideoPage)
	resp, err := s.client.Do(ctx, req, page)
	if err != nil {
		return nil, resp, err
	}

	return page, resp, nil
}

// Get retrieves a specific video by its ID. The upstream path doubles
// the "videos" segment (/videos/videos/{id}); preserve it exactly for
// compatibility.
func (s *VideosService) Get(ctx context.Context, id int64) (*Video, *Response, error) {
	u := fmt.Sprintf("videos/videos/%d", id)

	req, err := s.client.NewRequest(u)
	if err != nil {
		return nil, nil, err
	}

	video := new(Video)
	resp, err := s.client.Do(ctx, req, video)
	if err != nil {
		return nil, resp, err
	}

	return video, resp, nil
}
