package pexels

import (
	"context"
	"fmt"
)

// photoSearchOptions carries the required query parameter alongside the
// caller-supplied options for encoding.
type photoSearchOptions struct {
	Query string `url:"query"`

	PhotoSearchOptions
}

// Search retrieves photos matching the query.
func (s *PhotosService) Search(ctx context.Context, query string, opts *PhotoSearchOptions) (*PhotoPage, *Response, error) {
	reqOpts := photoSearchOptions{Query: query}
	if opts != nil {
		reqOpts.PhotoSearchOptions = *opts
	}

	u, err := addOptions("search", reqOpts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest(u)
	if err != nil {
		return nil, nil, err
	}

	page := new(PhotoPage)
	resp, err := s.client.Do(ctx, req, page)
	if err != nil {
		return nil, resp, err
	}

	return page, resp, nil
}

// Curated retrieves the curated photo feed.
func (s *PhotosService) Curated(ctx context.Context, opts *ListOptions) (*PhotoPage, *Response, error) {
	u, err := addOptions("curated", opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest(u)
	if err != nil {
		return nil, nil, err
	}

	page := new(PhotoPage)
	resp, err := s.client.Do(ctx, req, page)
	if err != nil {
		return nil, resp, err
	}

	return page, resp, nil
}

// Get retrieves a specific photo by its ID.
func (s *PhotosService) Get(ctx context.Context, id int64) (*Photo, *Response, error) {
	u := fmt.Sprintf("photos/%d", id)

	req, err := s.client.NewRequest(u)
	if err != nil {
		return nil, nil, err
	}

	photo := new(Photo)
	resp, err := s.client.Do(ctx, req, photo)
	if err != nil {
		return nil, resp, err
	}

	return photo, resp, nil
}
