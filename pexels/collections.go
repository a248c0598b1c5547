package pexels

import (
	"context"
	"fmt"
	"net/url"
)

// Featured retrieves the featured collections.
func (s *CollectionsService) Featured(ctx context.Context, opts *ListOptions) (*CollectionPage, *Response, error) {
	u, err := addOptions("collections/featured", opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest(u)
	if err != nil {
		return nil, nil, err
	}

	page := new(CollectionPage)
	resp, err := s.client.Do(ctx, req, page)
	if err != nil {
		return nil, resp, err
	}

	return page, resp, nil
}

// Mine retrieves the collections owned by the account behind the API
// key. The upstream API may reject the call without elevated
// authorization; whatever error results is passed through unchanged.
func (s *CollectionsService) Mine(ctx context.Context, opts *ListOptions) (*CollectionPage, *Response, error) {
	u, err := addOptions("collections", opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest(u)
	if err != nil {
		return nil, nil, err
	}

	page := new(CollectionPage)
	resp, err := s.client.Do(ctx, req, page)
	if err != nil {
		return nil, resp, err
	}

	return page, resp, nil
}

// Media retrieves the media items of a collection.
func (s *CollectionsService) Media(ctx context.Context, id string, opts *CollectionMediaOptions) (*CollectionMediaPage, *Response, error) {
	u, err := addOptions(fmt.Sprintf("collections/%s", url.PathEscape(id)), opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := s.client.NewRequest(u)
	if err != nil {
		return nil, nil, err
	}

	page := new(CollectionMediaPage)
	resp, err := s.client.Do(ctx, req, page)
	if err != nil {
		return nil, resp, err
	}

	return page, resp, nil
}
