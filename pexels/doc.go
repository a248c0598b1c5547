// Package pexels provides a Go client library for the Pexels media
// search API.
//
// The client follows the architectural patterns established by popular
// Go libraries like google/go-github: a Client holds the credential and
// base URLs, and per-resource services expose the typed operations.
//
// # Authentication
//
// Pexels authenticates with a bare API key sent in the Authorization
// header (no scheme prefix). Provide one when creating the client, or
// leave it empty to fall back to the PEXELS_API_KEY environment
// variable:
//
//	client := pexels.NewClient(nil, "your-api-key", nil)
//
// Construction never fails. Without a key the client is degraded:
// every call returns ErrNoAPIKey until SetAPIKey supplies one.
//
// # Usage
//
// Search for photos:
//
//	page, resp, err := client.Photos.Search(ctx, "red car", &pexels.PhotoSearchOptions{
//		Orientation: "landscape",
//		ListOptions: pexels.ListOptions{PerPage: 20},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Found %d photos\n", page.TotalResults)
//
// Retrieve a single video:
//
//	video, _, err := client.Videos.Get(ctx, 2499611)
//
// # Endpoint routing
//
// Pexels serves photo and collection endpoints under /v1 and video
// endpoints from the bare host. The client routes by path prefix: any
// endpoint path starting with "videos" targets VideoBaseURL, everything
// else targets BaseURL. Both URLs are exported and may be overridden,
// e.g. to point at a test server.
//
// # Error Handling
//
// Failures are structured:
//
//	_, _, err := client.Photos.Get(ctx, 404404)
//	if apiErr, ok := err.(*pexels.ErrorResponse); ok {
//		fmt.Printf("API error: HTTP %d - %s\n", apiErr.Response.StatusCode, apiErr.Message)
//	}
//
// ErrNoAPIKey reports a missing credential before any network call,
// *ErrorResponse carries a non-success HTTP status with a resolved
// message, *RateLimitError is the 429 case with the quota snapshot,
// and transport errors pass through from the http.Client unmodified.
//
// # Rate Limiting
//
// Quota telemetry is parsed from the X-Ratelimit-* response headers
// into Response.Rate. The snapshot is nil when the server sent none of
// the headers; individual absent fields are RateUnknown.
//
//	page, resp, err := client.Photos.Curated(ctx, nil)
//	if err == nil && resp.Rate != nil {
//		fmt.Printf("%d/%d requests remaining\n", resp.Rate.Remaining, resp.Rate.Limit)
//	}
package pexels
