package pexels

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"go.uber.org/zap"
)

const (
	defaultBaseURL      = "https://api.pexels.com/v1/"
	defaultVideoBaseURL = "https://api.pexels.com/"

	userAgent = "go-pexels-mcp"

	mediaTypeJSON = "application/json"

	// apiKeyEnvVar names the environment variable consulted when
	// NewClient is given an empty key.
	apiKeyEnvVar = "PEXELS_API_KEY"

	// videoPathPrefix routes requests to the video host root instead of
	// the /v1 family. The dispatch is a pure string-prefix check: any
	// endpoint path under the prefix is routed the same way.
	videoPathPrefix = "videos"

	headerRateLimit     = "X-Ratelimit-Limit"
	headerRateRemaining = "X-Ratelimit-Remaining"
	headerRateReset     = "X-Ratelimit-Reset"
)

// Client manages communication with the Pexels API.
type Client struct {
	client *http.Client // HTTP client used to communicate with the API
	logger *zap.Logger

	// Base URL for the default resource family (photo and collection
	// endpoints). Must have a trailing slash.
	BaseURL *url.URL

	// Base URL for the media-streaming resource family (video
	// endpoints). Pexels serves these from the bare host, without the
	// /v1 prefix. Must have a trailing slash.
	VideoBaseURL *url.URL

	// User agent used when communicating with the Pexels API.
	UserAgent string

	// apiKey is a plain cell: SetAPIKey replaces it unconditionally and
	// each request captures whatever value is current at call start.
	apiKey string

	common service // Reuse a single struct instead of allocating one for each service

	// Services used for talking to different parts of the Pexels API
	Photos      *PhotosService
	Videos      *VideosService
	Collections *CollectionsService
}

// service provides a general service interface for the API.
type service struct {
	client *Client
}

// PhotosService handles communication with the photo related
// endpoints of the Pexels API.
type PhotosService service

// VideosService handles communication with the video related
// endpoints of the Pexels API.
type VideosService service

// CollectionsService handles communication with the collection related
// endpoints of the Pexels API.
type CollectionsService service

// NewClient returns a new Pexels API client. If httpClient is nil, a
// default client is used. If apiKey is empty, the PEXELS_API_KEY
// environment variable is consulted; if no key is found the client is
// still constructed, but every request fails with ErrNoAPIKey until
// SetAPIKey provides one. A nil logger disables logging.
func NewClient(httpClient *http.Client, apiKey string, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnvVar)
	}
	if apiKey == "" {
		logger.Warn("no API key configured; requests will fail until SetAPIKey is called",
			zap.String("env", apiKeyEnvVar))
	}

	baseURL, _ := url.Parse(defaultBaseURL)
	videoBaseURL, _ := url.Parse(defaultVideoBaseURL)

	c := &Client{
		client:       httpClient,
		logger:       logger,
		BaseURL:      baseURL,
		VideoBaseURL: videoBaseURL,
		UserAgent:    userAgent,
		apiKey:       apiKey,
	}
	c.common.client = c
	c.Photos = (*PhotosService)(&c.common)
	c.Videos = (*VideosService)(&c.common)
	c.Collections = (*CollectionsService)(&c.common)

	return c
}

// SetAPIKey replaces the held API key. The new value takes effect on
// the next request; requests already in flight keep the key they
// captured at call start.
func (c *Client) SetAPIKey(key string) {
	c.apiKey = key
}

// NewRequest creates an API GET request. urlStr is a relative endpoint
// path such as "search" or "videos/popular", optionally carrying a
// query string produced by addOptions. Paths starting with "videos"
// are resolved against VideoBaseURL, everything else against BaseURL.
func (c *Client) NewRequest(urlStr string) (*http.Request, error) {
	key := c.apiKey
	if key == "" {
		return nil, ErrNoAPIKey
	}

	base := c.BaseURL
	if strings.HasPrefix(urlStr, videoPathPrefix) {
		base = c.VideoBaseURL
	}
	if !strings.HasSuffix(base.Path, "/") {
		return nil, fmt.Errorf("base URL %q must have a trailing slash", base)
	}

	u, err := base.Parse(urlStr)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", mediaTypeJSON)
	// Pexels expects the bare key, no "Bearer" scheme prefix.
	req.Header.Set("Authorization", key)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	return req, nil
}

// Response is a Pexels API response. This wraps the standard
// http.Response and carries the rate limit snapshot for the request,
// when the server reported one.
type Response struct {
	*http.Response

	// Rate is the quota telemetry extracted from the response headers.
	// It is nil when the server returned none of the three rate limit
	// headers.
	Rate *Rate
}

func newResponse(r *http.Response) *Response {
	return &Response{Response: r}
}

// RateUnknown marks a Rate field whose header was absent or did not
// parse as an integer.
const RateUnknown = -1

// Rate represents the monthly request quota reported by the Pexels API.
type Rate struct {
	// Limit is the total quota for the current period, or RateUnknown.
	Limit int

	// Remaining is the number of requests left, or RateUnknown.
	Remaining int

	// Reset is the time at which the quota resets. The zero time means
	// the reset header was absent or unparsable.
	Reset time.Time
}

// parseRate extracts the rate limit snapshot from the response headers.
// It returns nil when none of the three headers is present.
func parseRate(r *http.Response) *Rate {
	rate := &Rate{Limit: RateUnknown, Remaining: RateUnknown}
	found := false

	if v := r.Header.Get(headerRateLimit); v != "" {
		found = true
		if n, err := strconv.Atoi(v); err == nil {
			rate.Limit = n
		}
	}
	if v := r.Header.Get(headerRateRemaining); v != "" {
		found = true
		if n, err := strconv.Atoi(v); err == nil {
			rate.Remaining = n
		}
	}
	if v := r.Header.Get(headerRateReset); v != "" {
		found = true
		if sec, err := strconv.ParseInt(v, 10, 64); err == nil {
			rate.Reset = time.Unix(sec, 0).UTC()
		}
	}

	if !found {
		return nil
	}
	return rate
}

// Do sends an API request and returns the API response. The response
// body is JSON decoded into v. Non-2xx statuses are converted to errors
// by CheckResponse; transport failures are passed through from the
// underlying http.Client. No retries are attempted.
func (c *Client) Do(ctx context.Context, req *http.Request, v any) (*Response, error) {
	if ctx == nil {
		return nil, errors.New("context must be non-nil")
	}
	req = req.WithContext(ctx)

	resp, err := c.client.Do(req)
	if err != nil {
		// If the context was canceled, its error is more useful than
		// the wrapped transport error.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		return nil, err
	}
	defer resp.Body.Close()

	response := newResponse(resp)

	if err := CheckResponse(resp); err != nil {
		return response, err
	}

	response.Rate = parseRate(resp)

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil && err != io.EOF {
			return response, fmt.Errorf("decode response: %w", err)
		}
	}

	return response, nil
}

// addOptions adds the parameters in opts as URL query parameters to s.
// opts must be a struct whose fields carry "url" tags; fields at their
// zero value with omitempty are omitted entirely, never serialized as
// empty strings.
func addOptions(s string, opts any) (string, error) {
	v := reflect.ValueOf(opts)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return s, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return s, err
	}

	qs, err := query.Values(opts)
	if err != nil {
		return s, err
	}

	u.RawQuery = qs.Encode()
	return u.String(), nil
}
