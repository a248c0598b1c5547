package pexels

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrNoAPIKey is returned when a request is attempted without an API
// key. No network call is made; setting a key with SetAPIKey makes the
// next call succeed.
var ErrNoAPIKey = errors.New("pexels: API key is not set")

// Caller-facing messages for the statuses the Pexels API commonly
// returns. Any other non-success status surfaces the upstream body.
const (
	msgUnauthorized = "Unauthorized. Check your API key."
	msgNotFound     = "Resource not found."
	msgRateLimited  = "Rate limit exceeded. Please wait and try again."
)

// ErrorResponse reports an error caused by an API request.
type ErrorResponse struct {
	Response *http.Response `json:"-"` // HTTP response that caused this error
	Message  string         `json:"error"`
	Code     string         `json:"code"`
}

func (r *ErrorResponse) Error() string {
	if r.Response == nil || r.Response.Request == nil {
		if r.Message != "" {
			return r.Message
		}
		return "pexels: API error"
	}
	msg := fmt.Sprintf("%v %v; %d",
		r.Response.Request.Method,
		sanitizeURL(r.Response.Request.URL),
		r.Response.StatusCode)
	if r.Message != "" {
		msg += " " + r.Message
	}
	return msg
}

// RateLimitError occurs when the API responds with 429. It carries the
// rate limit snapshot from the response headers when one was reported.
type RateLimitError struct {
	Rate     *Rate
	Response *http.Response
	Message  string
}

func (r *RateLimitError) Error() string {
	msg := r.Message
	if r.Response != nil && r.Response.Request != nil {
		msg = fmt.Sprintf("%v %v; %d %v",
			r.Response.Request.Method,
			sanitizeURL(r.Response.Request.URL),
			r.Response.StatusCode, r.Message)
	}
	if r.Rate != nil && r.Rate.Limit != RateUnknown {
		msg = fmt.Sprintf("%s (rate limit %d/%d, reset at %v)",
			msg, maxInt(r.Rate.Remaining, 0), r.Rate.Limit, r.Rate.Reset)
	}
	return msg
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// sanitizeURL redacts userinfo from the URL that may appear in error
// messages.
func sanitizeURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	if u.User == nil {
		return u
	}
	sanitized := *u
	sanitized.User = url.UserPassword("REDACTED", "REDACTED")
	return &sanitized
}

// CheckResponse checks the API response for an error and returns it if
// present. A response is considered an error if it has a status code
// outside the 200 range. The body is parsed as JSON with an "error" or
// "code" field when possible, falling back to the raw text; 401, 404
// and 429 override the body with a fixed caller-facing message.
func CheckResponse(r *http.Response) error {
	if c := r.StatusCode; 200 <= c && c <= 299 {
		return nil
	}

	message := ""
	if data, err := io.ReadAll(r.Body); err == nil {
		message = strings.TrimSpace(string(data))

		var body struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if err := json.Unmarshal(data, &body); err == nil {
			if body.Error != "" {
				message = body.Error
			} else if body.Code != "" {
				message = body.Code
			}
		}
	}

	switch r.StatusCode {
	case http.StatusUnauthorized:
		message = msgUnauthorized
	case http.StatusNotFound:
		message = msgNotFound
	case http.StatusTooManyRequests:
		return &RateLimitError{
			Rate:     parseRate(r),
			Response: r,
			Message:  msgRateLimited,
		}
	}

	return &ErrorResponse{Response: r, Message: message}
}
