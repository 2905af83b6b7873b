package http

import (
	"mime"
	"net/http"
	"sort"
	"time"
)

// MIMEApplicationJSON is the only media type rendered as JSON
const MIMEApplicationJSON = "application/json"

// Response is a read-only view of a received response.
type Response struct {
	Proto      string
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
	Duration   time.Duration
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

func (r *Response) Header(key string) string {
	return r.Headers.Get(key)
}

// HeaderNames returns the canonical header names in sorted order.
func (r *Response) HeaderNames() []string {
	names := make([]string, 0, len(r.Headers))
	for k := range r.Headers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

// MediaType returns the lower-cased media type of Content-Type without
// parameters, or "" when the header is missing or unparsable.
func (r *Response) MediaType() string {
	ct := r.ContentType()
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return mt
}

func (r *Response) IsJSON() bool {
	return r.MediaType() == MIMEApplicationJSON
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500
}

func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}
