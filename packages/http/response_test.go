package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponse_IsSuccess(t *testing.T) {
	tests := []struct {
		statusCode int
		expected   bool
	}{
		{200, true},
		{201, true},
		{204, true},
		{299, true},
		{300, false},
		{400, false},
		{404, false},
		{500, false},
	}

	for _, tt := range tests {
		resp := &Response{StatusCode: tt.statusCode}
		assert.Equal(t, tt.expected, resp.IsSuccess(), "StatusCode: %d", tt.statusCode)
	}
}

func TestResponse_IsJSON(t *testing.T) {
	tests := []struct {
		contentType string
		expected    bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"Application/JSON", true},
		{"application/problem+json", false},
		{"application/jsonl", false},
		{"text/html", false},
		{"text/plain", false},
		{"not a media type;;", false},
		{"", false},
	}

	for _, tt := range tests {
		resp := &Response{Headers: http.Header{}}
		if tt.contentType != "" {
			resp.Headers.Set("Content-Type", tt.contentType)
		}
		assert.Equal(t, tt.expected, resp.IsJSON(), "Content-Type: %s", tt.contentType)
	}
}

func TestResponse_MediaType(t *testing.T) {
	resp := &Response{Headers: http.Header{"Content-Type": {"Text/Plain; charset=utf-8"}}}
	assert.Equal(t, "text/plain", resp.MediaType())

	resp = &Response{Headers: http.Header{}}
	assert.Equal(t, "", resp.MediaType())
}

func TestResponse_Header_CaseInsensitive(t *testing.T) {
	resp := &Response{Headers: http.Header{}}
	resp.Headers.Set("x-custom", "value")
	assert.Equal(t, "value", resp.Header("X-CUSTOM"))
}

func TestResponse_HeaderNames(t *testing.T) {
	resp := &Response{Headers: http.Header{
		"Date":         {"now"},
		"Content-Type": {"text/plain"},
		"X-Trace":      {"a", "b"},
	}}
	assert.Equal(t, []string{"Content-Type", "Date", "X-Trace"}, resp.HeaderNames())
}

func TestResponse_StatusClasses(t *testing.T) {
	assert.True(t, (&Response{StatusCode: 301}).IsRedirect())
	assert.True(t, (&Response{StatusCode: 404}).IsClientError())
	assert.True(t, (&Response{StatusCode: 503}).IsServerError())
	assert.False(t, (&Response{StatusCode: 200}).IsServerError())
}
