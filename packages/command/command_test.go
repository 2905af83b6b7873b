package command

import (
	"errors"
	"testing"

	"github.com/abdul-hamid-achik/veryhttp/packages/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
		errMsg  string
	}{
		{name: "https URL", url: "https://example.com/status/404"},
		{name: "http URL with port and query", url: "http://localhost:8080/a?b=c&d=e"},
		{name: "URL with userinfo and fragment", url: "https://user@example.com/p#frag"},
		{name: "non-http scheme", url: "ftp://files.example.com/readme.txt"},
		{name: "IPv6 host", url: "http://[::1]:9000/"},
		{name: "missing scheme", url: "example.com/path", wantErr: true, errMsg: "relative URL"},
		{name: "missing host", url: "http:///path", wantErr: true, errMsg: "must have a host"},
		{name: "opaque URL", url: "mailto:ada@example.com", wantErr: true, errMsg: "must have a host"},
		{name: "malformed", url: "http://[::1", wantErr: true, errMsg: "invalid URL"},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				var ae *ArgumentError
				require.True(t, errors.As(err, &ae))
				assert.Equal(t, tt.url, ae.Arg)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.url, got)
		})
	}
}

func TestParseGet(t *testing.T) {
	g, err := ParseGet([]string{"https://example.com/status/404"})
	require.NoError(t, err)
	assert.Equal(t, Get{URL: "https://example.com/status/404"}, g)
	assert.Equal(t, "GET", Method(g))
}

func TestParseGet_Errors(t *testing.T) {
	_, err := ParseGet(nil)
	assert.True(t, errors.Is(err, ErrMissingURL))

	_, err = ParseGet([]string{"https://example.com", "extra"})
	assert.True(t, errors.Is(err, ErrTooManyArgs))
	assert.Contains(t, err.Error(), `"extra"`)

	_, err = ParseGet([]string{"not a url"})
	var ae *ArgumentError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "not a url", ae.Arg)
}

func TestParsePost(t *testing.T) {
	p, err := ParsePost([]string{"https://example.com/echo", "name=ada", "lang=rust"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/echo", p.URL)
	assert.Equal(t, []kv.Pair{{Key: "name", Value: "ada"}, {Key: "lang", Value: "rust"}}, p.Body)
	assert.Equal(t, "POST", Method(p))
}

func TestParsePost_NoBody(t *testing.T) {
	p, err := ParsePost([]string{"https://example.com/echo"})
	require.NoError(t, err)
	assert.Empty(t, p.Body)
}

func TestParsePost_MalformedPair(t *testing.T) {
	_, err := ParsePost([]string{"https://example.com/echo", "name=ada", "oops"})
	require.Error(t, err)

	var ae *ArgumentError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "oops", ae.Arg)
	assert.True(t, errors.Is(err, kv.ErrMissingDelimiter))
}

func TestParsePost_InvalidURL(t *testing.T) {
	_, err := ParsePost([]string{"/relative", "a=1"})
	var ae *ArgumentError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "/relative", ae.Arg)
}

func TestParse(t *testing.T) {
	cmd, err := Parse("get", []string{"http://example.com"})
	require.NoError(t, err)
	assert.IsType(t, Get{}, cmd)
	assert.Equal(t, "http://example.com", cmd.Target())

	cmd, err = Parse("post", []string{"http://example.com", "a=1"})
	require.NoError(t, err)
	assert.IsType(t, Post{}, cmd)

	_, err = Parse("put", []string{"http://example.com"})
	assert.Error(t, err)
}
