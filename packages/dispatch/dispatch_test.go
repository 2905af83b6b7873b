package dispatch

import (
	"context"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/abdul-hamid-achik/veryhttp/packages/command"
	"github.com/abdul-hamid-achik/veryhttp/packages/http"
	"github.com/abdul-hamid-achik/veryhttp/packages/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDoer struct {
	method string
	url    string
	body   map[string]string
	err    error
}

func (d *recordingDoer) Get(ctx context.Context, url string) (*http.Response, error) {
	d.method, d.url = "GET", url
	if d.err != nil {
		return nil, d.err
	}
	return &http.Response{StatusCode: 200}, nil
}

func (d *recordingDoer) PostJSON(ctx context.Context, url string, body map[string]string) (*http.Response, error) {
	d.method, d.url, d.body = "POST", url, body
	if d.err != nil {
		return nil, d.err
	}
	return &http.Response{StatusCode: 201}, nil
}

func TestDispatch_Get(t *testing.T) {
	d := &recordingDoer{}
	resp, err := Dispatch(context.Background(), d, command.Get{URL: "https://example.com"})

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "GET", d.method)
	assert.Equal(t, "https://example.com", d.url)
	assert.Nil(t, d.body)
}

func TestDispatch_PostFoldsBody(t *testing.T) {
	d := &recordingDoer{}
	cmd := command.Post{
		URL:  "https://example.com/echo",
		Body: []kv.Pair{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}, {Key: "a", Value: "3"}},
	}

	resp, err := Dispatch(context.Background(), d, cmd)

	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "POST", d.method)
	assert.Equal(t, map[string]string{"a": "3", "b": "2"}, d.body)
}

func TestDispatch_PropagatesError(t *testing.T) {
	boom := errors.New("connection refused")
	d := &recordingDoer{err: boom}

	_, err := Dispatch(context.Background(), d, command.Get{URL: "https://example.com"})
	assert.ErrorIs(t, err, boom)
}

func TestDispatch_NilCommand(t *testing.T) {
	_, err := Dispatch(context.Background(), &recordingDoer{}, nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestDispatch_PostOverHTTP(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/echo", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"ada","lang":"rust"}`, string(body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer server.Close()

	cmd, err := command.ParsePost([]string{server.URL + "/echo", "name=ada", "lang=rust"})
	require.NoError(t, err)

	resp, err := Dispatch(context.Background(), http.NewClient(), cmd)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, resp.IsJSON())
}
