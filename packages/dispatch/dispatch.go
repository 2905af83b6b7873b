// Package dispatch sends the single request described by a parsed command.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdul-hamid-achik/veryhttp/packages/command"
	"github.com/abdul-hamid-achik/veryhttp/packages/http"
	"github.com/abdul-hamid-achik/veryhttp/packages/kv"
)

// ErrUnknownCommand is returned for a Command that is neither Get nor Post.
var ErrUnknownCommand = errors.New("unknown command")

// Doer is the subset of *http.Client used by Dispatch.
type Doer interface {
	Get(ctx context.Context, url string) (*http.Response, error)
	PostJSON(ctx context.Context, url string, body map[string]string) (*http.Response, error)
}

// Dispatch issues exactly one request for cmd. Failures are returned as-is;
// there is no retry.
func Dispatch(ctx context.Context, client Doer, cmd command.Command) (*http.Response, error) {
	switch c := cmd.(type) {
	case command.Get:
		return client.Get(ctx, c.URL)
	case command.Post:
		return client.PostJSON(ctx, c.URL, kv.Fold(c.Body))
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}
