package cmd

import (
	"context"
	"errors"

	"github.com/abdul-hamid-achik/veryhttp/packages/command"
	"github.com/abdul-hamid-achik/veryhttp/packages/core/config"
	"github.com/abdul-hamid-achik/veryhttp/packages/http"
	"github.com/abdul-hamid-achik/veryhttp/packages/output"
)

// Exit codes for veryhttp CLI
const (
	// ExitSuccess indicates the response was received and rendered
	ExitSuccess = 0

	// ExitFailure indicates an unclassified error
	ExitFailure = 1

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitRenderError indicates a body that could not be rendered
	ExitRenderError = 5

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64

	// ExitInterrupted indicates the request was cancelled by a signal
	ExitInterrupted = 130
)

// exitCode maps an error returned by a command to a process exit code.
// HTTP status codes never reach here; they are rendered, not rejected.
func exitCode(err error) int {
	var (
		argErr    *command.ArgumentError
		cfgErr    *config.Error
		clientErr *http.ClientError
		renderErr *output.RenderError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &argErr), isUsageError(err):
		return ExitUsageError
	case errors.As(err, &cfgErr):
		return ExitConfigError
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.As(err, &clientErr):
		return ExitNetworkError
	case errors.As(err, &renderErr):
		return ExitRenderError
	}
	return ExitFailure
}
