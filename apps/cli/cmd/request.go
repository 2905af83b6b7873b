package cmd

import (
	"fmt"
	"time"

	"github.com/abdul-hamid-achik/veryhttp/packages/command"
	"github.com/abdul-hamid-achik/veryhttp/packages/core/config"
	"github.com/abdul-hamid-achik/veryhttp/packages/dispatch"
	"github.com/abdul-hamid-achik/veryhttp/packages/http"
	"github.com/abdul-hamid-achik/veryhttp/packages/logging"
	"github.com/abdul-hamid-achik/veryhttp/packages/output"
	"github.com/spf13/cobra"
)

// loadConfig reads the optional config file and applies flag overrides.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	timeout, err := time.ParseDuration(o.timeout)
	if err != nil {
		return nil, &command.ArgumentError{
			Arg:    o.timeout,
			Reason: "invalid timeout (use format like 30s, 1m, 500ms)",
			Err:    err,
		}
	}
	if timeout < 0 {
		return nil, &command.ArgumentError{Arg: o.timeout, Reason: "timeout must not be negative"}
	}

	fileConfig, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}

	overrides := &config.Config{Timeout: int(timeout.Milliseconds())}
	if o.noColor {
		overrides.NoColor = config.BoolPtr(true)
	}
	return fileConfig.Merge(overrides), nil
}

// runRequest sends the request described by req and renders the response
// to the command's stdout.
func runRequest(cmd *cobra.Command, opts *rootOptions, req command.Command) error {
	logger := logging.New(cmd.ErrOrStderr(), opts.verbose)

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if opts.configPath != "" {
		logger.Debug("loaded config", "path", opts.configPath)
	}

	client := http.NewClient(
		http.WithTimeout(cfg.TimeoutDuration()),
		http.WithFollowRedirects(cfg.GetFollowRedirects()),
		http.WithMaxRedirects(cfg.MaxRedirects),
		http.WithProxy(cfg.Proxy),
		http.WithRequestID(cfg.GetRequestID()),
		http.WithDefaultHeaders(config.DefaultHeaders(version)),
		http.WithDefaultHeaders(cfg.Headers),
		http.WithLogger(logger),
	)

	resp, err := dispatch.Dispatch(cmd.Context(), client, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderer := output.NewRenderer(
		output.WithWriter(out),
		output.WithNoColor(cfg.GetNoColor() || !isTerminal(out)),
	)
	if err := renderer.Render(resp); err != nil {
		return fmt.Errorf("%s %s: %w", command.Method(req), req.Target(), err)
	}
	return nil
}
