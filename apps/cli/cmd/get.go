package cmd

import (
	"github.com/abdul-hamid-achik/veryhttp/packages/command"
	"github.com/spf13/cobra"
)

func newGetCmd(opts *rootOptions) *cobra.Command {
	var parsed command.Get

	return &cobra.Command{
		Use:   "get <url>",
		Short: "Send a GET request",
		Long: `Send a GET request to <url> and print the response.

<url> must be an absolute URL with a scheme and a host.

Examples:
  veryhttp get https://httpbin.org/get
  veryhttp get http://localhost:8080/health --timeout 5s`,
		Args: func(cmd *cobra.Command, args []string) error {
			g, err := command.ParseGet(args)
			if err != nil {
				return err
			}
			parsed = g
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, opts, parsed)
		},
	}
}
