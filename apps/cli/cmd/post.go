package cmd

import (
	"github.com/abdul-hamid-achik/veryhttp/packages/command"
	"github.com/spf13/cobra"
)

func newPostCmd(opts *rootOptions) *cobra.Command {
	var parsed command.Post

	return &cobra.Command{
		Use:   "post <url> [<key>=<value> ...]",
		Short: "Send a POST request with a JSON body",
		Long: `Send a POST request to <url> with a JSON object body built from
key=value pairs and print the response.

Each pair is split on its first '='. When a key repeats, the last
value wins. With no pairs the body is an empty object.

Examples:
  veryhttp post https://httpbin.org/post name=ada lang=go
  veryhttp post https://httpbin.org/post query=a=b`,
		Args: func(cmd *cobra.Command, args []string) error {
			p, err := command.ParsePost(args)
			if err != nil {
				return err
			}
			parsed = p
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRequest(cmd, opts, parsed)
		},
	}
}
