package command

import (
	"errors"
	"fmt"
	neturl "net/url"

	"github.com/abdul-hamid-achik/veryhttp/packages/kv"
)

var (
	// ErrMissingURL is returned when no URL positional was given.
	ErrMissingURL = errors.New("missing required argument <url>")
	// ErrTooManyArgs is returned when get receives extra positionals.
	ErrTooManyArgs = errors.New("unexpected argument")
)

// ArgumentError reports an invalid command-line token.
type ArgumentError struct {
	Arg    string
	Reason string
	Err    error
}

func (e *ArgumentError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("invalid arguments: %s", e.Reason)
	}
	return fmt.Sprintf("invalid value %q: %s", e.Arg, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Command is one of Get or Post.
type Command interface {
	Target() string
	isCommand()
}

// Get requests a URL without a body.
type Get struct {
	URL string
}

func (g Get) Target() string { return g.URL }
func (Get) isCommand() {}

// Post sends body pairs as a JSON object to a URL.
type Post struct {
	URL  string
	Body []kv.Pair
}

func (p Post) Target() string { return p.URL }
func (Post) isCommand() {}

// Method returns the HTTP verb for cmd.
func Method(cmd Command) string {
	switch cmd.(type) {
	case Get:
		return "GET"
	case Post:
		return "POST"
	}
	return ""
}

// ParseURL accepts an absolute URL with a scheme and a host and returns it
// unchanged.
func ParseURL(raw string) (string, error) {
	u, err := neturl.Parse(raw)
	if err != nil {
		return "", &ArgumentError{Arg: raw, Reason: "invalid URL", Err: err}
	}
	if u.Scheme == "" {
		return "", &ArgumentError{Arg: raw, Reason: "relative URL without a base"}
	}
	if u.Host == "" {
		return "", &ArgumentError{Arg: raw, Reason: "URL must have a host"}
	}
	return raw, nil
}

// ParseGet builds a Get from `<url>`.
func ParseGet(args []string) (Get, error) {
	if len(args) == 0 {
		return Get{}, &ArgumentError{Reason: ErrMissingURL.Error(), Err: ErrMissingURL}
	}
	if len(args) > 1 {
		return Get{}, &ArgumentError{Arg: args[1], Reason: ErrTooManyArgs.Error(), Err: ErrTooManyArgs}
	}
	u, err := ParseURL(args[0])
	if err != nil {
		return Get{}, err
	}
	return Get{URL: u}, nil
}

// ParsePost builds a Post from `<url> [<key>=<value> ...]`.
func ParsePost(args []string) (Post, error) {
	if len(args) == 0 {
		return Post{}, &ArgumentError{Reason: ErrMissingURL.Error(), Err: ErrMissingURL}
	}
	u, err := ParseURL(args[0])
	if err != nil {
		return Post{}, err
	}
	pairs, err := kv.ParseAll(args[1:])
	if err != nil {
		var pe *kv.ParseError
		if errors.As(err, &pe) {
			return Post{}, &ArgumentError{Arg: pe.Token, Reason: "expected key=value", Err: err}
		}
		return Post{}, err
	}
	return Post{URL: u, Body: pairs}, nil
}

// Parse selects the subcommand by name and parses its positionals.
func Parse(name string, args []string) (Command, error) {
	switch name {
	case "get":
		return ParseGet(args)
	case "post":
		return ParsePost(args)
	}
	return nil, &ArgumentError{Arg: name, Reason: "unknown subcommand"}
}
