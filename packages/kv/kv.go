package kv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingDelimiter is returned when a token has no '=' separator.
var ErrMissingDelimiter = errors.New("missing '=' delimiter")

// ParseError reports a token that could not be split into a pair.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse body %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Pair is a single key=value token supplied for a request body.
type Pair struct {
	Key   string
	Value string
}

func (p Pair) String() string {
	return p.Key + "=" + p.Value
}

// Parse splits token at the first '='. Everything after it, including
// further '=' characters, is the value. Empty keys and values are kept.
func Parse(token string) (Pair, error) {
	key, value, found := strings.Cut(token, "=")
	if !found {
		return Pair{}, &ParseError{Token: token, Err: ErrMissingDelimiter}
	}
	return Pair{Key: key, Value: value}, nil
}

// ParseAll parses tokens in order and stops at the first malformed one.
func ParseAll(tokens []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(tokens))
	for _, token := range tokens {
		p, err := Parse(token)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// Fold builds a body mapping from pairs. Later keys overwrite earlier ones.
func Fold(pairs []Pair) map[string]string {
	body := make(map[string]string, len(pairs))
	for _, p := range pairs {
		body[p.Key] = p.Value
	}
	return body
}
