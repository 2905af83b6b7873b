package http

import (
	"encoding/json"
	"fmt"
)

type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    string
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method:  method,
		URL:     requestURL,
		Headers: make(map[string]string),
	}
}

// NewJSONRequest builds a request whose body is v encoded as JSON.
func NewJSONRequest(method, requestURL string, v any) (*Request, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding JSON body: %w", err)
	}
	return NewRequest(method, requestURL).
		SetHeader("Content-Type", "application/json").
		SetBody(string(data)), nil
}

func (r *Request) SetHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

func (r *Request) SetBody(body string) *Request {
	r.Body = body
	return r
}
