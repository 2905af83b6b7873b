package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultTimeout disables the client-level timeout
	DefaultTimeout = time.Duration(0)
	// DefaultMaxRedirects is the maximum number of redirects to follow
	DefaultMaxRedirects = 10
	// RequestIDHeader carries a per-request UUID when enabled
	RequestIDHeader = "X-Request-Id"
)

// ClientError wraps a transport-level failure. HTTP status codes are never
// reported as ClientError.
type ClientError struct {
	Method string
	URL    string
	Err    error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was caused by a deadline.
func (e *ClientError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(e.Err, &te) && te.Timeout()
}

type Client struct {
	httpClient     *http.Client
	timeout        time.Duration
	followRedirect bool
	maxRedirects   int
	proxyURL       string
	requestID      bool
	defaultHeaders map[string]string
	logger         *slog.Logger
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout:        DefaultTimeout,
		followRedirect: true,
		maxRedirects:   DefaultMaxRedirects,
		defaultHeaders: make(map[string]string),
		logger:         slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	if c.proxyURL != "" {
		proxyURL, err := neturl.Parse(c.proxyURL)
		if err == nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		} else {
			c.logger.Warn("ignoring invalid proxy URL", "proxy", c.proxyURL, "err", err)
		}
	}

	redirectPolicy := func(req *http.Request, via []*http.Request) error {
		if !c.followRedirect {
			return http.ErrUseLastResponse
		}
		if len(via) >= c.maxRedirects {
			return http.ErrUseLastResponse
		}
		return nil
	}

	c.httpClient = &http.Client{
		Transport:     transport,
		Timeout:       c.timeout,
		CheckRedirect: redirectPolicy,
	}

	return c
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithFollowRedirects(follow bool) ClientOption {
	return func(c *Client) {
		c.followRedirect = follow
	}
}

func WithMaxRedirects(max int) ClientOption {
	return func(c *Client) {
		c.maxRedirects = max
	}
}

func WithDefaultHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.defaultHeaders[key] = value
	}
}

// WithDefaultHeaders sets multiple default headers for all requests
func WithDefaultHeaders(headers map[string]string) ClientOption {
	return func(c *Client) {
		for k, v := range headers {
			c.defaultHeaders[k] = v
		}
	}
}

// WithProxy sets the proxy URL for all requests. Without it the proxy is
// taken from HTTP_PROXY/HTTPS_PROXY/NO_PROXY.
func WithProxy(proxyURL string) ClientOption {
	return func(c *Client) {
		c.proxyURL = proxyURL
	}
}

// WithRequestID attaches a fresh UUID in X-Request-Id to every request.
func WithRequestID(enabled bool) ClientOption {
	return func(c *Client) {
		c.requestID = enabled
	}
}

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Do sends req and reads the whole response body. Only transport failures
// are returned as errors.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if err := ValidateURL(req.URL); err != nil {
		return nil, &ClientError{Method: req.Method, URL: req.URL, Err: err}
	}

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, &ClientError{Method: req.Method, URL: req.URL, Err: err}
	}

	for k, v := range c.defaultHeaders {
		httpReq.Header.Set(k, v)
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if c.requestID {
		httpReq.Header.Set(RequestIDHeader, uuid.NewString())
	}

	c.logger.Debug("sending request",
		"method", req.Method,
		"url", req.URL,
		"bytes", len(req.Body),
		"request_id", httpReq.Header.Get(RequestIDHeader),
	)

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ClientError{Method: req.Method, URL: req.URL, Err: unwrapURLError(err)}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	duration := time.Since(start)
	if err != nil {
		return nil, &ClientError{Method: req.Method, URL: req.URL, Err: fmt.Errorf("reading body: %w", err)}
	}

	c.logger.Debug("received response",
		"status", httpResp.StatusCode,
		"proto", httpResp.Proto,
		"bytes", len(respBody),
		"duration", duration,
	)

	return &Response{
		Proto:      httpResp.Proto,
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header.Clone(),
		Body:       respBody,
		Duration:   duration,
	}, nil
}

// Get issues a GET with no body.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.Do(ctx, NewRequest(http.MethodGet, url))
}

// PostJSON serializes body as a JSON object and POSTs it.
func (c *Client) PostJSON(ctx context.Context, url string, body map[string]string) (*Response, error) {
	req, err := NewJSONRequest(http.MethodPost, url, body)
	if err != nil {
		return nil, &ClientError{Method: http.MethodPost, URL: url, Err: err}
	}
	return c.Do(ctx, req)
}

// unwrapURLError strips the *url.Error wrapper so messages are not prefixed
// with the method and URL twice.
func unwrapURLError(err error) error {
	var ue *neturl.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}

// ValidateURL checks that a URL is well-formed and uses an allowed scheme
func ValidateURL(rawURL string) error {
	u, err := neturl.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}

	// Check for valid scheme
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %s (only http and https are allowed)", u.Scheme)
	}

	// Check for valid host
	if u.Host == "" {
		return fmt.Errorf("URL must have a host")
	}

	return nil
}
