package osuapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
)

const (
	// DefaultBaseURL is the host serving the v1 API.
	DefaultBaseURL = "https://osu.ppy.sh"
	// DefaultTimeout bounds a single request when no http.Client is supplied.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxInFlight is the ConcurrentConnector request bound.
	DefaultMaxInFlight = 8
	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "osuapi-go"
)

// Connector is the transport used by Client.
type Connector interface {
	// Get issues a GET for path with params and returns the raw JSON body.
	// It blocks the calling goroutine until the body has been read.
	Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error)
	// Close releases the underlying connections. Calling it more than once is a no-op.
	Close() error
}

// Response is the outcome of a request started with AsyncConnector.Go.
type Response struct {
	Body json.RawMessage
	Err  error
}

// AsyncConnector is a Connector that can start requests without blocking.
type AsyncConnector interface {
	Connector
	// Go starts the request and returns immediately. Exactly one Response is
	// delivered on the returned channel, which is then closed.
	Go(ctx context.Context, path string, params url.Values) <-chan Response
}

type options struct {
	baseURL     string
	client      *http.Client
	transport   http.RoundTripper
	timeout     time.Duration
	userAgent   string
	logger      *log.Logger
	maxInFlight int64
}

// Option configures a connector.
type Option func(*options)

// WithBaseURL points the connector at another host, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient makes the connector use c instead of building its own client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.client = c }
}

// WithTransport sets the RoundTripper of the connector's http.Client.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// WithTimeout sets the per-request timeout. Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithLogger logs one line per request. The API key is never logged.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMaxInFlight bounds concurrent requests of a ConcurrentConnector.
func WithMaxInFlight(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxInFlight = int64(n)
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		baseURL:     DefaultBaseURL,
		timeout:     DefaultTimeout,
		userAgent:   DefaultUserAgent,
		maxInFlight: DefaultMaxInFlight,
	}
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case o.client == nil:
		o.client = &http.Client{Timeout: o.timeout, Transport: o.transport}
	case o.transport != nil:
		c := *o.client
		c.Transport = o.transport
		o.client = &c
	}
	return o
}

type errorResponse struct {
	Error string `json:"error"`
}

// fetch performs one request. Shared by both connectors.
func (o *options) fetch(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	target := o.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("osuapi: build request %s: %w", path, err)
	}
	rq.Header.Set("Accept", "application/json")
	rq.Header.Set("User-Agent", o.userAgent)

	start := time.Now()
	rp, err := o.client.Do(rq)
	if err != nil {
		// The query string carries the API key.
		var ue *url.Error
		if errors.As(err, &ue) {
			ue.URL = o.baseURL + path
		}
		return nil, fmt.Errorf("osuapi: get %s: %w", path, err)
	}
	defer rp.Body.Close()

	if o.logger != nil {
		o.logger.Printf("GET %v (%v) %v", path, rp.StatusCode, time.Since(start).Round(time.Millisecond))
	}

	data, err := io.ReadAll(rp.Body)
	if err != nil {
		return nil, fmt.Errorf("osuapi: read %s: %w", path, err)
	}

	if rp.StatusCode < 200 || rp.StatusCode > 299 {
		se := &StatusError{StatusCode: rp.StatusCode, Status: rp.Status}
		var er errorResponse
		if json.Unmarshal(data, &er) == nil {
			se.Message = er.Error
		}
		return nil, se
	}

	var body json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, &DecodeError{Endpoint: path, Err: err}
	}
	if trimmed := strings.TrimSpace(string(body)); strings.HasPrefix(trimmed, "{") {
		var er errorResponse
		if json.Unmarshal(body, &er) == nil && er.Error != "" {
			return nil, &APIError{Message: er.Error}
		}
	}
	return body, nil
}

// SyncConnector performs each request on the calling goroutine.
type SyncConnector struct {
	opts   options
	closed atomic.Bool
}

var _ Connector = (*SyncConnector)(nil)

// NewSyncConnector creates a blocking connector.
func NewSyncConnector(opts ...Option) *SyncConnector {
	return &SyncConnector{opts: buildOptions(opts)}
}

// Get blocks until the response body has been read.
func (c *SyncConnector) Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}
	return c.opts.fetch(ctx, path, params)
}

// Close releases idle connections.
func (c *SyncConnector) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.opts.client.CloseIdleConnections()
	return nil
}

// ConcurrentConnector runs every request on its own goroutine.
// At most WithMaxInFlight requests are on the wire at once; the rest wait
// for a slot or for their context to end.
type ConcurrentConnector struct {
	opts options
	sem  *semaphore.Weighted

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

var _ AsyncConnector = (*ConcurrentConnector)(nil)

// NewConcurrentConnector creates a non-blocking connector.
func NewConcurrentConnector(opts ...Option) *ConcurrentConnector {
	o := buildOptions(opts)
	return &ConcurrentConnector{opts: o, sem: semaphore.NewWeighted(o.maxInFlight)}
}

// Go starts the request on a new goroutine.
func (c *ConcurrentConnector) Go(ctx context.Context, path string, params url.Values) <-chan Response {
	out := make(chan Response, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		out <- Response{Err: ErrClosed}
		close(out)
		return out
	}
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		defer close(out)

		if err := c.sem.Acquire(ctx, 1); err != nil {
			out <- Response{Err: fmt.Errorf("osuapi: get %s: %w", path, err)}
			return
		}
		defer c.sem.Release(1)

		body, err := c.opts.fetch(ctx, path, params)
		out <- Response{Body: body, Err: err}
	}()
	return out
}

// Get starts the request and waits for it.
func (c *ConcurrentConnector) Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	r := <-c.Go(ctx, path, params)
	return r.Body, r.Err
}

// Close rejects new requests, waits for in-flight ones and releases idle connections.
func (c *ConcurrentConnector) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.wg.Wait()
	c.opts.client.CloseIdleConnections()
	return nil
}
