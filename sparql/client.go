package sparql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	contentTypeForm = "application/x-www-form-urlencoded"
	acceptJSON      = "application/sparql-results+json"

	// sudoHeader marks requests as privileged so the triple store proxy
	// bypasses request-scoped access control. Verifying a password has to
	// work before the caller holds any session-based authorization.
	sudoHeader = "mu-auth-sudo"
)

// ErrEndpoint is returned when the endpoint answers with a non-2xx status.
var ErrEndpoint = errors.New("sparql endpoint error")

// Term is a single RDF term in a result binding.
type Term struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}

// Binding maps variable names to the terms bound in one result row.
type Binding map[string]Term

// Value returns the bound value for a variable, or "" when unbound.
func (b Binding) Value(name string) string {
	return b[name].Value
}

// Results is the decoded form of an application/sparql-results+json body.
type Results struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results"`
}

// Empty reports whether the query matched no rows.
func (r *Results) Empty() bool {
	return r == nil || len(r.Results.Bindings) == 0
}

// Client talks to a single SPARQL endpoint. The zero value is not usable,
// construct it with NewClient.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *slog.Logger
	sudo     bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the round-trip timeout on the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithLogger sets the query logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Sudo marks every request issued by this client as privileged. Hold a
// sudo client explicitly where elevated access is required instead of
// toggling it per call.
func Sudo() Option {
	return func(c *Client) {
		c.sudo = true
	}
}

// NewClient returns a client bound to the given endpoint URL.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// Query runs a SELECT query and decodes the JSON results.
func (c *Client) Query(ctx context.Context, query string) (*Results, error) {
	body, err := c.post(ctx, url.Values{"query": {query}}, acceptJSON)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	results := &Results{}
	if err := json.NewDecoder(body).Decode(results); err != nil {
		return nil, fmt.Errorf("decoding sparql results: %w", err)
	}

	return results, nil
}

// Update runs an INSERT/DELETE update. Effects are visible to the next
// call issued through the same client.
func (c *Client) Update(ctx context.Context, update string) error {
	body, err := c.post(ctx, url.Values{"update": {update}}, "")
	if err != nil {
		return err
	}
	return body.Close()
}

func (c *Client) post(ctx context.Context, form url.Values, accept string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building sparql request: %w", err)
	}

	req.Header.Set("Content-Type", contentTypeForm)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if c.sudo {
		req.Header.Set(sudoHeader, "true")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sparql request: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		res.Body.Close()
		c.logger.Error("sparql endpoint rejected request",
			"status", res.StatusCode,
			"body", string(msg),
		)
		return nil, fmt.Errorf("%w: status %d", ErrEndpoint, res.StatusCode)
	}

	return res.Body, nil
}
