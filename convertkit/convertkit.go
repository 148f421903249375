// Package convertkit is a small client for the ConvertKit v3 subscribe API.
package convertkit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public ConvertKit API host.
	DefaultBaseURL = "https://api.convertkit.com"

	defaultTimeout  = 10 * time.Second
	maxErrorBodyLen = 64 << 10
)

var (
	// ErrMissingSecret is returned when the client has no API secret configured.
	ErrMissingSecret = errors.New("convertkit: api secret not configured")
	// ErrMissingID is returned when a tag or form id is empty.
	ErrMissingID = errors.New("convertkit: missing id")
)

// UpstreamError carries a non-2xx response from ConvertKit.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("convertkit: status %d: %s", e.StatusCode, e.Body)
}

// ID is a tag or form identifier. Clients send it either as a JSON string
// or a JSON number.
type ID string

// UnmarshalJSON accepts "123", 123 and null.
func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("convertkit: id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes numeric ids as JSON numbers and anything else as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) numeric() bool {
	if id == "" || (len(id) > 1 && id[0] == '0') {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Subscriber is the person being added to a tag or form.
type Subscriber struct {
	Email     string
	FirstName string
	Fields    map[string]string
	Tags      []ID // forwarded on form subscriptions only
}

type subscribeRequest struct {
	APISecret string            `json:"api_secret"`
	Email     string            `json:"email"`
	FirstName string            `json:"first_name"`
	Fields    map[string]string `json:"fields,omitempty"`
	Tags      []ID              `json:"tags,omitempty"`
}

type subscribeResponse struct {
	Subscription json.RawMessage `json:"subscription"`
}

// Client posts subscriptions to ConvertKit. It makes one attempt per call.
type Client struct {
	secret  string
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(u), "/")
	}
}

// WithHTTPClient replaces the default 10s-timeout HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient builds a Client for the given API secret.
func NewClient(secret string, opts ...Option) *Client {
	c := &Client{
		secret:  strings.TrimSpace(secret),
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether the client has an API secret.
func (c *Client) Configured() bool {
	return c != nil && c.secret != ""
}

// TagSubscribe adds the subscriber to a tag. Subscriber.Tags is ignored.
func (c *Client) TagSubscribe(ctx context.Context, tagID ID, s Subscriber) (json.RawMessage, error) {
	return c.subscribe(ctx, "tags", tagID, subscribeRequest{
		Email:     s.Email,
		FirstName: s.FirstName,
		Fields:    s.Fields,
	})
}

// FormSubscribe adds the subscriber to a form, applying any extra tags.
func (c *Client) FormSubscribe(ctx context.Context, formID ID, s Subscriber) (json.RawMessage, error) {
	return c.subscribe(ctx, "forms", formID, subscribeRequest{
		Email:     s.Email,
		FirstName: s.FirstName,
		Fields:    s.Fields,
		Tags:      s.Tags,
	})
}

func (c *Client) subscribe(ctx context.Context, kind string, id ID, body subscribeRequest) (json.RawMessage, error) {
	if !c.Configured() {
		return nil, ErrMissingSecret
	}
	if id == "" {
		return nil, ErrMissingID
	}
	body.APISecret = c.secret

	endpoint, err := url.JoinPath(c.baseURL, "v3", kind, string(id), "subscribe")
	if err != nil {
		return nil, fmt.Errorf("convertkit: build url: %w", err)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("convertkit: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("convertkit: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("convertkit: %s subscribe: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var out subscribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("convertkit: decode response: %w", err)
	}
	return out.Subscription, nil
}
