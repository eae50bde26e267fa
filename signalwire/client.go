package signalwire

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "swire"

	lamlPrefix  = "/api/laml/2010-04-01"
	relayPrefix = "/api/relay/rest"
)

// Client represents a SignalWire API client. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	spaceName  string
	projectID  string
	apiKey     string
	token      string
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new SignalWire client for the given space. The project
// ID and API key are sent with basic authentication on every call.
func NewClient(spaceName, projectID, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if spaceName == "" {
		return nil, fmt.Errorf("%w: space name is required", ErrInvalidConfig)
	}
	if projectID == "" {
		return nil, fmt.Errorf("%w: project ID is required", ErrInvalidConfig)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	client := &Client{
		spaceName: spaceName,
		projectID: projectID,
		apiKey:    apiKey,
		baseURL:   fmt.Sprintf("https://%s.signalwire.com", spaceName),
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.timeout > 0 {
		httpClient := *client.httpClient
		httpClient.Timeout = client.timeout
		client.httpClient = &httpClient
	}

	// Ensure baseURL doesn't have trailing slash
	client.baseURL = strings.TrimRight(client.baseURL, "/")

	return client, nil
}

// ProjectID returns the project the client authenticates as
func (c *Client) ProjectID() string {
	return c.projectID
}

// SpaceName returns the space the client talks to
func (c *Client) SpaceName() string {
	return c.spaceName
}

// WithToken returns a copy of the client that authenticates token-capable
// endpoints with the given JWT instead of basic auth.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// TestConnection tests the connection and credentials
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.ListOwnedNumbers(ctx, NewOwnedNumberParams().PageSize(1).Build())
	return err
}

func lamlPath(format string, args ...any) string {
	return lamlPrefix + fmt.Sprintf(format, args...)
}

func relayPath(format string, args ...any) string {
	return relayPrefix + fmt.Sprintf(format, args...)
}
