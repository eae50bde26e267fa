package signalwire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// request describes one call against the API
type request struct {
	method string
	path   string
	query  Params
	// form is sent url-encoded; json is marshalled. At most one is set.
	form Params
	json any
	// resource and id are set on endpoints that address a single resource,
	// which turns a 404 into a not-found error naming id
	resource string
	id       string
	// bearer allows the client token to replace basic auth
	bearer bool
}

// do performs an HTTP request with authentication and classifies the status.
// The body is returned for the caller to decode only when err is nil.
func (c *Client) do(ctx context.Context, r request) (int, []byte, error) {
	endpoint := c.baseURL + r.path
	if q := r.query.Encode(); q != "" {
		endpoint += "?" + q
	}
	if _, err := url.Parse(endpoint); err != nil {
		return 0, nil, unexpectedError(fmt.Errorf("invalid request URL: %w", err))
	}

	var body io.Reader
	var contentType string
	switch {
	case r.form != nil:
		body = strings.NewReader(r.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case r.json != nil:
		payload, err := json.Marshal(r.json)
		if err != nil {
			return 0, nil, unexpectedError(fmt.Errorf("failed to encode request body: %w", err))
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		return 0, nil, unexpectedError(fmt.Errorf("failed to create request: %w", err))
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if r.bearer && c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	} else {
		req.SetBasicAuth(c.projectID, c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, transportError(fmt.Errorf("failed to read response body: %w", err))
	}

	c.logger.Debug().
		Str("method", r.method).
		Str("path", r.path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("SignalWire API request")

	return resp.StatusCode, data, classify(r, resp.StatusCode, data)
}

// classify maps a status code to an error. 401 and 404 are checked before
// the generic range because both also fall inside it.
func classify(r request, status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized:
		return unauthorizedError()
	case status == http.StatusNotFound && r.resource != "":
		return notFoundError(r.resource, r.id, string(body))
	case status < 200 || status > 299:
		return statusError(status, string(body))
	}
	return nil
}

// decode unmarshals a successful body and enforces required fields.
func decode[T any](status int, body []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, parseError(status, string(body), err)
	}
	if err := validate.Struct(&out); err != nil {
		return nil, parseError(status, string(body), err)
	}
	return &out, nil
}

func call[T any](ctx context.Context, c *Client, r request) (*T, error) {
	status, body, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}
	return decode[T](status, body)
}
