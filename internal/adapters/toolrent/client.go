package toolrent

// Package toolrent is the HTTP client for the ToolRent backend REST
// API. Responses are decoded into explicit structs and validated at
// this boundary; callers never see raw JSON.

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

	apperrors "github.com/toolrent/admin-gateway/internal/errors"
)

// maxErrorBody bounds how much of an error response body is kept for
// messages.
const maxErrorBody = 2048

// TokenFunc supplies the current bearer token, or "" when anonymous.
type TokenFunc func() string

// Client talks to the ToolRent backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenFunc
}

// Options holds configuration for Client.
type Options struct {
	// BaseURL is the backend root, e.g. "http://localhost:8090".
	BaseURL string
	// Token supplies the bearer token for authenticated calls. Optional.
	Token TokenFunc
	// HTTPClient is optional; a 30s-timeout client is used by default.
	HTTPClient *http.Client
}

// New creates a backend client.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("backend base URL is required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	token := opts.Token
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		httpClient: httpClient,
		token:      token,
	}, nil
}

// withToken returns a copy of the client whose bearer token is pinned
// to tok, for calls that carry an explicit token rather than the
// ambient session's.
func (c *Client) withToken(tok string) *Client {
	clone := *c
	clone.token = func() string { return tok }
	return &clone
}

// apiError is a non-2xx backend response. Endpoint wrappers map it to
// the appropriate error kind; transport failures never take this form.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// call describes one request to the backend.
type call struct {
	method string
	path   string
	query  url.Values
	body   any
	// auth attaches the bearer token when one is available.
	auth bool
}

// do executes a call and decodes a 2xx JSON body into out (when out is
// non-nil). It returns a network_error for transport failures, an
// *apiError for non-2xx statuses, and malformed_response when a success
// body does not decode.
func (c *Client) do(ctx context.Context, req call, out any) error {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "build request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.auth {
		if tok := c.token(); tok != "" {
			httpReq.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return apperrors.Network(err, req.method+" "+req.path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apiError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeMalformedResponse, "decode "+req.path+" response")
	}
	return nil
}

// readErrorMessage extracts a human-readable message from an error
// body, accepting both the backend's structured form and plain text.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return "no response body"
	}

	var structured struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &structured); err == nil {
		if structured.Message != "" {
			return structured.Message
		}
		if structured.Error != "" {
			return structured.Error
		}
	}
	return strings.TrimSpace(string(raw))
}

// mapStatus converts a CRUD endpoint error into the shared taxonomy.
func mapStatus(err error) error {
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.Status {
	case http.StatusNotFound:
		return apperrors.NotFound(apiErr.Message)
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return apperrors.Validation(apiErr.Message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.Newf(apperrors.ErrCodeValidation, "not authorized: %s", apiErr.Message)
	default:
		return apperrors.Wrap(apiErr, apperrors.ErrCodeInternal, "backend request failed")
	}
}
