// Package api issues requests against the listing backend with the headers
// and error shape every caller relies on.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mahannajafi/moslemi-group-project/internal/session"
)

// RequestError is a non-2xx backend response. Message carries the raw
// response body when the backend sent one.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// DecodeError marks a success response whose body did not match the expected
// shape. Distinct from RequestError so callers can tell a contract violation
// apart from a plain failed request.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed backend response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Options controls a single request.
type Options struct {
	// Auth attaches the stored access token as a bearer header. When no
	// token is stored the header is omitted entirely and the backend is
	// left to reject the call.
	Auth bool
	// Header holds extra headers, e.g. Prefer on create.
	Header http.Header
}

// Client builds and executes backend requests. All callers share one Client
// so header construction and error normalization live in exactly one place.
type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	sessions *session.Store
}

func NewClient(baseURL, apiKey string, sessions *session.Store) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 30 * time.Second},
		sessions: sessions,
	}
}

// Do executes method+path and decodes a JSON success body into out.
// A 204 response leaves out untouched. out may be nil to discard the body.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader, opts Options, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	c.setHeaders(req, opts)
	return c.execute(req, out)
}

// DoJSON is Do with a JSON-encoded body and Content-Type set.
func (c *Client) DoJSON(ctx context.Context, method, path string, body any, opts Options, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	c.setHeaders(req, opts)
	req.Header.Set("Content-Type", "application/json")
	return c.execute(req, out)
}

// DoForm POSTs a multipart body, used for object uploads.
func (c *Client) DoForm(ctx context.Context, path string, body io.Reader, contentType string, opts Options, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	c.setHeaders(req, opts)
	req.Header.Set("Content-Type", contentType)
	return c.execute(req, out)
}

func (c *Client) setHeaders(req *http.Request, opts Options) {
	for k, vs := range opts.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if opts.Auth {
		if token := c.sessions.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

func (c *Client) execute(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(resp.Body)
		text := strings.TrimSpace(string(msg))
		if text == "" {
			text = "request failed"
		}
		return &RequestError{Status: resp.StatusCode, Message: text}
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
