// Package client is the Go API client for the KoçumNet backend. It
// reproduces the web client's transport contract: one shared wrapper
// that attaches the session token to every request and, on an
// authentication failure, clears the whole session and calls the
// configured hook unless the current route is already the login view.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
)

// LoginRoute is the route the auth-failure redirect targets; a failure
// while already there must not trigger the hook again.
const LoginRoute = "/login"

type Client struct {
	baseURL string
	http    *http.Client
	sess    *Session

	mu            sync.RWMutex
	route         string
	onAuthFailure func()
}

func New(baseURL string, sess *Session) *Client {
	if sess == nil {
		sess = NewSession()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		sess:    sess,
		route:   LoginRoute,
	}
}

func (c *Client) Session() *Session { return c.sess }

// SetHTTPClient swaps the underlying transport (tests, custom timeouts).
func (c *Client) SetHTTPClient(h *http.Client) { c.http = h }

// SetRoute records the current view route, the guard the auth-failure
// interceptor consults.
func (c *Client) SetRoute(route string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.route = route
}

func (c *Client) Route() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.route
}

// SetOnAuthFailure registers the navigation hook invoked when the
// server rejects the token away from the login route.
func (c *Client) SetOnAuthFailure(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onAuthFailure = fn
}

// APIError is a non-2xx response, with the server's one-line message
// when the body carried one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d", e.Status)
}

// do sends one JSON request. No retries, no backoff: errors go back to
// the caller, exactly like the web client's pages.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

type filePart struct {
	Field    string
	Filename string
	Data     []byte
}

func (c *Client) doMultipart(ctx context.Context, path string, fields map[string]string, files []filePart, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return err
		}
		if _, err := part.Write(f.Data); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	if token := c.sess.Token(); token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.sess.Clear()
		c.mu.RLock()
		hook := c.onAuthFailure
		atLogin := c.route == LoginRoute
		c.mu.RUnlock()
		if !atLogin && hook != nil {
			hook()
		}
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func readErrorMessage(r io.Reader) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.Error
}
