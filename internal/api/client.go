package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenFunc returns the current bearer token, or "" when logged out. The
// session manager owns the token; the client only reads it per request.
type TokenFunc func() string

// Client talks to the EduHub REST API. All methods return typed errors
// from errors.go; callers never see raw HTTP statuses.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	token          TokenFunc
	onUnauthorized func()
	log            zerolog.Logger
}

func New(baseURL string, token TokenFunc, timeout time.Duration, log zerolog.Logger) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		token:      token,
		log:        log,
	}
}

// SetUnauthorizedHook registers the callback fired on any 401 response.
// Registered once at wiring time; this is the session teardown path.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// doMultipart submits a multipart form (content and advertisement uploads).
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, filename string, file []byte, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("write form field %s: %w", k, err)
		}
	}
	if len(file) > 0 {
		fw, err := w.CreateFormFile(fileField, filename)
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}
		if _, err := fw.Write(file); err != nil {
			return fmt.Errorf("write form file: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("request failed")
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	msg := decodeErrorMessage(resp.Body)
	c.log.Debug().Int("status", resp.StatusCode).Str("method", req.Method).
		Str("url", req.URL.String()).Str("message", msg).Msg("api error")

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		if msg == "" {
			msg = "Authentication required. Please log in again."
		}
		return &UnauthorizedError{Message: msg}
	case resp.StatusCode == http.StatusForbidden:
		if msg == "" {
			msg = "You do not have permission to perform this action."
		}
		return &ForbiddenError{Message: msg}
	case resp.StatusCode == http.StatusNotFound:
		if msg == "" {
			msg = "Requested resource not found"
		}
		return &NotFoundError{Message: msg}
	case resp.StatusCode == http.StatusConflict:
		return &ConflictError{Message: msg}
	case resp.StatusCode >= 500:
		if msg == "" {
			msg = "Server error. Please try again later."
		}
		return &ServerError{Status: resp.StatusCode, Message: msg}
	default:
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
}

// decodeErrorMessage pulls the message out of the server's error envelope,
// which is either {"error":"..."} or {"error":{"message":"..."}}.
func decodeErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 1<<16))
	if err != nil {
		return ""
	}

	var flat struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &flat); err == nil {
		if flat.Error != "" {
			return flat.Error
		}
		if flat.Message != "" {
			return flat.Message
		}
	}

	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil && nested.Error.Message != "" {
		return nested.Error.Message
	}
	return ""
}
