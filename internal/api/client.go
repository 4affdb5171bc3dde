// Package api is the HTTP client for the remote note store.
package api

import (
	"bytes"
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

	"github.com/Paintersrp/notes/internal/locale"
	"github.com/Paintersrp/notes/internal/note"
)

const maxResponseBytes = 4 << 20

var errMissingData = errors.New("response has no data payload")

// Client talks to a note store speaking the notes REST contract.
type Client struct {
	baseURL  string
	http     *http.Client
	messages locale.Catalog
	token    string
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds every request. Zero keeps the transport default. The
// client passed to WithHTTPClient is copied, not modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithMessages sets the catalog used for fallback error messages.
func WithMessages(m locale.Catalog) Option {
	return func(c *Client) {
		c.messages = m
	}
}

// WithToken sends token as a Bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client rooted at baseURL, e.g.
// https://notes-api.dicoding.dev/v2.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{},
		messages: locale.MustLookup(locale.Default),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the store root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e envelope) hasData() bool {
	d := bytes.TrimSpace(e.Data)
	return len(d) > 0 && !bytes.Equal(d, []byte("null"))
}

// List fetches the active notes in server order.
func (c *Client) List(ctx context.Context) ([]note.Note, error) {
	return c.list(ctx, OpList, "/notes")
}

// ListArchived fetches the archived notes in server order.
func (c *Client) ListArchived(ctx context.Context) ([]note.Note, error) {
	return c.list(ctx, OpListArchived, "/notes/archived")
}

func (c *Client) list(ctx context.Context, op Op, path string) ([]note.Note, error) {
	env, status, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	if !env.hasData() {
		return nil, c.apiError(op, status, "", errMissingData)
	}

	notes := []note.Note{}
	if err := json.Unmarshal(env.Data, &notes); err != nil {
		return nil, c.apiError(op, status, "", fmt.Errorf("decode notes: %w", err))
	}

	return notes, nil
}

// Create stores a new note and returns the store's representation of it.
func (c *Client) Create(ctx context.Context, d note.Draft) (note.Note, error) {
	env, status, err := c.do(ctx, OpCreate, http.MethodPost, "/notes", d)
	if err != nil {
		return note.Note{}, err
	}

	if !env.hasData() {
		return note.Note{}, c.apiError(OpCreate, status, env.Message, errMissingData)
	}

	var n note.Note
	if err := json.Unmarshal(env.Data, &n); err != nil {
		return note.Note{}, c.apiError(OpCreate, status, "", fmt.Errorf("decode note: %w", err))
	}
	if n.ID == "" {
		return note.Note{}, c.apiError(OpCreate, status, "", errors.New("stored note has no id"))
	}

	return n, nil
}

// Delete removes the note with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, _, err := c.do(ctx, OpDelete, http.MethodDelete, notePath(id), nil)
	return err
}

// Archive marks the note archived. The returned note is nil when the store
// acknowledged the change without sending the updated representation.
func (c *Client) Archive(ctx context.Context, id string) (*note.Note, error) {
	return c.flag(ctx, OpArchive, notePath(id)+"/archive")
}

// Unarchive clears the archived mark. See Archive for the nil result.
func (c *Client) Unarchive(ctx context.Context, id string) (*note.Note, error) {
	return c.flag(ctx, OpUnarchive, notePath(id)+"/unarchive")
}

func (c *Client) flag(ctx context.Context, op Op, path string) (*note.Note, error) {
	env, status, err := c.do(ctx, op, http.MethodPut, path, nil)
	if err != nil {
		return nil, err
	}

	if !env.hasData() {
		return nil, nil
	}

	var n note.Note
	if err := json.Unmarshal(env.Data, &n); err != nil {
		return nil, c.apiError(op, status, "", fmt.Errorf("decode note: %w", err))
	}

	return &n, nil
}

func notePath(id string) string {
	return "/notes/" + url.PathEscape(id)
}

// do performs one round trip and decodes the envelope. Any non-2xx status,
// transport failure or malformed body is returned as an error.
func (c *Client) do(
	ctx context.Context,
	op Op,
	method, path string,
	payload any,
) (envelope, int, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return envelope{}, 0, fmt.Errorf("encode %s request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return envelope{}, 0, fmt.Errorf("build %s request: %w", op, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("note store unreachable", "op", op, "method", method, "path", path, "err", err)
		return envelope{}, 0, &NetworkError{Op: op, Message: op.Fallback(c.messages), Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug(
		"note store request",
		"op", op,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return envelope{}, resp.StatusCode, &NetworkError{Op: op, Message: op.Fallback(c.messages), Err: err}
	}

	var env envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return envelope{}, resp.StatusCode, c.apiError(op, resp.StatusCode, "", fmt.Errorf("decode response: %w", err))
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return env, resp.StatusCode, c.apiError(op, resp.StatusCode, env.Message, nil)
	}

	return env, resp.StatusCode, nil
}

func (c *Client) apiError(op Op, status int, message string, err error) *APIError {
	message = strings.TrimSpace(message)
	if message == "" {
		message = op.Fallback(c.messages)
	}
	return &APIError{Op: op, StatusCode: status, Message: message, Err: err}
}
