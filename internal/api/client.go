// Package api is the HTTP client for the Édition platform. A single shared
// Client carries every call: it attaches the bearer token on the way out and
// evicts the session on any unauthorized response on the way in.
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
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// All endpoints live under a fixed path prefix.
const apiPrefix = "/api"

// TokenSource supplies the current bearer token. An empty string means
// unauthenticated and is a no-op, not an error.
type TokenSource interface {
	Token() string
}

// SessionEvictor clears the persisted session when the service answers
// unauthorized. The session store implements it.
type SessionEvictor interface {
	Evict()
}

// Client is the shared API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger

	tokens           TokenSource
	evictor          SessionEvictor
	onSessionExpired func()

	Auth       *AuthService
	Books      *BooksService
	Authors    *AuthorsService
	Categories *CategoriesService
	Articles   *ArticlesService
	Events     *EventsService
	Chapters   *ChaptersService
	Orders     *OrdersService
	Newsletter *NewsletterService
	Contacts   *ContactsService
	Comments   *CommentsService
	Uploads    *UploadsService
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithLogger enables request/response debug logging.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTokenSource wires the session store into the outbound side of the
// pipeline.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) { c.tokens = tokens }
}

// WithSessionEvictor wires the session store into the inbound side: any
// unauthorized response clears the persisted session.
func WithSessionEvictor(evictor SessionEvictor) Option {
	return func(c *Client) { c.evictor = evictor }
}

// WithSessionExpiredHandler registers the application shell's reaction to
// an evicted session (typically a hard navigation to the login route).
// The transport layer itself performs no navigation.
func WithSessionExpiredHandler(handler func()) Option {
	return func(c *Client) { c.onSessionExpired = handler }
}

// New creates the shared API client for the given server base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthService{c}
	c.Books = &BooksService{c}
	c.Authors = &AuthorsService{c}
	c.Categories = &CategoriesService{c}
	c.Articles = &ArticlesService{c}
	c.Events = &EventsService{c}
	c.Chapters = &ChaptersService{c}
	c.Orders = &OrdersService{c}
	c.Newsletter = &NewsletterService{c}
	c.Contacts = &ContactsService{c}
	c.Comments = &CommentsService{c}
	c.Uploads = &UploadsService{c}

	return c
}

// BaseURL returns the configured server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListOptions carries the standard paging query parameters.
type ListOptions struct {
	Page int
	Size int
}

func (o ListOptions) values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(o.Page))
	if o.Size > 0 {
		q.Set("size", strconv.Itoa(o.Size))
	}
	return q
}

// addInt64s appends one key=value pair per element, never a bracketed key.
func addInt64s(q url.Values, key string, ids []int64) {
	for _, id := range ids {
		q.Add(key, strconv.FormatInt(id, 10))
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(path, query), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// upload sends a multipart body with a single field named "file". The
// multipart content type overrides the client's JSON default.
func (c *Client) upload(ctx context.Context, path, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create multipart field: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(path, nil), &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, out)
}

// download fetches a binary payload (invoice PDFs, e-book files).
func (c *Client) download(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(path, query), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var data []byte
	if err := c.send(req, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) requestURL(path string, query url.Values) string {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		// url.Values encodes array parameters as repeated key=value
		// pairs, which is the convention the service expects.
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) send(req *http.Request, out any) error {
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Msg("API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().Str("method", req.Method).Str("path", req.URL.Path).Int("status", resp.StatusCode).Msg("API response")

	if resp.StatusCode == http.StatusUnauthorized {
		// A 401 from the credential exchange itself rejects the submitted
		// credentials. The session, if any, stays as it is and the caller
		// gets the service's error payload.
		if isCredentialExchange(req.URL.Path) {
			return newAPIError(resp)
		}
		c.handleUnauthorized()
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, ErrSessionExpired)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp)
	}

	switch target := out.(type) {
	case nil:
		return nil
	case *[]byte:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}
		*target = data
		return nil
	default:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}
}

func isCredentialExchange(path string) bool {
	return strings.HasSuffix(path, "/auth/login") || strings.HasSuffix(path, "/auth/register")
}

// The service answered unauthorized on a guarded call: whatever session we
// hold is dead. Clear the persisted session, then tell the shell once so
// it can force the user back to login.
func (c *Client) handleUnauthorized() {
	if c.evictor != nil {
		c.evictor.Evict()
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}
