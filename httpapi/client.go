// Package httpapi implements the Telegram transport contract over
// net/http. It is the default adapter: JSON requests are posted as
// application/json, file-bearing requests as multipart form data.
//
// The adapter performs exactly one HTTP call per request and never
// retries; rate-limit responses surface as *telegram.APIError with
// RetryAfter set so callers can apply their own policy.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tgwire/tgwire/telegram"
)

const (
	defaultBaseURL = "https://api.telegram.org"
	defaultTimeout = 60 * time.Second

	// maxResponseBytes bounds reads of API responses.
	maxResponseBytes = 10 << 20
)

// Client is a thin HTTP adapter implementing telegram.Sender.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

var _ telegram.Sender = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API server, e.g. a
// local Bot API server or a test fixture.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// WithHTTPClient replaces the underlying *http.Client. Timeouts and
// connection reuse are owned by the HTTP client, not the adapter.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the client's logger. Requests are logged at debug
// level; the token and request URL never appear in log output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Bot API client for the given token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendJSON implements telegram.Sender. The outbound body is the
// canonical JSON encoding of the request.
func (c *Client) SendJSON(ctx context.Context, m telegram.Method) (json.RawMessage, error) {
	payload, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("httpapi: marshal %s request: %w", m.APIMethod(), err)
	}
	return c.post(ctx, m.APIMethod(), "application/json", bytes.NewReader(payload))
}

// SendFile implements telegram.Sender. Fields reported by Files()
// become binary parts; every other field becomes a text part. File
// references (file_id or URL) serialize inside the text parts like
// any other scalar.
func (c *Client) SendFile(ctx context.Context, m telegram.FileMethod) (json.RawMessage, error) {
	body, contentType, err := encodeMultipart(m)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, m.APIMethod(), contentType, body)
}

// FileURL returns the download URL for a file path obtained from
// getFile. The link is valid for at least one hour.
func (c *Client) FileURL(filePath string) string {
	return fmt.Sprintf("%s/file/bot%s/%s", c.baseURL, c.token, filePath)
}

func (c *Client) post(ctx context.Context, method, contentType string, body io.Reader) (json.RawMessage, error) {
	reqURL := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("httpapi: create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// Unwrap *url.Error so the token-bearing URL never appears
		// in error messages.
		if uerr, ok := err.(*url.Error); ok {
			err = uerr.Err
		}
		return nil, fmt.Errorf("httpapi: %s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("httpapi: read %s response: %w", method, err)
	}

	c.logger.Debug("api request",
		"method", method,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	return telegram.ParseResponse(method, respBody)
}

// encodeMultipart builds the multipart form for a file-bearing
// request by walking the JSON object form of the request: fields
// named by Files() are streamed as binary parts, all remaining
// fields become text parts carrying their scalar value or JSON
// encoding.
func encodeMultipart(m telegram.FileMethod) (*bytes.Buffer, string, error) {
	payload, err := json.Marshal(m)
	if err != nil {
		return nil, "", fmt.Errorf("httpapi: marshal %s request: %w", m.APIMethod(), err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, "", fmt.Errorf("httpapi: %s request is not a JSON object: %w", m.APIMethod(), err)
	}

	files := m.Files()

	// Deterministic part order.
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, name := range names {
		if file, ok := files[name]; ok {
			if err := writeFilePart(w, name, file); err != nil {
				return nil, "", fmt.Errorf("httpapi: encode %s part %s: %w", m.APIMethod(), name, err)
			}
			continue
		}
		if err := w.WriteField(name, fieldText(fields[name])); err != nil {
			return nil, "", fmt.Errorf("httpapi: encode %s part %s: %w", m.APIMethod(), name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("httpapi: finish %s form: %w", m.APIMethod(), err)
	}
	return buf, w.FormDataContentType(), nil
}

func writeFilePart(w *multipart.Writer, field string, file *telegram.InputFile) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%s; filename=%s`,
		strconv.Quote(field), strconv.Quote(file.Name)))
	header.Set("Content-Type", file.MIME)

	part, err := w.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = part.Write(file.Data)
	return err
}

// fieldText renders one non-file field as multipart text. JSON
// strings are sent unquoted; numbers, booleans, arrays and objects
// keep their JSON encoding.
func fieldText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
