// Package webhook receives Bot API updates pushed over HTTPS. It is
// the push-side counterpart of longpoll: register the configured URL
// with SetWebhook, then mount a Receiver on your HTTP server.
package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tgwire/tgwire/telegram"
)

// maxBodySize caps incoming update payloads. Updates are small; the
// limit only guards against junk traffic hitting the endpoint.
const maxBodySize = 1 << 20

// Handler processes one incoming update. It may answer the request
// directly with Reply; if it writes nothing, the Receiver responds
// with a plain acknowledgement. Handlers run on the request goroutine
// and the response is not written until the handler returns, so spawn
// goroutines for slow work.
type Handler func(ctx context.Context, w http.ResponseWriter, update telegram.Update)

// Receiver is an http.Handler that validates and decodes webhook
// requests from the Bot API and dispatches each update to a Handler.
type Receiver struct {
	handler Handler
	secret  string
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Receiver.
type Option func(*Receiver)

// WithSecretToken requires the X-Telegram-Bot-Api-Secret-Token header
// to match. Set the same value via SetWebhook's secret_token so only
// Telegram can reach the endpoint.
func WithSecretToken(secret string) Option {
	return func(rc *Receiver) { rc.secret = secret }
}

// WithLogger sets the receiver's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(rc *Receiver) { rc.logger = logger }
}

// WithMetrics records request and update metrics on the given
// collector set.
func WithMetrics(m *Metrics) Option {
	return func(rc *Receiver) { rc.metrics = m }
}

// NewReceiver creates a Receiver dispatching to handler.
func NewReceiver(handler Handler, opts ...Option) *Receiver {
	rc := &Receiver{
		handler: handler,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// ServeHTTP implements http.Handler. Telegram treats any non-2xx
// status as a delivery failure and retries, so rejections are
// reserved for requests that cannot have come from the Bot API.
func (rc *Receiver) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		rc.reject(w, "method not allowed", http.StatusMethodNotAllowed, "bad_method")
		return
	}

	if rc.secret != "" {
		got := r.Header.Get("X-Telegram-Bot-Api-Secret-Token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(rc.secret)) != 1 {
			rc.logger.Warn("webhook request with bad secret token", "remote", r.RemoteAddr)
			rc.reject(w, "forbidden", http.StatusForbidden, "bad_secret")
			return
		}
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		rc.reject(w, "failed to read body", http.StatusBadRequest, "read_error")
		return
	}

	var update telegram.Update
	if err := json.Unmarshal(body, &update); err != nil {
		rc.logger.Warn("webhook payload is not an update", "error", err)
		rc.reject(w, "invalid update", http.StatusBadRequest, "decode_error")
		return
	}

	tw := &trackingWriter{ResponseWriter: w}
	start := time.Now()
	rc.handler(r.Context(), tw, update)
	if rc.metrics != nil {
		rc.metrics.updatesTotal.WithLabelValues(update.Kind()).Inc()
		rc.metrics.handleDuration.Observe(time.Since(start).Seconds())
	}

	// Handlers may answer the request themselves via Reply.
	if tw.wrote {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"ok":true}`))
}

// trackingWriter remembers whether the handler wrote a response.
type trackingWriter struct {
	http.ResponseWriter
	wrote bool
}

func (tw *trackingWriter) WriteHeader(status int) {
	tw.wrote = true
	tw.ResponseWriter.WriteHeader(status)
}

func (tw *trackingWriter) Write(p []byte) (int, error) {
	tw.wrote = true
	return tw.ResponseWriter.Write(p)
}

func (rc *Receiver) reject(w http.ResponseWriter, msg string, status int, reason string) {
	if rc.metrics != nil {
		rc.metrics.rejectedTotal.WithLabelValues(reason).Inc()
	}
	http.Error(w, msg, status)
}

// Mount registers the receiver on a chi router at the given pattern.
func Mount(r chi.Router, pattern string, rc *Receiver) {
	r.Post(pattern, rc.ServeHTTP)
}
