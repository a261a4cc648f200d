// Package longpoll delivers Bot API updates via getUpdates long
// polling. Offsets survive restarts through a pluggable OffsetStore.
package longpoll

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tgwire/tgwire/telegram"
)

const (
	defaultTimeout = 30 // seconds, long-polling window

	maxConsecutiveErrors = 5
	errorPauseDuration   = 30 * time.Second
)

// Handler processes one incoming update. Handlers run sequentially
// on the polling goroutine; spawn goroutines for slow work.
type Handler func(ctx context.Context, update telegram.Update)

// Poller runs a getUpdates long-polling loop against a
// telegram.Sender.
type Poller struct {
	sender  telegram.Sender
	handler Handler
	store   OffsetStore
	logger  *slog.Logger

	timeout        int
	limit          int
	allowedUpdates []string

	stopCh    chan struct{}
	done      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
	started   atomic.Bool
}

// Option configures a Poller.
type Option func(*Poller)

// WithLogger sets the poller's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Poller) { p.logger = logger }
}

// WithStore sets the offset store. Defaults to an in-memory store.
func WithStore(store OffsetStore) Option {
	return func(p *Poller) { p.store = store }
}

// WithTimeout sets the long-polling window in seconds.
func WithTimeout(seconds int) Option {
	return func(p *Poller) { p.timeout = seconds }
}

// WithLimit caps the number of updates fetched per poll, 1-100.
func WithLimit(limit int) Option {
	return func(p *Poller) { p.limit = limit }
}

// WithAllowedUpdates restricts the update types delivered.
func WithAllowedUpdates(types ...string) Option {
	return func(p *Poller) { p.allowedUpdates = types }
}

// New creates a Poller. Call Start to begin receiving updates.
func New(sender telegram.Sender, handler Handler, opts ...Option) *Poller {
	p := &Poller{
		sender:  sender,
		handler: handler,
		store:   NewMemoryStore(),
		logger:  slog.Default(),
		timeout: defaultTimeout,
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start launches the polling loop in a goroutine. Subsequent calls
// are no-ops.
func (p *Poller) Start() {
	p.startOnce.Do(func() {
		p.started.Store(true)
		go p.loop()
	})
}

// Stop signals the polling loop to stop and waits for it to finish.
// It is safe to call Stop multiple times, or without a prior Start.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	if p.started.Load() {
		<-p.done
	}
}

// loop runs the long-polling loop until Stop is called.
func (p *Poller) loop() {
	defer close(p.done)

	offset, err := p.store.Offset()
	if err != nil {
		p.logger.Error("loading poll offset failed", "error", err)
	}

	var consecutiveErrors int

	for {
		select {
		case <-p.stopCh:
			return
		default:
		}

		req := telegram.NewGetUpdates().
			WithOffset(offset).
			WithTimeout(p.timeout)
		if p.limit > 0 {
			req = req.WithLimit(p.limit)
		}
		if len(p.allowedUpdates) > 0 {
			req = req.WithAllowedUpdates(p.allowedUpdates...)
		}

		updates, err := telegram.Send[[]telegram.Update](p.ctx(), p.sender, req)
		if err != nil {
			select {
			case <-p.stopCh:
				return
			default:
			}

			consecutiveErrors++
			p.logger.Error("polling getUpdates failed",
				"error", err,
				"consecutive_errors", consecutiveErrors,
			)

			if consecutiveErrors >= maxConsecutiveErrors {
				p.logger.Warn("polling paused after consecutive errors",
					"pause", errorPauseDuration,
				)
				select {
				case <-p.stopCh:
					return
				case <-time.After(errorPauseDuration):
				}
				consecutiveErrors = 0
			}
			continue
		}

		consecutiveErrors = 0

		for _, update := range updates {
			if next := update.UpdateID + 1; next > offset {
				offset = next
			}
			p.handler(p.ctx(), update)
		}

		if len(updates) > 0 {
			if err := p.store.SetOffset(offset); err != nil {
				p.logger.Error("persisting poll offset failed",
					"offset", offset,
					"error", err,
				)
			}
		}
	}
}

// ctx returns a context cancelled when the poller stops.
func (p *Poller) ctx() context.Context {
	return stopContext{stopCh: p.stopCh}
}

// stopContext adapts the stop channel to a context.Context for the
// underlying sender.
type stopContext struct {
	stopCh <-chan struct{}
}

func (c stopContext) Deadline() (time.Time, bool) { return time.Time{}, false }
func (c stopContext) Done() <-chan struct{}       { return c.stopCh }

func (c stopContext) Err() error {
	select {
	case <-c.stopCh:
		return errPollerStopped
	default:
		return nil
	}
}

func (c stopContext) Value(any) any { return nil }

var errPollerStopped = pollerStoppedError{}

type pollerStoppedError struct{}

func (pollerStoppedError) Error() string { return "poller stopped" }
