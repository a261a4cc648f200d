package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tgwire/tgwire/httpapi"
	"github.com/tgwire/tgwire/internal/config"
	"github.com/tgwire/tgwire/longpoll"
	"github.com/tgwire/tgwire/telegram"
	"github.com/tgwire/tgwire/webhook"
)

const shutdownTimeout = 10 * time.Second

func run(cfg *config.Config, logger *slog.Logger) error {
	var opts []httpapi.Option
	if cfg.APIURL != "" {
		opts = append(opts, httpapi.WithBaseURL(cfg.APIURL))
	}
	client := httpapi.New(cfg.Token, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	me, err := telegram.Send[telegram.User](ctx, client, telegram.GetMe{})
	cancel()
	if err != nil {
		return fmt.Errorf("checking token: %w", err)
	}
	logger.Info("authenticated", "bot", me.Username, "mode", cfg.Mode)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	bot := &digestBot{client: client, logger: logger, started: time.Now()}

	sched, err := startDigests(cfg.Digests, client, logger)
	if err != nil {
		return err
	}
	defer sched.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	switch cfg.Mode {
	case config.ModeWebhook:
		return runWebhook(cfg, client, bot, registry, logger, stop)
	default:
		return runPolling(cfg, client, bot, registry, logger, stop)
	}
}

func runPolling(cfg *config.Config, client *httpapi.Client, bot *digestBot,
	registry *prometheus.Registry, logger *slog.Logger, stop <-chan os.Signal) error {

	// A stale webhook blocks getUpdates.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	_, err := telegram.Send[bool](ctx, client, telegram.DeleteWebhook{})
	cancel()
	if err != nil {
		return fmt.Errorf("clearing webhook: %w", err)
	}

	pollOpts := []longpoll.Option{
		longpoll.WithLogger(logger),
		longpoll.WithTimeout(cfg.Polling.Timeout),
	}
	if len(cfg.Polling.AllowedUpdates) > 0 {
		pollOpts = append(pollOpts, longpoll.WithAllowedUpdates(cfg.Polling.AllowedUpdates...))
	}
	if cfg.Polling.OffsetDB != "" {
		store, err := longpoll.OpenSQLiteStore(cfg.Polling.OffsetDB)
		if err != nil {
			return err
		}
		defer store.Close()
		pollOpts = append(pollOpts, longpoll.WithStore(store))
	}

	poller := longpoll.New(client, bot.handlePolled, pollOpts...)
	poller.Start()
	defer poller.Stop()

	srv := metricsServer(cfg.ListenAddr, registry, nil, "")
	go serveHTTP(srv, logger)

	<-stop
	logger.Info("shutting down")
	return shutdownHTTP(srv)
}

func runWebhook(cfg *config.Config, client *httpapi.Client, bot *digestBot,
	registry *prometheus.Registry, logger *slog.Logger, stop <-chan os.Signal) error {

	metrics := webhook.NewMetrics(registry)
	receiver := webhook.NewReceiver(bot.handlePushed,
		webhook.WithLogger(logger),
		webhook.WithSecretToken(cfg.Webhook.SecretToken),
		webhook.WithMetrics(metrics))

	srv := metricsServer(cfg.ListenAddr, registry, receiver, cfg.Webhook.Path)
	go serveHTTP(srv, logger)

	req := telegram.NewSetWebhook(cfg.Webhook.URL)
	if cfg.Webhook.SecretToken != "" {
		req = req.WithSecretToken(cfg.Webhook.SecretToken)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	_, err := telegram.Send[bool](ctx, client, req)
	cancel()
	if err != nil {
		return fmt.Errorf("registering webhook: %w", err)
	}
	logger.Info("webhook registered", "url", cfg.Webhook.URL)

	<-stop
	logger.Info("shutting down")
	return shutdownHTTP(srv)
}

func metricsServer(addr string, registry *prometheus.Registry, receiver *webhook.Receiver, path string) *http.Server {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if receiver != nil {
		webhook.Mount(r, path, receiver)
	}
	return &http.Server{Addr: addr, Handler: r}
}

func serveHTTP(srv *http.Server, logger *slog.Logger) {
	logger.Info("http server listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
	}
}

func shutdownHTTP(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
