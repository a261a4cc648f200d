package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/tgwire/tgwire/httpapi"
	"github.com/tgwire/tgwire/telegram"
	"github.com/tgwire/tgwire/webhook"
)

type digestBot struct {
	client  *httpapi.Client
	logger  *slog.Logger
	started time.Time
}

// handlePolled processes updates from the long-polling loop.
func (b *digestBot) handlePolled(ctx context.Context, update telegram.Update) {
	reply, ok := b.reply(update)
	if !ok {
		return
	}
	if _, err := telegram.Send[telegram.Message](ctx, b.client, reply); err != nil {
		b.logger.Error("reply failed", "error", err)
	}
}

// handlePushed processes updates from the webhook receiver, answering
// the webhook request itself where possible.
func (b *digestBot) handlePushed(ctx context.Context, w http.ResponseWriter, update telegram.Update) {
	reply, ok := b.reply(update)
	if !ok {
		return
	}
	if err := webhook.Reply(w, reply); err != nil {
		b.logger.Error("webhook reply failed", "error", err)
	}
}

func (b *digestBot) reply(update telegram.Update) (telegram.SendMessage, bool) {
	msg := update.Message
	if msg == nil {
		return telegram.SendMessage{}, false
	}

	switch msg.Command() {
	case "start":
		return msg.ReplyText("Hello! I deliver scheduled digests. Try /status."), true
	case "status":
		uptime := time.Since(b.started).Round(time.Second)
		return msg.ReplyText("Running. Uptime: " + uptime.String()), true
	default:
		return telegram.SendMessage{}, false
	}
}
