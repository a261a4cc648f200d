package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tgwire/tgwire/httpapi"
	"github.com/tgwire/tgwire/internal/config"
	"github.com/tgwire/tgwire/telegram"
)

const digestSendTimeout = 60 * time.Second

// digestScheduler sends configured digest messages on their cron
// schedules.
type digestScheduler struct {
	cron *cron.Cron
}

// startDigests validates schedules, registers every digest entry and
// starts the scheduler. The returned scheduler is running; callers
// must Stop it on shutdown.
func startDigests(entries []config.DigestEntry, client *httpapi.Client, logger *slog.Logger) (*digestScheduler, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	c := cron.New(cron.WithParser(parser))

	for i, entry := range entries {
		chat, err := digestChat(entry.ChatID)
		if err != nil {
			return nil, fmt.Errorf("digests[%d]: %w", i, err)
		}
		text := entry.Text

		_, err = c.AddFunc(entry.Cron, func() {
			ctx, cancel := context.WithTimeout(context.Background(), digestSendTimeout)
			defer cancel()

			msg := telegram.NewSendMessage(chat, text).WithParseMode(telegram.ModeHTML)
			if _, err := telegram.Send[telegram.Message](ctx, client, msg); err != nil {
				logger.Error("digest send failed", "chat", chat, "error", err)
				return
			}
			logger.Info("digest sent", "chat", chat)
		})
		if err != nil {
			return nil, fmt.Errorf("digests[%d]: invalid cron %q: %w", i, entry.Cron, err)
		}
	}

	c.Start()
	logger.Info("digest scheduler started", "entries", len(entries))
	return &digestScheduler{cron: c}, nil
}

// Stop shuts the scheduler down, waiting for in-flight sends.
func (s *digestScheduler) Stop() {
	<-s.cron.Stop().Done()
}

func digestChat(s string) (telegram.ChatID, error) {
	if strings.HasPrefix(s, "@") {
		return telegram.Username(s), nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return telegram.ChatID{}, fmt.Errorf("chat_id must be numeric or @username, got %q", s)
	}
	return telegram.ID(id), nil
}
