// Package main is a minimal long-polling bot. It echoes text
// messages back and answers /start and /caps, mostly serving as a
// working example of the client and poller packages.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/tgwire/tgwire/httpapi"
	"github.com/tgwire/tgwire/longpoll"
	"github.com/tgwire/tgwire/telegram"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	token := os.Getenv("TGWIRE_TOKEN")
	if token == "" {
		logger.Error("TGWIRE_TOKEN is not set")
		os.Exit(1)
	}

	client := httpapi.New(token)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	me, err := telegram.Send[telegram.User](ctx, client, telegram.GetMe{})
	cancel()
	if err != nil {
		logger.Error("getMe failed", "error", err)
		os.Exit(1)
	}
	logger.Info("starting", "bot", me.Username)

	bot := &echoBot{client: client, logger: logger}
	poller := longpoll.New(client, bot.handleUpdate,
		longpoll.WithLogger(logger),
		longpoll.WithAllowedUpdates(telegram.UpdateMessage))
	poller.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	poller.Stop()
}

type echoBot struct {
	client *httpapi.Client
	logger *slog.Logger
}

func (b *echoBot) handleUpdate(ctx context.Context, update telegram.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}

	var reply telegram.SendMessage
	switch msg.Command() {
	case "start":
		reply = msg.ReplyText("Hi! Send me any text and I will echo it back.")
	case "caps":
		rest := strings.TrimSpace(strings.TrimPrefix(msg.Text, "/caps"))
		if rest == "" {
			rest = "usage: /caps <text>"
		}
		reply = msg.ReplyText(strings.ToUpper(rest))
	case "file":
		b.sendTranscript(ctx, msg)
		return
	default:
		reply = msg.ReplyText(msg.Text)
	}

	if _, err := telegram.Send[telegram.Message](ctx, b.client, reply); err != nil {
		b.logger.Error("reply failed", "chat", msg.Chat.ID, "error", err)
	}
}

// sendTranscript uploads a small generated document, exercising the
// multipart path.
func (b *echoBot) sendTranscript(ctx context.Context, msg *telegram.Message) {
	body := "echo transcript\n\nchat: " + strconv.FormatInt(msg.Chat.ID, 10) +
		"\ngenerated: " + time.Now().UTC().Format(time.RFC3339) + "\n"
	doc := telegram.NewInputFile("transcript.txt", []byte(body), "text/plain")

	req := telegram.NewSendDocument(telegram.ID(msg.Chat.ID), telegram.UploadFile(doc)).
		WithCaption("Here you go.")
	if _, err := telegram.Send[telegram.Message](ctx, b.client, req); err != nil {
		b.logger.Error("document upload failed", "chat", msg.Chat.ID, "error", err)
	}
}
