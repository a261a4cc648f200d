package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tgwire/tgwire/telegram"
)

// parseChat accepts a numeric chat ID or a channel @username.
func parseChat(s string) (telegram.ChatID, error) {
	if strings.HasPrefix(s, "@") {
		return telegram.Username(s), nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return telegram.ChatID{}, fmt.Errorf("chat must be a numeric ID or @username, got %q", s)
	}
	return telegram.ID(id), nil
}

func sendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send messages and files",
	}
	cmd.AddCommand(sendTextCmd(), sendPhotoCmd(), sendDocumentCmd())
	return cmd
}

func sendTextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text <chat> <text>",
		Short: "Send a text message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chat, err := parseChat(args[0])
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			req := telegram.NewSendMessage(chat, args[1])
			if mode, _ := cmd.Flags().GetString("parse-mode"); mode != "" {
				req = req.WithParseMode(telegram.ParseMode(mode))
			}
			if silent, _ := cmd.Flags().GetBool("silent"); silent {
				req = req.Silent()
			}

			ctx, cancel := requestContext()
			defer cancel()
			msg, err := telegram.Send[telegram.Message](ctx, client, req)
			if err != nil {
				return err
			}
			fmt.Println(color.GreenString("sent message %d to chat %d", msg.MessageID, msg.Chat.ID))
			return nil
		},
	}
	cmd.Flags().String("parse-mode", "", "Parse mode: MarkdownV2, Markdown or HTML")
	cmd.Flags().Bool("silent", false, "Send without notification")
	return cmd
}

func sendPhotoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photo <chat> <file-id|url>",
		Short: "Send a photo, by file_id, URL or local file with --upload",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chat, err := parseChat(args[0])
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			photo, err := fileArg(cmd, args[1])
			if err != nil {
				return err
			}
			req := telegram.NewSendPhoto(chat, photo)
			if caption, _ := cmd.Flags().GetString("caption"); caption != "" {
				req = req.WithCaption(caption)
			}

			ctx, cancel := requestContext()
			defer cancel()
			msg, err := telegram.Send[telegram.Message](ctx, client, req)
			if err != nil {
				return err
			}
			fmt.Println(color.GreenString("sent photo as message %d", msg.MessageID))
			return nil
		},
	}
	cmd.Flags().Bool("upload", false, "Treat the argument as a local file path and upload it")
	cmd.Flags().String("caption", "", "Photo caption")
	return cmd
}

func sendDocumentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "document <chat> <file-id|url>",
		Short: "Send a document, by file_id, URL or local file with --upload",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chat, err := parseChat(args[0])
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			doc, err := fileArg(cmd, args[1])
			if err != nil {
				return err
			}
			req := telegram.NewSendDocument(chat, doc)
			if caption, _ := cmd.Flags().GetString("caption"); caption != "" {
				req = req.WithCaption(caption)
			}

			ctx, cancel := requestContext()
			defer cancel()
			msg, err := telegram.Send[telegram.Message](ctx, client, req)
			if err != nil {
				return err
			}
			fmt.Println(color.GreenString("sent document as message %d", msg.MessageID))
			return nil
		},
	}
	cmd.Flags().Bool("upload", false, "Treat the argument as a local file path and upload it")
	cmd.Flags().String("caption", "", "Document caption")
	return cmd
}

// fileArg resolves a file argument: with --upload it reads the local
// path, otherwise it passes the value through as a file_id or URL.
func fileArg(cmd *cobra.Command, arg string) (telegram.FileRef, error) {
	upload, _ := cmd.Flags().GetBool("upload")
	if !upload {
		return telegram.FileID(arg), nil
	}
	file, err := telegram.LoadInputFile(arg)
	if err != nil {
		return telegram.FileRef{}, err
	}
	return telegram.UploadFile(file), nil
}
