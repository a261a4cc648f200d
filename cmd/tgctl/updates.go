package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tgwire/tgwire/telegram"
)

func updatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updates",
		Short: "Fetch pending updates once and print them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			req := telegram.NewGetUpdates()
			if offset, _ := cmd.Flags().GetInt("offset"); offset != 0 {
				req = req.WithOffset(offset)
			}
			if limit, _ := cmd.Flags().GetInt("limit"); limit != 0 {
				req = req.WithLimit(limit)
			}

			ctx, cancel := requestContext()
			defer cancel()
			updates, err := telegram.Send[[]telegram.Update](ctx, client, req)
			if err != nil {
				return err
			}

			if len(updates) == 0 {
				fmt.Println("no pending updates")
				return nil
			}
			for _, u := range updates {
				fmt.Printf("%s %s\n", color.CyanString("[%d]", u.UpdateID), describeUpdate(u))
			}
			return nil
		},
	}
	cmd.Flags().Int("offset", 0, "Identifier of the first update to return")
	cmd.Flags().Int("limit", 0, "Maximum number of updates to fetch, 1-100")
	return cmd
}

func describeUpdate(u telegram.Update) string {
	switch {
	case u.Message != nil:
		from := "?"
		if u.Message.From != nil {
			from = u.Message.From.FullName()
		}
		return fmt.Sprintf("message from %s: %q", from, u.Message.Text)
	case u.EditedMessage != nil:
		return fmt.Sprintf("edited message %d", u.EditedMessage.MessageID)
	case u.ChannelPost != nil:
		return fmt.Sprintf("channel post in %s", u.ChannelPost.Chat.Title)
	case u.CallbackQuery != nil:
		return fmt.Sprintf("callback query %q", u.CallbackQuery.Data)
	default:
		return u.Kind()
	}
}
