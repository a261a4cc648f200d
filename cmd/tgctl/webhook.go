package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tgwire/tgwire/telegram"
)

func webhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Manage the bot's webhook registration",
	}
	cmd.AddCommand(webhookSetCmd(), webhookDeleteCmd(), webhookInfoCmd())
	return cmd
}

func webhookSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <url>",
		Short: "Register a webhook URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			req := telegram.NewSetWebhook(args[0])
			if secret, _ := cmd.Flags().GetString("secret-token"); secret != "" {
				req = req.WithSecretToken(secret)
			}
			if drop, _ := cmd.Flags().GetBool("drop-pending"); drop {
				req = req.DropPending()
			}
			if certPath, _ := cmd.Flags().GetString("certificate"); certPath != "" {
				cert, err := telegram.LoadInputFile(certPath)
				if err != nil {
					return err
				}
				req = req.WithCertificate(cert)
			}

			ctx, cancel := requestContext()
			defer cancel()
			if _, err := telegram.Send[bool](ctx, client, req); err != nil {
				return err
			}
			fmt.Println(color.GreenString("webhook set to %s", args[0]))
			return nil
		},
	}
	cmd.Flags().String("secret-token", "", "Secret echoed back in X-Telegram-Bot-Api-Secret-Token")
	cmd.Flags().Bool("drop-pending", false, "Drop all pending updates")
	cmd.Flags().String("certificate", "", "Path to a self-signed public key certificate")
	return cmd
}

func webhookDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove the webhook registration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			drop, _ := cmd.Flags().GetBool("drop-pending")
			ctx, cancel := requestContext()
			defer cancel()
			if _, err := telegram.Send[bool](ctx, client, telegram.DeleteWebhook{DropPendingUpdates: drop}); err != nil {
				return err
			}
			fmt.Println(color.GreenString("webhook deleted"))
			return nil
		},
	}
	cmd.Flags().Bool("drop-pending", false, "Drop all pending updates")
	return cmd
}

func webhookInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the current webhook status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()
			info, err := telegram.Send[telegram.WebhookInfo](ctx, client, telegram.GetWebhookInfo{})
			if err != nil {
				return err
			}
			return printJSON(info)
		},
	}
}
