// Package main is the entry point for the tgctl CLI, a command-line
// companion for driving a bot's API surface by hand.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tgwire/tgwire/httpapi"
	"github.com/tgwire/tgwire/internal/config"
	"github.com/tgwire/tgwire/telegram"
)

// Set by goreleaser ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const requestTimeout = 90 * time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tgctl",
		Short:         "Drive the Telegram Bot API from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("token", "", "Bot token (or set TGWIRE_TOKEN)")
	root.PersistentFlags().String("api-url", "", "Bot API base URL override")
	root.PersistentFlags().StringP("config", "c", "", "Path to configuration file")

	root.AddCommand(versionCmd(), meCmd(), sendCmd(), updatesCmd(), webhookCmd(), commandsCmd())
	return root
}

// newClient resolves the token from the flag, the TGWIRE_TOKEN
// environment variable, or the config file, in that order.
func newClient(cmd *cobra.Command) (*httpapi.Client, error) {
	token, _ := cmd.Flags().GetString("token")
	apiURL, _ := cmd.Flags().GetString("api-url")

	if token == "" {
		token = os.Getenv("TGWIRE_TOKEN")
	}
	if token == "" {
		if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return nil, err
			}
			token = cfg.Token
			if apiURL == "" {
				apiURL = cfg.APIURL
			}
		}
	}
	if token == "" {
		return nil, errors.New("no bot token: pass --token, set TGWIRE_TOKEN or use --config")
	}

	var opts []httpapi.Option
	if apiURL != "" {
		opts = append(opts, httpapi.WithBaseURL(apiURL))
	}
	return httpapi.New(token, opts...), nil
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("tgctl %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func meCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the bot account behind the token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext()
			defer cancel()

			me, err := telegram.Send[telegram.User](ctx, client, telegram.GetMe{})
			if err != nil {
				return err
			}
			fmt.Printf("%s %s (id %d)\n", color.GreenString("@%s", me.Username), me.FullName(), me.ID)
			return nil
		},
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
