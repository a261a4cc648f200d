package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tgwire/tgwire/telegram"
)

func commandsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "Manage the bot's command menu",
	}
	cmd.AddCommand(commandsSetCmd(), commandsGetCmd(), commandsClearCmd())
	return cmd
}

func commandsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <command=description>...",
		Short: "Replace the bot's command list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var commands []telegram.BotCommand
			for _, arg := range args {
				name, desc, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("expected command=description, got %q", arg)
				}
				commands = append(commands, telegram.BotCommand{
					Command:     strings.TrimPrefix(name, "/"),
					Description: desc,
				})
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext()
			defer cancel()
			if _, err := telegram.Send[bool](ctx, client, telegram.SetMyCommands{Commands: commands}); err != nil {
				return err
			}
			fmt.Println(color.GreenString("set %d commands", len(commands)))
			return nil
		},
	}
}

func commandsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the bot's current command list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext()
			defer cancel()
			commands, err := telegram.Send[[]telegram.BotCommand](ctx, client, telegram.GetMyCommands{})
			if err != nil {
				return err
			}
			if len(commands) == 0 {
				fmt.Println("no commands set")
				return nil
			}
			for _, c := range commands {
				fmt.Printf("/%s - %s\n", c.Command, c.Description)
			}
			return nil
		},
	}
}

func commandsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the bot's command list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := requestContext()
			defer cancel()
			if _, err := telegram.Send[bool](ctx, client, telegram.DeleteMyCommands{}); err != nil {
				return err
			}
			fmt.Println(color.GreenString("commands cleared"))
			return nil
		},
	}
}
