package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/fieldcrypt/cmd/app/commands"
	"github.com/allisson/fieldcrypt/internal/app"
	"github.com/allisson/fieldcrypt/internal/config"
)

func getCodecCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "encrypt",
			Usage:     "Encrypt a field value with the configured key",
			ArgsUsage: "<value>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "type",
					Aliases: []string{"t"},
					Value:   "text",
					Usage:   "Value type: text, bool, date, time, or datetime",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				if cmd.Args().Len() != 1 {
					return fmt.Errorf("expected exactly one argument: <value>")
				}

				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				cipher, err := container.Codec()
				if err != nil {
					return err
				}

				return commands.RunEncrypt(
					cipher,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("type"),
					cmd.Args().First(),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "decrypt",
			Usage:     "Decrypt a token with the configured key",
			ArgsUsage: "<token>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "type",
					Aliases: []string{"t"},
					Value:   "text",
					Usage:   "Value type: text, bool, date, time, or datetime",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				if cmd.Args().Len() != 1 {
					return fmt.Errorf("expected exactly one argument: <token>")
				}

				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				cipher, err := container.Codec()
				if err != nil {
					return err
				}

				return commands.RunDecrypt(
					cipher,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("type"),
					cmd.Args().First(),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "inspect",
			Usage:     "Show the verified creation timestamp of a token",
			ArgsUsage: "<token>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				if cmd.Args().Len() != 1 {
					return fmt.Errorf("expected exactly one argument: <token>")
				}

				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				cipher, err := container.Codec()
				if err != nil {
					return err
				}

				return commands.RunInspect(
					cipher,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.Args().First(),
					cmd.String("format"),
				)
			},
		},
	}
}
