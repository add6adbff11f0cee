package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/taxledger/cmd/app/commands"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-encryption-key",
			Usage: "Generate a new FIELD_ENCRYPTION_KEY for client data at rest",
			Flags: []cli.Flag{
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateEncryptionKey(os.Stdout, cmd.String("format"))
			},
		},
		{
			Name:  "encrypt-legacy-clients",
			Usage: "Encrypt client fields that were stored before encryption was enabled",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "batch-size",
					Aliases: []string{"b"},
					Value:   100,
					Usage:   "Number of clients rewritten per transaction",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				clientUseCase, err := container.ClientUseCase()
				if err != nil {
					return err
				}

				return commands.RunEncryptLegacyClients(
					ctx,
					clientUseCase,
					container.Logger(),
					os.Stdout,
					int(cmd.Int("batch-size")),
					cmd.String("format"),
				)
			},
		},
	}
}
