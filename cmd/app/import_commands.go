package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/taxledger/cmd/app/commands"
)

func getImportCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "import-csv",
			Usage: "Import bank transactions from a CSV file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "file",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Path to the CSV file",
				},
				&cli.BoolFlag{
					Name:    "dry-run",
					Aliases: []string{"n"},
					Value:   false,
					Usage:   "Classify the rows without creating any entries",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				importUseCase, err := container.ImportUseCase()
				if err != nil {
					return err
				}

				return commands.RunImportCSV(
					ctx,
					importUseCase,
					container.Logger(),
					os.Stdout,
					cmd.String("file"),
					cmd.Bool("dry-run"),
					cmd.String("format"),
				)
			},
		},
	}
}
