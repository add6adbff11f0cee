package main

import (
	"github.com/urfave/cli/v3"

	"github.com/allisson/taxledger/cmd/app/commands"
	"github.com/allisson/taxledger/internal/app"
	"github.com/allisson/taxledger/internal/config"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getKeyCommands()...)
	cmds = append(cmds, getImportCommands()...)
	return cmds
}

// newContainer loads and validates the configuration for one-shot commands.
func newContainer() (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return app.NewContainer(cfg), nil
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   commands.FormatText,
		Usage:   "Output format: 'text' or 'json'",
	}
}
