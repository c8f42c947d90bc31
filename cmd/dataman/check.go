package main

import (
	"fmt"

	"github.com/norrisa/dataman/internal/cli"
	"github.com/norrisa/dataman/internal/config"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   `check "2 + 2 = 4"`,
		Short: "Check a single problem and exit non-zero unless it is correct",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			return cli.CheckOnce(cfg, cmd.OutOrStdout(), args[0])
		},
	}

	return command
}
