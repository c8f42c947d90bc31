package main

import (
	"context"
	"fmt"
	"os"

	"github.com/norrisa/dataman/internal/cli"
	"github.com/norrisa/dataman/internal/config"
	"github.com/spf13/cobra"
)

func newMenuCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive Dataman menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			menuCLI := cli.NewMenuCLI(cfg, os.Stdin, os.Stdout)
			fmt.Println("Welcome to Dataman!")
			fmt.Println()
			return menuCLI.Run(context.Background(), menuCLI)
		},
	}

	return command
}
