package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"diecast/internal/cli"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the local registry database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if backend := viper.GetString("registry.backend"); backend != "" && backend != "sqlite" {
				return fmt.Errorf("migrate only applies to the sqlite backend, not %q", backend)
			}

			// openRegistry migrates on open for the sqlite backend.
			reg, err := openRegistry(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = reg.Close() }()

			fmt.Println(cli.FormatSuccess("Local registry schema is up to date"))
			return nil
		},
	}
}
