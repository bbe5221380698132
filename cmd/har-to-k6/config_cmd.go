package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"har-to-k6/internal/config"
)

func newConfigCmd() *cobra.Command {
	var settings settingsFlags

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := settings.load(cmd)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid settings: %w", err)
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	settings.register(cmd)

	return cmd
}
