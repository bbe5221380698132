package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"har-to-k6/internal/gen"
	"har-to-k6/internal/logging"
)

func newValidateCmd() *cobra.Command {
	var settings settingsFlags

	cmd := &cobra.Command{
		Use:   "validate <archive>",
		Short: "Check every entry of an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.load(cmd)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid settings: %w", err)
			}

			logCfg := cfg.Logging()
			logCfg.Output = cmd.ErrOrStderr()

			doc, err := loadArchive(args[0], cfg)
			if err != nil {
				return err
			}

			diags, err := gen.NewGenerator(gen.FromConfig(cfg), logging.New(logCfg)).Validate(cmd.Context(), doc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range diags.Errors {
				fmt.Fprintln(out, d.String())
			}

			if diags.HasErrors() {
				return fmt.Errorf("%d of %d entries are invalid", len(diags.Errors), len(doc.Entries))
			}

			fmt.Fprintf(out, "%d entries are valid\n", len(doc.Entries))

			return nil
		},
	}

	settings.register(cmd)

	return cmd
}
