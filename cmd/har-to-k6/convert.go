package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"har-to-k6/internal/archive"
	"har-to-k6/internal/config"
	"har-to-k6/internal/gen"
	"har-to-k6/internal/logging"
)

func newConvertCmd() *cobra.Command {
	var (
		settings settingsFlags
		output   string
		sleep    float64
		verify   bool
		dump     bool
	)

	cmd := &cobra.Command{
		Use:   "convert <archive>",
		Short: "Convert an archive into a k6 script",
		Long: `Convert an archive into a k6 script.

The script is written to stdout unless an output path is given.

Examples:
  # Print the script
  har-to-k6 convert session.har

  # Write it, leaving out invalid entries
  har-to-k6 convert session.har -o load/script.js --on-invalid skip`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.load(cmd)
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			if fs.Changed("output") {
				cfg.Output = output
			}

			if fs.Changed("sleep") {
				cfg.Sleep = sleep
			}

			if fs.Changed("verify") {
				cfg.Verify = verify
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid settings: %w", err)
			}

			logCfg := cfg.Logging()
			logCfg.Output = cmd.ErrOrStderr()
			logger := logging.New(logCfg)

			doc, err := loadArchive(args[0], cfg)
			if err != nil {
				return err
			}

			if dump {
				dumpEntries(cmd, doc)
			}

			script, err := gen.NewGenerator(gen.FromConfig(cfg), logger).Generate(cmd.Context(), doc)
			if err != nil {
				return err
			}

			if cfg.Output == "" {
				_, err := script.WriteTo(cmd.OutOrStdout())
				return err
			}

			if err := gen.WriteScript(script, cfg.Output); err != nil {
				return err
			}

			logger.Info("wrote script", "path", cfg.Output)

			return nil
		},
	}

	settings.register(cmd)

	fs := cmd.Flags()
	fs.StringVarP(&output, "output", "o", "", "output file or directory (default stdout)")
	fs.Float64Var(&sleep, "sleep", 1, "seconds to sleep at the end of each iteration (0 disables)")
	fs.BoolVar(&verify, "verify", false, "compile the generated code before writing it")
	fs.BoolVar(&dump, "dump", false, "dump decoded entries to stderr")

	return cmd
}

func loadArchive(path string, cfg config.Config) (*archive.Document, error) {
	format, err := archive.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	return archive.LoadFile(path, format)
}

// dumpEntries writes every entry that decodes to stderr.
func dumpEntries(cmd *cobra.Command, doc *archive.Document) {
	dumper := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}

	for _, raw := range doc.Entries {
		entry, err := archive.Decode(raw)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "entry %d: %v\n", raw.Index, err)
			continue
		}

		dumper.Fdump(cmd.ErrOrStderr(), entry)
	}
}
