package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/rewind/config"
	"github.com/dhamidi/rewind/langserver"
)

func newLSPCmd() *cobra.Command {
	var verbosity int
	var logFile string
	var maxDepth int
	var configPath string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the language server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max-depth") {
				maxDepth = cfg.MaxDepth
			}
			// Editors feed the server arbitrary buffers, so an unbounded
			// budget would let one self-recursive document hang every
			// request after it.
			if maxDepth <= 0 {
				return fmt.Errorf("lsp needs a positive recursion budget, got %d", maxDepth)
			}

			if verbosity > 0 {
				path := &logFile
				if logFile == "" {
					path = nil
				}
				commonlog.Configure(verbosity, path)
			}

			server, err := langserver.New(version, maxDepth)
			if err != nil {
				return err
			}
			return server.RunStdio()
		},
	}

	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "recursion budget per document (0 means use the configured value)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultFile+")")

	return cmd
}
