package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/rewind/arith"
	"github.com/dhamidi/rewind/config"
	"github.com/dhamidi/rewind/text"
)

func newCheckCmd() *cobra.Command {
	var maxDepth int
	var configPath string

	cmd := &cobra.Command{
		Use:          "check [file]",
		Short:        "Check that the input is one complete expression",
		Long:         "Check parses like parse does but prints nothing on success.\nIt exits nonzero when parsing fails or leaves input behind.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max-depth") {
				maxDepth = cfg.MaxDepth
			}
			applyColorMode(cfg.Color)

			input, err := readInput(args)
			if err != nil {
				return err
			}

			cur := text.New(input, text.WithMaxDepth(maxDepth))
			if _, err := arith.Parse(cur); err != nil {
				printSnippet(cur, err)
				return fmt.Errorf("check: %w", err)
			}
			if cur.Pos() < cur.Len() {
				line, col := text.LineCol(input, cur.Pos())
				return fmt.Errorf("check: %d:%d: trailing input after the expression", line, col)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "recursion budget (0 means unbounded; some inputs then never return)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultFile+")")

	return cmd
}
