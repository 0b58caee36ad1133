package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/rewind/arith"
	"github.com/dhamidi/rewind/config"
	"github.com/dhamidi/rewind/format"
	"github.com/dhamidi/rewind/text"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var maxDepth int
	var configPath string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an arithmetic expression and print its value tree",
		Long: `Parse reads one arithmetic expression from a file, or from stdin when
no file (or "-") is given, and prints the resulting value tree. Trailing
newlines are trimmed before parsing; any other input left behind by the
expression is reported as a warning.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				outputFormat = cfg.Format
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
			tree, err := arith.Parse(cur)
			if err != nil {
				printSnippet(cur, err)
				return fmt.Errorf("parse expression: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(tree); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println()

			if cur.Pos() < cur.Len() {
				color.New(color.FgYellow).Fprintf(os.Stderr,
					"warning: stopped at offset %d of %d, trailing input not parsed\n",
					cur.Pos(), cur.Len())
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "recursion budget (0 means unbounded; some inputs then never return)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultFile+")")

	return cmd
}

// readInput reads the expression from the named file, or from stdin when
// no name (or "-") is given. Trailing newlines are trimmed so that files
// and shell pipelines parse like their single-line contents.
func readInput(args []string) ([]byte, error) {
	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	}
	return bytes.TrimRight(data, "\r\n"), nil
}

func printSnippet(cur *text.Cursor, err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, format.ErrorSnippet(cur, err))
}
