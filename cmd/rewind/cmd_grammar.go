package main

import (
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/rewind/config"
	"github.com/dhamidi/rewind/ebnfbind"
	"github.com/dhamidi/rewind/format"
	"github.com/dhamidi/rewind/text"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newGrammarCheckCmd())
	cmd.AddCommand(newGrammarRunCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			grammar, err := ebnf.Parse(filename, f)
			if err != nil {
				printErrors(err)
				return err
			}

			if startProduction == "" {
				return nil
			}
			if err := ebnf.Verify(grammar, startProduction); err != nil {
				printErrors(err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newGrammarRunCmd() *cobra.Command {
	var startProduction string
	var outputFormat string
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "run <grammar-file> [input-file]",
		Short: "Compile an EBNF grammar and parse input with it",
		Long: `Run compiles the grammar file into combinators and parses the input,
read from a file or stdin, with the production named by --start. The
compiled parsers are scannerless and try alternatives in source order.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsers, err := ebnfbind.Load(args[0])
			if err != nil {
				printErrors(err)
				return err
			}

			parser, ok := parsers[startProduction]
			if !ok {
				err := fmt.Errorf("grammar has no production %q", startProduction)
				printErrors(err)
				return err
			}

			input, err := readInput(args[1:])
			if err != nil {
				printErrors(err)
				return err
			}

			cur := text.New(input, text.WithMaxDepth(maxDepth))
			tree, err := parser.Parse(cur)
			if err != nil {
				printSnippet(cur, err)
				return err
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				err := fmt.Errorf("unknown format: %s", outputFormat)
				printErrors(err)
				return err
			}
			if err := encoder.Encode(tree); err != nil {
				printErrors(err)
				return err
			}
			fmt.Println()

			if cur.Pos() < cur.Len() {
				fmt.Fprintf(os.Stderr, "warning: stopped at offset %d of %d\n", cur.Pos(), cur.Len())
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "production to parse with")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", config.Default().MaxDepth, "recursion budget (0 means unbounded)")
	cmd.MarkFlagRequired("start")

	return cmd
}

func printErrors(err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Println(v.Index(i).Interface())
		}
	} else {
		fmt.Println(err)
	}
}
