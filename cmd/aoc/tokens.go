package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aoclive/aoc"
	"github.com/aoclive/aoc/internal/errors"
	"github.com/aoclive/aoc/lex"
)

var tokensSample int

var tokensCmd = &cobra.Command{
	Use:   "tokens <day> [file]",
	Short: "Show how a day's grammar splits its input",
	Long: `Print the spans a day's grammar produces, one per line with its
position. Reads file when given, otherwise one of the day's examples.
Filler is not shown.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().IntVar(&tokensSample, "sample", 1, "Which example to lex when no file is given")
}

func runTokens(cmd *cobra.Command, args []string) error {
	d, err := dayArg(args[:1])
	if err != nil {
		return err
	}
	if d.Rules == nil {
		return errors.Newf("day %d has no grammar", d.Number)
	}

	var input []byte
	if len(args) == 2 {
		if input, err = os.ReadFile(args[1]); err != nil {
			return errors.Wrap(err, "reading input")
		}
	} else {
		if tokensSample < 1 || tokensSample > len(d.Samples) {
			return errors.Newf("day %d has %d examples, not %d", d.Number, len(d.Samples), tokensSample)
		}
		input = []byte(d.Samples[tokensSample-1].Input)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
	defer w.Flush()
	for s, err := range d.Rules.Lexer(input).All() {
		if err != nil {
			w.Flush()
			showError(cmd.ErrOrStderr(), input, err)
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%q\n", s.Pos, s.Kind, s.Text)
	}
	return nil
}

// showError prints the input line a parse error points into, with a caret
// under the offending column.
func showError(w io.Writer, input []byte, err error) {
	var pe *lex.ParseError
	if !errors.As(err, &pe) {
		return
	}
	for n, line := range aoc.Lines(input) {
		if n == pe.Pos.Line {
			fmt.Fprintf(w, "%s\n%*s\n", line, pe.Pos.Column, "^")
			return
		}
	}
}
