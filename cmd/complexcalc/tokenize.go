package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/graeme-hill/complexcalc-go/history"
	"github.com/graeme-hill/complexcalc-go/lib"
)

func newTokenizeCmd(a *app) *cobra.Command {
	var values, asJSON, record bool

	cmd := &cobra.Command{
		Use:   "tokenize <expr>...",
		Short: "Print the tokens of an expression",
		Example: `  complexcalc tokenize "(6+2i) * y - 25 / (1+i**2)"
  complexcalc tokenize --values -- -i + 3-4i`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			tokens, scanErr := lib.Tokenize(expr)
			a.log.Debug("tokenized",
				zap.String("expr", expr),
				zap.Int("tokens", len(tokens)),
				zap.Error(scanErr),
			)

			if !cmd.Flags().Changed("record") {
				record = a.cfg.History.Enabled
			}
			if record {
				if err := a.record(cmd.Context(), expr, tokens, scanErr); err != nil {
					return err
				}
			}

			if scanErr != nil {
				return scanErr
			}

			if asJSON {
				encoded, err := sonic.MarshalString(tokens)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), encoded)
				return err
			}

			if !cmd.Flags().Changed("values") {
				values = a.cfg.Display.Values
			}
			return printTokens(cmd.OutOrStdout(), lib.NewTokenReader(tokens), values)
		},
	}

	cmd.Flags().BoolVar(&values, "values", false, "print the value of every number token")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print tokens as a JSON array")
	cmd.Flags().BoolVar(&record, "record", false, "store the expression in the history database")
	return cmd
}

func printTokens(out io.Writer, reader *lib.TokenReader, values bool) error {
	for {
		tok, done := reader.Next()
		if done {
			return nil
		}

		line := tok.String()
		if values && tok.Type == lib.TokenTypeComplexNumber {
			v, err := tok.Value()
			if err != nil {
				line += "  (" + err.Error() + ")"
			} else {
				line += " = " + v.String()
			}
		}

		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
}

func (a *app) record(ctx context.Context, expr string, tokens []lib.Token, scanErr error) error {
	store, err := history.Open(ctx, a.cfg.History.DSN, a.log)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	id, err := store.Record(ctx, expr, tokens, scanErr)
	if err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	a.log.Info("recorded", zap.Int64("id", id))
	return nil
}
