package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/h2-lang/h2/parser"
	"github.com/h2-lang/h2/parser/source"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [files]",
		Short: "Print the tokens of the input",
		Long: `Print one line per token with its type and value. Bad characters are
reported on stderr and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd.Context())
			in, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			_, so := options(cfg, cmd.ErrOrStderr())

			var (
				file = source.NewFile(in.Name, in.Data)
				s    = parser.NewScanner(file, so)
				errs parser.ErrorList
				out  = cmd.OutOrStdout()
			)
			s.ErrorHandler(func(e *parser.Error) {
				errs = append(errs, e)
			})

			for tok := range s.Tokens() {
				if cfg.Positions {
					pos := file.Position(tok.Pos)
					fmt.Fprintf(out, "%d:%d: ", pos.Line, pos.Column)
				}
				fmt.Fprintf(out, "type=%s, value=%s\n", tok.Token, tok.ValueString())
			}

			(&ErrorHumanizing{Trace: cfg.Verbose > 0 || cfg.Debug}).Diagnostics(cmd.ErrOrStderr(), errs)
			if len(errs) > 0 {
				return errDiagnostics
			}
			return nil
		},
	}
}
