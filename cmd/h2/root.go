package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/h2-lang/h2/internal/config"
	"github.com/h2-lang/h2/parser"
	"github.com/h2-lang/h2/parser/printer"
	"github.com/h2-lang/h2/parser/source"
)

// Version information (set at build time).
var Version = "0.1.0"

// errDiagnostics is returned when the input parsed with recovered errors.
var errDiagnostics = errors.New("input has syntax errors")

type configKey struct{}

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "h2 [files]",
		Short: "Parse h2 mission scripts",
		Long: `h2 parses mission scripts and prints their syntax tree.

Files are concatenated in order and parsed as one text; "-" reads the
standard input. Without files a terminal starts an interactive session,
otherwise the standard input is parsed.`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			if cfg.Verbose > 0 && cfg.File != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", cfg.File)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd.Context())
			if len(args) == 0 && isTerminal(cmd.InOrStdin()) {
				return runREPL(cmd, cfg)
			}
			in, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runParse(cmd, cfg, in)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./h2.yaml)")
	flags.BoolP("debug", "d", false, "debug output")
	flags.CountP("verbose", "v", "verbose output, repeat for more")
	flags.Bool("trace", false, "write the parser trace to stderr")
	flags.Bool("comments", false, "collect and print comments")
	flags.Bool("positions", false, "print node positions")
	flags.StringP("output", "o", "", "output format (tree|text)")
	flags.String("log-format", "", "log format (text|json)")
	flags.String("prompt", "", "interactive prompt")
	flags.String("history", "", "interactive history file")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTree, config.OutputText}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.LogFormatText, config.LogFormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
		return err
	})
	return rootCmd
}

func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		Output:    config.OutputTree,
		LogFormat: config.LogFormatText,
		Prompt:    config.DefaultPrompt,
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newLogger returns the logger of the parser components. Logging is off
// without debug or verbose output.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch {
	case cfg.Debug:
		level = slog.LevelDebug
	case cfg.Verbose > 1:
		level = slog.LevelInfo
	case cfg.Verbose > 0:
		level = slog.LevelWarn
	default:
		return slog.New(slog.DiscardHandler)
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func options(cfg *config.Config, stderr io.Writer) (*parser.ParserOptions, *parser.ScannerOptions) {
	log := newLogger(cfg, stderr)
	po := &parser.ParserOptions{Logger: log}
	if cfg.Trace {
		po.Trace = stderr
	}
	if cfg.Comments {
		po.Mode.Set(parser.ParseComments)
	}
	return po, &parser.ScannerOptions{Logger: log}
}

// runParse parses in and prints the tree. Diagnostics go to stderr; a fatal
// error or any diagnostic fails the command.
func runParse(cmd *cobra.Command, cfg *config.Config, in *input) error {
	var (
		stdout = cmd.OutOrStdout()
		stderr = cmd.ErrOrStderr()
		h      = &ErrorHumanizing{Trace: cfg.Verbose > 0 || cfg.Debug}
	)

	po, so := options(cfg, stderr)
	p := parser.NewParserWithOptions(source.NewFile(in.Name, in.Data), po, so)
	file, err := p.ParseFile()
	if err != nil {
		h.Humanize(stderr, p.Errors)
		return err
	}

	if err := printFile(stdout, cfg, file); err != nil {
		return err
	}
	h.Diagnostics(stderr, file.Diagnostics)

	if cfg.Verbose > 0 || cfg.Debug {
		toks, _ := parser.Tokenize(string(in.Data), in.Name, nil)
		fmt.Fprintln(stderr, summary{
			Size:        len(in.Data),
			Files:       in.Files,
			Tokens:      len(toks),
			Statements:  len(file.Stmts),
			Diagnostics: len(file.Diagnostics),
		})
	}

	if len(file.Diagnostics) > 0 {
		return errDiagnostics
	}
	return nil
}

func printFile(w io.Writer, cfg *config.Config, file *parser.File) error {
	switch cfg.Output {
	case config.OutputText:
		if s := file.String(); s != "" {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
	default:
		c := &printer.Config{Positions: cfg.Positions}
		name := file.InputFile.Name
		if err := c.Fprint(w, name, file.InputFile, file.Stmts.Nodes()...); err != nil {
			return err
		}
	}

	if cfg.Comments {
		for _, c := range file.Comments {
			pos := file.InputFile.Position(c.Pos())
			if _, err := fmt.Fprintf(w, "comment %d:%d %s\n", pos.Line, pos.Column, c.Content()); err != nil {
				return err
			}
		}
	}
	return nil
}
