package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/h2-lang/h2/internal/config"
	"github.com/h2-lang/h2/parser"
	"github.com/h2-lang/h2/parser/source"
)

// prompter reads one line of input after writing a prompt.
type prompter interface {
	Prompt(prompt string) (string, error)
}

func runREPL(cmd *cobra.Command, cfg *config.Config) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(cfg.History); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	done := make(chan struct{})
	defer close(done)
	go watchSignals(sigc, done, func() {
		ln.Close()
		os.Exit(130)
	})

	repl(ln, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), ln.AppendHistory)
	return nil
}

// watchSignals calls onSignal for the first signal received on sigc. It
// returns without calling it once done is closed.
func watchSignals(sigc <-chan os.Signal, done <-chan struct{}, onSignal func()) {
	select {
	case <-sigc:
		onSignal()
	case <-done:
	}
}

// repl parses every line read from pr as an independent input until the
// end of input or a :quit command.
func repl(pr prompter, cfg *config.Config, stdout, stderr io.Writer, history func(string)) {
	h := &ErrorHumanizing{Trace: true}
	po, so := options(cfg, stderr)

	for {
		line, err := pr.Prompt(cfg.Prompt)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, liner.ErrPromptAborted) {
				h.Humanize(stderr, err)
			}
			fmt.Fprintln(stdout)
			return
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":quit", ":q":
			return
		}
		if history != nil {
			history(line)
		}

		p := parser.NewParserWithOptions(source.NewFile(parser.MainName, []byte(line)), po, so)
		file, err := p.ParseFile()
		if err != nil {
			h.Humanize(stderr, p.Errors)
			continue
		}
		if err := printFile(stdout, cfg, file); err != nil {
			h.Humanize(stderr, err)
			return
		}
		h.Diagnostics(stderr, file.Diagnostics)
	}
}
