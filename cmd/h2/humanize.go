package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/h2-lang/h2/parser"
)

// ErrorHumanizing writes parser errors with the offending source line.
type ErrorHumanizing struct {
	// Trace adds the source line and a caret under the error column.
	Trace bool
}

func (h *ErrorHumanizing) format() string {
	if h.Trace {
		return "%+v\n"
	}
	return "%v\n"
}

// Humanize writes err to out.
func (h *ErrorHumanizing) Humanize(out io.Writer, err error) {
	var (
		list parser.ErrorList
		perr *parser.Error
	)
	switch {
	case errors.As(err, &list):
		h.Diagnostics(out, list)
	case errors.As(err, &perr):
		fmt.Fprintf(out, h.format(), perr)
	default:
		fmt.Fprintf(out, "ERROR: %v\n", err)
	}
}

// Diagnostics writes every error of list, one per line.
func (h *ErrorHumanizing) Diagnostics(out io.Writer, list parser.ErrorList) {
	for _, e := range list {
		fmt.Fprintf(out, h.format(), e)
	}
}

// summary describes a parse run.
type summary struct {
	Size        int
	Files       int
	Tokens      int
	Statements  int
	Diagnostics int
}

func (s summary) String() string {
	return fmt.Sprintf("%s in %s, %s tokens, %s statements, %s diagnostics",
		humanize.Bytes(uint64(s.Size)),
		pluralFiles(s.Files),
		humanize.Comma(int64(s.Tokens)),
		humanize.Comma(int64(s.Statements)),
		humanize.Comma(int64(s.Diagnostics)),
	)
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return humanize.Comma(int64(n)) + " files"
}
