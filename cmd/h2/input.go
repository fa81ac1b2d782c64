package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/h2-lang/h2/parser"
)

// stdinArg reads the standard input in place of a file.
const stdinArg = "-"

// input is the text assembled from the command arguments.
type input struct {
	Name  string
	Data  []byte
	Files int
}

// readInput concatenates the files named by args in order. With no args the
// standard input is read.
func readInput(args []string, stdin io.Reader) (*input, error) {
	if len(args) == 0 {
		args = []string{stdinArg}
	}

	var (
		buf       bytes.Buffer
		stdinRead bool
	)
	for _, arg := range args {
		if arg == stdinArg {
			if stdinRead {
				continue
			}
			stdinRead = true
			if _, err := io.Copy(&buf, stdin); err != nil {
				return nil, fmt.Errorf("reading standard input: %w", err)
			}
			continue
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}

	in := &input{Name: parser.MainName, Data: buf.Bytes(), Files: len(args)}
	if len(args) == 1 && args[0] != stdinArg {
		in.Name = args[0]
	}
	return in, nil
}
