// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DecodeError describes an escape sequence of a string literal that cannot
// be decoded.
type DecodeError struct {
	Offset   int    // byte offset of the backslash within the literal
	Sequence string // offending escape sequence
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid escape sequence %s at position %d", e.Sequence, e.Offset)
}

// Unquote decodes a double-quoted string literal. Escapes follow the Go
// rules; raw newlines are kept and a backslash followed by a line ending
// joins the lines.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return "", strconv.ErrSyntax
	}
	in := lit[1 : len(lit)-1]

	// Handle quoted strings without any escape sequences.
	if !strings.Contains(in, `\`) {
		return in, nil
	}

	buf := make([]byte, 0, 3*len(in)/2) // try to avoid more allocations
	for len(in) > 0 {
		if in[0] == '\\' && len(in) > 1 {
			// line continuation
			switch {
			case in[1] == '\n':
				in = in[2:]
				continue
			case in[1] == '\r' && len(in) > 2 && in[2] == '\n':
				in = in[3:]
				continue
			}
		}

		r, multibyte, rem, err := strconv.UnquoteChar(in, '"')
		if err != nil {
			return "", &DecodeError{
				Offset:   len(lit) - 1 - len(in),
				Sequence: escapeSequence(in),
			}
		}
		in = rem

		if r < utf8.RuneSelf || !multibyte {
			buf = append(buf, byte(r))
		} else {
			buf = utf8.AppendRune(buf, r)
		}
	}
	return string(buf), nil
}

// escapeSequence returns the backslash and the character following it.
func escapeSequence(in string) string {
	if len(in) < 2 {
		return in
	}
	_, w := utf8.DecodeRuneInString(in[1:])
	return in[:1+w]
}
