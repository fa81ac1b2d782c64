// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package parser

import (
	"fmt"
	"sort"

	"github.com/h2-lang/h2/parser/source"
	"github.com/h2-lang/h2/token"
)

// ErrorKind classifies a diagnostic.
type ErrorKind uint8

const (
	// LexicalError is reported for a character that starts no token.
	LexicalError ErrorKind = iota + 1
	// LiteralDecodeError is reported for a string literal whose escapes
	// cannot be decoded.
	LiteralDecodeError
	// RecoverableSyntaxError is reported for a construct replaced by an
	// error node.
	RecoverableSyntaxError
	// FatalSyntaxError aborts the parse.
	FatalSyntaxError
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical"
	case LiteralDecodeError:
		return "decode"
	case RecoverableSyntaxError:
		return "recoverable"
	case FatalSyntaxError:
		return "fatal"
	}
	return "unknown"
}

// Construct names the statement or expression a recoverable error was
// found in.
type Construct string

const (
	ConstructAssignment Construct = "assignment"
	ConstructPrint      Construct = "print"
	ConstructOperator   Construct = "operator"
)

func (c Construct) article() string {
	switch c[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + string(c)
	}
	return "a " + string(c)
}

func badCharMessage(pos source.FilePos, ch rune) string {
	return fmt.Sprintf("Line %d: Bad character '%c' at char %d", pos.Line, ch, pos.Column)
}

func decodeErrorMessage(pos source.FilePos, reason, span string) string {
	return fmt.Sprintf("String decode error: %s on line %d, char %d. Context: %s",
		reason, pos.Line, pos.Column, span)
}

func recoverableMessage(c Construct, pos source.FilePos, tok Token) string {
	return fmt.Sprintf("There was %s error at line %d, char %d. Token %s(%s)",
		c.article(), pos.Line, pos.Column, tok.Token, tok.ValueString())
}

func fatalMessage(pos source.FilePos, tok Token) string {
	if tok.Token == token.EOF {
		return "Syntax error at EOF"
	}
	return fmt.Sprintf("Syntax error at line %d. Token %s(%s)",
		pos.Line, tok.Token, tok.ValueString())
}

// Error represents a parser error.
type Error struct {
	Kind ErrorKind
	Pos  source.FilePos
	Msg  string
}

func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') && e.Pos.File != nil {
			_, _ = fmt.Fprint(f, e.Error())
			e.Pos.File.TraceLines(f, e.Pos.Line, e.Pos.Column)
			return
		}
		fallthrough
	default:
		_, _ = f.Write([]byte(e.Error()))
	}
}

func (e *Error) Error() string {
	return e.Msg
}

// ErrorList is a collection of parser errors.
type ErrorList []*Error

// Add adds a new parser error to the collection.
func (p *ErrorList) Add(kind ErrorKind, pos source.FilePos, msg string) *Error {
	e := &Error{Kind: kind, Pos: pos, Msg: msg}
	*p = append(*p, e)
	return e
}

// Len returns the number of elements in the collection.
func (p ErrorList) Len() int {
	return len(p)
}

func (p ErrorList) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}

func (p ErrorList) Less(i, j int) bool {
	e := &p[i].Pos
	f := &p[j].Pos

	if e.Offset != f.Offset {
		return e.Offset < f.Offset
	}
	return p[i].Kind < p[j].Kind
}

// Sort sorts the collection by source position.
func (p ErrorList) Sort() {
	sort.Stable(p)
}

// Kind returns the errors of the given kind.
func (p ErrorList) Kind(kind ErrorKind) (l ErrorList) {
	for _, e := range p {
		if e.Kind == kind {
			l = append(l, e)
		}
	}
	return
}

// Messages returns the message of every error.
func (p ErrorList) Messages() []string {
	msgs := make([]string, len(p))
	for i, e := range p {
		msgs[i] = e.Msg
	}
	return msgs
}

func (p ErrorList) Format(f fmt.State, verb rune) {
	l := len(p)
	switch l {
	case 0:
		_, _ = f.Write([]byte("no errors"))
	case 1:
		p[0].Format(f, verb)
	default:
		p[0].Format(f, verb)
		_, _ = fmt.Fprintf(f, " (and %d more errors)", l-1)
	}
}

func (p ErrorList) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", p[0], len(p)-1)
}

// Err returns an error.
func (p ErrorList) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}
