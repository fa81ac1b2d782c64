// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package parser

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/h2-lang/h2/parser/source"
	"github.com/h2-lang/h2/runehelper"
	"github.com/h2-lang/h2/token"
)

// ScannerErrorHandler receives lexical and literal decode errors.
type ScannerErrorHandler func(e *Error)

type ScannerOptions struct {
	Mode   ScanMode
	Logger *slog.Logger
}

// Scanner reads the h2 source text and produces tokens on demand. A
// scanner is used by a single goroutine; independent scanners may run
// concurrently.
type Scanner struct {
	source.Reader
	mode         ScanMode
	log          *slog.Logger
	line         int
	errorHandler []ScannerErrorHandler
	errorCount   int
	eof          *Token
}

// NewScanner creates a Scanner.
func NewScanner(
	file *source.File,
	opts *ScannerOptions,
) *Scanner {
	if opts == nil {
		opts = &ScannerOptions{}
	}

	s := &Scanner{
		Reader: *source.NewReader(file),
		mode:   opts.Mode,
		log:    componentLogger(opts.Logger, "scanner"),
		line:   1,
	}
	s.Start()
	return s
}

func componentLogger(l *slog.Logger, component string) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.With("component", component)
}

func (s *Scanner) ErrorHandler(h ...ScannerErrorHandler) {
	s.errorHandler = append(s.errorHandler, h...)
}

// ErrorCount returns the number of errors.
func (s *Scanner) ErrorCount() int {
	return s.errorCount
}

func (s *Scanner) SourceFile() *source.File {
	return s.File
}

// Line returns the current line number, starting at 1.
func (s *Scanner) Line() int {
	return s.line
}

// Scan returns the next token. At the end of input it returns EOF on every
// call.
func (s *Scanner) Scan() (t Token) {
	if s.eof != nil {
		return *s.eof
	}

	var ok bool
	for !ok {
		t, ok = s.ScanNow()
	}
	if t.Token == token.EOF {
		s.eof = &t
	}
	return
}

// Tokens returns the remaining tokens as a sequence ending before EOF.
func (s *Scanner) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			t := s.Scan()
			if t.Token == token.EOF || !yield(t) {
				return
			}
		}
	}
}

// List returns all remaining tokens, EOF excluded.
func (s *Scanner) List() []Token {
	return slices.Collect(s.Tokens())
}

func (s *Scanner) skipWhitespace() {
	for runehelper.IsSingleSpace(s.Ch) || s.Ch == '\r' && s.Peek() == '\n' {
		s.Next()
	}
}

// ScanNow reads one lexeme. It reports ok false when the lexeme yields no
// token: a bad character, or a comment while comments are skipped.
func (s *Scanner) ScanNow() (t Token, ok bool) {
	s.skipWhitespace()
	t.Pos = s.File.FileSetPos(s.Offset)
	t.Line = s.line

	switch ch := s.Ch; {
	case ch == -1:
		t.Token = token.EOF
		return t, true
	case runehelper.IsIdentifierLetter(ch):
		t.Literal = s.ScanIdentifier()
		t.Token = token.Lookup(t.Literal)
		switch t.Token {
		case token.Ident:
			t.Value = t.Literal
		case token.Bool:
			t.Value = t.Literal == token.TrueLiteral
		}
	case runehelper.IsDigit(ch):
		t.Token = token.Number
		t.Literal = s.ScanNumber()
		// a run of digits always decodes
		t.Value, _ = decimal.NewFromString(t.Literal)
	case ch == '"':
		offs := s.Offset
		lit, terminated := s.ScanString()
		if !terminated {
			s.badChar(offs, ch)
			return t, false
		}
		t.Token = token.String
		t.Literal = lit
		t.Value = s.decodeString(t.Pos, lit)
	default:
		offs := s.Offset
		s.Next() // always make progress
		switch ch {
		case '\n':
			t.Token = token.EndLine
			t.Literal = "\n"
			s.line++
			s.File.AddLine(s.Offset)
		case '#':
			t.Token = token.Comment
			t.Literal = s.ScanComment(offs)
			t.Value = t.Literal
			if s.mode.Has(SkipComments) {
				return t, false
			}
		case '+':
			t.Token = token.Add
		case '-':
			t.Token = token.Sub
		case '*':
			t.Token = token.Mul
		case '/':
			t.Token = token.Quo
		case '(':
			t.Token = token.LParen
		case ')':
			t.Token = token.RParen
		case '=':
			t.Token = s.Switch2(token.Assign, token.Equal)
		case '>':
			t.Token = s.Switch2(token.Greater, token.GreaterEq)
		case '<':
			t.Token = s.Switch2(token.Less, token.LessEq)
		default:
			s.badChar(offs, ch)
			return t, false
		}
		if t.Literal == "" {
			t.Literal = t.Token.Symbol()
		}
	}
	return t, true
}

// ScanComment reads a comment up to, not including, the line end. The
// initial '#' is already consumed.
func (s *Scanner) ScanComment(offs int) string {
	for s.Ch != '\n' && s.Ch >= 0 {
		if s.Ch == '\r' && s.Peek() == '\n' {
			break
		}
		s.Next()
	}
	return string(s.Span(offs))
}

func (s *Scanner) ScanNumber() string {
	offs := s.Offset
	for runehelper.IsDigit(s.Ch) {
		s.Next()
	}
	return string(s.Span(offs))
}

func (s *Scanner) ScanIdentifier() string {
	offs := s.Offset
	for runehelper.IsIdentifier(s.Ch) {
		s.Next()
	}
	return string(s.Span(offs))
}

// ScanString reads a string literal starting at the current '"'. If the
// literal is not terminated the reader does not move.
func (s *Scanner) ScanString() (lit string, terminated bool) {
	offs := s.Offset
	end := s.NextPosOf('"')
	if end < 0 {
		return "", false
	}
	s.MoveTo(end + 1)
	return string(s.Span(offs)), true
}

// Switch2 returns tok1 and consumes the current character if it is '=',
// tok0 otherwise.
func (s *Scanner) Switch2(tok0, tok1 token.Token) token.Token {
	if s.Ch == '=' {
		s.Next()
		return tok1
	}
	return tok0
}

func (s *Scanner) decodeString(pos source.Pos, lit string) any {
	v, err := Unquote(lit)
	if err == nil {
		return v
	}
	filePos := s.File.Position(pos)
	s.error(LiteralDecodeError, filePos, decodeErrorMessage(filePos, err.Error(), lit))
	return lit
}

func (s *Scanner) badChar(offset int, ch rune) {
	if ch == '"' {
		// unterminated string: resume right after the quote
		s.Next()
	}
	filePos := s.File.Position(s.File.FileSetPos(offset))
	s.error(LexicalError, filePos, badCharMessage(filePos, ch))
}

func (s *Scanner) error(kind ErrorKind, pos source.FilePos, msg string) {
	e := &Error{Kind: kind, Pos: pos, Msg: msg}
	s.log.Warn(msg, "kind", kind, "line", pos.Line, "column", pos.Column)
	for _, h := range s.errorHandler {
		h(e)
	}
	s.errorCount++
}
