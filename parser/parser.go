// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package parser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/h2-lang/h2/parser/ast"
	"github.com/h2-lang/h2/parser/node"
	"github.com/h2-lang/h2/parser/source"
	"github.com/h2-lang/h2/token"
)

type bailout struct{}

// stmtFollow are the tokens that may follow a complete assignment.
var stmtFollow = map[token.Token]bool{
	token.EndLine: true,
	token.Comment: true,
	token.Ident:   true,
	token.Print:   true,
	token.Mission: true,
	token.Done:    true,
	token.EOF:     true,
}

// syntaxError is a recoverable failure travelling up to the construct that
// recovers from it.
type syntaxError struct {
	Token Token
}

func (e *syntaxError) Error() string {
	return "unexpected " + e.Token.String()
}

// Parser parses h2 source files.
type Parser struct {
	File      *source.File
	Errors    ErrorList
	Scanner   *Scanner
	Token     Token
	PrevToken Token
	Trace     bool
	TraceOut  io.Writer
	indent    int
	mode      Mode
	log       *slog.Logger
	comments  []*ast.Comment
	fatalErr  *Error
}

// NewParser creates a Parser.
func NewParser(file *source.File, trace io.Writer) *Parser {
	return NewParserWithOptions(file, &ParserOptions{Trace: trace}, nil)
}

type ParserOptions struct {
	Trace  io.Writer
	Mode   Mode
	Logger *slog.Logger
}

// NewParserWithOptions creates a Parser with parser mode flags.
func NewParserWithOptions(
	file *source.File,
	opts *ParserOptions,
	scannerOptions *ScannerOptions,
) *Parser {
	if opts == nil {
		opts = &ParserOptions{}
	}
	so := ScannerOptions{}
	if scannerOptions != nil {
		so = *scannerOptions
	}
	// comments are statements of the grammar
	so.Mode.Clear(SkipComments)
	if so.Logger == nil {
		so.Logger = opts.Logger
	}
	return NewParserWithScanner(NewScanner(file, &so), opts)
}

// NewParserWithScanner creates a Parser reading tokens from scanner.
func NewParserWithScanner(
	scanner *Scanner,
	opts *ParserOptions,
) *Parser {
	if opts == nil {
		opts = &ParserOptions{}
	}
	p := &Parser{
		Scanner:  scanner,
		File:     scanner.SourceFile(),
		Trace:    opts.Trace != nil,
		TraceOut: opts.Trace,
		mode:     opts.Mode,
		log:      componentLogger(opts.Logger, "parser"),
	}
	scanner.ErrorHandler(func(e *Error) {
		p.Errors = append(p.Errors, e)
	})
	p.Next()
	return p
}

// ParseFile reads and parses the file at pth.
func ParseFile(pth string, opts *ParserOptions, scannerOpts *ScannerOptions) (file *File, err error) {
	var script []byte
	if script, err = os.ReadFile(pth); err != nil {
		return
	}

	p := NewParserWithOptions(source.NewFile(pth, script), opts, scannerOpts)
	return p.ParseFile()
}

// ParseFile parses the source and returns an AST file unit. Diagnostics of
// recovered errors are reported in File.Diagnostics; a fatal syntax error
// is returned as *Error with a nil file.
func (p *Parser) ParseFile() (file *File, err error) {
	p.log.Debug("parse started", "file", p.File.Name, "size", p.File.Size)

	defer func() {
		if e := recover(); e != nil {
			if _, ok := e.(bailout); !ok {
				panic(e)
			}
			file, err = nil, p.fatalErr
		}

		p.Errors.Sort()
		if file != nil {
			file.Diagnostics = p.Errors
			p.log.Debug("parse finished",
				"statements", len(file.Stmts), "diagnostics", len(p.Errors))
		}
	}()

	if p.Trace {
		defer untracep(tracep(p, "File"))
	}

	stmts := p.ParseStmtList(false)

	file = &File{
		InputFile: p.File,
		Stmts:     stmts,
		Comments:  p.comments,
	}
	return
}

// ParseExpr parses a single boolean or arithmetic expression surrounded by
// optional line ends and followed by the end of input.
func (p *Parser) ParseExpr() (x node.Expr, err error) {
	defer func() {
		if e := recover(); e != nil {
			if _, ok := e.(bailout); !ok {
				panic(e)
			}
			x, err = nil, p.fatalErr
		}
		p.Errors.Sort()
	}()

	if p.Trace {
		defer untracep(tracep(p, "Expression"))
	}

	p.skipLineEnds()
	x, err = p.ParseBExpr()
	if err != nil {
		p.fatal(p.offending(err))
	}
	p.skipLineEnds()
	if p.Token.Token != token.EOF {
		p.fatal(p.Token)
	}
	return
}

func (p *Parser) ParseStmtList(inBlock bool) (list node.Stmts) {
	if p.Trace {
		defer untracep(tracep(p, "StatementList"))
	}

	for {
		switch p.Token.Token {
		case token.EOF:
			if inBlock {
				p.fatal(p.Token)
			}
			return
		case token.Done:
			if !inBlock {
				p.fatal(p.Token)
			}
			return
		case token.EndLine, token.Comment:
			p.Next()
		default:
			list = append(list, p.ParseStmt())
		}
	}
}

func (p *Parser) ParseStmt() (stmt node.Stmt) {
	if p.Trace {
		defer untracep(tracep(p, "Statement"))
	}

	switch p.Token.Token {
	case token.Ident:
		return p.ParseAssign()
	case token.Print:
		return p.ParsePrint()
	case token.Mission:
		return p.ParseMission()
	}
	p.fatal(p.Token)
	return
}

func (p *Parser) ParseAssign() *node.Assign {
	if p.Trace {
		defer untracep(tracep(p, "Assignment"))
	}

	mark := len(p.Errors)
	name := p.Token
	p.Next()
	if p.Token.Token != token.Assign {
		p.fatal(p.Token)
	}
	assignPos := p.Token.Pos
	p.Next()

	value, err := p.ParseBExpr()
	if err == nil && !stmtFollow[p.Token.Token] {
		err = p.errorAt(p.Token)
	}
	if err != nil {
		tok := p.offending(err)
		p.dropRecovered(mark)
		for !p.IsToken(token.EndLine, token.Done, token.EOF) {
			p.Next()
		}
		value = p.recovered(ConstructAssignment, tok, tok.Pos, p.Token.Pos)
	}

	return &node.Assign{
		Name:      name.Literal,
		NamePos:   name.Pos,
		AssignPos: assignPos,
		Value:     value,
	}
}

func (p *Parser) ParsePrint() *node.Print {
	if p.Trace {
		defer untracep(tracep(p, "Print"))
	}

	mark := len(p.Errors)
	s := &node.Print{PrintPos: p.Token.Pos}
	p.Next()
	s.LParen = p.Expect(token.LParen)

	arg, err := p.ParseBExpr()
	if err == nil && p.Token.Token != token.RParen {
		err = p.errorAt(p.Token)
	}
	if err != nil {
		tok := p.offending(err)
		p.dropRecovered(mark)
		switch {
		case p.skipToRParen():
			s.RParen = p.PrevToken.Pos
			s.Arg = p.recovered(ConstructPrint, tok, tok.Pos, s.RParen+1)
		case p.Token.Token == token.EOF:
			p.fatal(p.Token)
		default:
			s.Arg = p.recovered(ConstructPrint, tok, tok.Pos, p.Token.Pos)
		}
		return s
	}

	s.Arg = arg
	s.RParen = p.Expect(token.RParen)
	return s
}

func (p *Parser) ParseMission() *node.Mission {
	if p.Trace {
		defer untracep(tracep(p, "Mission"))
	}

	s := &node.Mission{MissionPos: p.Token.Pos}
	p.Next()
	p.Expect(token.LParen)
	name := p.ExpectToken(token.String)
	s.Name = &node.StringLit{
		Value:    name.Value.(string),
		ValuePos: name.Pos,
		Literal:  name.Literal,
	}
	p.Expect(token.RParen)
	p.skipLineEnds()
	s.Block = p.ParseCodeBlock()
	return s
}

func (p *Parser) ParseCodeBlock() *node.CodeBlock {
	if p.Trace {
		defer untracep(tracep(p, "CodeBlock"))
	}

	b := &node.CodeBlock{DoPos: p.Expect(token.Do)}
	b.Stmts = p.ParseStmtList(true)
	b.DonePos = p.Expect(token.Done)
	return b
}

// ParseBExpr parses an arithmetic expression optionally compared with a
// second one. A parenthesized comparison is accepted as a whole expression
// only.
func (p *Parser) ParseBExpr() (node.Expr, error) {
	if p.Trace {
		defer untracep(tracep(p, "BooleanExpression"))
	}

	x, err := p.ParseBinaryExpr(token.LowestPrec+1, true)
	if err != nil {
		return nil, err
	}
	if !p.Token.Token.IsComparison() {
		return x, nil
	}
	if isComparison(x) {
		return nil, p.errorAt(p.Token)
	}

	op, pos := p.Token.Token, p.Token.Pos
	p.Next()
	y, err := p.ParseBinaryExpr(token.LowestPrec+1, false)
	if err != nil {
		return nil, err
	}
	return &node.BinaryExpr{
		LHS:      x,
		RHS:      y,
		Token:    op,
		TokenPos: pos,
	}, nil
}

// ParseBinaryExpr parses arithmetic operators of precedence prec1 and
// above. When first is true the leftmost operand may be a parenthesized
// comparison, which then ends the expression.
func (p *Parser) ParseBinaryExpr(prec1 int, first bool) (node.Expr, error) {
	if p.Trace {
		defer untracep(tracep(p, "BinaryExpression"))
	}

	x, err := p.ParseUnaryExpr(first)
	if err != nil {
		return nil, err
	}

	for !isComparison(x) {
		op, prec := p.Token.Token, p.Token.Token.Precedence()
		if prec < prec1 {
			return x, nil
		}

		pos := p.Expect(op)

		y, err := p.ParseBinaryExpr(prec+1, false)
		if err != nil {
			return nil, err
		}

		x = &node.BinaryExpr{
			LHS:      x,
			RHS:      y,
			Token:    op,
			TokenPos: pos,
		}
	}
	return x, nil
}

func (p *Parser) ParseUnaryExpr(first bool) (node.Expr, error) {
	if p.Trace {
		defer untracep(tracep(p, "UnaryExpression"))
	}

	if prec, ok := p.Token.Token.UnaryPrecedence(); ok {
		pos, op := p.Token.Pos, p.Token.Token
		p.Next()
		x, err := p.ParseBinaryExpr(prec.Level, false)
		if err != nil {
			return nil, err
		}
		return &node.UnaryExpr{
			Token:    op,
			TokenPos: pos,
			Expr:     x,
		}, nil
	}
	return p.ParseOperand(first)
}

func (p *Parser) ParseOperand(first bool) (node.Expr, error) {
	if p.Trace {
		defer untracep(tracep(p, "Operand"))
	}

	tok := p.Token
	switch tok.Token {
	case token.Number:
		p.Next()
		return &node.NumberLit{
			Value:    tok.Value.(decimal.Decimal),
			ValuePos: tok.Pos,
			Literal:  tok.Literal,
		}, nil
	case token.Bool:
		p.Next()
		return &node.BoolLit{
			Value:    tok.Value.(bool),
			ValuePos: tok.Pos,
			Literal:  tok.Literal,
		}, nil
	case token.Ident:
		p.Next()
		return &node.Ident{
			Name:    tok.Literal,
			NamePos: tok.Pos,
		}, nil
	case token.String:
		p.Next()
		return &node.StringLit{
			Value:    tok.Value.(string),
			ValuePos: tok.Pos,
			Literal:  tok.Literal,
		}, nil
	case token.LParen:
		return p.ParseParenExpr(first)
	}
	return nil, p.errorAt(tok)
}

// ParseParenExpr parses a parenthesized expression. On failure the tokens up
// to the matching ')' are discarded and an error node is returned; the
// failure is passed to the enclosing construct when a line end, Done or the
// end of input comes first.
func (p *Parser) ParseParenExpr(first bool) (x node.Expr, err error) {
	if p.Trace {
		defer untracep(tracep(p, "ParenExpression"))
	}

	mark := len(p.Errors)
	lparen := p.Expect(token.LParen)
	if first {
		x, err = p.ParseBExpr()
	} else {
		x, err = p.ParseBinaryExpr(token.LowestPrec+1, false)
	}
	if err == nil && p.Token.Token != token.RParen {
		err = p.errorAt(p.Token)
	}
	if err != nil {
		tok := p.offending(err)
		if tok.Token == token.EOF || !p.skipToRParen() {
			return nil, err
		}
		p.dropRecovered(mark)
		return p.recovered(ConstructOperator, tok, lparen, p.PrevToken.Pos+1), nil
	}
	p.Next()
	return x, nil
}

func isComparison(x node.Expr) bool {
	b, ok := x.(*node.BinaryExpr)
	return ok && b.Token.IsComparison()
}

// skipToRParen discards tokens up to and including the ')' closing the
// current nesting level. It stops without consuming at a line end, Done or
// the end of input and reports false.
func (p *Parser) skipToRParen() bool {
	depth := 0
	for {
		switch p.Token.Token {
		case token.LParen:
			depth++
		case token.RParen:
			if depth == 0 {
				p.Next()
				return true
			}
			depth--
		case token.EndLine, token.Done, token.EOF:
			return false
		}
		p.Next()
	}
}

func (p *Parser) skipLineEnds() {
	for p.IsToken(token.EndLine, token.Comment) {
		p.Next()
	}
}

// recovered reports a recoverable error at tok and returns the error node
// replacing the failed construct, spanning the discarded source.
func (p *Parser) recovered(c Construct, tok Token, from, to source.Pos) *node.ErrorExpr {
	pos := p.File.Position(tok.Pos)
	msg := recoverableMessage(c, pos, tok)
	p.Errors.Add(RecoverableSyntaxError, pos, msg)
	p.log.Warn(msg, "construct", string(c), "line", pos.Line, "column", pos.Column)
	if to < from {
		to = from
	}
	return &node.ErrorExpr{
		From:      from,
		To:        to,
		Construct: string(c),
		Msg:       msg,
	}
}

// dropRecovered removes the recoverable errors reported since mark. Their
// error nodes were discarded with the construct that failed.
func (p *Parser) dropRecovered(mark int) {
	kept := p.Errors[:mark]
	for _, e := range p.Errors[mark:] {
		if e.Kind != RecoverableSyntaxError {
			kept = append(kept, e)
		}
	}
	p.Errors = kept
}

func (p *Parser) errorAt(tok Token) error {
	return &syntaxError{Token: tok}
}

// offending returns the token a recoverable error was found at. A failure
// at the end of input cannot be recovered from.
func (p *Parser) offending(err error) Token {
	var se *syntaxError
	if !errors.As(err, &se) {
		panic(err)
	}
	if se.Token.Token == token.EOF {
		p.fatal(se.Token)
	}
	return se.Token
}

// fatal reports a fatal syntax error at tok and aborts the parse.
func (p *Parser) fatal(tok Token) {
	pos := p.File.Position(tok.Pos)
	p.fatalErr = p.Errors.Add(FatalSyntaxError, pos, fatalMessage(pos, tok))
	p.log.Error(p.fatalErr.Msg, "line", pos.Line, "column", pos.Column)
	panic(bailout{})
}

func (p *Parser) IsToken(toks ...token.Token) bool {
	return p.Token.Token.Is(toks...)
}

func (p *Parser) Expect(token token.Token) source.Pos {
	return p.ExpectToken(token).Pos
}

// ExpectToken consumes the current token, which must be of the given type;
// any other token is a fatal syntax error.
func (p *Parser) ExpectToken(token token.Token) (tok Token) {
	tok = p.Token
	if tok.Token != token {
		p.fatal(tok)
	}
	p.Next()
	return
}

func (p *Parser) Next() {
	if p.Trace && p.Token.Pos.IsValid() {
		s := p.Token.Token.String()
		switch {
		case p.Token.Token.IsLiteral():
			p.PrintTrace(s, p.Token.Literal)
		case p.Token.Token.IsOperator(), p.Token.Token.IsKeyword():
			p.PrintTrace(`"` + p.Token.Literal + `"`)
		default:
			p.PrintTrace(s)
		}
	}

	p.PrevToken = p.Token
	p.Token = p.Scanner.Scan()

	if p.Token.Token == token.Comment && p.mode.Has(ParseComments) {
		p.comments = append(p.comments, &ast.Comment{
			Hash: p.Token.Pos,
			Text: p.Token.Literal,
		})
	}
}

func (p *Parser) PrintTrace(a ...any) {
	const (
		dots = ". . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . "
		n    = len(dots)
	)

	filePos := p.File.Position(p.Token.Pos)
	_, _ = fmt.Fprintf(p.TraceOut, "%5d: %5d:%3d: ", p.Token.Pos, filePos.Line,
		filePos.Column)
	i := 2 * p.indent
	for i > n {
		_, _ = fmt.Fprint(p.TraceOut, dots)
		i -= n
	}
	_, _ = fmt.Fprint(p.TraceOut, dots[0:i])
	_, _ = fmt.Fprintln(p.TraceOut, a...)
}

func tracep(p *Parser, msg string) *Parser {
	p.PrintTrace(msg, "(")
	p.indent++
	return p
}

func untracep(p *Parser) {
	p.indent--
	p.PrintTrace(")")
}
