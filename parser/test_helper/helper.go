package testhelper

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/h2-lang/h2/parser"
	"github.com/h2-lang/h2/parser/node"
	"github.com/h2-lang/h2/parser/source"
)

func ParseTrace(t *testing.T, input, expected string) {
	t.Helper()
	parse := func(input string, tracer io.Writer) {
		p := parser.NewParser(source.NewFile("test", []byte(input)), tracer)
		_, err := p.ParseFile()
		require.NoError(t, err)
	}
	var out bytes.Buffer
	parse(input, &out)
	require.Equal(t,
		strings.ReplaceAll(expected, "\r\n", "\n"),
		strings.ReplaceAll(out.String(), "\r\n", "\n"),
	)
}

type Pfn func(int, int) source.Pos       // position conversion function
type ExpectedFn func(pos Pfn) node.Stmts // callback function to return expected results

type parseTracer struct {
	out []string
}

func (o *parseTracer) Write(p []byte) (n int, err error) {
	o.out = append(o.out, string(p))
	return len(p), nil
}

type Option func(po *parser.ParserOptions, so *parser.ScannerOptions)

// WithMode sets the parser mode.
func WithMode(mode parser.Mode) Option {
	return func(po *parser.ParserOptions, _ *parser.ScannerOptions) {
		po.Mode = mode
	}
}

// Parse parses input and hands the result to do. The parser trace is logged
// when do fails the test.
func Parse(t *testing.T, input string, do func(f *source.File, actual *parser.File, err error), opt ...Option) {
	t.Helper()
	var (
		ok      bool
		options = func() (po *parser.ParserOptions, so *parser.ScannerOptions) {
			po = &parser.ParserOptions{}
			so = &parser.ScannerOptions{}
			for _, o := range opt {
				o(po, so)
			}
			return
		}
	)
	defer func() {
		if !ok {
			// print Trace
			tr := &parseTracer{}
			po, so := options()
			po.Trace = tr
			p := parser.NewParserWithOptions(source.NewFile("test", []byte(input)), po, so)
			actual, _ := p.ParseFile()
			if actual != nil {
				t.Logf("Parsed:\n%s", actual.String())
			}
			t.Logf("Trace:\n%s", strings.Join(tr.out, ""))
		}
	}()

	po, so := options()

	testFile := source.NewFile("test", []byte(input))
	p := parser.NewParserWithOptions(testFile, po, so)
	actual, err := p.ParseFile()
	do(testFile, actual, err)
	ok = true
}

func ExpectParse(t *testing.T, input string, fn ExpectedFn, opt ...Option) {
	t.Helper()
	Parse(t, input, func(f *source.File, actual *parser.File, err error) {
		require.NoError(t, err)

		expected := fn(func(line, column int) source.Pos {
			return source.Pos(int(f.LineStart(line)) + (column - 1))
		})
		require.Equal(t, len(expected), len(actual.Stmts), "count of file statements")

		for i := 0; i < len(expected); i++ {
			EqualStmt(t, expected[i], actual.Stmts[i])
		}
	}, opt...)
}

// ExpectParseString parses input without any diagnostic and compares the
// string form of the statements.
func ExpectParseString(t *testing.T, input, expected string, opt ...Option) {
	t.Helper()
	Parse(t, input, func(f *source.File, actual *parser.File, err error) {
		require.NoError(t, err)
		require.Empty(t, actual.Diagnostics.Messages())
		require.Equal(t, expected, actual.String())
	}, opt...)
}

// ExpectRecovered parses input and compares the string form of the
// statements and the diagnostic messages in source order.
func ExpectRecovered(t *testing.T, input, expected string, msgs []string, opt ...Option) {
	t.Helper()
	Parse(t, input, func(f *source.File, actual *parser.File, err error) {
		require.NoError(t, err)
		require.Equal(t, expected, actual.String())
		require.Equal(t, msgs, actual.Diagnostics.Messages())
	}, opt...)
}

// ExpectParseError expects a fatal syntax error with message msg.
func ExpectParseError(t *testing.T, input, msg string, opt ...Option) {
	t.Helper()
	Parse(t, input, func(f *source.File, actual *parser.File, err error) {
		require.Nil(t, actual)
		require.EqualError(t, err, msg)
		require.IsType(t, &parser.Error{}, err)
		require.Equal(t, parser.FatalSyntaxError, err.(*parser.Error).Kind)
	}, opt...)
}

func EqualStmt(t *testing.T, expected, actual node.Stmt) {
	t.Helper()
	if expected == nil || reflect.ValueOf(expected).IsNil() {
		require.Nil(t, actual, "expected nil, but got not nil")
		return
	}
	require.NotNil(t, actual, "expected not nil, but got nil")
	require.IsType(t, expected, actual)

	switch expected := expected.(type) {
	case *node.Assign:
		require.Equal(t, expected.Name, actual.(*node.Assign).Name)
		require.Equal(t, expected.NamePos, actual.(*node.Assign).NamePos)
		require.Equal(t, expected.AssignPos, actual.(*node.Assign).AssignPos)
		EqualExpr(t, expected.Value, actual.(*node.Assign).Value)
	case *node.Print:
		require.Equal(t, expected.PrintPos, actual.(*node.Print).PrintPos)
		require.Equal(t, expected.LParen, actual.(*node.Print).LParen)
		require.Equal(t, expected.RParen, actual.(*node.Print).RParen)
		EqualExpr(t, expected.Arg, actual.(*node.Print).Arg)
	case *node.Mission:
		require.Equal(t, expected.MissionPos, actual.(*node.Mission).MissionPos)
		EqualExpr(t, expected.Name, actual.(*node.Mission).Name)
		EqualStmt(t, expected.Block, actual.(*node.Mission).Block)
	case *node.CodeBlock:
		require.Equal(t, expected.DoPos, actual.(*node.CodeBlock).DoPos)
		require.Equal(t, expected.DonePos, actual.(*node.CodeBlock).DonePos)
		EqualStmts(t, expected.Stmts, actual.(*node.CodeBlock).Stmts)
	default:
		panic(fmt.Errorf("unknown type: %T", expected))
	}
}

func EqualExpr(t *testing.T, expected, actual node.Expr) {
	t.Helper()
	if expected == nil || reflect.ValueOf(expected).IsNil() {
		require.Nil(t, actual, "expected nil, but got not nil")
		return
	}
	require.NotNil(t, actual, "expected not nil, but got nil")
	require.IsType(t, expected, actual)

	switch expected := expected.(type) {
	case *node.Ident:
		require.Equal(t, expected.Name, actual.(*node.Ident).Name)
		require.Equal(t, expected.NamePos, actual.(*node.Ident).NamePos)
	case *node.NumberLit:
		require.True(t, expected.Value.Equal(actual.(*node.NumberLit).Value),
			"%s != %s", expected.Value, actual.(*node.NumberLit).Value)
		require.Equal(t, expected.Literal, actual.(*node.NumberLit).Literal)
		require.Equal(t, expected.ValuePos, actual.(*node.NumberLit).ValuePos)
	case *node.BoolLit:
		require.Equal(t, expected.Value, actual.(*node.BoolLit).Value)
		require.Equal(t, expected.Literal, actual.(*node.BoolLit).Literal)
		require.Equal(t, expected.ValuePos, actual.(*node.BoolLit).ValuePos)
	case *node.StringLit:
		require.Equal(t, expected.Value, actual.(*node.StringLit).Value)
		require.Equal(t, expected.Literal, actual.(*node.StringLit).Literal)
		require.Equal(t, expected.ValuePos, actual.(*node.StringLit).ValuePos)
	case *node.BinaryExpr:
		EqualExpr(t, expected.LHS, actual.(*node.BinaryExpr).LHS)
		EqualExpr(t, expected.RHS, actual.(*node.BinaryExpr).RHS)
		require.Equal(t, expected.Token, actual.(*node.BinaryExpr).Token)
		require.Equal(t, expected.TokenPos, actual.(*node.BinaryExpr).TokenPos)
	case *node.UnaryExpr:
		EqualExpr(t, expected.Expr, actual.(*node.UnaryExpr).Expr)
		require.Equal(t, expected.Token, actual.(*node.UnaryExpr).Token)
		require.Equal(t, expected.TokenPos, actual.(*node.UnaryExpr).TokenPos)
	case *node.ErrorExpr:
		require.Equal(t, expected.From, actual.(*node.ErrorExpr).From)
		require.Equal(t, expected.To, actual.(*node.ErrorExpr).To)
		require.Equal(t, expected.Construct, actual.(*node.ErrorExpr).Construct)
		require.Equal(t, expected.Msg, actual.(*node.ErrorExpr).Msg)
	default:
		panic(fmt.Errorf("unknown type: %T", expected))
	}
}

func EqualStmts(t *testing.T, expected, actual node.Stmts) {
	t.Helper()
	require.Equal(t, len(expected), len(actual))
	for i := 0; i < len(expected); i++ {
		EqualStmt(t, expected[i], actual[i])
	}
}
