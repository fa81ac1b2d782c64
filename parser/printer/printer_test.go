package printer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h2-lang/h2/parser"
	"github.com/h2-lang/h2/parser/printer"
	"github.com/h2-lang/h2/parser/source"
)

func parse(t *testing.T, input string) *parser.File {
	t.Helper()
	f, err := parser.Parse(input, "test", nil, nil)
	require.NoError(t, err)
	return f
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestSprint(t *testing.T) {
	f := parse(t, "x = 1 + 2\nMission(\"m\") Do Print(\"a\\nb\") Done")
	out := printer.Sprint(f)

	l := lines(out)
	require.Len(t, l, 9)
	assert.Equal(t, "test", l[0])
	for i, want := range []string{
		"assign x",
		"+",
		"number 1",
		"number 2",
		`mission "m"`,
		"codeblock",
		"print",
		`string "a\nb"`,
	} {
		assert.True(t, strings.HasSuffix(l[i+1], " "+want), "line %d: %q", i+1, l[i+1])
	}

	var buf bytes.Buffer
	require.NoError(t, printer.Fprint(&buf, f))
	assert.Equal(t, out, buf.String())
}

func TestConfig_Positions(t *testing.T) {
	f := parse(t, "x = -a\n\ty = x == 1")
	c := &printer.Config{Positions: true}
	out := c.Tree("main", f.InputFile, f.Stmts.Nodes()...).String()

	l := lines(out)
	require.Len(t, l, 8)
	assert.Equal(t, "main", l[0])
	assert.Contains(t, l[1], "[1:1]")
	assert.Contains(t, l[1], "assign x")
	assert.Contains(t, l[2], "[1:5]")
	assert.Contains(t, l[2], "uminus")
	assert.Contains(t, l[3], "[1:6]")
	assert.Contains(t, l[3], "id a")
	assert.Contains(t, l[4], "[2:2]")
	assert.Contains(t, l[5], "[2:6]")
	assert.Contains(t, l[5], "==")
	assert.NotContains(t, out, "main:")
}

func TestLabel(t *testing.T) {
	f, err := parser.Parse("x = )\nPrint(Not True)", "test", nil, nil)
	require.NoError(t, err)
	require.Len(t, f.Stmts, 2)

	out := printer.Sprint(f)
	assert.Contains(t, out, "error There was an assignment error at line 1, char 5. Token RPAREN())")
	assert.Contains(t, out, "not")
	assert.Contains(t, out, "bool True")

	x, _, err := parser.ParseExpr("1 * 2", nil)
	require.NoError(t, err)
	assert.Equal(t, "*", printer.Label(x))

	var buf bytes.Buffer
	require.NoError(t, (&printer.Config{}).Fprint(&buf, "expr", (*source.File)(nil), x))
	assert.Len(t, lines(buf.String()), 4)
}

func TestSprint_Empty(t *testing.T) {
	f := parse(t, "# nothing\n")
	assert.Equal(t, []string{"test"}, lines(printer.Sprint(f)))
}
