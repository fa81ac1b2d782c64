package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h2-lang/h2/internal/config"
	"github.com/h2-lang/h2/parser"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out, errb bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs(args)
	err = execute(cmd)
	return out.String(), errb.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	pth := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(pth, []byte(content), 0600))
	return pth
}

func TestRoot_Text(t *testing.T) {
	stdout, stderr, err := run(t, "x = 1 + 2\nPrint(x)", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "x = (1 + 2); Print(x)\n", stdout)
	assert.Empty(t, stderr)
}

func TestRoot_Tree(t *testing.T) {
	stdout, _, err := run(t, "x = 1\nMission(\"m\") Do Print(x) Done\n")
	require.NoError(t, err)
	l := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, l, 7)
	assert.Equal(t, parser.MainName, l[0])
	assert.Contains(t, l[1], "assign x")
	assert.Contains(t, l[3], `mission "m"`)
	assert.Contains(t, l[5], "print")
	assert.Contains(t, l[6], "id x")
}

func TestRoot_Files(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.h2", "x = 1\n")
	b := writeFile(t, dir, "b.h2", "Print(x)\n")

	stdout, _, err := run(t, "", "-o", "text", a, b)
	require.NoError(t, err)
	assert.Equal(t, "x = 1; Print(x)\n", stdout)

	stdout, _, err = run(t, "y = 2\n", "-o", "text", a, "-", b)
	require.NoError(t, err)
	assert.Equal(t, "x = 1; y = 2; Print(x)\n", stdout)

	stdout, _, err = run(t, "", a)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, a+"\n"), stdout)
}

func TestRoot_MissingFile(t *testing.T) {
	_, stderr, err := run(t, "", "nope.h2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, stderr, "Error: open nope.h2")
}

func TestRoot_Diagnostics(t *testing.T) {
	stdout, stderr, err := run(t, "x = )\nPrint(1)", "-o", "text")
	require.ErrorIs(t, err, errDiagnostics)
	assert.Equal(t, "x = ‹assignment error›; Print(1)\n", stdout)
	assert.Equal(t, "There was an assignment error at line 1, char 5. Token RPAREN())\n", stderr)
}

func TestRoot_Fatal(t *testing.T) {
	stdout, stderr, err := run(t, "Done")
	require.Error(t, err)
	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.FatalSyntaxError, perr.Kind)
	assert.Empty(t, stdout)
	assert.Equal(t, "Syntax error at line 1. Token BLOCK_END(Done)\n", stderr)

	_, stderr, err = run(t, "x = 1 @\nDone", "-o", "text")
	require.Error(t, err)
	assert.Equal(t, "Line 1: Bad character '@' at char 7\n"+
		"Syntax error at line 2. Token BLOCK_END(Done)\n", stderr)
}

func TestRoot_Verbose(t *testing.T) {
	_, stderr, err := run(t, "x = 1\nDone", "-v")
	require.Error(t, err)
	assert.Contains(t, stderr, "Syntax error at line 2. Token BLOCK_END(Done)\n\t    2| Done\n\t       ^")
	assert.Contains(t, stderr, "level=ERROR")
	assert.Contains(t, stderr, "component=parser")

	_, stderr, err = run(t, "x = 1\n", "-v", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, stderr, "6 B in 1 file, 4 tokens, 1 statements, 0 diagnostics")
}

func TestRoot_Debug(t *testing.T) {
	_, stderr, err := run(t, "x = 1", "--debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"parse started"`)
	assert.Contains(t, stderr, `"msg":"parse finished"`)
}

func TestRoot_Trace(t *testing.T) {
	_, stderr, err := run(t, "x = 1", "--trace", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, stderr, "File (")
	assert.Contains(t, stderr, ". . . Assignment (")
}

func TestRoot_Comments(t *testing.T) {
	stdout, _, err := run(t, "x = 1 # one\n#two\n", "--comments", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "x = 1\ncomment 1:7 one\ncomment 2:1 two\n", stdout)
}

func TestRoot_Config(t *testing.T) {
	pth := writeFile(t, t.TempDir(), "h2.yaml", "output: text\n")

	stdout, _, err := run(t, "x = 1", "--config", pth)
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", stdout)

	stdout, _, err = run(t, "x = 1", "--config", pth, "-o", "tree")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, parser.MainName+"\n"))

	t.Setenv("H2_OUTPUT", "text")
	stdout, _, err = run(t, "x = 2")
	require.NoError(t, err)
	assert.Equal(t, "x = 2\n", stdout)

	_, stderr, err := run(t, "", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, stderr, `invalid output "xml"`)
}

func TestTokens(t *testing.T) {
	stdout, stderr, err := run(t, "x = 1 + y", "tokens")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, "type=ID, value=x\n"+
		"type=ASSIGN, value==\n"+
		"type=NUMBER, value=1\n"+
		"type=PLUS, value=+\n"+
		"type=ID, value=y\n", stdout)

	stdout, _, err = run(t, "x\n y", "tokens", "--positions")
	require.NoError(t, err)
	assert.Equal(t, "1:1: type=ID, value=x\n"+
		"1:2: type=ENDLINE, value=ENDLINE\n"+
		"2:2: type=ID, value=y\n", stdout)

	stdout, _, err = run(t, "# c\nx", "tokens")
	require.NoError(t, err)
	assert.Equal(t, "type=COMMENT, value=# c\n"+
		"type=ENDLINE, value=ENDLINE\n"+
		"type=ID, value=x\n", stdout)

	stdout, stderr, err = run(t, "x @", "tokens")
	require.ErrorIs(t, err, errDiagnostics)
	assert.Equal(t, "type=ID, value=x\n", stdout)
	assert.Equal(t, "Line 1: Bad character '@' at char 3\n", stderr)
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "h2 "+Version+"\n", stdout)
}

type lines []string

func (l *lines) Prompt(string) (string, error) {
	if len(*l) == 0 {
		return "", io.EOF
	}
	s := (*l)[0]
	*l = (*l)[1:]
	return s, nil
}

func TestREPL(t *testing.T) {
	cfg := &config.Config{Output: config.OutputText, LogFormat: config.LogFormatText}

	var (
		out, errb bytes.Buffer
		history   []string
		in        = &lines{"x = 1", "  ", "Done", "y = )", ":quit", "Print(1)"}
	)
	repl(in, cfg, &out, &errb, func(s string) { history = append(history, s) })

	assert.Equal(t, "x = 1\ny = ‹assignment error›\n", out.String())
	assert.Contains(t, errb.String(), "Syntax error at line 1. Token BLOCK_END(Done)\n\t    1| Done\n\t       ^")
	assert.Contains(t, errb.String(), "There was an assignment error at line 1, char 5. Token RPAREN())")
	assert.Equal(t, []string{"x = 1", "Done", "y = )"}, history)
	assert.Equal(t, lines{"Print(1)"}, *in)

	out.Reset()
	repl(&lines{"Print(2)"}, cfg, &out, io.Discard, nil)
	assert.Equal(t, "Print(2)\n\n", out.String())
}

func TestWatchSignals(t *testing.T) {
	var (
		sigc   = make(chan os.Signal, 1)
		done   = make(chan struct{})
		called bool
	)
	close(done)
	watchSignals(sigc, done, func() { called = true })
	assert.False(t, called)

	sigc <- syscall.SIGHUP
	watchSignals(sigc, make(chan struct{}), func() { called = true })
	assert.True(t, called)
}

func TestErrorHumanizing(t *testing.T) {
	var buf bytes.Buffer
	(&ErrorHumanizing{}).Humanize(&buf, errors.New("boom"))
	assert.Equal(t, "ERROR: boom\n", buf.String())

	buf.Reset()
	_, err := parser.Parse("Print(", "test", nil, nil)
	(&ErrorHumanizing{}).Humanize(&buf, err)
	assert.Equal(t, "Syntax error at EOF\n", buf.String())
}

func TestSummary(t *testing.T) {
	s := summary{Size: 2048, Files: 2, Tokens: 1200, Statements: 3, Diagnostics: 1}
	assert.Equal(t, "2.0 kB in 2 files, 1,200 tokens, 3 statements, 1 diagnostics", s.String())
}

func TestReadInput(t *testing.T) {
	in, err := readInput([]string{"-", "-"}, strings.NewReader("x = 1"))
	require.NoError(t, err)
	assert.Equal(t, "x = 1", string(in.Data))
	assert.Equal(t, parser.MainName, in.Name)
	assert.Equal(t, 2, in.Files)

	in, err = readInput(nil, strings.NewReader("Print(1)"))
	require.NoError(t, err)
	assert.Equal(t, "Print(1)", string(in.Data))
	assert.Equal(t, 1, in.Files)
}
