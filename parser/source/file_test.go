package source

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fileLineDataTestCase struct {
	name    string
	f       *File
	line    int
	wantD   string
	wantErr bool
}

type testFiles struct {
	cases []*fileLineDataTestCase
}

func (set *testFiles) add(data string) (f *File) {
	b := []byte(data)
	f = NewFile(fmt.Sprintf("mem-file-%d", len(set.cases)), b)

	for i, c := range b {
		if c == '\n' {
			f.AddLine(i + 1)
		}
	}
	return
}

func (set *testFiles) AddCases(data string) *testFiles {
	f := set.add(data)

	lines := strings.Split(data, "\n")

	for i, line := range lines {
		set.cases = append(set.cases, &fileLineDataTestCase{
			name:  fmt.Sprintf("%s:%d", f.Name, i+1),
			f:     f,
			line:  i + 1,
			wantD: strings.TrimSuffix(line, "\r"),
		})
	}

	for i := 1; i <= 2; i++ {
		line := f.LineCount() + i
		set.cases = append(set.cases, &fileLineDataTestCase{
			name:    fmt.Sprintf("%s:%d(fake)", f.Name, line),
			f:       f,
			line:    line,
			wantErr: true,
		})
	}
	return set
}

func TestFile_LineData(t *testing.T) {
	tests := (&testFiles{}).
		AddCases("").
		AddCases("a b\nc  d\ne f g   \nh").
		AddCases("i j\r\nk\r\nl").
		AddCases("\ni j\nk\nl\n\n").
		AddCases("x = 1\nPrint(x)\nMission(\"m\") Do\n  y = 2\nDone").
		cases

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotD, valid := tt.f.LineData(tt.line)
			require.Equal(t, !tt.wantErr, valid)
			if valid {
				require.Equal(t, tt.wantD, string(gotD))
			}
		})
	}
}

func TestFile_AddLine(t *testing.T) {
	f := NewFile("a", []byte("ab\ncd\nef"))
	require.Equal(t, []int{0}, f.Lines)

	f.AddLine(3)
	f.AddLine(3)
	f.AddLine(2)
	f.AddLine(100)
	f.AddLine(6)
	require.Equal(t, []int{0, 3, 6}, f.Lines)
	require.Equal(t, 3, f.LineCount())
	require.Equal(t, Pos(4), f.LineStart(2))
	require.Panics(t, func() { f.LineStart(0) })
	require.Panics(t, func() { f.LineStart(4) })
}

func TestFile_Position(t *testing.T) {
	data := "x = 1\nPrint(\"a\nb\") y\nz"
	f := NewFile("pos", []byte(data))
	// the newline inside the string literal does not start a line
	f.AddLine(strings.Index(data, "\n") + 1)
	f.AddLine(strings.LastIndex(data, "\n") + 1)

	for _, tt := range []struct {
		sub          string
		line, column int
	}{
		{"x", 1, 1},
		{"1", 1, 5},
		{"Print", 2, 1},
		{"b\"", 2, 10},
		{"y", 2, 14},
		{"z", 3, 1},
	} {
		offset := strings.Index(data, tt.sub)
		pos := f.Position(f.FileSetPos(offset))
		require.Equal(t, tt.line, pos.Line, tt.sub)
		require.Equal(t, tt.column, pos.Column, tt.sub)
		require.Equal(t, offset, pos.Offset, tt.sub)
		require.Equal(t, fmt.Sprintf("pos:%d:%d", tt.line, tt.column), pos.String())
	}

	require.Equal(t, FilePos{}, f.Position(NoPos))
	require.Equal(t, "-", FilePos{}.String())
	require.Equal(t, "3:7", FilePos{Line: 3, Column: 7}.String())
	require.Equal(t, 3, f.Line(f.FileSetPos(len(data))))
}

func TestFile_TraceLines(t *testing.T) {
	f := NewFile("t", []byte("x = 1\n\ty = )"))
	f.AddLine(6)

	var buf bytes.Buffer
	f.TraceLines(&buf, 2, 6)
	require.Equal(t, "\n\t    2| \ty = )\n\t"+strings.Repeat(" ", 7)+"\t    ^", buf.String())

	buf.Reset()
	f.TraceLines(&buf, 5, 1)
	require.Empty(t, buf.String())

	f = NewFile("t", []byte("x = \"a\r\nb\" + )\ny"))
	f.AddLine(15)
	buf.Reset()
	f.TraceLines(&buf, 1, 14)
	require.Equal(t, "\n\t    1| b\" + )\n\t"+strings.Repeat(" ", 7)+"     ^", buf.String())

	buf.Reset()
	f.TraceLines(&buf, 1, 3)
	require.Equal(t, "\n\t    1| x = \"a\n\t"+strings.Repeat(" ", 7)+"  ^", buf.String())
}

func TestReader(t *testing.T) {
	f := NewFile("r", []byte("\ufeffa\"b\\\"c\"é"))
	r := NewReader(f)
	r.Start()
	require.Equal(t, 'a', r.Ch)
	require.Equal(t, 3, r.Offset)

	r.Next()
	require.Equal(t, '"', r.Ch)
	end := r.NextPosOf('"')
	require.Equal(t, 9, end)
	require.Equal(t, byte('b'), r.Peek())

	start := r.Offset
	r.MoveTo(end + 1)
	require.Equal(t, "\"b\\\"c\"", string(r.Span(start)))
	require.Equal(t, 'é', r.Ch)
	require.Equal(t, 2, r.Width)

	r.Next()
	require.Equal(t, rune(-1), r.Ch)
	require.Equal(t, len(f.Data), r.Offset)
	r.Next()
	require.Equal(t, rune(-1), r.Ch)

	r = NewReader(NewFile("u", []byte("\"abc")))
	r.Start()
	require.Equal(t, -1, r.NextPosOf('"'))
}
