// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// File is a source buffer together with the table of its line starts. The
// table only grows when the scanner emits an end-of-line token, so newlines
// inside string literals do not start a new line.
type File struct {
	// File name as provided to NewFile
	Name string
	// File size in bytes
	Size int
	// Lines contains the offset of the first character for each line
	// (the first entry is always 0)
	Lines []int
	// Data is the source text
	Data []byte
}

// NewFile creates a file for data with a single known line.
func NewFile(name string, data []byte) *File {
	return &File{
		Name:  name,
		Size:  len(data),
		Lines: []int{0},
		Data:  data,
	}
}

// LineCount returns the current number of lines.
func (f *File) LineCount() int {
	return len(f.Lines)
}

// AddLine records offset as the start of a new line. Offsets must be added
// in increasing order; others are ignored.
func (f *File) AddLine(offset int) {
	if offset > f.Size {
		return
	}
	if l := len(f.Lines); l > 0 && f.Lines[l-1] >= offset {
		return
	}
	f.Lines = append(f.Lines, offset)
}

// LineStart returns the position of the first character in the line.
func (f *File) LineStart(line int) Pos {
	if line < 1 {
		panic("illegal line number (line numbering starts at 1)")
	}
	if line > len(f.Lines) {
		panic("illegal line number")
	}
	return Pos(f.Lines[line-1] + 1)
}

// FileSetPos returns the position of offset.
func (f *File) FileSetPos(offset int) Pos {
	if offset < 0 || offset > f.Size {
		panic("illegal file offset")
	}
	return Pos(offset + 1)
}

// Offset translates the position into the file offset.
func (f *File) Offset(p Pos) int {
	if int(p) < 1 || int(p) > f.Size+1 {
		panic("illegal Pos value")
	}
	return p.Offset()
}

// Line returns the line of given position.
func (f *File) Line(p Pos) int {
	return f.Position(p).Line
}

// Position translates the position into line and column using the line
// table.
func (f *File) Position(p Pos) (pos FilePos) {
	if p == NoPos {
		return
	}
	offset := p.Offset()
	pos.Offset = offset
	pos.File = f
	if i := searchInts(f.Lines, offset); i >= 0 {
		pos.Line, pos.Column = i+1, offset-f.Lines[i]+1
	}
	return
}

// LineData returns the text of line without its line terminator.
func (f *File) LineData(line int) (d []byte, valid bool) {
	if line < 1 || line > len(f.Lines) {
		return nil, false
	}
	start, end := f.Lines[line-1], f.Size
	if line < len(f.Lines) {
		end = f.Lines[line] - 1
	} else if i := strings.IndexByte(string(f.Data[start:]), '\n'); i >= 0 {
		end = start + i
	}
	if end > start && f.Data[end-1] == '\r' {
		end--
	}
	return f.Data[start:end], true
}

// TraceLines writes the line of the position with a caret under column.
// Columns count from the start of the logical line.
func (f *File) TraceLines(w io.Writer, line, column int) {
	l, ok := f.LineData(line)
	if !ok {
		return
	}

	// a string literal may span physical lines; show the one holding column
	col := min(max(column-1, 0), len(l))
	if i := bytes.LastIndexByte(l[:col], '\n'); i >= 0 {
		l, col = l[i+1:], col-i-1
	}
	if i := bytes.IndexByte(l, '\n'); i >= 0 {
		l = bytes.TrimSuffix(l[:i], []byte("\r"))
	}

	var (
		linef       = "\t%5d| "
		prefix      = fmt.Sprintf(linef, line)
		lineOfChar  = []byte(strings.Repeat(" ", len(prefix)))
		lineOfColor = []string{prefix + string(l)}
	)

	lineOfChar[0] = '\t'
	for i := 0; i < col && i < len(l); i++ {
		b := byte(' ')
		if l[i] == '\t' {
			b = '\t'
		}
		lineOfChar = append(lineOfChar, b)
	}
	lineOfChar = append(lineOfChar, '^')
	lineOfColor = append(lineOfColor, string(lineOfChar))
	_, _ = io.WriteString(w, "\n"+strings.Join(lineOfColor, "\n"))
}

func searchInts(a []int, x int) int {
	// This function body is a manually inlined version of:
	//   return sort.Search(len(a), func(i int) bool { return a[i] > x }) - 1
	i, j := 0, len(a)
	for i < j {
		h := i + (j-i)/2 // avoid overflow when computing h
		// i ≤ h < j
		if a[h] <= x {
			i = h + 1
		} else {
			j = h
		}
	}
	return i - 1
}
