// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package source

import "unicode/utf8"

// BOM byte order mark
const BOM = 0xFEFF

// Reader is a character cursor over the data of a File.
type Reader struct {
	File       *File
	Src        []byte
	Ch         rune // current character, -1 at end of input
	Offset     int  // character offset
	ReadOffset int  // reading offset (position after current character)
	Width      int  // byte width of the current character
}

// NewReader creates a reader positioned before the first character of file.
// Start must be called before reading.
func NewReader(file *File) *Reader {
	return &Reader{
		File: file,
		Src:  file.Data,
		Ch:   ' ',
	}
}

// Start reads the first character, skipping a leading byte order mark.
func (r *Reader) Start() {
	r.Next()
	if r.Ch == BOM {
		r.Next()
	}
}

// Next advances to the next character. Invalid UTF-8 sequences are read as
// utf8.RuneError one byte at a time.
func (r *Reader) Next() {
	if r.ReadOffset >= len(r.Src) {
		r.Offset = len(r.Src)
		r.Width = 0
		r.Ch = -1 // EOF
		return
	}

	r.Offset = r.ReadOffset
	ch, w := rune(r.Src[r.ReadOffset]), 1
	if ch >= utf8.RuneSelf {
		// not ASCII
		ch, w = utf8.DecodeRune(r.Src[r.ReadOffset:])
	}
	r.ReadOffset += w
	r.Width = w
	r.Ch = ch
}

// Peek returns the byte following the current character without advancing.
func (r *Reader) Peek() byte {
	if r.ReadOffset < len(r.Src) {
		return r.Src[r.ReadOffset]
	}
	return 0
}

// NextPosOf returns the offset of the first b after the current character
// that is not escaped by a backslash, or -1 if there is none.
func (r *Reader) NextPosOf(b byte) (end int) {
	var escape bool
	for end = r.Offset + 1; end < len(r.Src); end++ {
		switch c := r.Src[end]; {
		case escape:
			escape = false
		case c == '\\':
			escape = true
		case c == b:
			return
		}
	}
	return -1
}

// MoveTo repositions the reader at offset, which must lie on a character
// boundary at or after the current offset.
func (r *Reader) MoveTo(offset int) {
	r.ReadOffset = offset
	r.Next()
}

// Span returns the source bytes between start and the current offset.
func (r *Reader) Span(start int) []byte {
	return r.Src[start:r.Offset]
}
