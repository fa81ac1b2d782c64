// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package ast

import (
	"strings"

	"github.com/h2-lang/h2/parser/source"
)

// Node represents a node in the AST.
type Node interface {
	// Pos returns the position of first character belonging to the node.
	Pos() source.Pos
	// End returns the position of first character immediately after the node.
	End() source.Pos
	// String returns a string representation of the node.
	String() string
}

// ----------------------------------------------------------------------------
// Comments

// A Comment node represents a single #-style comment.
type Comment struct {
	Hash source.Pos // position of "#" starting the comment
	Text string     // comment text (excluding '\n')
}

// Pos returns the position of the comment's hash.
func (c *Comment) Pos() source.Pos { return c.Hash }

// End returns the position of first character immediately after the comment.
func (c *Comment) End() source.Pos {
	return source.Pos(int(c.Hash) + len(c.Text))
}

func (c *Comment) String() string {
	return c.Text
}

// Content returns the comment text without the comment marker and
// surrounding spaces.
func (c *Comment) Content() string {
	return strings.TrimSpace(strings.TrimPrefix(c.Text, "#"))
}
