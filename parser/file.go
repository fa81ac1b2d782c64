// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package parser

import (
	"github.com/h2-lang/h2/parser/ast"
	"github.com/h2-lang/h2/parser/node"
	"github.com/h2-lang/h2/parser/source"
)

// File represents a file unit.
type File struct {
	InputFile   *source.File
	Stmts       node.Stmts
	Comments    []*ast.Comment
	Diagnostics ErrorList
}

// Pos returns the position of first character belonging to the node.
func (n *File) Pos() source.Pos {
	return source.Pos(1)
}

// End returns the position of first character immediately after the node.
func (n *File) End() source.Pos {
	return source.Pos(n.InputFile.Size + 1)
}

func (n *File) String() string {
	return n.Stmts.String()
}

// Errors returns the error nodes of the file in source order.
func (n *File) Errors() (list []*node.ErrorExpr) {
	for _, s := range n.Stmts {
		list = append(list, node.Errors(s)...)
	}
	return
}
