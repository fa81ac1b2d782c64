// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package node

import (
	"strings"

	"github.com/h2-lang/h2/parser/ast"
)

// Production tags. Binary expressions use the operator symbol as tag.
const (
	TagAssign    = "assign"
	TagPrint     = "print"
	TagMission   = "mission"
	TagCodeBlock = "codeblock"
	TagUMinus    = "uminus"
	TagNot       = "not"
	TagNumber    = "number"
	TagBool      = "bool"
	TagIdent     = "id"
	TagString    = "string"
	TagError     = "error"
)

// Node is a syntax tree node. The tag fixes the number of children: binary
// expressions have two, assignments, prints, missions and unary expressions
// have one, literals and errors have none and a code block has one per
// statement.
type Node interface {
	ast.Node
	// Tag returns the production tag of the node.
	Tag() string
	// Label returns the literal associated with the node, if any.
	Label() string
	// Children returns the child nodes in source order.
	Children() []Node
}

// Expr represents an expression node in the AST.
type Expr interface {
	Node
	ExprNode()
}

func IsExpr(n Node) (ok bool) {
	_, ok = n.(Expr)
	return
}

// Stmt represents a statement in the AST.
type Stmt interface {
	Node
	StmtNode()
}

type Stmts []Stmt

func (s Stmts) Nodes() []Node {
	nodes := make([]Node, len(s))
	for i, stmt := range s {
		nodes[i] = stmt
	}
	return nodes
}

func (s Stmts) String() string {
	var w strings.Builder
	for i, stmt := range s {
		if i > 0 {
			w.WriteString("; ")
		}
		w.WriteString(stmt.String())
	}
	return w.String()
}

// IsStatement returns true if given value is implements interface{ StmtNode() }.
func IsStatement(v Node) (ok bool) {
	_, ok = v.(Stmt)
	return ok
}
