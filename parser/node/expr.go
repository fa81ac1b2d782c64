// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package node

import (
	"github.com/h2-lang/h2/parser/source"
	"github.com/h2-lang/h2/repr"
	"github.com/h2-lang/h2/token"
)

// BinaryExpr represents a binary operator expression.
type BinaryExpr struct {
	LHS      Expr
	RHS      Expr
	Token    token.Token
	TokenPos source.Pos
}

func (e *BinaryExpr) ExprNode() {}

// Pos returns the position of first character belonging to the node.
func (e *BinaryExpr) Pos() source.Pos {
	return e.LHS.Pos()
}

// End returns the position of first character immediately after the node.
func (e *BinaryExpr) End() source.Pos {
	return e.RHS.End()
}

func (e *BinaryExpr) Tag() string {
	return e.Token.Symbol()
}

func (e *BinaryExpr) Label() string {
	return ""
}

func (e *BinaryExpr) Children() []Node {
	return []Node{e.LHS, e.RHS}
}

func (e *BinaryExpr) String() string {
	return "(" + e.LHS.String() + " " + e.Token.Symbol() +
		" " + e.RHS.String() + ")"
}

// UnaryExpr represents an unary operator expression.
type UnaryExpr struct {
	Expr     Expr
	Token    token.Token
	TokenPos source.Pos
}

func (e *UnaryExpr) ExprNode() {}

// Pos returns the position of first character belonging to the node.
func (e *UnaryExpr) Pos() source.Pos {
	return e.TokenPos
}

// End returns the position of first character immediately after the node.
func (e *UnaryExpr) End() source.Pos {
	return e.Expr.End()
}

func (e *UnaryExpr) Tag() string {
	if e.Token == token.Not {
		return TagNot
	}
	return TagUMinus
}

func (e *UnaryExpr) Label() string {
	return ""
}

func (e *UnaryExpr) Children() []Node {
	return []Node{e.Expr}
}

func (e *UnaryExpr) String() string {
	if e.Token == token.Not {
		return "(Not " + e.Expr.String() + ")"
	}
	return "(" + e.Token.Symbol() + e.Expr.String() + ")"
}

// ErrorExpr stands in for a construct that failed to parse and was
// recovered from.
type ErrorExpr struct {
	From source.Pos
	To   source.Pos
	// Construct is the kind of construct that failed: "assignment", "print"
	// or "operator".
	Construct string
	// Msg is the diagnostic reported for the failure.
	Msg string
}

func (e *ErrorExpr) ExprNode() {}

// Pos returns the position of first character belonging to the node.
func (e *ErrorExpr) Pos() source.Pos {
	return e.From
}

// End returns the position of first character immediately after the node.
func (e *ErrorExpr) End() source.Pos {
	return e.To
}

func (e *ErrorExpr) Tag() string {
	return TagError
}

func (e *ErrorExpr) Label() string {
	return e.Msg
}

func (e *ErrorExpr) Children() []Node {
	return nil
}

func (e *ErrorExpr) String() string {
	return repr.Quote(e.Construct + " error")
}
