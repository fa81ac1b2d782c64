// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package node

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/h2-lang/h2/parser/source"
	"github.com/h2-lang/h2/token"
)

// NumberLit represents an integer literal of arbitrary size.
type NumberLit struct {
	Value    decimal.Decimal
	ValuePos source.Pos
	Literal  string
}

func (e *NumberLit) ExprNode() {}

// Pos returns the position of first character belonging to the node.
func (e *NumberLit) Pos() source.Pos {
	return e.ValuePos
}

// End returns the position of first character immediately after the node.
func (e *NumberLit) End() source.Pos {
	return source.Pos(int(e.ValuePos) + len(e.Literal))
}

func (e *NumberLit) Tag() string      { return TagNumber }
func (e *NumberLit) Label() string    { return e.Value.String() }
func (e *NumberLit) Children() []Node { return nil }

func (e *NumberLit) String() string {
	return e.Value.String()
}

// BoolLit represents a boolean literal.
type BoolLit struct {
	Value    bool
	ValuePos source.Pos
	Literal  string
}

func (e *BoolLit) ExprNode() {}

// Pos returns the position of first character belonging to the node.
func (e *BoolLit) Pos() source.Pos {
	return e.ValuePos
}

// End returns the position of first character immediately after the node.
func (e *BoolLit) End() source.Pos {
	return source.Pos(int(e.ValuePos) + len(e.Literal))
}

func (e *BoolLit) Tag() string      { return TagBool }
func (e *BoolLit) Children() []Node { return nil }

func (e *BoolLit) Label() string {
	if e.Value {
		return token.TrueLiteral
	}
	return token.FalseLiteral
}

func (e *BoolLit) String() string {
	return e.Label()
}

// Ident represents an identifier.
type Ident struct {
	Name    string
	NamePos source.Pos
}

func (e *Ident) ExprNode() {}

// Pos returns the position of first character belonging to the node.
func (e *Ident) Pos() source.Pos {
	return e.NamePos
}

// End returns the position of first character immediately after the node.
func (e *Ident) End() source.Pos {
	return source.Pos(int(e.NamePos) + len(e.Name))
}

func (e *Ident) Tag() string      { return TagIdent }
func (e *Ident) Label() string    { return e.Name }
func (e *Ident) Children() []Node { return nil }

func (e *Ident) String() string {
	return e.Name
}

// StringLit represents a string literal. Value holds the decoded text and
// Literal the source spelling including quotes.
type StringLit struct {
	Value    string
	ValuePos source.Pos
	Literal  string
}

func (e *StringLit) ExprNode() {}

// Pos returns the position of first character belonging to the node.
func (e *StringLit) Pos() source.Pos {
	return e.ValuePos
}

// End returns the position of first character immediately after the node.
func (e *StringLit) End() source.Pos {
	return source.Pos(int(e.ValuePos) + len(e.Literal))
}

func (e *StringLit) Tag() string      { return TagString }
func (e *StringLit) Label() string    { return e.Value }
func (e *StringLit) Children() []Node { return nil }

func (e *StringLit) String() string {
	return strconv.Quote(e.Value)
}
