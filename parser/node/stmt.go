// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package node

import (
	"github.com/h2-lang/h2/parser/source"
	"github.com/h2-lang/h2/token"
)

// Assign represents a variable assignment.
type Assign struct {
	Name      string
	NamePos   source.Pos
	AssignPos source.Pos
	Value     Expr
}

func (s *Assign) StmtNode() {}

// Pos returns the position of first character belonging to the node.
func (s *Assign) Pos() source.Pos {
	return s.NamePos
}

// End returns the position of first character immediately after the node.
func (s *Assign) End() source.Pos {
	return s.Value.End()
}

func (s *Assign) Tag() string      { return TagAssign }
func (s *Assign) Label() string    { return s.Name }
func (s *Assign) Children() []Node { return []Node{s.Value} }

func (s *Assign) String() string {
	return s.Name + " = " + s.Value.String()
}

// Print represents a print statement.
type Print struct {
	PrintPos source.Pos
	LParen   source.Pos
	Arg      Expr
	RParen   source.Pos // NoPos when recovery stopped before ')'
}

func (s *Print) StmtNode() {}

// Pos returns the position of first character belonging to the node.
func (s *Print) Pos() source.Pos {
	return s.PrintPos
}

// End returns the position of first character immediately after the node.
func (s *Print) End() source.Pos {
	if s.RParen.IsValid() {
		return s.RParen + 1
	}
	return s.Arg.End()
}

func (s *Print) Tag() string      { return TagPrint }
func (s *Print) Label() string    { return "" }
func (s *Print) Children() []Node { return []Node{s.Arg} }

func (s *Print) String() string {
	return token.Print.Symbol() + "(" + s.Arg.String() + ")"
}

// Mission represents a named mission block.
type Mission struct {
	MissionPos source.Pos
	Name       *StringLit
	Block      *CodeBlock
}

func (s *Mission) StmtNode() {}

// Pos returns the position of first character belonging to the node.
func (s *Mission) Pos() source.Pos {
	return s.MissionPos
}

// End returns the position of first character immediately after the node.
func (s *Mission) End() source.Pos {
	return s.Block.End()
}

func (s *Mission) Tag() string      { return TagMission }
func (s *Mission) Label() string    { return s.Name.Value }
func (s *Mission) Children() []Node { return []Node{s.Block} }

func (s *Mission) String() string {
	return token.Mission.Symbol() + "(" + s.Name.String() + ") " + s.Block.String()
}

// CodeBlock represents a Do ... Done statement list.
type CodeBlock struct {
	DoPos   source.Pos
	Stmts   Stmts
	DonePos source.Pos
}

func (s *CodeBlock) StmtNode() {}

// Pos returns the position of first character belonging to the node.
func (s *CodeBlock) Pos() source.Pos {
	return s.DoPos
}

// End returns the position of first character immediately after the node.
func (s *CodeBlock) End() source.Pos {
	return s.DonePos + source.Pos(len(token.Done.Symbol()))
}

func (s *CodeBlock) Tag() string      { return TagCodeBlock }
func (s *CodeBlock) Label() string    { return "" }
func (s *CodeBlock) Children() []Node { return s.Stmts.Nodes() }

func (s *CodeBlock) String() string {
	if len(s.Stmts) == 0 {
		return token.Do.Symbol() + " " + token.Done.Symbol()
	}
	return token.Do.Symbol() + " " + s.Stmts.String() + " " + token.Done.Symbol()
}
