// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

// Package printer renders syntax trees as indented text trees.
package printer

import (
	"io"
	"strconv"

	"github.com/xlab/treeprint"

	"github.com/h2-lang/h2/parser"
	"github.com/h2-lang/h2/parser/node"
	"github.com/h2-lang/h2/parser/source"
)

// Config controls the tree output.
type Config struct {
	// Positions prefixes every node with its line:column.
	Positions bool
}

// Tree builds the tree of nodes under a root named name. file resolves node
// positions and may be nil when Positions is not set.
func (c *Config) Tree(name string, file *source.File, nodes ...node.Node) treeprint.Tree {
	root := treeprint.NewWithRoot(name)
	for _, n := range nodes {
		c.add(root, file, n)
	}
	return root
}

// Fprint writes the tree of nodes to w.
func (c *Config) Fprint(w io.Writer, name string, file *source.File, nodes ...node.Node) error {
	_, err := w.Write(c.Tree(name, file, nodes...).Bytes())
	return err
}

func (c *Config) add(t treeprint.Tree, file *source.File, n node.Node) {
	value := Label(n)
	children := n.Children()

	if c.Positions && file != nil {
		meta := file.Position(n.Pos())
		meta.File = nil
		if len(children) == 0 {
			t.AddMetaNode(meta, value)
			return
		}
		t = t.AddMetaBranch(meta, value)
	} else {
		if len(children) == 0 {
			t.AddNode(value)
			return
		}
		t = t.AddBranch(value)
	}

	for _, child := range children {
		c.add(t, file, child)
	}
}

// Label returns the one-line description of n: its tag followed by its
// label, if any. String labels are quoted.
func Label(n node.Node) string {
	label := n.Label()
	if label == "" {
		return n.Tag()
	}
	switch n.(type) {
	case *node.StringLit, *node.Mission:
		label = strconv.Quote(label)
	}
	return n.Tag() + " " + label
}

// Fprint writes the statements of f to w.
func Fprint(w io.Writer, f *parser.File) error {
	return (&Config{}).Fprint(w, f.InputFile.Name, f.InputFile, f.Stmts.Nodes()...)
}

// Sprint returns the tree of the statements of f.
func Sprint(f *parser.File) string {
	return (&Config{}).Tree(f.InputFile.Name, f.InputFile, f.Stmts.Nodes()...).String()
}
