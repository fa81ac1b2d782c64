// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package parser

import (
	"github.com/h2-lang/h2/parser/node"
	"github.com/h2-lang/h2/parser/source"
)

const MainName = "(main)"

func NewSingleParser(input, fileName string, opts *ParserOptions, scannerOpts *ScannerOptions) *Parser {
	if fileName == "" {
		fileName = MainName
	}
	return NewParserWithOptions(source.NewFile(fileName, []byte(input)), opts, scannerOpts)
}

func Parse(input, fileName string, opts *ParserOptions, scannerOpts *ScannerOptions) (*File, error) {
	return NewSingleParser(input, fileName, opts, scannerOpts).ParseFile()
}

// ParseExpr parses input as a single expression.
func ParseExpr(input string, opts *ParserOptions) (node.Expr, ErrorList, error) {
	p := NewSingleParser(input, "", opts, nil)
	x, err := p.ParseExpr()
	return x, p.Errors, err
}

// Tokenize returns the tokens of input, EOF excluded, with the lexical
// errors found.
func Tokenize(input, fileName string, opts *ScannerOptions) ([]Token, ErrorList) {
	if fileName == "" {
		fileName = MainName
	}
	var errs ErrorList
	s := NewScanner(source.NewFile(fileName, []byte(input)), opts)
	s.ErrorHandler(func(e *Error) {
		errs = append(errs, e)
	})
	return s.List(), errs
}
