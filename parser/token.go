// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package parser

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/h2-lang/h2/parser/source"
	"github.com/h2-lang/h2/token"
)

// Token is a classified lexeme. Value holds the decoded value: a
// decimal.Decimal for numbers, a string for identifiers, strings and
// comments, a bool for booleans and nil otherwise.
type Token struct {
	Token   token.Token
	Literal string
	Value   any
	Pos     source.Pos
	Line    int
}

var _ fmt.Stringer = Token{}

func (t Token) String() string {
	return t.Token.String() + "(" + t.ValueString() + ")"
}

// ValueString returns the token value as shown in diagnostics.
func (t Token) ValueString() string {
	switch v := t.Value.(type) {
	case decimal.Decimal:
		return v.String()
	case string:
		return v
	case bool:
		if v {
			return token.TrueLiteral
		}
		return token.FalseLiteral
	}
	switch t.Token {
	case token.EndLine, token.EOF:
		return t.Token.String()
	}
	if t.Literal != "" {
		return t.Literal
	}
	return t.Token.Symbol()
}
