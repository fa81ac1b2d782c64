// Copyright (c) 2020-2023 Ozan Hacıbekiroğlu.
// Use of this source code is governed by a MIT License
// that can be found in the LICENSE file.

package token

import "strconv"

var keywords map[string]Token

// Token represents a token.
type Token int

// List of tokens
const (
	Illegal Token = iota
	EOF
	Comment
	EndLine
	LiteralBegin_
	Ident
	Number
	String
	Bool
	LiteralEnd_
	OperatorBegin_
	Add       // +
	Sub       // -
	Mul       // *
	Quo       // /
	Equal     // ==
	Greater   // >
	Less      // <
	GreaterEq // >=
	LessEq    // <=
	Assign    // =
	LParen    // (
	RParen    // )
	OperatorEnd_
	KeywordBegin_
	Do
	Done
	Print
	Mission
	Not
	KeywordEnd_
)

// names are the token type names used in diagnostics.
var names = [...]string{
	Illegal:   "ILLEGAL",
	EOF:       "EOF",
	Comment:   "COMMENT",
	EndLine:   "ENDLINE",
	Ident:     "ID",
	Number:    "NUMBER",
	String:    "STRING",
	Bool:      "BOOL",
	Add:       "PLUS",
	Sub:       "MINUS",
	Mul:       "TIMES",
	Quo:       "DIVIDE",
	Equal:     "EQ",
	Greater:   "GT",
	Less:      "LT",
	GreaterEq: "GE",
	LessEq:    "LE",
	Assign:    "ASSIGN",
	LParen:    "LPAREN",
	RParen:    "RPAREN",
	Do:        "BLOCK_BEGIN",
	Done:      "BLOCK_END",
	Print:     "PRINT",
	Mission:   "MISSION",
	Not:       "NOT",
}

var symbols = [...]string{
	Add:       "+",
	Sub:       "-",
	Mul:       "*",
	Quo:       "/",
	Equal:     "==",
	Greater:   ">",
	Less:      "<",
	GreaterEq: ">=",
	LessEq:    "<=",
	Assign:    "=",
	LParen:    "(",
	RParen:    ")",
	Do:        "Do",
	Done:      "Done",
	Print:     "Print",
	Mission:   "Mission",
	Not:       "Not",
}

// String returns the token type name as it appears in diagnostics.
func (tok Token) String() string {
	s := ""

	if 0 <= tok && tok < Token(len(names)) {
		s = names[tok]
	}

	if s == "" {
		s = "token(" + strconv.Itoa(int(tok)) + ")"
	}

	return s
}

// Symbol returns the source spelling of an operator or keyword token, or the
// type name for every other token.
func (tok Token) Symbol() string {
	if 0 <= tok && tok < Token(len(symbols)) && symbols[tok] != "" {
		return symbols[tok]
	}
	return tok.String()
}

// IsLiteral returns true if the token is a literal.
func (tok Token) IsLiteral() bool {
	return LiteralBegin_ < tok && tok < LiteralEnd_
}

// IsOperator returns true if the token is an operator.
func (tok Token) IsOperator() bool {
	return OperatorBegin_ < tok && tok < OperatorEnd_
}

// IsKeyword returns true if the token is a keyword.
func (tok Token) IsKeyword() bool {
	return KeywordBegin_ < tok && tok < KeywordEnd_
}

// IsComparison reports whether token is a relational or equality operator.
func (tok Token) IsComparison() bool {
	switch tok {
	case Equal, Greater, Less, GreaterEq, LessEq:
		return true
	}
	return false
}

// Is returns true if then token equals one of args.
func (tok Token) Is(other ...Token) bool {
	for _, o := range other {
		if o == tok {
			return true
		}
	}
	return false
}

// Boolean literal spellings.
const (
	TrueLiteral  = "True"
	FalseLiteral = "False"
)

// Lookup returns corresponding keyword if ident is a keyword. The boolean
// literal spellings are reserved too and resolve to Bool.
func Lookup(ident string) Token {
	if tok, isKeyword := keywords[ident]; isKeyword {
		return tok
	}
	return Ident
}

func init() {
	keywords = make(map[string]Token)
	for i := KeywordBegin_ + 1; i < KeywordEnd_; i++ {
		keywords[symbols[i]] = i
	}
	keywords[TrueLiteral] = Bool
	keywords[FalseLiteral] = Bool
}
