package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/h2-lang/h2/token"
)

func TestLookup(t *testing.T) {
	for ident, expected := range map[string]token.Token{
		"Do":      token.Do,
		"Done":    token.Done,
		"Print":   token.Print,
		"Mission": token.Mission,
		"Not":     token.Not,
		"True":    token.Bool,
		"False":   token.Bool,
		"do":      token.Ident,
		"DONE":    token.Ident,
		"Printer": token.Ident,
		"x":       token.Ident,
	} {
		require.Equal(t, expected, token.Lookup(ident), ident)
	}
}

func TestTokenNames(t *testing.T) {
	require.Equal(t, "ID", token.Ident.String())
	require.Equal(t, "BLOCK_BEGIN", token.Do.String())
	require.Equal(t, "BLOCK_END", token.Done.String())
	require.Equal(t, "PLUS", token.Add.String())
	require.Equal(t, "EQ", token.Equal.String())
	require.Equal(t, "ENDLINE", token.EndLine.String())
	require.Equal(t, "token(999)", token.Token(999).String())

	require.Equal(t, "+", token.Add.Symbol())
	require.Equal(t, ">=", token.GreaterEq.Symbol())
	require.Equal(t, "Mission", token.Mission.Symbol())
	require.Equal(t, "NUMBER", token.Number.Symbol())
}

func TestTokenClasses(t *testing.T) {
	require.True(t, token.Number.IsLiteral())
	require.True(t, token.Bool.IsLiteral())
	require.False(t, token.Add.IsLiteral())
	require.True(t, token.LParen.IsOperator())
	require.True(t, token.Print.IsKeyword())
	require.False(t, token.Bool.IsKeyword())
	require.True(t, token.LessEq.IsComparison())
	require.False(t, token.Assign.IsComparison())
	require.True(t, token.Mul.Is(token.Add, token.Mul))
}

func TestPrecedenceTable(t *testing.T) {
	require.Equal(t, token.Precedence{Assoc: token.LeftAssoc, Level: token.AdditivePrec}, token.Add.BinaryPrecedence())
	require.Equal(t, token.Precedence{Assoc: token.LeftAssoc, Level: token.AdditivePrec}, token.Sub.BinaryPrecedence())
	require.Equal(t, token.Precedence{Assoc: token.LeftAssoc, Level: token.MultiplicativePrec}, token.Quo.BinaryPrecedence())
	require.Equal(t, token.LowestPrec, token.Equal.Precedence())
	require.Equal(t, token.LowestPrec, token.RParen.Precedence())

	p, ok := token.Sub.UnaryPrecedence()
	require.True(t, ok)
	require.Equal(t, token.RightAssoc, p.Assoc)
	require.Greater(t, p.Level, token.Mul.Precedence())

	not, ok := token.Not.UnaryPrecedence()
	require.True(t, ok)
	require.Greater(t, not.Level, p.Level)

	_, ok = token.Add.UnaryPrecedence()
	require.False(t, ok)
	require.Equal(t, "left", token.LeftAssoc.String())
}
