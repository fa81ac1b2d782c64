package token

// Assoc is the associativity of an operator.
type Assoc uint8

const (
	NonAssoc Assoc = iota
	LeftAssoc
	RightAssoc
)

func (a Assoc) String() string {
	switch a {
	case LeftAssoc:
		return "left"
	case RightAssoc:
		return "right"
	}
	return "nonassoc"
}

// Precedence is an entry of the operator precedence table.
type Precedence struct {
	Assoc Assoc
	Level int
}

// LowestPrec represents lowest operator precedence.
const LowestPrec = 0

// Levels of the operator precedence table, lowest binding first.
const (
	AdditivePrec = iota + 1
	MultiplicativePrec
	UnaryMinusPrec
	NotPrec
)

var (
	binaryPrecedences = map[Token]Precedence{
		Add: {LeftAssoc, AdditivePrec},
		Sub: {LeftAssoc, AdditivePrec},
		Mul: {LeftAssoc, MultiplicativePrec},
		Quo: {LeftAssoc, MultiplicativePrec},
	}
	unaryPrecedences = map[Token]Precedence{
		Sub: {RightAssoc, UnaryMinusPrec},
		Not: {RightAssoc, NotPrec},
	}
)

// BinaryPrecedence returns the precedence of tok used as an infix operator.
// Tokens that are not arithmetic operators have LowestPrec.
func (tok Token) BinaryPrecedence() Precedence {
	return binaryPrecedences[tok]
}

// UnaryPrecedence returns the precedence of tok used as a prefix operator and
// whether tok is a prefix operator at all.
func (tok Token) UnaryPrecedence() (p Precedence, ok bool) {
	p, ok = unaryPrecedences[tok]
	return
}

// Precedence returns the binary precedence level for the operator token.
func (tok Token) Precedence() int {
	return tok.BinaryPrecedence().Level
}
