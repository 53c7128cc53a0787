package tallylang

import "fmt"

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenNumber
	TokenPlus
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "Number"
	case TokenPlus:
		return "Plus"
	}
	return "Invalid"
}

// Token is one lexeme of an expression. Value is meaningful only for
// TokenNumber tokens.
type Token struct {
	Kind  TokenKind
	Value int64
	Pos   Pos
}

func (t Token) String() string {
	if t.Kind == TokenNumber {
		return fmt.Sprintf("Number(%d)", t.Value)
	}
	return t.Kind.String()
}
