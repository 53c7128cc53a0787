package tallylang

// Parser reduces a token sequence to the value of the expression
//
//	Expr := Number (Plus Number)*
//
// in a single forward pass. A Parser is good for one call to Parse.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

// Parse evaluates the expression and returns the sum of its numbers.
func (p *Parser) Parse() (int64, error) {
	token, ok := p.next()
	if !ok {
		return 0, UnexpectedEndError{}
	}
	if token.Kind != TokenNumber {
		return 0, InvalidTokenError{Token: token}
	}
	value := token.Value
	for {
		token, ok := p.next()
		if !ok {
			return value, nil
		}
		switch token.Kind {

		case TokenPlus:
			operand, ok := p.next()
			if !ok {
				return 0, UnexpectedEndError{}
			}
			if operand.Kind != TokenNumber {
				return 0, InvalidTokenError{Token: operand}
			}
			value += operand.Value

		default:
			// a second number with no operator, or a token no rule
			// produces
			return 0, InvalidTokenError{Token: token}

		}
	}
}

// next returns the token under the cursor and advances. The second return is
// false once the sequence is exhausted; further calls stay at the end.
func (p *Parser) next() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	token := p.tokens[p.pos]
	p.pos++
	return token, true
}

// Parse evaluates tokens as produced by Lex.
func Parse(tokens []Token) (int64, error) {
	return NewParser(tokens).Parse()
}
