package tallylang

import "math"

// Lexer scans a source left to right, one rune of lookahead, and never backs
// up. Each call to Lex consumes the whole input.
type Lexer struct {
	source *Source
	src    []rune
	pos    int
	line   int
	col    int
}

func NewLexer(source *Source) *Lexer {
	return &Lexer{
		source: source,
		src:    []rune(source.Content),
		line:   1,
		col:    1,
	}
}

// Lex tokenizes the whole source. Spaces separate tokens and produce none.
// The first rune with no lexing rule aborts the scan with InvalidCharError.
func (l *Lexer) Lex() ([]Token, error) {
	var tokens []Token
	for {
		r, ok := l.peek()
		if !ok {
			return tokens, nil
		}
		switch {

		case isDigit(r):
			token, err := l.scanNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)

		case r == '+':
			tokens = append(tokens, Token{
				Kind: TokenPlus,
				Pos:  l.at(),
			})
			l.advance()

		case r == ' ':
			l.advance()

		default:
			return nil, InvalidCharError{
				Char: r,
				Pos:  l.at(),
			}

		}
	}
}

// scanNumber consumes a maximal run of decimal digits. The caller has
// checked that the current rune is a digit.
func (l *Lexer) scanNumber() (Token, error) {
	pos := l.at()
	start := l.pos
	var value int64
	for {
		r, ok := l.peek()
		if !ok || !isDigit(r) {
			break
		}
		digit := int64(r - '0')
		if value > (math.MaxInt64-digit)/10 {
			// consume the rest of the run so the error names the
			// whole literal
			for {
				r, ok := l.peek()
				if !ok || !isDigit(r) {
					break
				}
				l.advance()
			}
			return Token{}, NumberOverflowError{
				Digits: string(l.src[start:l.pos]),
				Pos:    pos,
			}
		}
		value = value*10 + digit
		l.advance()
	}
	return Token{
		Kind:  TokenNumber,
		Value: value,
		Pos:   pos,
	}, nil
}

func (l *Lexer) peek() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

// advance moves the cursor past the current rune. Advancing past the end is
// a bug in the caller, not an input error.
func (l *Lexer) advance() {
	if l.pos >= len(l.src) {
		panic("tallylang: lexer advanced past end of input")
	}
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) at() Pos {
	return Pos{
		Source: l.source,
		Offset: l.pos,
		Line:   l.line,
		Column: l.col,
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Lex tokenizes input in a single pass.
func Lex(input string) ([]Token, error) {
	return NewLexer(NewSource("", input)).Lex()
}
