package tallylang

// Evaluate runs both stages over a source: lex, then parse.
func Evaluate(source *Source) (int64, error) {
	tokens, err := NewLexer(source).Lex()
	if err != nil {
		return 0, err
	}
	return Parse(tokens)
}

// Eval is Evaluate for an anonymous input string.
func Eval(input string) (int64, error) {
	return Evaluate(NewSource("", input))
}
