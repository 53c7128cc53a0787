package tallylang

import (
	"errors"
	"testing"
)

func num(value int64) Token {
	return Token{Kind: TokenNumber, Value: value}
}

func plus() Token {
	return Token{Kind: TokenPlus}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		value  int64
	}{
		{
			name:   "single number",
			tokens: []Token{num(42)},
			value:  42,
		},
		{
			name:   "zero",
			tokens: []Token{num(0)},
			value:  0,
		},
		{
			name:   "one plus",
			tokens: []Token{num(10), plus(), num(3)},
			value:  13,
		},
		{
			name:   "two pluses",
			tokens: []Token{num(10), plus(), num(3), plus(), num(5)},
			value:  18,
		},
		{
			name:   "long chain",
			tokens: []Token{num(1), plus(), num(2), plus(), num(3), plus(), num(4), plus(), num(5)},
			value:  15,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, err := Parse(test.tokens)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if value != test.value {
				t.Errorf("expected %d, got %d", test.value, value)
			}
		})
	}
}

func TestParseUnexpectedEnd(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
	}{
		{
			name:   "empty",
			tokens: nil,
		},
		{
			name:   "dangling plus",
			tokens: []Token{num(10), plus()},
		},
		{
			name:   "dangling plus after chain",
			tokens: []Token{num(10), plus(), num(3), plus()},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.tokens)
			var unexpected UnexpectedEndError
			if !errors.As(err, &unexpected) {
				t.Fatalf("expected UnexpectedEndError, got %v", err)
			}
		})
	}
}

func TestParseInvalidToken(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		bad    Token
	}{
		{
			name:   "plus only",
			tokens: []Token{plus()},
			bad:    plus(),
		},
		{
			name:   "leading plus",
			tokens: []Token{plus(), num(1)},
			bad:    plus(),
		},
		{
			name:   "two numbers in a row",
			tokens: []Token{num(1), num(2)},
			bad:    num(2),
		},
		{
			name:   "number after chain",
			tokens: []Token{num(10), plus(), num(3), num(5)},
			bad:    num(5),
		},
		{
			name:   "two pluses in a row",
			tokens: []Token{num(1), plus(), plus(), num(2)},
			bad:    plus(),
		},
		{
			name:   "invalid kind",
			tokens: []Token{num(1), {Kind: TokenInvalid}},
			bad:    Token{Kind: TokenInvalid},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.tokens)
			var invalid InvalidTokenError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidTokenError, got %v", err)
			}
			if invalid.Token.Kind != test.bad.Kind || invalid.Token.Value != test.bad.Value {
				t.Errorf("expected offending token %v, got %v", test.bad, invalid.Token)
			}
		})
	}
}

func TestParserSingleUse(t *testing.T) {
	parser := NewParser([]Token{num(10), plus(), num(3)})
	value, err := parser.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 13 {
		t.Fatalf("expected 13, got %d", value)
	}
	// the cursor stays at the end, so a reparse sees an empty sequence
	_, err = parser.Parse()
	var unexpected UnexpectedEndError
	if !errors.As(err, &unexpected) {
		t.Fatalf("expected UnexpectedEndError on reuse, got %v", err)
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		value int64
	}{
		{"10 + 3", 13},
		{"10 + 3 + 5", 18},
		{"42", 42},
		{"0 + 0", 0},
		{"1+2+3+4+5+6+7+8+9+10", 55},
		{"  7  +  8  ", 15},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			value, err := Eval(test.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if value != test.value {
				t.Errorf("expected %d, got %d", test.value, value)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	run := func(input string, target any) {
		t.Helper()
		_, err := Eval(input)
		if err == nil {
			t.Fatalf("input %q: expected error", input)
		}
		if !errors.As(err, target) {
			t.Fatalf("input %q: expected %T, got %v", input, target, err)
		}
	}

	run("", &UnexpectedEndError{})
	run("   ", &UnexpectedEndError{})
	run("1 +", &UnexpectedEndError{})
	run("+ 1", &InvalidTokenError{})
	run("1 2", &InvalidTokenError{})
	run("1 ++ 2", &InvalidTokenError{})
	run("1 & 2", &InvalidCharError{})
	run("99999999999999999999 + 1", &NumberOverflowError{})
}
