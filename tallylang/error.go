package tallylang

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidCharError reports a rune the lexer has no rule for.
type InvalidCharError struct {
	Char rune
	Pos  Pos
}

func (e InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q", e.Char)
}

func (e InvalidCharError) Position() Pos {
	return e.Pos
}

// NumberOverflowError reports a digit run whose value does not fit in int64.
type NumberOverflowError struct {
	Digits string
	Pos    Pos
}

func (e NumberOverflowError) Error() string {
	return fmt.Sprintf("number out of range: %s", e.Digits)
}

func (e NumberOverflowError) Position() Pos {
	return e.Pos
}

// UnexpectedEndError reports a token sequence that stops where the grammar
// still expects a token.
type UnexpectedEndError struct{}

func (e UnexpectedEndError) Error() string {
	return "unexpected end of input"
}

// InvalidTokenError reports a token the grammar does not allow at the
// position it occurs.
type InvalidTokenError struct {
	Token Token
}

func (e InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %s", e.Token)
}

func (e InvalidTokenError) Position() Pos {
	return e.Token.Pos
}

type positioned interface {
	error
	Position() Pos
}

// Annotate renders err with the source line and a caret under the offending
// column, when err carries a position into a known source. Otherwise it
// returns the plain error message.
func Annotate(err error) string {
	var pe positioned
	if !errors.As(err, &pe) {
		return err.Error()
	}
	pos := pe.Position()
	if pos.Source == nil || pos.Line < 1 || pos.Line > len(pos.Source.Lines) {
		return err.Error()
	}
	line := pos.Source.Lines[pos.Line-1]
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\nat %s\n", err.Error(), pos)
	sb.WriteString(line)
	sb.WriteByte('\n')
	for i, r := range []rune(line) {
		if i >= pos.Column-1 {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runeWidth(r)))
	}
	sb.WriteByte('^')
	return sb.String()
}

var wideRanges = [][2]rune{
	{0x1100, 0x115F},
	{0x2E80, 0x303E},
	{0x3041, 0x33FF},
	{0x3400, 0x4DBF},
	{0x4E00, 0x9FFF},
	{0xA000, 0xA4CF},
	{0xAC00, 0xD7A3},
	{0xF900, 0xFAFF},
	{0xFE30, 0xFE4F},
	{0xFF00, 0xFF60},
	{0xFFE0, 0xFFE6},
	{0x20000, 0x2FFFD},
	{0x30000, 0x3FFFD},
}

func runeWidth(r rune) int {
	for _, rg := range wideRanges {
		if r >= rg[0] && r <= rg[1] {
			return 2
		}
	}
	return 1
}
