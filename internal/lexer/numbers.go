package lexer

import (
	"strconv"
	"strings"

	"github.com/btouchard/gdlint/internal/span"
	"github.com/btouchard/gdlint/internal/token"
)

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isBinDigit(ch rune) bool {
	return ch == '0' || ch == '1'
}

// scanNumber lexes decimal/binary/hex integers and float/scientific-float
// literals. Underscores used as digit-group separators are accepted inline
// and stripped by StripNumericSeparators before conversion.
func (l *Lexer) scanNumber(pos int) token.Token {
	if l.ch == '0' && (l.peekChar() == 'b' || l.peekChar() == 'B') {
		l.readChar()
		l.readChar()
		for isBinDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		return l.finishNumber(pos, token.BINARY_INT)
	}
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		return l.finishNumber(pos, token.HEX_INT)
	}

	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}

	kind := token.INT
	if l.ch == '.' && isDigit(l.peekChar()) {
		kind = token.FLOAT
		l.readChar()
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}

	if (l.ch == 'e' || l.ch == 'E') && (isDigit(l.peekChar()) ||
		((l.peekChar() == '+' || l.peekChar() == '-') && isDigit(l.peekCharAt(1)))) {
		kind = token.SCIENTIFIC
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}

	return l.finishNumber(pos, kind)
}

func (l *Lexer) finishNumber(pos int, kind token.Kind) token.Token {
	lit := l.input[pos:l.position]
	if _, _, err := ParseNumber(kind, lit); err != nil {
		l.addDiag(BadNumber, span.Span{Start: pos, End: l.position}, lit)
	}
	return token.Token{Kind: kind, Literal: lit, Span: span.Span{Start: pos, End: l.position}}
}

// StripNumericSeparators removes the `_` digit-group separators GDScript
// allows inside numeric literals.
func StripNumericSeparators(lit string) string {
	if !strings.ContainsRune(lit, '_') {
		return lit
	}
	return strings.ReplaceAll(lit, "_", "")
}

// ParseNumber converts a numeric literal's raw text into its integer or
// float value according to its token kind. It returns the integer value,
// the float value (for Float/Scientific kinds), and any conversion error.
func ParseNumber(kind token.Kind, lit string) (uint64, float64, error) {
	clean := StripNumericSeparators(lit)
	switch kind {
	case token.BINARY_INT:
		v, err := strconv.ParseUint(clean[2:], 2, 64)
		return v, 0, err
	case token.HEX_INT:
		v, err := strconv.ParseUint(clean[2:], 16, 64)
		return v, 0, err
	case token.INT:
		v, err := strconv.ParseUint(clean, 10, 64)
		return v, 0, err
	case token.FLOAT, token.SCIENTIFIC:
		v, err := strconv.ParseFloat(clean, 64)
		return 0, v, err
	default:
		return 0, 0, strconv.ErrSyntax
	}
}
