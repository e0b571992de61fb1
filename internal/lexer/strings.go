package lexer

import (
	"github.com/btouchard/gdlint/internal/span"
	"github.com/btouchard/gdlint/internal/token"
)

// scanString lexes a quoted string literal of the given kind (plain,
// string-name, node, unique-node, or node-path — the prefix character, if
// any, has already been consumed by the caller). Embedded newlines are not
// permitted; reaching one, or EOF, before the closing quote is an
// UnclosedString error, and the lexer recovers by treating everything up
// to that point as the literal body.
func (l *Lexer) scanString(pos int, quote rune, kind token.Kind) token.Token {
	l.readChar() // consume opening quote
	bodyStart := l.position

	for l.ch != quote && l.ch != 0 && l.ch != '\n' && l.ch != '\r' {
		if l.ch == '\\' {
			l.readChar()
			if l.ch != 0 {
				l.readChar()
			}
			continue
		}
		l.readChar()
	}

	body := l.input[bodyStart:l.position]

	if l.ch == quote {
		l.readChar()
	} else {
		kind := UnclosedDouble
		if quote == '\'' {
			kind = UnclosedSingle
		}
		l.addDiag(kind, span.Span{Start: pos, End: l.position}, body)
	}

	return token.Token{Kind: kind, Literal: body, Span: span.Span{Start: pos, End: l.position}}
}
