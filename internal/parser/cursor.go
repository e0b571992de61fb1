package parser

import (
	"github.com/btouchard/gdlint/internal/lexer"
	"github.com/btouchard/gdlint/internal/token"
)

// cursor wraps a Lexer with a one-token lookahead buffer and the
// parens-context mode: while active, NEWLINE/INDENT/DEDENT tokens are
// transparently skipped so bracketed constructs may span multiple lines.
// COMMENT tokens are always skipped; the lint engine consults the lexer's
// noqa table directly rather than seeing comments in the grammar.
type cursor struct {
	lex       *lexer.Lexer
	buffered  *token.Token
	parensCtx bool
}

func newCursor(l *lexer.Lexer) *cursor {
	return &cursor{lex: l}
}

func (c *cursor) rawNext() token.Token {
	for {
		t := c.lex.NextToken()
		if t.Kind == token.COMMENT {
			continue
		}
		if c.parensCtx && (t.Kind == token.NEWLINE || t.Kind == token.INDENT || t.Kind == token.DEDENT) {
			continue
		}
		return t
	}
}

// Peek returns the next token without consuming it.
func (c *cursor) Peek() token.Token {
	if c.buffered == nil {
		t := c.rawNext()
		c.buffered = &t
	}
	return *c.buffered
}

// Next consumes and returns the next token.
func (c *cursor) Next() token.Token {
	t := c.Peek()
	c.buffered = nil
	return t
}

// withParensCtx runs fn with parens-context set to active, restoring the
// prior value on exit (scoped acquisition). Nested uses compose correctly.
func (c *cursor) withParensCtx(active bool, fn func()) {
	prev := c.parensCtx
	c.parensCtx = active
	fn()
	c.parensCtx = prev
}
