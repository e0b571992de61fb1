// Package parser implements a recursive-descent parser with a Pratt-style
// precedence climber for expressions, turning a GDScript token stream into
// an *ast.File.
package parser

import (
	"fmt"

	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/diag"
	"github.com/btouchard/gdlint/internal/lexer"
	"github.com/btouchard/gdlint/internal/span"
	"github.com/btouchard/gdlint/internal/token"
)

// Parser turns a token stream into an ast.File. It is strict: an
// unexpected token is a fatal error reported via a diagnostic carrying the
// offending token's span, and parsing of the current file stops. The
// parser does not re-check lex errors — the lexer already reported those.
type Parser struct {
	lex    *lexer.Lexer
	cursor *cursor
	cur    token.Token

	diagnostics []*diag.Diagnostic
	fatal       bool

	prefix map[token.Kind]prefixFn
	infix  map[token.Kind]infixFn
}

type prefixFn func(p *Parser) *ast.Expr
type infixFn func(p *Parser, left *ast.Expr) *ast.Expr

// New creates a Parser reading from a freshly constructed Lexer over
// source.
func New(source string) *Parser {
	l := lexer.New(source)
	p := &Parser{lex: l, cursor: newCursor(l)}
	p.prefix = map[token.Kind]prefixFn{
		token.IDENT:       (*Parser).parseIdentifier,
		token.INT:         (*Parser).parseNumber,
		token.BINARY_INT:  (*Parser).parseNumber,
		token.HEX_INT:     (*Parser).parseNumber,
		token.FLOAT:       (*Parser).parseFloat,
		token.SCIENTIFIC:  (*Parser).parseFloat,
		token.STRING:      (*Parser).parseString,
		token.STRING_NAME: (*Parser).parseString,
		token.NODE:        (*Parser).parseString,
		token.UNIQUE_NODE: (*Parser).parseString,
		token.NODE_PATH:   (*Parser).parseString,
		token.TRUE:        (*Parser).parseBool,
		token.FALSE:       (*Parser).parseBool,
		token.NULL:        (*Parser).parseNull,
		token.SELF:        (*Parser).parseIdentifier,
		token.LPAREN:      (*Parser).parseGroup,
		token.LBRACKET:    (*Parser).parseArray,
		token.LBRACE:      (*Parser).parseDictionary,
		token.AWAIT:       p.parsePrefix(ast.PrefixAwait),
		token.PLUS:        p.parsePrefix(ast.PrefixIdentity),
		token.MINUS:       p.parsePrefix(ast.PrefixNegation),
		token.NOT:         p.parsePrefix(ast.PrefixNot),
		token.BANG:        p.parsePrefix(ast.PrefixNot),
		token.TILDE:       p.parsePrefix(ast.PrefixBitwiseNot),
		token.FUNC:        (*Parser).parseLambda,
	}
	p.infix = map[token.Kind]infixFn{
		token.LPAREN:   (*Parser).parseCall,
		token.LBRACKET: (*Parser).parseSubscript,
		token.DOT:      (*Parser).parseProperty,
		token.IF:       (*Parser).parseTernary,
	}
	for _, k := range []token.Kind{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.POWER,
		token.AMP, token.PIPE, token.CARET, token.SHL, token.SHR,
		token.EQ, token.NOT_EQ, token.LT, token.LT_EQ, token.GT, token.GT_EQ,
		token.AND, token.SYM_AND, token.OR, token.SYM_OR,
		token.IN, token.NOT_IN, token.IS, token.AS, token.RANGE,
		token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN,
		token.SLASH_ASSIGN, token.PERCENT_ASSIGN, token.POWER_ASSIGN,
		token.AMP_ASSIGN, token.PIPE_ASSIGN, token.CARET_ASSIGN,
		token.SHL_ASSIGN, token.SHR_ASSIGN,
	} {
		p.infix[k] = (*Parser).parseBinary
	}

	p.cur = p.cursor.Next()
	return p
}

// ParseFile parses the complete token stream into an ast.File. It also
// returns the parse diagnostics followed by the lex diagnostics, and the
// lexer's noqa table.
func ParseFile(source string) (*ast.File, []*diag.Diagnostic, map[int]map[string]bool) {
	p := New(source)
	body := p.parseTopLevel()
	p.diagnostics = append(p.diagnostics, lexDiagnostics(p.lex)...)
	return &ast.File{Body: body}, p.diagnostics, p.lex.Noqas()
}

func lexDiagnostics(l *lexer.Lexer) []*diag.Diagnostic {
	var out []*diag.Diagnostic
	for _, d := range l.Diagnostics() {
		out = append(out, diag.New(string(d.Kind)+": "+d.Text, diag.Warning).WithCode(string(d.Kind)).WithSpan(d.Span))
	}
	return out
}

// Diagnostics returns parse-time diagnostics accumulated so far.
func (p *Parser) Diagnostics() []*diag.Diagnostic { return p.diagnostics }

func (p *Parser) parseTopLevel() []ast.Statement {
	var body []ast.Statement
	for {
		for p.curIs(token.NEWLINE) || p.curIs(token.SEMICOLON) || p.curIs(token.DEDENT) {
			p.next()
		}
		if p.curIs(token.EOF) || p.fatal {
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			body = append(body, stmt)
		}
		p.next()
		if p.fatal {
			break
		}
	}
	return body
}

// ------------------------------------------------------------------ cursor

func (p *Parser) next() {
	p.cur = p.cursor.Next()
}

func (p *Parser) peek() token.Token {
	return p.cursor.Peek()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.cursor.Peek().Kind == k }

// expect verifies the current token's kind and advances past it, reporting
// a fatal error and halting the parse otherwise.
func (p *Parser) expect(k token.Kind) bool {
	if p.curIs(k) {
		p.next()
		return true
	}
	p.fatalf(p.cur.Span, "expected %s, found %s", k, p.cur.Kind)
	return false
}

func (p *Parser) fatalf(sp span.Span, format string, args ...any) {
	if p.fatal {
		return
	}
	p.fatal = true
	msg := fmt.Sprintf(format, args...)
	p.diagnostics = append(p.diagnostics, diag.New(msg, diag.Error).WithSpan(sp))
}

func (p *Parser) startSpan() int { return p.cur.Span.Start }
func (p *Parser) endSpan() int   { return p.cur.Span.End }
