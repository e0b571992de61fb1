package parser

import (
	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/token"
)

// parseBlock parses `NEWLINE INDENT statement+ DEDENT`. p.cur must be the
// ':' that opens the block on entry; on exit p.cur is the DEDENT that ended
// the block.
func (p *Parser) parseBlock() []ast.Statement {
	return p.parseBlockMode(false)
}

// parseLambdaBlock additionally terminates the block on any closing
// bracket, as used when parsing a lambda's body inside a parenthesized
// expression.
func (p *Parser) parseLambdaBlock() []ast.Statement {
	return p.parseBlockMode(true)
}

func isClosingBracket(k token.Kind) bool {
	return k == token.RPAREN || k == token.RBRACKET || k == token.RBRACE
}

func (p *Parser) parseBlockMode(lambdaMode bool) []ast.Statement {
	p.next() // past ':'
	if !p.expect(token.NEWLINE) {
		return nil
	}
	if !p.curIs(token.INDENT) {
		p.fatalf(p.cur.Span, "expected an indented block, found %s", p.cur.Kind)
		return nil
	}
	p.next() // consume INDENT

	var stmts []ast.Statement
	for {
		for p.curIs(token.NEWLINE) || p.curIs(token.SEMICOLON) {
			p.next()
		}
		if p.curIs(token.DEDENT) || p.curIs(token.EOF) || p.fatal {
			break
		}
		if lambdaMode && isClosingBracket(p.cur.Kind) {
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.next()
		if p.fatal {
			break
		}
	}
	return stmts
}
