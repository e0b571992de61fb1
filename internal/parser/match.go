package parser

import (
	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/token"
)

// parseMatch parses `match expr: NEWLINE INDENT arm+ DEDENT`.
func (p *Parser) parseMatch() *ast.Match {
	start := p.cur.Span.Start
	p.next()
	expr := p.parseExpression(precLowest)
	m := &ast.Match{Expr: expr}

	if !p.expect2Peek(token.COLON) {
		m.Span_ = spanFrom(start, p.cur.Span.End)
		return m
	}
	p.next() // past ':'
	if !p.expect(token.NEWLINE) {
		m.Span_ = spanFrom(start, p.cur.Span.End)
		return m
	}
	if !p.curIs(token.INDENT) {
		p.fatalf(p.cur.Span, "expected an indented match body, found %s", p.cur.Kind)
		m.Span_ = spanFrom(start, p.cur.Span.End)
		return m
	}
	p.next() // consume INDENT

	for {
		for p.curIs(token.NEWLINE) {
			p.next()
		}
		if p.curIs(token.DEDENT) || p.curIs(token.EOF) || p.fatal {
			break
		}
		m.Arms = append(m.Arms, p.parseMatchArm())
		p.next()
		if p.fatal {
			break
		}
	}
	m.Span_ = spanFrom(start, p.cur.Span.End)
	return m
}

// parseMatchArm parses `pattern (, pattern)* (when guard)? : block`. A
// comma-separated pattern list wraps into a single PatternAlternative.
func (p *Parser) parseMatchArm() *ast.MatchArm {
	start := p.cur.Span.Start
	first := p.parseMatchPattern()

	pattern := first
	if p.peekIs(token.COMMA) {
		alts := []*ast.MatchPattern{first}
		for p.peekIs(token.COMMA) {
			p.next()
			p.next()
			alts = append(alts, p.parseMatchPattern())
		}
		pattern = &ast.MatchPattern{
			Kind:  ast.PatternAlternative{Alternatives: alts},
			Span_: spanFrom(start, p.cur.Span.End),
		}
	}

	var guard *ast.Expr
	if p.peekIs(token.WHEN) {
		p.next()
		p.next()
		guard = p.parseExpression(precLowest)
	}

	if !p.expect2Peek(token.COLON) {
		return &ast.MatchArm{Pattern: pattern, Guard: guard, Span_: spanFrom(start, p.cur.Span.End)}
	}
	block := p.parseBlock()
	return &ast.MatchArm{Pattern: pattern, Guard: guard, Block: block, Span_: spanFrom(start, p.cur.Span.End)}
}

// parseMatchPattern dispatches on the current token to the matching
// pattern form: `..` (Ignore), `var IDENT` (Binding), `[...]` (Array),
// `{...}` (Dictionary), or any other expression (Value).
func (p *Parser) parseMatchPattern() *ast.MatchPattern {
	start := p.cur.Span.Start
	switch {
	case p.curIs(token.RANGE):
		return &ast.MatchPattern{Kind: ast.PatternIgnore{}, Span_: p.cur.Span}
	case p.curIs(token.VAR):
		p.next()
		binding := ast.NewBinding(p.cur.Literal, "", p.cur.Span)
		return &ast.MatchPattern{Kind: ast.PatternBinding{Variable: binding}, Span_: spanFrom(start, p.cur.Span.End)}
	case p.curIs(token.LBRACKET):
		return p.parseArrayPattern()
	case p.curIs(token.LBRACE):
		return p.parseDictPattern()
	default:
		expr := p.parseExpression(precLowest)
		return &ast.MatchPattern{Kind: ast.PatternValue{Expr: expr}, Span_: spanFrom(start, p.cur.Span.End)}
	}
}

func (p *Parser) parseArrayPattern() *ast.MatchPattern {
	start := p.cur.Span.Start
	var elems []*ast.MatchPattern
	p.withParens(func() {
		p.next() // past '['
		for !p.curIs(token.RBRACKET) && !p.curIs(token.EOF) && !p.fatal {
			elems = append(elems, p.parseMatchPattern())
			if p.peekIs(token.COMMA) {
				p.next()
			}
			p.next()
		}
	})
	return &ast.MatchPattern{Kind: ast.PatternArray{Elements: elems}, Span_: spanFrom(start, p.cur.Span.End)}
}

func (p *Parser) parseDictPattern() *ast.MatchPattern {
	start := p.cur.Span.Start
	var entries []*ast.PatternDictEntry
	p.withParens(func() {
		p.next() // past '{'
		for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) && !p.fatal {
			if p.curIs(token.RANGE) {
				entries = append(entries, &ast.PatternDictEntry{
					SubPat: &ast.MatchPattern{Kind: ast.PatternIgnore{}, Span_: p.cur.Span},
				})
				if p.peekIs(token.COMMA) {
					p.next()
				}
				p.next()
				continue
			}
			key := p.parseExpression(precLowest)
			var sub *ast.MatchPattern
			if p.peekIs(token.COLON) {
				p.next()
				p.next()
				sub = p.parseMatchPattern()
			}
			entries = append(entries, &ast.PatternDictEntry{Key: key, SubPat: sub})
			if p.peekIs(token.COMMA) {
				p.next()
			}
			p.next()
		}
	})
	return &ast.MatchPattern{Kind: ast.PatternDictionary{Entries: entries}, Span_: spanFrom(start, p.cur.Span.End)}
}
