package parser

import (
	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/token"
)

// parseVariableStmt parses a var/const/static-var declaration. p.cur is the
// `var`/`const` keyword on entry.
func (p *Parser) parseVariableStmt(kind ast.VariableKind) *ast.Variable {
	start := p.cur.Span.Start
	p.next()
	if !p.curIs(token.IDENT) {
		p.fatalf(p.cur.Span, "expected identifier, found %s", p.cur.Kind)
		return nil
	}
	v := p.parseVariableTail(p.cur.Literal, kind, start)
	return v
}

// parseVariableTail parses everything after the identifier in a variable
// body: `ε | = expr | := expr | : type | : type = expr |
// : NEWLINE INDENT (getter|setter){1,2} DEDENT |
// : type : NEWLINE INDENT (getter|setter){1,2} DEDENT`.
func (p *Parser) parseVariableTail(identifier string, kind ast.VariableKind, start int) *ast.Variable {
	v := &ast.Variable{Identifier: identifier, Kind: kind}

	switch {
	case p.peekIs(token.ASSIGN):
		p.next()
		p.next()
		v.Value = p.parseExpression(precLowest)
	case p.peekIs(token.INFER_ASSIGN):
		v.InferType = true
		p.next()
		p.next()
		v.Value = p.parseExpression(precLowest)
	case p.peekIs(token.COLON):
		p.next() // cur = ':'
		if p.peekIs(token.NEWLINE) {
			p.next() // cur = NEWLINE, start of getter/setter block
			p.parseAccessors(v)
		} else {
			p.next() // cur = type identifier
			v.Typehint = p.cur.Literal
			if p.peekIs(token.ASSIGN) {
				p.next()
				p.next()
				v.Value = p.parseExpression(precLowest)
			} else if p.peekIs(token.COLON) {
				p.next() // cur = second ':'
				p.next() // cur = NEWLINE
				p.parseAccessors(v)
			}
		}
	}

	v.Span_ = spanFrom(start, p.cur.Span.End)
	return v
}

// parseAccessors parses the `(getter|setter){1,2}` block after `var x:`.
// p.cur is NEWLINE on entry.
func (p *Parser) parseAccessors(v *ast.Variable) {
	if !p.expect(token.NEWLINE) {
		return
	}
	if !p.expect(token.INDENT) {
		return
	}
	for i := 0; i < 2; i++ {
		for p.curIs(token.NEWLINE) {
			p.next()
		}
		if p.curIs(token.DEDENT) || p.curIs(token.EOF) {
			break
		}
		if p.curIs(token.GET) {
			v.Getter = p.parseAccessorFunc()
		} else if p.curIs(token.SET) {
			v.Setter = p.parseAccessorFunc()
		} else {
			break
		}
		p.next()
	}
	for p.curIs(token.NEWLINE) {
		p.next()
	}
}

func (p *Parser) parseAccessorFunc() *ast.Function {
	start := p.cur.Span.Start
	name := p.cur.Literal
	fn := &ast.Function{Identifier: &name, IdentifierSpan: p.cur.Span}
	if p.peekIs(token.LPAREN) {
		p.next()
		params := p.parseParameterList()
		fn.Parameters = &params
	}
	if p.peekIs(token.COLON) {
		p.next()
		fn.Body = p.parseBlock()
	}
	fn.Span_ = spanFrom(start, p.cur.Span.End)
	return fn
}

// parseFunctionStmt parses `func name(params) -> type: block` or the
// parameterless `func name: block` form.
func (p *Parser) parseFunctionStmt(kind ast.FunctionKind) *ast.Function {
	start := p.cur.Span.Start
	p.next() // consume 'func'
	fn := &ast.Function{Kind: kind}
	if p.curIs(token.IDENT) {
		name := p.cur.Literal
		fn.Identifier = &name
		fn.IdentifierSpan = p.cur.Span
	}
	if p.peekIs(token.LPAREN) {
		p.next()
		params := p.parseParameterList()
		fn.Parameters = &params
	}
	if p.peekIs(token.ARROW) {
		p.next()
		p.next()
		rt := p.cur.Literal
		fn.ReturnType = &rt
	}
	if !p.expect2Peek(token.COLON) {
		return fn
	}
	fn.Body = p.parseBlock()
	fn.Span_ = spanFrom(start, p.cur.Span.End)
	return fn
}

// expect2Peek advances onto the peeked token if it matches k; used where
// the caller is still positioned on the token before the expected one.
func (p *Parser) expect2Peek(k token.Kind) bool {
	if p.peekIs(k) {
		p.next()
		return true
	}
	p.fatalf(p.cur.Span, "expected %s, found %s", k, p.peek().Kind)
	return false
}

// parseParameterList parses `(ident (: type)? (= default)?, ...)`. p.cur is
// LPAREN on entry; on exit p.cur is RPAREN.
func (p *Parser) parseParameterList() []*ast.Variable {
	var params []*ast.Variable
	p.withParens(func() {
		p.next() // past '('
		for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
			start := p.cur.Span.Start
			name := p.cur.Literal
			param := &ast.Variable{Identifier: name, Kind: ast.VarRegular}
			if p.peekIs(token.COLON) {
				p.next()
				p.next()
				param.Typehint = p.cur.Literal
			}
			if p.peekIs(token.ASSIGN) {
				p.next()
				p.next()
				param.Value = p.parseExpression(precLowest)
			}
			param.Span_ = spanFrom(start, p.cur.Span.End)
			params = append(params, param)
			if p.peekIs(token.COMMA) {
				p.next()
			}
			p.next()
		}
	})
	return params
}

// withParens runs fn with parens-context active for the duration of a
// bracketed construct, so that embedded newlines/indent changes are
// transparently skipped.
func (p *Parser) withParens(fn func()) {
	p.cursor.withParensCtx(true, fn)
}
