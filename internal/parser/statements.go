package parser

import (
	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/token"
)

// parseStatement dispatches on the current token's kind to the matching
// per-keyword parser. Unknown starting tokens are parsed as expression
// statements.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Kind {
	case token.VAR:
		return p.parseVariableStmt(ast.VarRegular)
	case token.CONST:
		return p.parseVariableStmt(ast.VarConst)
	case token.STATIC:
		p.next()
		switch p.cur.Kind {
		case token.VAR:
			return p.parseVariableStmt(ast.VarStatic)
		case token.FUNC:
			return p.parseFunctionStmt(ast.FuncStatic)
		default:
			p.fatalf(p.cur.Span, "expected var or func after static, found %s", p.cur.Kind)
			return nil
		}
	case token.IF:
		return p.parseIf()
	case token.ELIF:
		return p.parseElif()
	case token.ELSE:
		return p.parseElse()
	case token.FOR:
		return p.parseFor()
	case token.WHILE:
		return p.parseWhile()
	case token.MATCH:
		return p.parseMatch()
	case token.FUNC:
		return p.parseFunctionStmt(ast.FuncRegular)
	case token.CLASS:
		return p.parseClass()
	case token.CLASS_NAME:
		return p.parseClassName()
	case token.EXTENDS:
		return p.parseExtends()
	case token.ENUM:
		return p.parseEnum()
	case token.SIGNAL:
		return p.parseSignal()
	case token.AT:
		return p.parseAnnotation()
	case token.ASSERT:
		return p.parseAssert()
	case token.BREAK:
		return &ast.Break{Span_: p.cur.Span}
	case token.BREAKPOINT:
		return &ast.Breakpoint{Span_: p.cur.Span}
	case token.CONTINUE:
		return &ast.Continue{Span_: p.cur.Span}
	case token.PASS:
		return &ast.Pass{Span_: p.cur.Span}
	case token.RETURN:
		return p.parseReturn()
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseIf() *ast.If {
	start := p.cur.Span.Start
	p.next()
	cond := p.parseExpression(precLowest)
	if !p.expect2Peek(token.COLON) {
		return &ast.If{Condition: cond, Span_: spanFrom(start, p.cur.Span.End)}
	}
	block := p.parseBlock()
	return &ast.If{Condition: cond, Block: block, Span_: spanFrom(start, p.cur.Span.End)}
}

func (p *Parser) parseElif() *ast.Elif {
	start := p.cur.Span.Start
	p.next()
	cond := p.parseExpression(precLowest)
	if !p.expect2Peek(token.COLON) {
		return &ast.Elif{Condition: cond, Span_: spanFrom(start, p.cur.Span.End)}
	}
	block := p.parseBlock()
	return &ast.Elif{Condition: cond, Block: block, Span_: spanFrom(start, p.cur.Span.End)}
}

func (p *Parser) parseElse() *ast.Else {
	start := p.cur.Span.Start
	if !p.expect2Peek(token.COLON) {
		return &ast.Else{Span_: spanFrom(start, p.cur.Span.End)}
	}
	block := p.parseBlock()
	return &ast.Else{Block: block, Span_: spanFrom(start, p.cur.Span.End)}
}

// parseFor parses `for IDENT (':' type)? in expr : block`. The binding
// desugars to an ast.Variable with Kind=VarBinding, InferType=true.
func (p *Parser) parseFor() *ast.For {
	start := p.cur.Span.Start
	p.next() // consume 'for'
	bindStart := p.cur.Span.Start
	name := p.cur.Literal
	typehint := ""
	if p.peekIs(token.COLON) {
		p.next()
		p.next()
		typehint = p.cur.Literal
	}
	binding := ast.NewBinding(name, typehint, spanFrom(bindStart, p.cur.Span.End))

	if !p.expect2Peek(token.IN) {
		return &ast.For{Binding: binding, Span_: spanFrom(start, p.cur.Span.End)}
	}
	p.next()
	container := p.parseExpression(precLowest)
	if !p.expect2Peek(token.COLON) {
		return &ast.For{Binding: binding, Container: container, Span_: spanFrom(start, p.cur.Span.End)}
	}
	block := p.parseBlock()
	return &ast.For{Binding: binding, Container: container, Block: block, Span_: spanFrom(start, p.cur.Span.End)}
}

func (p *Parser) parseWhile() *ast.While {
	start := p.cur.Span.Start
	p.next()
	cond := p.parseExpression(precLowest)
	if !p.expect2Peek(token.COLON) {
		return &ast.While{Condition: cond, Span_: spanFrom(start, p.cur.Span.End)}
	}
	block := p.parseBlock()
	return &ast.While{Condition: cond, Block: block, Span_: spanFrom(start, p.cur.Span.End)}
}

func (p *Parser) parseClass() *ast.Class {
	start := p.cur.Span.Start
	c := &ast.Class{}
	if p.peekIs(token.IDENT) {
		p.next()
		name := p.cur.Literal
		c.Identifier = &name
	}
	if !p.expect2Peek(token.COLON) {
		return c
	}
	c.Body = p.parseBlock()
	c.Span_ = spanFrom(start, p.cur.Span.End)
	return c
}

func (p *Parser) parseClassName() *ast.ClassName {
	start := p.cur.Span.Start
	if !p.expect2Peek(token.IDENT) {
		return &ast.ClassName{Span_: spanFrom(start, p.cur.Span.End)}
	}
	return &ast.ClassName{Identifier: p.cur.Literal, Span_: spanFrom(start, p.cur.Span.End)}
}

func (p *Parser) parseExtends() *ast.Extends {
	start := p.cur.Span.Start
	if !p.expect2Peek(token.IDENT) {
		return &ast.Extends{Span_: spanFrom(start, p.cur.Span.End)}
	}
	return &ast.Extends{Identifier: p.cur.Literal, Span_: spanFrom(start, p.cur.Span.End)}
}

func (p *Parser) parseEnum() *ast.Enum {
	start := p.cur.Span.Start
	e := &ast.Enum{}
	if p.peekIs(token.IDENT) {
		p.next()
		name := p.cur.Literal
		e.Identifier = &name
	}
	if !p.expect2Peek(token.LBRACE) {
		return e
	}
	p.withParens(func() {
		p.next() // past '{'
		for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
			vStart := p.cur.Span.Start
			variant := &ast.EnumVariant{Identifier: p.cur.Literal}
			if p.peekIs(token.ASSIGN) {
				p.next()
				p.next()
				variant.Value = p.parseExpression(precLowest)
			}
			variant.Span_ = spanFrom(vStart, p.cur.Span.End)
			e.Variants = append(e.Variants, variant)
			if p.peekIs(token.COMMA) {
				p.next()
			}
			p.next()
		}
	})
	e.Span_ = spanFrom(start, p.cur.Span.End)
	return e
}

func (p *Parser) parseSignal() *ast.Signal {
	start := p.cur.Span.Start
	if !p.expect2Peek(token.IDENT) {
		return &ast.Signal{Span_: spanFrom(start, p.cur.Span.End)}
	}
	s := &ast.Signal{Identifier: p.cur.Literal}
	if p.peekIs(token.LPAREN) {
		p.next()
		params := p.parseParameterList()
		s.Parameters = &params
	}
	s.Span_ = spanFrom(start, p.cur.Span.End)
	return s
}

// parseAnnotation parses `@name` or `@name(args)`.
func (p *Parser) parseAnnotation() *ast.Annotation {
	start := p.cur.Span.Start
	if !p.expect2Peek(token.IDENT) {
		return &ast.Annotation{Span_: spanFrom(start, p.cur.Span.End)}
	}
	a := &ast.Annotation{Identifier: p.cur.Literal}
	if p.peekIs(token.LPAREN) {
		p.next()
		var args []*ast.Expr
		p.withParens(func() {
			p.next() // past '('
			for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
				args = append(args, p.parseExpression(precLowest))
				if p.peekIs(token.COMMA) {
					p.next()
				}
				p.next()
			}
		})
		a.Arguments = &args
	}
	a.Span_ = spanFrom(start, p.cur.Span.End)
	return a
}

func (p *Parser) parseAssert() *ast.Assert {
	start := p.cur.Span.Start
	p.next()
	cond := p.parseExpression(precLowest)
	return &ast.Assert{Condition: cond, Span_: spanFrom(start, p.cur.Span.End)}
}

func (p *Parser) parseReturn() *ast.Return {
	start := p.cur.Span.Start
	if p.peekIs(token.NEWLINE) || p.peekIs(token.SEMICOLON) || p.peekIs(token.DEDENT) || p.peekIs(token.EOF) {
		return &ast.Return{Span_: spanFrom(start, p.cur.Span.End)}
	}
	p.next()
	val := p.parseExpression(precLowest)
	return &ast.Return{Value: val, Span_: spanFrom(start, p.cur.Span.End)}
}

func (p *Parser) parseExprStatement() *ast.ExprStmt {
	start := p.cur.Span.Start
	expr := p.parseExpression(precLowest)
	if expr == nil {
		return nil
	}
	return &ast.ExprStmt{Expr: expr, Span_: spanFrom(start, p.cur.Span.End)}
}
