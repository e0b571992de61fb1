package parser

import (
	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/lexer"
	"github.com/btouchard/gdlint/internal/span"
	"github.com/btouchard/gdlint/internal/token"
)

func (p *Parser) mkExpr(kind ast.ExprKind, sp span.Span) *ast.Expr {
	return &ast.Expr{Kind: kind, Span: sp}
}

// parseExpression is the Pratt precedence climber: it parses a single
// prefix expression, then repeatedly extends it with infix operators whose
// precedence exceeds the caller's floor.
func (p *Parser) parseExpression(precedence int) *ast.Expr {
	prefix := p.prefix[p.cur.Kind]
	if prefix == nil {
		p.fatalf(p.cur.Span, "unexpected token %s in expression", p.cur.Kind)
		return nil
	}
	left := prefix(p)
	if p.fatal {
		return left
	}

	for precedence < precedenceOf(p.peek().Kind) {
		infix := p.infix[p.peek().Kind]
		if infix == nil {
			break
		}
		p.next()
		left = infix(p, left)
		if p.fatal {
			break
		}
	}
	return left
}

// -------------------------------------------------------------- primaries

func (p *Parser) parseIdentifier() *ast.Expr {
	return p.mkExpr(ast.Identifier{Name: p.cur.Literal}, p.cur.Span)
}

func (p *Parser) parseNumber() *ast.Expr {
	v, _, _ := lexer.ParseNumber(p.cur.Kind, p.cur.Literal)
	return p.mkExpr(ast.Number{Value: v}, p.cur.Span)
}

func (p *Parser) parseFloat() *ast.Expr {
	_, v, _ := lexer.ParseNumber(p.cur.Kind, p.cur.Literal)
	return p.mkExpr(ast.Float{Value: v}, p.cur.Span)
}

var stringFlavors = map[token.Kind]ast.StringFlavor{
	token.STRING:      ast.StringPlain,
	token.STRING_NAME: ast.StringName,
	token.NODE:        ast.NodeRef,
	token.UNIQUE_NODE: ast.UniqueNodeRef,
	token.NODE_PATH:   ast.NodePathRef,
}

func (p *Parser) parseString() *ast.Expr {
	return p.mkExpr(ast.String{Value: p.cur.Literal, Flavor: stringFlavors[p.cur.Kind]}, p.cur.Span)
}

func (p *Parser) parseBool() *ast.Expr {
	return p.mkExpr(ast.Bool{Value: p.cur.Kind == token.TRUE}, p.cur.Span)
}

func (p *Parser) parseNull() *ast.Expr {
	return p.mkExpr(ast.Null{}, p.cur.Span)
}

// parseGroup parses `(expr (, expr)*)`. A single bracketed element is a
// Group of length one rather than unwrapping to the element itself, so
// match-pattern parsing can distinguish `(x)` from a bare `x`.
func (p *Parser) parseGroup() *ast.Expr {
	start := p.cur.Span.Start
	var elems []*ast.Expr
	p.withParens(func() {
		p.next() // past '('
		for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) && !p.fatal {
			elems = append(elems, p.parseExpression(precLowest))
			if p.peekIs(token.COMMA) {
				p.next()
			}
			p.next()
		}
	})
	return p.mkExpr(ast.Group{Elements: elems}, spanFrom(start, p.cur.Span.End))
}

func (p *Parser) parseArray() *ast.Expr {
	start := p.cur.Span.Start
	var elems []*ast.Expr
	p.withParens(func() {
		p.next() // past '['
		for !p.curIs(token.RBRACKET) && !p.curIs(token.EOF) && !p.fatal {
			elems = append(elems, p.parseExpression(precLowest))
			if p.peekIs(token.COMMA) {
				p.next()
			}
			p.next()
		}
	})
	return p.mkExpr(ast.Array{Elements: elems}, spanFrom(start, p.cur.Span.End))
}

// parseDictionary accepts both the `{"key": value}` form and the
// Lua-flavored `{key = value}` shorthand GDScript also allows.
func (p *Parser) parseDictionary() *ast.Expr {
	start := p.cur.Span.Start
	var entries []*ast.DictEntry
	p.withParens(func() {
		p.next() // past '{'
		for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) && !p.fatal {
			key := p.parseExpression(precLowest)
			var value *ast.Expr
			switch {
			case p.peekIs(token.COLON):
				p.next()
				p.next()
				value = p.parseExpression(precLowest)
			case p.peekIs(token.ASSIGN):
				p.next()
				p.next()
				value = p.parseExpression(precLowest)
			}
			entries = append(entries, &ast.DictEntry{Key: key, Value: value})
			if p.peekIs(token.COMMA) {
				p.next()
			}
			p.next()
		}
	})
	return p.mkExpr(ast.Dictionary{Entries: entries}, spanFrom(start, p.cur.Span.End))
}

// parsePrefix builds the prefixFn for a unary operator, choosing the
// precedence its operand binds at.
func (p *Parser) parsePrefix(op ast.PrefixOpKind) prefixFn {
	prec := precUnary
	switch op {
	case ast.PrefixNot:
		prec = precNot
	case ast.PrefixBitwiseNot:
		prec = precBitNot
	case ast.PrefixAwait:
		prec = precAwait
	}
	return func(p *Parser) *ast.Expr {
		start := p.cur.Span.Start
		p.next()
		operand := p.parseExpression(prec)
		return p.mkExpr(ast.Prefix{Op: op, Operand: operand}, spanFrom(start, p.cur.Span.End))
	}
}

// parseLambda parses an anonymous (or named-inline) function literal used
// in expression position: `func (params) -> type: block`.
func (p *Parser) parseLambda() *ast.Expr {
	start := p.cur.Span.Start
	fn := &ast.Function{Kind: ast.FuncRegular}
	if p.peekIs(token.IDENT) {
		p.next()
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
	if p.peekIs(token.COLON) {
		p.next()
		fn.Body = p.parseLambdaBlock()
	}
	fn.Span_ = spanFrom(start, p.cur.Span.End)
	return p.mkExpr(fn, fn.Span_)
}

// ------------------------------------------------------------------ infix

func (p *Parser) parseCall(left *ast.Expr) *ast.Expr {
	var args []*ast.Expr
	p.withParens(func() {
		p.next() // past '('
		for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) && !p.fatal {
			args = append(args, p.parseExpression(precLowest))
			if p.peekIs(token.COMMA) {
				p.next()
			}
			p.next()
		}
	})
	sp := spanFrom(left.Span.Start, p.cur.Span.End)
	return p.mkExpr(ast.Postfix{Target: left, Op: ast.PostfixCall, Args: args}, sp)
}

func (p *Parser) parseSubscript(left *ast.Expr) *ast.Expr {
	var index *ast.Expr
	p.withParens(func() {
		p.next() // past '['
		index = p.parseExpression(precLowest)
	})
	if !p.peekIs(token.RBRACKET) {
		p.fatalf(p.peek().Span, "expected ], found %s", p.peek().Kind)
		return left
	}
	p.next()
	sp := spanFrom(left.Span.Start, p.cur.Span.End)
	return p.mkExpr(ast.Postfix{Target: left, Op: ast.PostfixSubscript, Args: []*ast.Expr{index}}, sp)
}

func (p *Parser) parseProperty(left *ast.Expr) *ast.Expr {
	if !p.expect2Peek(token.IDENT) {
		return left
	}
	right := p.mkExpr(ast.Identifier{Name: p.cur.Literal}, p.cur.Span)
	sp := spanFrom(left.Span.Start, p.cur.Span.End)
	return p.mkExpr(ast.Binary{Left: left, Op: ast.OpPropertyAccess, Right: right}, sp)
}

// parseTernary parses the GDScript conditional expression `X if C else Y`,
// entered with p.cur on the `if` keyword and left already holding X.
func (p *Parser) parseTernary(left *ast.Expr) *ast.Expr {
	p.next()
	cond := p.parseExpression(precTernary)
	if !p.expect2Peek(token.ELSE) {
		return left
	}
	p.next()
	elseExpr := p.parseExpression(precTernary - 1)
	sp := spanFrom(left.Span.Start, p.cur.Span.End)
	return p.mkExpr(ast.Binary{Left: left, Op: ast.OpTernaryIfElse, Cond: cond, Right: elseExpr}, sp)
}

var binaryOps = map[token.Kind]ast.BinaryOp{
	token.PLUS:           ast.OpAdd,
	token.MINUS:          ast.OpSubtract,
	token.STAR:           ast.OpMultiply,
	token.SLASH:          ast.OpDivide,
	token.PERCENT:        ast.OpRemainder,
	token.POWER:          ast.OpPower,
	token.AMP:            ast.OpBitwiseAnd,
	token.PIPE:           ast.OpBitwiseOr,
	token.CARET:          ast.OpBitwiseXor,
	token.SHL:            ast.OpBitwiseShiftLeft,
	token.SHR:            ast.OpBitwiseShiftRight,
	token.EQ:             ast.OpEquals,
	token.NOT_EQ:         ast.OpNotEqual,
	token.LT:             ast.OpLessThan,
	token.LT_EQ:          ast.OpLessOrEqual,
	token.GT:             ast.OpGreater,
	token.GT_EQ:          ast.OpGreaterOrEqual,
	token.AND:            ast.OpAnd,
	token.SYM_AND:        ast.OpAnd,
	token.OR:             ast.OpOr,
	token.SYM_OR:         ast.OpOr,
	token.IN:             ast.OpIn,
	token.NOT_IN:         ast.OpNotIn,
	token.IS:             ast.OpIs,
	token.AS:             ast.OpTypeCast,
	token.RANGE:          ast.OpRange,
	token.ASSIGN:         ast.OpAssignment,
	token.PLUS_ASSIGN:    ast.OpPlusAssignment,
	token.MINUS_ASSIGN:   ast.OpMinusAssignment,
	token.STAR_ASSIGN:    ast.OpMultiplyAssignment,
	token.SLASH_ASSIGN:   ast.OpDivideAssignment,
	token.PERCENT_ASSIGN: ast.OpRemainderAssignment,
	token.POWER_ASSIGN:   ast.OpPowerAssignment,
	token.AMP_ASSIGN:     ast.OpBitwiseAndAssignment,
	token.PIPE_ASSIGN:    ast.OpBitwiseOrAssignment,
	token.CARET_ASSIGN:   ast.OpBitwiseXorAssignment,
	token.SHL_ASSIGN:     ast.OpBitwiseShiftLeftAssignment,
	token.SHR_ASSIGN:     ast.OpBitwiseShiftRightAssignment,
}

func (p *Parser) parseBinary(left *ast.Expr) *ast.Expr {
	opTok := p.cur
	prec := precedenceOf(opTok.Kind)
	nextPrec := prec
	if rightAssociative(opTok.Kind) {
		nextPrec = prec - 1
	}
	p.next()
	right := p.parseExpression(nextPrec)
	sp := spanFrom(left.Span.Start, p.cur.Span.End)
	return p.mkExpr(ast.Binary{Left: left, Op: binaryOps[opTok.Kind], Right: right}, sp)
}
