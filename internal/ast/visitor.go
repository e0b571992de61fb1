package ast

// Visitor is a capability set for traversing a File. Each Walk* free
// function visits a node's children by calling back into the visitor it is
// given — the standard double-dispatch pattern. A method that calls the
// matching Walk* function with its own visitor recurses; one that does not
// prunes that subtree.
type Visitor interface {
	VisitFile(f *File)
	VisitStatement(s Statement)
	VisitBlock(b []Statement)
	VisitVariable(v *Variable)
	VisitFunction(fn *Function)
	VisitParameters(params []*Variable)
	VisitClass(c *Class)
	VisitEnum(e *Enum)
	VisitMatch(m *Match)
	VisitMatchArm(a *MatchArm)
	VisitMatchPattern(p *MatchPattern)
	VisitIf(s *If)
	VisitElif(s *Elif)
	VisitElse(s *Else)
	VisitFor(s *For)
	VisitWhile(s *While)
	VisitClassName(s *ClassName)
	VisitExtends(s *Extends)
	VisitSignal(s *Signal)
	VisitAnnotation(s *Annotation)
	VisitAssert(s *Assert)
	VisitBreak(s *Break)
	VisitBreakpoint(s *Breakpoint)
	VisitContinue(s *Continue)
	VisitPass(s *Pass)
	VisitReturn(s *Return)
	VisitExprStmt(s *ExprStmt)
	VisitExpr(e *Expr)
}

// Base implements Visitor with the recurse-into-children behavior for every
// method. Its methods walk children with a fresh Base{} value, not with the
// value that embeds Base, so overrides on an embedding type are not called
// for nodes reached through Base's own methods.
type Base struct{}

func (Base) VisitFile(f *File)                 { WalkFile(Base{}, f) }
func (Base) VisitStatement(s Statement)        { WalkStatement(Base{}, s) }
func (Base) VisitBlock(b []Statement)          { WalkBlock(Base{}, b) }
func (Base) VisitVariable(v *Variable)         { WalkVariable(Base{}, v) }
func (Base) VisitFunction(fn *Function)        { WalkFunction(Base{}, fn) }
func (Base) VisitParameters(params []*Variable) { WalkParameters(Base{}, params) }
func (Base) VisitClass(c *Class)               { WalkClass(Base{}, c) }
func (Base) VisitEnum(e *Enum)                 { WalkEnum(Base{}, e) }
func (Base) VisitMatch(m *Match)               { WalkMatch(Base{}, m) }
func (Base) VisitMatchArm(a *MatchArm)         { WalkMatchArm(Base{}, a) }
func (Base) VisitMatchPattern(p *MatchPattern) { WalkMatchPattern(Base{}, p) }
func (Base) VisitIf(s *If)                     { WalkIf(Base{}, s) }
func (Base) VisitElif(s *Elif)                 { WalkElif(Base{}, s) }
func (Base) VisitElse(s *Else)                 { WalkElse(Base{}, s) }
func (Base) VisitFor(s *For)                   { WalkFor(Base{}, s) }
func (Base) VisitWhile(s *While)               { WalkWhile(Base{}, s) }
func (Base) VisitClassName(s *ClassName)       {}
func (Base) VisitExtends(s *Extends)           {}
func (Base) VisitSignal(s *Signal)             { WalkSignal(Base{}, s) }
func (Base) VisitAnnotation(s *Annotation)     { WalkAnnotation(Base{}, s) }
func (Base) VisitAssert(s *Assert)             { WalkAssert(Base{}, s) }
func (Base) VisitBreak(s *Break)               {}
func (Base) VisitBreakpoint(s *Breakpoint)     {}
func (Base) VisitContinue(s *Continue)         {}
func (Base) VisitPass(s *Pass)                 {}
func (Base) VisitReturn(s *Return)             { WalkReturn(Base{}, s) }
func (Base) VisitExprStmt(s *ExprStmt)         { WalkExprStmt(Base{}, s) }
func (Base) VisitExpr(e *Expr)                 { WalkExpr(Base{}, e) }

// ---------------------------------------------------------------- Walk_*

// WalkFile visits every top-level statement in source order.
func WalkFile(v Visitor, f *File) {
	if f == nil {
		return
	}
	v.VisitBlock(f.Body)
}

// WalkBlock visits every statement in a block, pre-order, left-to-right.
func WalkBlock(v Visitor, b []Statement) {
	for _, s := range b {
		v.VisitStatement(s)
	}
}

// WalkStatement dispatches to the concrete visit method for s's kind.
func WalkStatement(v Visitor, s Statement) {
	switch n := s.(type) {
	case *Variable:
		v.VisitVariable(n)
	case *Function:
		v.VisitFunction(n)
	case *Class:
		v.VisitClass(n)
	case *Enum:
		v.VisitEnum(n)
	case *Match:
		v.VisitMatch(n)
	case *If:
		v.VisitIf(n)
	case *Elif:
		v.VisitElif(n)
	case *Else:
		v.VisitElse(n)
	case *For:
		v.VisitFor(n)
	case *While:
		v.VisitWhile(n)
	case *ClassName:
		v.VisitClassName(n)
	case *Extends:
		v.VisitExtends(n)
	case *Signal:
		v.VisitSignal(n)
	case *Annotation:
		v.VisitAnnotation(n)
	case *Assert:
		v.VisitAssert(n)
	case *Break:
		v.VisitBreak(n)
	case *Breakpoint:
		v.VisitBreakpoint(n)
	case *Continue:
		v.VisitContinue(n)
	case *Pass:
		v.VisitPass(n)
	case *Return:
		v.VisitReturn(n)
	case *ExprStmt:
		v.VisitExprStmt(n)
	}
}

func WalkVariable(v Visitor, va *Variable) {
	if va == nil {
		return
	}
	if va.Value != nil {
		v.VisitExpr(va.Value)
	}
	if va.Getter != nil {
		v.VisitFunction(va.Getter)
	}
	if va.Setter != nil {
		v.VisitFunction(va.Setter)
	}
}

func WalkFunction(v Visitor, fn *Function) {
	if fn == nil {
		return
	}
	if fn.Parameters != nil {
		v.VisitParameters(*fn.Parameters)
	}
	v.VisitBlock(fn.Body)
}

func WalkParameters(v Visitor, params []*Variable) {
	for _, p := range params {
		v.VisitVariable(p)
	}
}

func WalkClass(v Visitor, c *Class) {
	if c == nil {
		return
	}
	v.VisitBlock(c.Body)
}

func WalkEnum(v Visitor, e *Enum) {
	if e == nil {
		return
	}
	for _, variant := range e.Variants {
		if variant.Value != nil {
			v.VisitExpr(variant.Value)
		}
	}
}

func WalkMatch(v Visitor, m *Match) {
	if m == nil {
		return
	}
	v.VisitExpr(m.Expr)
	for _, a := range m.Arms {
		v.VisitMatchArm(a)
	}
}

func WalkMatchArm(v Visitor, a *MatchArm) {
	if a == nil {
		return
	}
	v.VisitMatchPattern(a.Pattern)
	if a.Guard != nil {
		v.VisitExpr(a.Guard)
	}
	v.VisitBlock(a.Block)
}

// WalkMatchPattern visits array/dictionary subpatterns in order; a
// top-level Alternative is visited as a single node, and its own
// alternatives are walked in turn.
func WalkMatchPattern(v Visitor, p *MatchPattern) {
	if p == nil {
		return
	}
	switch k := p.Kind.(type) {
	case PatternValue:
		if k.Expr != nil {
			v.VisitExpr(k.Expr)
		}
	case PatternArray:
		for _, el := range k.Elements {
			v.VisitMatchPattern(el)
		}
	case PatternDictionary:
		for _, entry := range k.Entries {
			if entry.SubPat != nil {
				v.VisitMatchPattern(entry.SubPat)
			}
		}
	case PatternAlternative:
		for _, alt := range k.Alternatives {
			v.VisitMatchPattern(alt)
		}
	}
}

func WalkIf(v Visitor, s *If) {
	if s == nil {
		return
	}
	v.VisitExpr(s.Condition)
	v.VisitBlock(s.Block)
}

func WalkElif(v Visitor, s *Elif) {
	if s == nil {
		return
	}
	v.VisitExpr(s.Condition)
	v.VisitBlock(s.Block)
}

func WalkElse(v Visitor, s *Else) {
	if s == nil {
		return
	}
	v.VisitBlock(s.Block)
}

func WalkFor(v Visitor, s *For) {
	if s == nil {
		return
	}
	v.VisitVariable(s.Binding)
	v.VisitExpr(s.Container)
	v.VisitBlock(s.Block)
}

func WalkWhile(v Visitor, s *While) {
	if s == nil {
		return
	}
	v.VisitExpr(s.Condition)
	v.VisitBlock(s.Block)
}

func WalkSignal(v Visitor, s *Signal) {
	if s == nil || s.Parameters == nil {
		return
	}
	v.VisitParameters(*s.Parameters)
}

func WalkAnnotation(v Visitor, s *Annotation) {
	if s == nil || s.Arguments == nil {
		return
	}
	for _, a := range *s.Arguments {
		v.VisitExpr(a)
	}
}

func WalkAssert(v Visitor, s *Assert) {
	if s == nil {
		return
	}
	v.VisitExpr(s.Condition)
}

func WalkReturn(v Visitor, s *Return) {
	if s == nil || s.Value == nil {
		return
	}
	v.VisitExpr(s.Value)
}

func WalkExprStmt(v Visitor, s *ExprStmt) {
	if s == nil {
		return
	}
	v.VisitExpr(s.Expr)
}

// WalkExpr visits an expression's children. Lambdas nested inside an
// expression are visited as part of their containing expression.
func WalkExpr(v Visitor, e *Expr) {
	if e == nil {
		return
	}
	switch k := e.Kind.(type) {
	case Array:
		for _, el := range k.Elements {
			v.VisitExpr(el)
		}
	case Dictionary:
		for _, entry := range k.Entries {
			v.VisitExpr(entry.Key)
			v.VisitExpr(entry.Value)
		}
	case Group:
		for _, el := range k.Elements {
			v.VisitExpr(el)
		}
	case Prefix:
		if k.Operand != nil {
			v.VisitExpr(k.Operand)
		}
	case Postfix:
		if k.Target != nil {
			v.VisitExpr(k.Target)
		}
		for _, a := range k.Args {
			v.VisitExpr(a)
		}
	case Binary:
		if k.Left != nil {
			v.VisitExpr(k.Left)
		}
		if k.Cond != nil {
			v.VisitExpr(k.Cond)
		}
		if k.Right != nil {
			v.VisitExpr(k.Right)
		}
	case *Function:
		v.VisitFunction(k)
	}
}
