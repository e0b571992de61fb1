package lint

import "github.com/btouchard/gdlint/internal/ast"

// base is an ast.Visitor whose default methods forward to the Walk*
// functions with self rather than a fresh ast.Base{} value, so a rule that
// embeds base and overrides a handful of Visit* methods still has those
// overrides invoked during recursive descent. self must be set to the
// embedding rule before the first VisitFile call.
type base struct {
	self ast.Visitor
}

func (b *base) VisitFile(f *ast.File)                 { ast.WalkFile(b.self, f) }
func (b *base) VisitStatement(s ast.Statement)        { ast.WalkStatement(b.self, s) }
func (b *base) VisitBlock(s []ast.Statement)           { ast.WalkBlock(b.self, s) }
func (b *base) VisitVariable(v *ast.Variable)          { ast.WalkVariable(b.self, v) }
func (b *base) VisitFunction(fn *ast.Function)         { ast.WalkFunction(b.self, fn) }
func (b *base) VisitParameters(params []*ast.Variable) { ast.WalkParameters(b.self, params) }
func (b *base) VisitClass(c *ast.Class)                { ast.WalkClass(b.self, c) }
func (b *base) VisitEnum(e *ast.Enum)                  { ast.WalkEnum(b.self, e) }
func (b *base) VisitMatch(m *ast.Match)                { ast.WalkMatch(b.self, m) }
func (b *base) VisitMatchArm(a *ast.MatchArm)          { ast.WalkMatchArm(b.self, a) }
func (b *base) VisitMatchPattern(p *ast.MatchPattern)  { ast.WalkMatchPattern(b.self, p) }
func (b *base) VisitIf(s *ast.If)                      { ast.WalkIf(b.self, s) }
func (b *base) VisitElif(s *ast.Elif)                  { ast.WalkElif(b.self, s) }
func (b *base) VisitElse(s *ast.Else)                  { ast.WalkElse(b.self, s) }
func (b *base) VisitFor(s *ast.For)                    { ast.WalkFor(b.self, s) }
func (b *base) VisitWhile(s *ast.While)                { ast.WalkWhile(b.self, s) }
func (b *base) VisitClassName(s *ast.ClassName)        {}
func (b *base) VisitExtends(s *ast.Extends)            {}
func (b *base) VisitSignal(s *ast.Signal)              { ast.WalkSignal(b.self, s) }
func (b *base) VisitAnnotation(s *ast.Annotation)      { ast.WalkAnnotation(b.self, s) }
func (b *base) VisitAssert(s *ast.Assert)              { ast.WalkAssert(b.self, s) }
func (b *base) VisitBreak(s *ast.Break)                {}
func (b *base) VisitBreakpoint(s *ast.Breakpoint)      {}
func (b *base) VisitContinue(s *ast.Continue)          {}
func (b *base) VisitPass(s *ast.Pass)                  {}
func (b *base) VisitReturn(s *ast.Return)              { ast.WalkReturn(b.self, s) }
func (b *base) VisitExprStmt(s *ast.ExprStmt)          { ast.WalkExprStmt(b.self, s) }
func (b *base) VisitExpr(e *ast.Expr)                  { ast.WalkExpr(b.self, e) }
