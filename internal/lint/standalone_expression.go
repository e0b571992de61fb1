package lint

import (
	"context"

	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/diag"
)

// StandaloneExpressionRule flags expression-statements whose outermost
// operator is not a call or an assignment — a bare value, comparison, or
// identifier used as a statement produces nothing observable. `await` does
// not change this: its own result still needs to be a call or assignment
// at the outermost level.
type StandaloneExpressionRule struct {
	base
	diags []*diag.Diagnostic
}

func (r *StandaloneExpressionRule) ID() string { return "standalone-expression" }
func (r *StandaloneExpressionRule) Description() string {
	return "Expression statements produce an observable effect"
}

func (r *StandaloneExpressionRule) Run(ctx context.Context, file *ast.File) ([]*diag.Diagnostic, error) {
	r.base.self = r
	r.diags = nil
	r.VisitFile(file)
	return r.diags, nil
}

func (r *StandaloneExpressionRule) VisitExprStmt(s *ast.ExprStmt) {
	if s.Expr != nil && !isEffectful(s.Expr) {
		r.diags = append(r.diags, diag.New(
			"Expression result is unused; did you mean to call or assign it?",
			diag.Warning,
		).WithSpan(s.Span_))
	}
	r.base.VisitExprStmt(s)
}

func isEffectful(e *ast.Expr) bool {
	switch k := e.Kind.(type) {
	case ast.Postfix:
		return k.Op == ast.PostfixCall
	case ast.Binary:
		return k.Op.IsAssignment()
	default:
		return false
	}
}
