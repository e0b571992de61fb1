package lint

import (
	"context"

	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/diag"
)

// SelfInStaticFuncRule flags any use of `self` inside a static function
// body; a static function has no instance to bind it to.
type SelfInStaticFuncRule struct {
	base
	diags    []*diag.Diagnostic
	inStatic bool
}

func (r *SelfInStaticFuncRule) ID() string { return "self-in-static-func" }
func (r *SelfInStaticFuncRule) Description() string {
	return "`self` is not referenced inside static functions"
}

func (r *SelfInStaticFuncRule) Run(ctx context.Context, file *ast.File) ([]*diag.Diagnostic, error) {
	r.base.self = r
	r.diags = nil
	r.inStatic = false
	r.VisitFile(file)
	return r.diags, nil
}

func (r *SelfInStaticFuncRule) VisitFunction(fn *ast.Function) {
	wasStatic := r.inStatic
	r.inStatic = fn.Kind == ast.FuncStatic
	r.base.VisitFunction(fn)
	r.inStatic = wasStatic
}

func (r *SelfInStaticFuncRule) VisitExpr(e *ast.Expr) {
	if r.inStatic {
		if id, ok := e.Kind.(ast.Identifier); ok && id.Name == "self" {
			r.diags = append(r.diags, diag.New(
				"`self` is not available in a static function.",
				diag.Error,
			).WithSpan(e.Span))
		}
	}
	r.base.VisitExpr(e)
}
