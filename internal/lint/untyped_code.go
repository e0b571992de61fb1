package lint

import (
	"context"

	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/diag"
)

// UntypedCodeRule flags declarations with no static type information:
// functions with no return type, and var/const declarations with neither
// an explicit type hint nor an inferred (`:=`) one.
type UntypedCodeRule struct {
	base
	diags []*diag.Diagnostic
}

func (r *UntypedCodeRule) ID() string          { return "untyped-code" }
func (r *UntypedCodeRule) Description() string { return "Declarations carry explicit or inferred types" }

func (r *UntypedCodeRule) Run(ctx context.Context, file *ast.File) ([]*diag.Diagnostic, error) {
	r.base.self = r
	r.diags = nil
	r.VisitFile(file)
	return r.diags, nil
}

func (r *UntypedCodeRule) VisitFunction(fn *ast.Function) {
	if fn.ReturnType == nil {
		d := diag.New("Missing return type.", diag.Warning).WithSpan(fn.Span_)
		highlightSpan := fn.Span_
		if fn.Identifier != nil {
			highlightSpan = fn.IdentifierSpan
			d.AddHelp("add `-> Type` after the parameter list")
		}
		d.AddHighlight(diag.NewHighlight(highlightSpan).WithMessage("..in this function"))
		r.diags = append(r.diags, d)
	}
	r.base.VisitFunction(fn)
}

func (r *UntypedCodeRule) VisitVariable(v *ast.Variable) {
	if v.Kind != ast.VarBinding && v.Typehint == "" && !v.InferType {
		r.diags = append(r.diags, diag.New("Missing type hint.", diag.Warning).WithSpan(v.Span_))
	}
	r.base.VisitVariable(v)
}
