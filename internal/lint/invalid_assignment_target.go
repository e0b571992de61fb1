package lint

import (
	"context"

	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/diag"
)

// InvalidAssignmentTargetRule flags assignments whose left-hand side is not
// an identifier, a property access chain, or a subscript — e.g. assigning
// to a literal, or to an expression whose outermost operator is a call.
// A call is fine in an inner position (`get_people()[name] = person`); it
// is only invalid as the outermost shape (`get_people() = x`).
type InvalidAssignmentTargetRule struct {
	base
	diags []*diag.Diagnostic
}

func (r *InvalidAssignmentTargetRule) ID() string { return "invalid-assignment-target" }
func (r *InvalidAssignmentTargetRule) Description() string {
	return "Assignment targets are identifiers, properties, or subscripts"
}

func (r *InvalidAssignmentTargetRule) Run(ctx context.Context, file *ast.File) ([]*diag.Diagnostic, error) {
	r.base.self = r
	r.diags = nil
	r.VisitFile(file)
	return r.diags, nil
}

func (r *InvalidAssignmentTargetRule) VisitExpr(e *ast.Expr) {
	if b, ok := e.Kind.(ast.Binary); ok && b.Op.IsAssignment() {
		if b.Left != nil && !isAssignable(b.Left) {
			r.diags = append(r.diags, diag.New(
				"Invalid assignment target.",
				diag.Error,
			).WithSpan(b.Left.Span))
		}
	}
	r.base.VisitExpr(e)
}

func isAssignable(e *ast.Expr) bool {
	if p, ok := e.Kind.(ast.Postfix); ok && p.Op == ast.PostfixCall {
		return false
	}
	return isValidInnerTarget(e)
}

// isValidInnerTarget allows a call in non-outermost position, since a
// subscript or property access can chain off a call's result.
func isValidInnerTarget(e *ast.Expr) bool {
	if e == nil {
		return false
	}
	switch k := e.Kind.(type) {
	case ast.Identifier:
		return true
	case ast.Postfix:
		return isValidInnerTarget(k.Target) && (k.Op == ast.PostfixSubscript || k.Op == ast.PostfixCall)
	case ast.Binary:
		return k.Op == ast.OpPropertyAccess && isValidInnerTarget(k.Left) && isValidInnerTarget(k.Right)
	default:
		return false
	}
}
