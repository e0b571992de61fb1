package lint

import (
	"testing"

	"github.com/btouchard/gdlint/internal/ast"
)

func TestInvalidAssignmentTargetRule(t *testing.T) {
	ident := &ast.Expr{Kind: ast.Identifier{Name: "x"}}
	subscript := &ast.Expr{Kind: ast.Postfix{Op: ast.PostfixSubscript, Target: ident, Args: []*ast.Expr{ident}}}
	property := &ast.Expr{Kind: ast.Binary{Op: ast.OpPropertyAccess, Left: ident, Right: &ast.Expr{Kind: ast.Identifier{Name: "y"}}}}
	number := &ast.Expr{Kind: ast.Number{Value: 1}}
	call := &ast.Expr{Kind: ast.Postfix{Op: ast.PostfixCall, Target: ident}}
	// foo().bar = 1 — a call is fine in non-outermost position.
	propertyOfCall := &ast.Expr{Kind: ast.Binary{Op: ast.OpPropertyAccess, Left: call, Right: &ast.Expr{Kind: ast.Identifier{Name: "bar"}}}}
	// foo()[0] = 1 — likewise for a subscript.
	subscriptOfCall := &ast.Expr{Kind: ast.Postfix{Op: ast.PostfixSubscript, Target: call, Args: []*ast.Expr{number}}}

	tests := []struct {
		name string
		left *ast.Expr
		want int
	}{
		{"identifier target is valid", ident, 0},
		{"subscript target is valid", subscript, 0},
		{"property-access target is valid", property, 0},
		{"literal target is invalid", number, 1},
		{"call-result target is invalid", call, 1},
		{"property access on a call result is valid", propertyOfCall, 0},
		{"subscript of a call result is valid", subscriptOfCall, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assign := &ast.Expr{Kind: ast.Binary{Op: ast.OpAssignment, Left: tt.left, Right: &ast.Expr{Kind: ast.Number{Value: 0}}}}
			file := &ast.File{Body: []ast.Statement{&ast.ExprStmt{Expr: assign}}}
			got := runRule(t, &InvalidAssignmentTargetRule{}, file)
			if len(got) != tt.want {
				t.Fatalf("got %d diagnostics (%v), want %d", len(got), got, tt.want)
			}
		})
	}
}
