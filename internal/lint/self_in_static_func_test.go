package lint

import (
	"testing"

	"github.com/btouchard/gdlint/internal/ast"
)

func selfExprStmt() ast.Statement {
	return &ast.ExprStmt{Expr: &ast.Expr{Kind: ast.Identifier{Name: "self"}}}
}

func TestSelfInStaticFuncRule(t *testing.T) {
	tests := []struct {
		name string
		fn   *ast.Function
		want int
	}{
		{
			"self in regular function is fine",
			&ast.Function{Kind: ast.FuncRegular, Body: []ast.Statement{selfExprStmt()}},
			0,
		},
		{
			"self in static function flagged",
			&ast.Function{Kind: ast.FuncStatic, Body: []ast.Statement{selfExprStmt()}},
			1,
		},
		{
			"static function without self is fine",
			&ast.Function{Kind: ast.FuncStatic, Body: []ast.Statement{&ast.Pass{}}},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := &ast.File{Body: []ast.Statement{tt.fn}}
			got := runRule(t, &SelfInStaticFuncRule{}, file)
			if len(got) != tt.want {
				t.Fatalf("got %d diagnostics (%v), want %d", len(got), got, tt.want)
			}
		})
	}
}

func TestSelfInStaticFuncRuleRestoresOuterContext(t *testing.T) {
	// A nested regular function inside a static one should not inherit the
	// static context, and after it returns the outer static context's self
	// reference should still be flagged.
	inner := &ast.Function{
		Identifier: strPtr("inner"),
		Kind:       ast.FuncRegular,
		Body:       []ast.Statement{selfExprStmt()},
	}
	outer := &ast.Function{
		Kind: ast.FuncStatic,
		Body: []ast.Statement{inner, selfExprStmt()},
	}
	file := &ast.File{Body: []ast.Statement{outer}}

	got := runRule(t, &SelfInStaticFuncRule{}, file)
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics (%v), want 1 (only the outer self reference)", len(got), got)
	}
}
