package lint

import (
	"testing"

	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/span"
)

func TestUntypedCodeRule(t *testing.T) {
	tests := []struct {
		name string
		file *ast.File
		want int
	}{
		{
			"typed function is fine",
			&ast.File{Body: []ast.Statement{&ast.Function{Identifier: strPtr("f"), ReturnType: strPtr("int")}}},
			0,
		},
		{
			"untyped function flagged",
			&ast.File{Body: []ast.Statement{&ast.Function{Identifier: strPtr("f")}}},
			1,
		},
		{
			"explicit type hint is fine",
			&ast.File{Body: []ast.Statement{&ast.Variable{Identifier: "x", Kind: ast.VarRegular, Typehint: "int"}}},
			0,
		},
		{
			"inferred type is fine",
			&ast.File{Body: []ast.Statement{&ast.Variable{Identifier: "x", Kind: ast.VarRegular, InferType: true}}},
			0,
		},
		{
			"untyped variable flagged",
			&ast.File{Body: []ast.Statement{&ast.Variable{Identifier: "x", Kind: ast.VarRegular}}},
			1,
		},
		{
			"for-loop binding is exempt",
			&ast.File{Body: []ast.Statement{ast.NewBinding("item", "", span.Span{})}},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runRule(t, &UntypedCodeRule{}, tt.file)
			if len(got) != tt.want {
				t.Fatalf("got %d diagnostics (%v), want %d", len(got), got, tt.want)
			}
		})
	}
}
