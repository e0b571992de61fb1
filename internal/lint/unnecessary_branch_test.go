package lint

import (
	"testing"

	"github.com/btouchard/gdlint/internal/ast"
)

func TestUnnecessaryBranchRule(t *testing.T) {
	tests := []struct {
		name string
		body []ast.Statement
		want int
	}{
		{
			"if without else is fine regardless of returns",
			[]ast.Statement{
				&ast.If{Block: []ast.Statement{&ast.Return{}}},
			},
			0,
		},
		{
			"if/else where if does not always return is fine",
			[]ast.Statement{
				&ast.If{Block: []ast.Statement{&ast.Pass{}}},
				&ast.Else{Block: []ast.Statement{&ast.Return{}}},
			},
			0,
		},
		{
			"if/else where if always returns is unnecessary",
			[]ast.Statement{
				&ast.If{Block: []ast.Statement{&ast.Return{}}},
				&ast.Else{Block: []ast.Statement{&ast.Pass{}}},
			},
			1,
		},
		{
			"if/elif/else where every elif always returns is unnecessary",
			[]ast.Statement{
				&ast.If{Block: []ast.Statement{&ast.Return{}}},
				&ast.Elif{Block: []ast.Statement{&ast.Return{}}},
				&ast.Else{Block: []ast.Statement{&ast.Pass{}}},
			},
			1,
		},
		{
			"if/elif/else where one elif does not always return is fine",
			[]ast.Statement{
				&ast.If{Block: []ast.Statement{&ast.Return{}}},
				&ast.Elif{Block: []ast.Statement{&ast.Pass{}}},
				&ast.Else{Block: []ast.Statement{&ast.Pass{}}},
			},
			0,
		},
		{
			// The nested if/else inside the outer if's block is itself an
			// unnecessary-else chain (its if arm returns unconditionally),
			// and that makes the outer if's block always-return too, so
			// the outer else is also unnecessary: two diagnostics total.
			"if arm always returns via a fully-covering nested chain",
			[]ast.Statement{
				&ast.If{Block: []ast.Statement{
					&ast.If{Block: []ast.Statement{&ast.Return{}}},
					&ast.Else{Block: []ast.Statement{&ast.Return{}}},
				}},
				&ast.Else{Block: []ast.Statement{&ast.Pass{}}},
			},
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := &ast.File{Body: tt.body}
			got := runRule(t, &UnnecessaryBranchRule{}, file)
			if len(got) != tt.want {
				t.Fatalf("got %d diagnostics (%v), want %d", len(got), got, tt.want)
			}
		})
	}
}
