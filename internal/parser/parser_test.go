package parser

import (
	"testing"

	"github.com/btouchard/gdlint/internal/ast"
)

func parseOk(t *testing.T, source string) *ast.File {
	t.Helper()
	file, diags, _ := ParseFile(source)
	for _, d := range diags {
		if d.Severity.String() == "error" {
			t.Fatalf("unexpected parse error: %s", d.Message)
		}
	}
	return file
}

func TestParseVarDeclarations(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		wantKind   ast.VariableKind
		wantInfer  bool
		wantType   string
		wantHasVal bool
	}{
		{"bare var", "var x\n", ast.VarRegular, false, "", false},
		{"typed var", "var x: int\n", ast.VarRegular, false, "int", false},
		{"assigned var", "var x = 1\n", ast.VarRegular, false, "", true},
		{"inferred var", "var x := 1\n", ast.VarRegular, true, "", true},
		{"typed and assigned var", "var x: int = 1\n", ast.VarRegular, false, "int", true},
		{"const", "const MAX = 100\n", ast.VarConst, false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := parseOk(t, tt.source)
			if len(file.Body) != 1 {
				t.Fatalf("Body = %+v, want one statement", file.Body)
			}
			v, ok := file.Body[0].(*ast.Variable)
			if !ok {
				t.Fatalf("Body[0] = %T, want *ast.Variable", file.Body[0])
			}
			if v.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", v.Kind, tt.wantKind)
			}
			if v.InferType != tt.wantInfer {
				t.Errorf("InferType = %v, want %v", v.InferType, tt.wantInfer)
			}
			if v.Typehint != tt.wantType {
				t.Errorf("Typehint = %q, want %q", v.Typehint, tt.wantType)
			}
			if (v.Value != nil) != tt.wantHasVal {
				t.Errorf("Value present = %v, want %v", v.Value != nil, tt.wantHasVal)
			}
		})
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	source := "func add(a: int, b: int = 1) -> int:\n\treturn a + b\n"
	file := parseOk(t, source)
	if len(file.Body) != 1 {
		t.Fatalf("Body = %+v, want one statement", file.Body)
	}
	fn, ok := file.Body[0].(*ast.Function)
	if !ok {
		t.Fatalf("Body[0] = %T, want *ast.Function", file.Body[0])
	}
	if fn.Identifier == nil || *fn.Identifier != "add" {
		t.Fatalf("Identifier = %v, want add", fn.Identifier)
	}
	if fn.ReturnType == nil || *fn.ReturnType != "int" {
		t.Fatalf("ReturnType = %v, want int", fn.ReturnType)
	}
	if fn.Parameters == nil || len(*fn.Parameters) != 2 {
		t.Fatalf("Parameters = %v, want 2", fn.Parameters)
	}
	params := *fn.Parameters
	if params[0].Identifier != "a" || params[0].Typehint != "int" {
		t.Errorf("params[0] = %+v", params[0])
	}
	if params[1].Value == nil {
		t.Errorf("params[1] should have a default value")
	}
	if len(fn.Body) != 1 {
		t.Fatalf("Body = %+v, want one statement", fn.Body)
	}
	if _, ok := fn.Body[0].(*ast.Return); !ok {
		t.Fatalf("fn.Body[0] = %T, want *ast.Return", fn.Body[0])
	}
}

func TestParseIfElifElseAsFlatSiblings(t *testing.T) {
	source := "if a:\n\tpass\nelif b:\n\tpass\nelse:\n\tpass\n"
	file := parseOk(t, source)
	if len(file.Body) != 3 {
		t.Fatalf("Body = %+v, want 3 flat siblings", file.Body)
	}
	if _, ok := file.Body[0].(*ast.If); !ok {
		t.Errorf("Body[0] = %T, want *ast.If", file.Body[0])
	}
	if _, ok := file.Body[1].(*ast.Elif); !ok {
		t.Errorf("Body[1] = %T, want *ast.Elif", file.Body[1])
	}
	if _, ok := file.Body[2].(*ast.Else); !ok {
		t.Errorf("Body[2] = %T, want *ast.Else", file.Body[2])
	}
}

func TestParseForLoopBinding(t *testing.T) {
	source := "for item in items:\n\tpass\n"
	file := parseOk(t, source)
	forStmt, ok := file.Body[0].(*ast.For)
	if !ok {
		t.Fatalf("Body[0] = %T, want *ast.For", file.Body[0])
	}
	if forStmt.Binding.Kind != ast.VarBinding || !forStmt.Binding.InferType {
		t.Errorf("Binding = %+v, want Kind=VarBinding InferType=true", forStmt.Binding)
	}
	if forStmt.Binding.Identifier != "item" {
		t.Errorf("Binding.Identifier = %q, want item", forStmt.Binding.Identifier)
	}
}

func TestParseTernaryExpression(t *testing.T) {
	source := "var x = 1 if cond else 2\n"
	file := parseOk(t, source)
	v := file.Body[0].(*ast.Variable)
	bin, ok := v.Value.Kind.(ast.Binary)
	if !ok || bin.Op != ast.OpTernaryIfElse {
		t.Fatalf("Value.Kind = %+v, want OpTernaryIfElse", v.Value.Kind)
	}
	if bin.Cond == nil {
		t.Fatalf("ternary Cond is nil")
	}
}

func TestParseAssignmentAsExpressionStatement(t *testing.T) {
	source := "x = 1\n"
	file := parseOk(t, source)
	stmt, ok := file.Body[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("Body[0] = %T, want *ast.ExprStmt", file.Body[0])
	}
	bin, ok := stmt.Expr.Kind.(ast.Binary)
	if !ok || !bin.Op.IsAssignment() {
		t.Fatalf("Expr.Kind = %+v, want an assignment", stmt.Expr.Kind)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3), not (1 + 2) * 3.
	source := "var x = 1 + 2 * 3\n"
	file := parseOk(t, source)
	v := file.Body[0].(*ast.Variable)
	top, ok := v.Value.Kind.(ast.Binary)
	if !ok || top.Op != ast.OpAdd {
		t.Fatalf("top op = %+v, want OpAdd", v.Value.Kind)
	}
	right, ok := top.Right.Kind.(ast.Binary)
	if !ok || right.Op != ast.OpMultiply {
		t.Fatalf("right op = %+v, want OpMultiply", top.Right.Kind)
	}
}

func TestParseCallAndSubscriptChain(t *testing.T) {
	source := "var x = foo(1, 2)[0]\n"
	file := parseOk(t, source)
	v := file.Body[0].(*ast.Variable)
	outer, ok := v.Value.Kind.(ast.Postfix)
	if !ok || outer.Op != ast.PostfixSubscript {
		t.Fatalf("outer = %+v, want PostfixSubscript", v.Value.Kind)
	}
	inner, ok := outer.Target.Kind.(ast.Postfix)
	if !ok || inner.Op != ast.PostfixCall || len(inner.Args) != 2 {
		t.Fatalf("inner = %+v, want a 2-arg PostfixCall", outer.Target.Kind)
	}
}

func TestParseMatchStatement(t *testing.T) {
	source := "match x:\n\t1:\n\t\tpass\n\tvar y:\n\t\tpass\n\t_:\n\t\tpass\n"
	file := parseOk(t, source)
	m, ok := file.Body[0].(*ast.Match)
	if !ok {
		t.Fatalf("Body[0] = %T, want *ast.Match", file.Body[0])
	}
	if len(m.Arms) != 3 {
		t.Fatalf("Arms = %+v, want 3 arms", m.Arms)
	}
	if _, ok := m.Arms[1].Pattern.Kind.(ast.PatternBinding); !ok {
		t.Errorf("Arms[1].Pattern.Kind = %T, want PatternBinding", m.Arms[1].Pattern.Kind)
	}
}

func TestParseArrayLiteralSpansMultipleLines(t *testing.T) {
	source := "var x = [\n\t1,\n\t2,\n\t3,\n]\n"
	file := parseOk(t, source)
	v := file.Body[0].(*ast.Variable)
	arr, ok := v.Value.Kind.(ast.Array)
	if !ok || len(arr.Elements) != 3 {
		t.Fatalf("Value.Kind = %+v, want a 3-element Array", v.Value.Kind)
	}
}

func TestParseInvalidSyntaxReportsFatalError(t *testing.T) {
	_, diags, _ := ParseFile("var\n")
	foundError := false
	for _, d := range diags {
		if d.Severity.String() == "error" {
			foundError = true
		}
	}
	if !foundError {
		t.Fatalf("expected a fatal parse error, got %+v", diags)
	}
}

func TestStaticWithoutVarOrFuncIsFatal(t *testing.T) {
	_, diags, _ := ParseFile("static x\n")
	foundError := false
	for _, d := range diags {
		if d.Severity.String() == "error" {
			foundError = true
		}
	}
	if !foundError {
		t.Fatalf("expected a fatal parse error for bare static, got %+v", diags)
	}
}
