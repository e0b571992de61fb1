package lint

import (
	"context"
	"testing"

	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/diag"
	"github.com/btouchard/gdlint/internal/span"
)

// recordingRule embeds base and overrides only VisitVariable, proving that
// base's self-forwarding (unlike embedding ast.Base directly) lets an
// override fire even though the traversal enters through an inherited,
// non-overridden VisitFile/VisitBlock/VisitFunction chain first.
type recordingRule struct {
	base
	seen []string
}

func (r *recordingRule) ID() string          { return "recording" }
func (r *recordingRule) Description() string { return "test-only rule" }

func (r *recordingRule) Run(ctx context.Context, file *ast.File) ([]*diag.Diagnostic, error) {
	r.base.self = r
	r.seen = nil
	r.VisitFile(file)
	return nil, nil
}

func (r *recordingRule) VisitVariable(v *ast.Variable) {
	r.seen = append(r.seen, v.Identifier)
	r.base.VisitVariable(v)
}

func TestBaseForwardingReachesNestedOverrides(t *testing.T) {
	fn := &ast.Function{
		Identifier: strPtr("ready"),
		Body: []ast.Statement{
			&ast.Variable{Identifier: "a", Kind: ast.VarRegular},
			&ast.If{
				Block: []ast.Statement{
					&ast.Variable{Identifier: "b", Kind: ast.VarRegular},
				},
			},
		},
	}
	file := &ast.File{Body: []ast.Statement{fn}}

	r := &recordingRule{}
	if _, err := r.Run(context.Background(), file); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"a", "b"}
	if len(r.seen) != len(want) {
		t.Fatalf("seen = %v, want %v", r.seen, want)
	}
	for i := range want {
		if r.seen[i] != want[i] {
			t.Fatalf("seen = %v, want %v", r.seen, want)
		}
	}
}

func strPtr(s string) *string { return &s }

func TestRunnerSuppressesNoqaLines(t *testing.T) {
	v := &ast.Variable{Identifier: "Bad", Kind: ast.VarRegular, Typehint: "int", Span_: span.Span{Start: 0, End: 3}}
	file := &ast.File{Body: []ast.Statement{v}}
	table := span.NewTable("var Bad: int = 1\n")

	noqas := map[int]map[string]bool{1: {"identifier-case": true}}

	runner := NewRunner(&IdentifierCaseRule{})
	diags, err := runner.Run(context.Background(), file, table, noqas)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("expected the identifier-case diagnostic to be suppressed, got %+v", diags)
	}
}

func TestRunnerNilFileReturnsError(t *testing.T) {
	runner := NewDefaultRunner()
	if _, err := runner.Run(context.Background(), nil, nil, nil); err == nil {
		t.Fatal("expected an error for a nil file")
	}
}

func TestSortDiagnosticsOrdersByPositionThenCodeThenMessage(t *testing.T) {
	d1 := diag.New("z", diag.Warning).WithCode("b").WithSpan(span.Span{Start: 10, End: 12})
	d2 := diag.New("a", diag.Warning).WithCode("a").WithSpan(span.Span{Start: 10, End: 12})
	d3 := diag.New("first", diag.Warning).WithCode("z").WithSpan(span.Span{Start: 1, End: 2})

	diags := []*diag.Diagnostic{d1, d2, d3}
	SortDiagnostics(diags)

	want := []*diag.Diagnostic{d3, d2, d1}
	for i := range want {
		if diags[i] != want[i] {
			t.Fatalf("position %d = %+v, want %+v", i, diags[i], want[i])
		}
	}
}

func TestNewDefaultRunnerWiresSixRules(t *testing.T) {
	runner := NewDefaultRunner()
	if len(runner.rules) != 6 {
		t.Fatalf("len(rules) = %d, want 6", len(runner.rules))
	}
}
