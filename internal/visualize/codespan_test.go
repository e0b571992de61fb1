package visualize

import (
	"bytes"
	"strings"
	"testing"

	"github.com/btouchard/gdlint/internal/diag"
	"github.com/btouchard/gdlint/internal/span"
)

func TestCodespanVisualize(t *testing.T) {
	source := "var speed = 1\n"
	table := span.NewTable(source)
	d := diag.New("Variable names should be in snake_case.", diag.Warning).
		WithCode("identifier-case").
		WithSpan(span.Span{Start: 4, End: 9})

	var buf bytes.Buffer
	v := NewCodespan("main.gd", table)
	if err := v.Visualize(&buf, d); err != nil {
		t.Fatalf("Visualize() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"identifier-case", "Variable names should be in snake_case.", "main.gd:1:5", "var speed = 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q; got:\n%s", want, out)
		}
	}
}

func TestCodespanVisualizeAllRendersEveryDiagnostic(t *testing.T) {
	table := span.NewTable("x\ny\n")
	d1 := diag.New("one", diag.Error).WithSpan(span.Span{Start: 0, End: 1})
	d2 := diag.New("two", diag.Warning).WithSpan(span.Span{Start: 2, End: 3})

	var buf bytes.Buffer
	v := NewCodespan("f.gd", table)
	if err := v.VisualizeAll(&buf, []*diag.Diagnostic{d1, d2}); err != nil {
		t.Fatalf("VisualizeAll() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "one") || !strings.Contains(out, "two") {
		t.Errorf("expected both diagnostics rendered, got:\n%s", out)
	}
}
