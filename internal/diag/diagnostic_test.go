package diag

import (
	"testing"

	"github.com/btouchard/gdlint/internal/span"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name string
		sev  Severity
		want string
	}{
		{"error", Error, "error"},
		{"warning", Warning, "warning"},
		{"custom", CustomSeverity("advice"), "advice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sev.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeverityEquality(t *testing.T) {
	if Error == Warning {
		t.Errorf("Error and Warning should not compare equal")
	}
	if Error != Error {
		t.Errorf("Error should compare equal to itself")
	}
	if CustomSeverity("x") == CustomSeverity("y") {
		t.Errorf("distinct custom severities should not compare equal")
	}
}

func TestDiagnosticBuilder(t *testing.T) {
	sp := span.Span{Start: 1, End: 4}
	d := New("bad thing", Error).
		WithCode("bad-thing").
		WithSpan(sp).
		AddHighlight(NewHighlight(span.Span{Start: 5, End: 6}).WithMessage("here")).
		AddHelp("try this instead")

	if d.Message != "bad thing" || d.Severity != Error || d.Code != "bad-thing" {
		t.Fatalf("unexpected diagnostic fields: %+v", d)
	}
	if d.PrimarySpan == nil || *d.PrimarySpan != sp {
		t.Fatalf("PrimarySpan = %v, want %v", d.PrimarySpan, sp)
	}
	if len(d.Highlights) != 1 || d.Highlights[0].Message != "here" {
		t.Fatalf("Highlights = %+v", d.Highlights)
	}
	if len(d.Help) != 1 || d.Help[0] != "try this instead" {
		t.Fatalf("Help = %+v", d.Help)
	}
}

func TestWithSpanIsIndependentOfCallerMutation(t *testing.T) {
	sp := span.Span{Start: 0, End: 1}
	d := New("x", Warning).WithSpan(sp)
	sp.End = 99
	if d.PrimarySpan.End != 1 {
		t.Fatalf("PrimarySpan should not alias the caller's span, got %+v", d.PrimarySpan)
	}
}
