// Package visualize renders diagnostics to a terminal in one of two
// styles: Rustc's compact single-pointer format, and a boxed Codespan-style
// source frame.
package visualize

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/btouchard/gdlint/internal/diag"
	"github.com/btouchard/gdlint/internal/span"
)

// Rustc renders diagnostics in the compact style popularized by rustc: a
// colored "severity[code]: message" header followed by a
// "  --> file:line:col" source pointer.
type Rustc struct {
	SourceName string
	Table      *span.Table
}

// NewRustc builds a Rustc visualizer for a single source file.
func NewRustc(sourceName string, table *span.Table) *Rustc {
	return &Rustc{SourceName: sourceName, Table: table}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev.String() {
	case "error":
		return color.New(color.FgRed, color.Bold)
	case "warning":
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgGreen, color.Bold)
	}
}

// Visualize writes one diagnostic's rustc-style rendering to w.
func (v *Rustc) Visualize(w io.Writer, d *diag.Diagnostic) error {
	style := severityColor(d.Severity)
	header := d.Severity.String()
	if d.Code != "" {
		header += "[" + d.Code + "]"
	}
	style.Fprint(w, header)
	fmt.Fprintf(w, ": %s\n", d.Message)

	border := color.New(color.FgBlue, color.Bold)
	border.Fprint(w, "  --> ")
	fmt.Fprint(w, v.SourceName)
	if d.PrimarySpan != nil && v.Table != nil {
		p := v.Table.Point(d.PrimarySpan.Start)
		fmt.Fprintf(w, ":%d:%d", p.Line, p.Column)
	}
	fmt.Fprintln(w)

	for _, h := range d.Highlights {
		if v.Table == nil {
			continue
		}
		p := v.Table.Point(h.Span.Start)
		if h.Message != "" {
			fmt.Fprintf(w, "  note: %s (%d:%d)\n", h.Message, p.Line, p.Column)
		} else {
			fmt.Fprintf(w, "  note: %d:%d\n", p.Line, p.Column)
		}
	}
	for _, help := range d.Help {
		fmt.Fprintf(w, "  = help: %s\n", help)
	}
	fmt.Fprintln(w)
	return nil
}

// VisualizeAll renders every diagnostic in order.
func (v *Rustc) VisualizeAll(w io.Writer, diags []*diag.Diagnostic) error {
	for _, d := range diags {
		if err := v.Visualize(w, d); err != nil {
			return err
		}
	}
	return nil
}
