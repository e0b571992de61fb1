package visualize

import (
	"fmt"
	"strings"

	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/btouchard/gdlint/internal/diag"
	"github.com/btouchard/gdlint/internal/span"
)

// Codespan renders a diagnostic as a bordered panel containing the
// message, the offending source line, and a caret underline beneath the
// primary span — the layout codespan-reporting made familiar.
type Codespan struct {
	SourceName string
	Table      *span.Table
}

// NewCodespan builds a Codespan visualizer for a single source file.
func NewCodespan(sourceName string, table *span.Table) *Codespan {
	return &Codespan{SourceName: sourceName, Table: table}
}

var (
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	frameStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	caretStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func headerStyle(sev diag.Severity) lipgloss.Style {
	switch sev.String() {
	case "error":
		return errorStyle
	case "warning":
		return warningStyle
	default:
		return noteStyle
	}
}

// Visualize writes one diagnostic's boxed rendering to w.
func (v *Codespan) Visualize(w io.Writer, d *diag.Diagnostic) error {
	var b strings.Builder

	header := d.Severity.String()
	if d.Code != "" {
		header += "[" + d.Code + "]"
	}
	fmt.Fprintln(&b, headerStyle(d.Severity).Render(header+": "+d.Message))

	if d.PrimarySpan != nil && v.Table != nil {
		start := v.Table.Point(d.PrimarySpan.Start)
		fmt.Fprintf(&b, "%s:%d:%d\n", v.SourceName, start.Line, start.Column)

		line := v.Table.LineText(start.Line)
		fmt.Fprintf(&b, "%4d | %s\n", start.Line, line)

		end := v.Table.Point(d.PrimarySpan.End)
		underlineLen := end.Column - start.Column
		if start.Line != end.Line || underlineLen < 1 {
			underlineLen = 1
		}
		gutter := strings.Repeat(" ", start.Column-1)
		caret := strings.Repeat("^", underlineLen)
		fmt.Fprintf(&b, "     | %s%s\n", gutter, caretStyle.Render(caret))
	}

	for _, h := range d.Highlights {
		if v.Table == nil {
			continue
		}
		p := v.Table.Point(h.Span.Start)
		fmt.Fprintf(&b, "note: %s (%d:%d)\n", h.Message, p.Line, p.Column)
	}
	for _, help := range d.Help {
		fmt.Fprintf(&b, "help: %s\n", help)
	}

	fmt.Fprintln(w, frameStyle.Render(strings.TrimRight(b.String(), "\n")))
	return nil
}

// VisualizeAll renders every diagnostic in order.
func (v *Codespan) VisualizeAll(w io.Writer, diags []*diag.Diagnostic) error {
	for _, d := range diags {
		if err := v.Visualize(w, d); err != nil {
			return err
		}
	}
	return nil
}
