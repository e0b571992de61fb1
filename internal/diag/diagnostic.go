// Package diag defines the diagnostic record shared by the lexer, parser,
// and lint engine, and the builder used to assemble one.
package diag

import "github.com/btouchard/gdlint/internal/span"

// Severity classifies a diagnostic. Custom carries an implementation-defined
// tag for severities beyond Error/Warning (e.g. "advice").
type Severity struct {
	kind   severityKind
	custom string
}

type severityKind int

const (
	severityError severityKind = iota
	severityWarning
	severityCustom
)

var (
	Error   = Severity{kind: severityError}
	Warning = Severity{kind: severityWarning}
)

// CustomSeverity builds a Severity carrying an implementation-defined tag.
func CustomSeverity(tag string) Severity {
	return Severity{kind: severityCustom, custom: tag}
}

func (s Severity) String() string {
	switch s.kind {
	case severityError:
		return "error"
	case severityWarning:
		return "warning"
	default:
		return s.custom
	}
}

// Highlight is a secondary span attached to a diagnostic, optionally
// carrying its own message.
type Highlight struct {
	Span    span.Span
	Message string
}

// NewHighlight builds a Highlight at sp with no message.
func NewHighlight(sp span.Span) Highlight {
	return Highlight{Span: sp}
}

// WithMessage attaches a message to the highlight and returns it.
func (h Highlight) WithMessage(msg string) Highlight {
	h.Message = msg
	return h
}

// Diagnostic is the unit of output of the lexer, parser, and lint engine.
// It owns no strings longer-lived than the source buffer it was built
// against.
type Diagnostic struct {
	Message     string
	Severity    Severity
	Code        string
	PrimarySpan *span.Span
	Highlights  []Highlight
	Help        []string
}

// New starts building a diagnostic with the given message and severity.
func New(message string, severity Severity) *Diagnostic {
	return &Diagnostic{Message: message, Severity: severity}
}

// WithCode attaches a stable code, used for `# noqa` suppression.
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithSpan attaches the diagnostic's primary span.
func (d *Diagnostic) WithSpan(sp span.Span) *Diagnostic {
	s := sp
	d.PrimarySpan = &s
	return d
}

// AddHighlight appends a secondary highlight.
func (d *Diagnostic) AddHighlight(h Highlight) *Diagnostic {
	d.Highlights = append(d.Highlights, h)
	return d
}

// AddHelp appends a line of help text.
func (d *Diagnostic) AddHelp(text string) *Diagnostic {
	d.Help = append(d.Help, text)
	return d
}
