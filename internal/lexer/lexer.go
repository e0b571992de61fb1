// Package lexer tokenizes GDScript 2.0 source into a token stream, tracking
// indentation, tab/space policy, and comment-borne `noqa` suppressions.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/btouchard/gdlint/internal/span"
	"github.com/btouchard/gdlint/internal/token"
)

// IndentStyle is the tab/space convention a Lexer locks onto after seeing
// its first non-empty indentation run. It lives on the Lexer instance, not
// as process-wide state, so that concurrent lexers over different files
// never interfere with each other.
type IndentStyle int

const (
	IndentUnset IndentStyle = iota
	IndentSpaces
	IndentTabs
)

// DiagnosticKind classifies a lex-time error. Lex errors never abort the
// lexer; a best-effort token is always produced.
type DiagnosticKind string

const (
	MixedIndent      DiagnosticKind = "mixed-indent"
	SpaceIndent      DiagnosticKind = "space-indent"
	TabIndent        DiagnosticKind = "tab-indent"
	UnclosedDouble   DiagnosticKind = "unclosed-double-string"
	UnclosedSingle   DiagnosticKind = "unclosed-single-string"
	UnknownCharacter DiagnosticKind = "unknown-character"
	BadIndentLevel   DiagnosticKind = "bad-indent-level"
	BadNumber        DiagnosticKind = "bad-number"
)

// Diagnostic is a lex-time error tied to the offending span.
type Diagnostic struct {
	Kind DiagnosticKind
	Span span.Span
	Text string
}

// Lexer turns a source buffer into a stream of Tokens. Create one with New
// and pull tokens with NextToken until it returns a token of kind token.EOF.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int

	parenDepth  int
	atLineStart bool
	indentStyle IndentStyle
	indentStack []string

	queue       []token.Token
	diagnostics []Diagnostic
	noqas       map[int]map[string]bool
}

// New creates a Lexer over source. The Lexer borrows source for its entire
// lifetime; the caller must keep it alive until all tokens are consumed.
func New(source string) *Lexer {
	l := &Lexer{
		input:       source,
		line:        1,
		column:      0,
		atLineStart: true,
		indentStack: []string{""},
		noqas:       make(map[int]map[string]bool),
	}
	l.readChar()
	return l
}

// Diagnostics returns the lex errors accumulated so far.
func (l *Lexer) Diagnostics() []Diagnostic {
	return l.diagnostics
}

// Noqas returns the line -> suppressed-code-set table collected while
// scanning comments.
func (l *Lexer) Noqas() map[int]map[string]bool {
	return l.noqas
}

func (l *Lexer) addDiag(kind DiagnosticKind, sp span.Span, text string) {
	l.diagnostics = append(l.diagnostics, Diagnostic{Kind: kind, Span: sp, Text: text})
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) peekCharAt(extra int) rune {
	pos := l.readPosition
	for i := 0; i < extra; i++ {
		if pos >= len(l.input) {
			return 0
		}
		_, size := utf8.DecodeRuneInString(l.input[pos:])
		pos += size
	}
	if pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

type snapshot struct {
	position, readPosition, line, column int
	ch                                   rune
}

func (l *Lexer) save() snapshot {
	return snapshot{l.position, l.readPosition, l.line, l.column, l.ch}
}

func (l *Lexer) restore(s snapshot) {
	l.position, l.readPosition, l.line, l.column, l.ch = s.position, s.readPosition, s.line, s.column, s.ch
}

func (l *Lexer) mk(kind token.Kind, start int, lit string) token.Token {
	return token.Token{Kind: kind, Literal: lit, Span: span.Span{Start: start, End: l.position}}
}

// NextToken returns the next token in the stream. INDENT/DEDENT tokens are
// synthetic and have zero-length spans. Spaces and tabs between tokens,
// leading indentation, and escaped newlines are skipped and belong to no
// token's span; no BLANK token is emitted.
func (l *Lexer) NextToken() token.Token {
	if len(l.queue) > 0 {
		tok := l.queue[0]
		l.queue = l.queue[1:]
		return tok
	}

	if l.atLineStart && l.parenDepth == 0 {
		if tok, ok := l.handleLineStart(); ok {
			return tok
		}
	}

	tok := l.scanToken()

	if tok.Kind == NOT_IN_CANDIDATE {
		return l.fuseNotIn(tok)
	}

	return tok
}

// NOT_IN_CANDIDATE is an internal sentinel never returned to callers; it
// marks a just-scanned `not` token so NextToken can attempt NotIn fusion.
const NOT_IN_CANDIDATE token.Kind = "__not_in_candidate__"

func (l *Lexer) fuseNotIn(notTok token.Token) token.Token {
	notTok.Kind = token.NOT
	save := l.save()
	l.skipBlanks()
	if l.matchKeyword("in") {
		return token.Token{Kind: token.NOT_IN, Literal: "not in", Span: span.Span{Start: notTok.Span.Start, End: l.position}}
	}
	l.restore(save)
	return notTok
}

func (l *Lexer) skipBlanks() {
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
}

func (l *Lexer) matchKeyword(word string) bool {
	start := l.position
	if !isIdentStart(l.ch) {
		return false
	}
	for isIdentStart(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	if l.input[start:l.position] == word {
		return true
	}
	return false
}

// handleLineStart runs the indentation state machine. It returns an INDENT
// or DEDENT token and ok=true when the caller should return that token
// immediately; for blank/comment-only lines and unchanged indentation it
// returns ok=false.
func (l *Lexer) handleLineStart() (token.Token, bool) {
	start := l.position
	run := strings.Builder{}
	for l.ch == ' ' || l.ch == '\t' {
		run.WriteRune(l.ch)
		l.readChar()
	}
	blank := run.String()

	// Blank line or comment-only line: does not affect the indent stack.
	if l.ch == '\n' || l.ch == '\r' || l.ch == 0 || l.ch == '#' {
		l.atLineStart = false
		return token.Token{}, false
	}

	l.classifyIndentStyle(blank, start)

	top := l.indentStack[len(l.indentStack)-1]
	switch {
	case blank == top:
		l.atLineStart = false
		return token.Token{}, false
	case strings.HasPrefix(blank, top) && len(blank) > len(top):
		l.indentStack = append(l.indentStack, blank)
		l.atLineStart = false
		return token.Token{Kind: token.INDENT, Span: span.Zero(l.position)}, true
	default:
		popped := 0
		for len(l.indentStack) > 1 && !strings.HasPrefix(blank, l.indentStack[len(l.indentStack)-1]) {
			l.indentStack = l.indentStack[:len(l.indentStack)-1]
			popped++
		}
		if l.indentStack[len(l.indentStack)-1] != blank {
			l.addDiag(BadIndentLevel, span.Span{Start: start, End: l.position}, blank)
		}
		if popped == 0 {
			l.atLineStart = false
			return token.Token{}, false
		}
		for i := 1; i < popped; i++ {
			l.queue = append(l.queue, token.Token{Kind: token.DEDENT, Span: span.Zero(l.position)})
		}
		l.atLineStart = false
		return token.Token{Kind: token.DEDENT, Span: span.Zero(l.position)}, true
	}
}

func (l *Lexer) classifyIndentStyle(blank string, start int) {
	if blank == "" {
		return
	}
	hasSpace := strings.ContainsRune(blank, ' ')
	hasTab := strings.ContainsRune(blank, '\t')
	sp := span.Span{Start: start, End: l.position}

	if hasSpace && hasTab {
		l.addDiag(MixedIndent, sp, blank)
		return
	}

	switch l.indentStyle {
	case IndentUnset:
		if hasTab {
			l.indentStyle = IndentTabs
		} else {
			l.indentStyle = IndentSpaces
		}
	case IndentSpaces:
		if hasTab {
			l.addDiag(TabIndent, sp, blank)
		}
	case IndentTabs:
		if hasSpace {
			l.addDiag(SpaceIndent, sp, blank)
		}
	}
}

// drainDedents is called once the token stream is exhausted at EOF to
// balance the indent stack back down to its initial empty level.
func (l *Lexer) drainDedents() []token.Token {
	var out []token.Token
	for len(l.indentStack) > 1 {
		l.indentStack = l.indentStack[:len(l.indentStack)-1]
		out = append(out, token.Token{Kind: token.DEDENT, Span: span.Zero(l.position)})
	}
	return out
}

func (l *Lexer) scanToken() token.Token {
	l.skipIntraLineWhitespaceAndContinuations()

	pos := l.position

	switch l.ch {
	case 0:
		out := l.drainDedents()
		if len(out) > 0 {
			l.queue = append(l.queue, out[1:]...)
			return out[0]
		}
		return token.Token{Kind: token.EOF, Span: span.Zero(l.position)}
	case '\n', '\r':
		return l.scanNewline(pos)
	case '#':
		return l.scanComment(pos)
	case '"':
		return l.scanString(pos, '"', token.STRING)
	case '\'':
		return l.scanString(pos, '\'', token.STRING)
	case '&':
		if l.peekChar() == '"' || l.peekChar() == '\'' {
			q := l.peekChar()
			l.readChar()
			return l.scanString(pos, q, token.STRING_NAME)
		}
		if l.peekChar() == '&' {
			l.readChar()
			l.readChar()
			return l.mk(token.SYM_AND, pos, "&&")
		}
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.mk(token.AMP_ASSIGN, pos, "&=")
		}
		l.readChar()
		return l.mk(token.AMP, pos, "&")
	case '$':
		if l.peekChar() == '"' || l.peekChar() == '\'' {
			q := l.peekChar()
			l.readChar()
			return l.scanString(pos, q, token.NODE)
		}
		l.readChar()
		return l.mk(token.DOLLAR, pos, "$")
	case '%':
		if l.peekChar() == '"' || l.peekChar() == '\'' {
			q := l.peekChar()
			l.readChar()
			return l.scanString(pos, q, token.UNIQUE_NODE)
		}
		return l.scanOperator(pos)
	case '^':
		if l.peekChar() == '"' || l.peekChar() == '\'' {
			q := l.peekChar()
			l.readChar()
			return l.scanString(pos, q, token.NODE_PATH)
		}
		return l.scanOperator(pos)
	case '@':
		l.readChar()
		return l.mk(token.AT, pos, "@")
	default:
		if isIdentStart(l.ch) {
			return l.scanIdentifier(pos)
		}
		if isDigit(l.ch) {
			return l.scanNumber(pos)
		}
		return l.scanOperator(pos)
	}
}

// skipIntraLineWhitespaceAndContinuations consumes spaces/tabs and folds
// escaped newlines (a backslash immediately followed by a line break),
// which are discarded as line continuations. It stops at a real newline,
// comment, or content so the caller can decide how to handle it.
func (l *Lexer) skipIntraLineWhitespaceAndContinuations() {
	for {
		for l.ch == ' ' || l.ch == '\t' {
			l.readChar()
		}
		if l.ch == '\\' && (l.peekChar() == '\n' || l.peekChar() == '\r') {
			l.readChar() // consume backslash
			if l.ch == '\r' && l.peekChar() == '\n' {
				l.readChar()
			}
			l.readChar() // consume newline
			continue
		}
		return
	}
}

func (l *Lexer) scanNewline(pos int) token.Token {
	if l.ch == '\r' && l.peekChar() == '\n' {
		l.readChar()
	}
	l.readChar()
	if l.parenDepth == 0 {
		l.atLineStart = true
	}
	return l.mk(token.NEWLINE, pos, "\n")
}

func (l *Lexer) scanComment(pos int) token.Token {
	line := l.line
	for l.ch != '\n' && l.ch != '\r' && l.ch != 0 {
		l.readChar()
	}
	text := l.input[pos:l.position]
	l.recordNoqa(line, text)
	return l.mk(token.COMMENT, pos, text)
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentContinue(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func (l *Lexer) scanIdentifier(pos int) token.Token {
	for isIdentContinue(l.ch) {
		l.readChar()
	}
	lit := l.input[pos:l.position]
	kind := token.LookupIdent(lit)
	if kind == token.NOT {
		return token.Token{Kind: NOT_IN_CANDIDATE, Literal: lit, Span: span.Span{Start: pos, End: l.position}}
	}
	return token.Token{Kind: kind, Literal: lit, Span: span.Span{Start: pos, End: l.position}}
}
