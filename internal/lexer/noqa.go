package lexer

import "strings"

// recordNoqa scans a comment's text for a `# noqa` or `# noqa: <code>(, <code>)*`
// directive and records the suppressed codes against the comment's line. A
// bare `# noqa` is recorded under the empty-string code, meaning "suppress
// everything on this line".
func (l *Lexer) recordNoqa(line int, commentText string) {
	body := strings.TrimPrefix(commentText, "#")
	body = strings.TrimSpace(body)

	const bare = "noqa"
	const prefix = "noqa:"

	var codes []string
	switch {
	case strings.HasPrefix(body, prefix):
		rest := strings.TrimSpace(body[len(prefix):])
		if rest == "" {
			codes = []string{""}
		} else {
			codes = strings.Split(rest, ",")
		}
	case body == bare:
		codes = []string{""}
	default:
		return
	}

	set := l.noqas[line]
	if set == nil {
		set = make(map[string]bool)
		l.noqas[line] = set
	}
	for _, code := range codes {
		set[strings.TrimSpace(code)] = true
	}
}
