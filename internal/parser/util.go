package parser

import "github.com/btouchard/gdlint/internal/span"

func spanFrom(start, end int) span.Span {
	return span.Span{Start: start, End: end}
}
