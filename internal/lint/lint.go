// Package lint runs visitor-driven checks over a parsed GDScript file and
// aggregates their diagnostics.
package lint

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/diag"
	"github.com/btouchard/gdlint/internal/span"
)

// Rule is a single lint check that can emit diagnostics for a parsed file.
type Rule interface {
	ID() string
	Description() string
	Run(ctx context.Context, file *ast.File) ([]*diag.Diagnostic, error)
}

// Runner executes a configured rule set and aggregates, suppresses, and
// sorts the resulting diagnostics.
type Runner struct {
	rules []Rule
}

// NewRunner builds a lint runner from an explicit rule set.
func NewRunner(rules ...Rule) *Runner {
	return &Runner{rules: slices.Clone(rules)}
}

// NewDefaultRunner builds the runner with every built-in rule enabled.
func NewDefaultRunner() *Runner {
	return NewRunner(
		&IdentifierCaseRule{},
		&UntypedCodeRule{},
		&StandaloneExpressionRule{},
		&UnnecessaryBranchRule{},
		&SelfInStaticFuncRule{},
		&InvalidAssignmentTargetRule{},
	)
}

// Run executes all configured rules against file, drops diagnostics
// suppressed by a `# noqa` comment on their line, and returns a
// deterministically sorted list.
func (r *Runner) Run(ctx context.Context, file *ast.File, table *span.Table, noqas map[int]map[string]bool) ([]*diag.Diagnostic, error) {
	if file == nil {
		return nil, errors.New("nil syntax tree")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r == nil || len(r.rules) == 0 {
		return []*diag.Diagnostic{}, nil
	}

	out := make([]*diag.Diagnostic, 0, 8)
	for _, rule := range r.rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		diags, err := rule.Run(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.ID(), err)
		}
		for _, d := range diags {
			if d.Code == "" {
				d.WithCode(rule.ID())
			}
			if suppressed(d, table, noqas) {
				continue
			}
			out = append(out, d)
		}
	}

	SortDiagnostics(out)
	return out, nil
}

// suppressed reports whether a `# noqa` (or `# noqa: CODE`) comment on the
// diagnostic's line covers it. A bare `# noqa` (recorded under the empty
// code) suppresses every diagnostic on that line.
func suppressed(d *diag.Diagnostic, table *span.Table, noqas map[int]map[string]bool) bool {
	if noqas == nil || d.PrimarySpan == nil || table == nil {
		return false
	}
	line := table.Point(d.PrimarySpan.Start).Line
	codes, ok := noqas[line]
	if !ok {
		return false
	}
	if codes[""] {
		return true
	}
	return codes[d.Code]
}

// SortDiagnostics orders diagnostics by position, then code, then message,
// giving callers (and golden tests) a stable output order.
func SortDiagnostics(diags []*diag.Diagnostic) {
	if len(diags) < 2 {
		return
	}
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		as, bs := spanStart(a), spanStart(b)
		if as != bs {
			return as < bs
		}
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		return a.Message < b.Message
	})
}

func spanStart(d *diag.Diagnostic) int {
	if d.PrimarySpan == nil {
		return -1
	}
	return d.PrimarySpan.Start
}
