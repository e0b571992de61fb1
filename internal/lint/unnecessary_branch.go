package lint

import (
	"context"

	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/diag"
)

// UnnecessaryBranchRule groups consecutive If/Elif/Else siblings in a block
// (the AST keeps them as flat siblings rather than nesting) and flags an
// `else` as redundant when the `if` arm and every `elif` arm already always
// return — the `else` body would run unconditionally regardless, so it can
// be unindented into the enclosing block.
type UnnecessaryBranchRule struct {
	base
	diags []*diag.Diagnostic
}

func (r *UnnecessaryBranchRule) ID() string { return "unnecessary-branch" }
func (r *UnnecessaryBranchRule) Description() string {
	return "if/elif/else chains contain no redundant else branch"
}

func (r *UnnecessaryBranchRule) Run(ctx context.Context, file *ast.File) ([]*diag.Diagnostic, error) {
	r.base.self = r
	r.diags = nil
	r.VisitFile(file)
	return r.diags, nil
}

// branchGroup is one if/elif*/else? chain found by scanning a block's flat
// statement siblings.
type branchGroup struct {
	ifStmt   *ast.If
	elifs    []*ast.Elif
	elseStmt *ast.Else
}

// groupBranches scans stmts for consecutive If/Elif/Else siblings, starting
// a fresh group at every If.
func groupBranches(stmts []ast.Statement) []branchGroup {
	var groups []branchGroup
	i := 0
	for i < len(stmts) {
		ifStmt, ok := stmts[i].(*ast.If)
		if !ok {
			i++
			continue
		}
		g := branchGroup{ifStmt: ifStmt}
		i++
		for i < len(stmts) {
			elif, ok := stmts[i].(*ast.Elif)
			if !ok {
				break
			}
			g.elifs = append(g.elifs, elif)
			i++
		}
		if i < len(stmts) {
			if elseStmt, ok := stmts[i].(*ast.Else); ok {
				g.elseStmt = elseStmt
				i++
			}
		}
		groups = append(groups, g)
	}
	return groups
}

func (r *UnnecessaryBranchRule) VisitBlock(stmts []ast.Statement) {
	r.base.VisitBlock(stmts)

	for _, g := range groupBranches(stmts) {
		if g.elseStmt == nil {
			continue
		}
		if g.ifStmt != nil && !alwaysReturns(g.ifStmt.Block) {
			continue
		}
		allElifsReturn := true
		for _, elif := range g.elifs {
			if !alwaysReturns(elif.Block) {
				allElifsReturn = false
				break
			}
		}
		if !allElifsReturn {
			continue
		}
		r.diags = append(r.diags, diag.New(
			"Unnecessary `else`.",
			diag.Warning,
		).WithCode("unnecessary-branch").WithSpan(g.elseStmt.Span_))
	}
}

// alwaysReturns reports whether every execution path through block ends in
// a return, either directly or because it contains an if/elif/else chain
// that has an else arm and whose if arm, every elif arm, and else arm all
// always return.
func alwaysReturns(block []ast.Statement) bool {
	for _, stmt := range block {
		if _, ok := stmt.(*ast.Return); ok {
			return true
		}
	}

	for _, g := range groupBranches(block) {
		if groupAlwaysReturns(g) {
			return true
		}
	}
	return false
}

func groupAlwaysReturns(g branchGroup) bool {
	if g.ifStmt != nil && !alwaysReturns(g.ifStmt.Block) {
		return false
	}
	for _, elif := range g.elifs {
		if !alwaysReturns(elif.Block) {
			return false
		}
	}
	if g.elseStmt == nil || !alwaysReturns(g.elseStmt.Block) {
		return false
	}
	return true
}
