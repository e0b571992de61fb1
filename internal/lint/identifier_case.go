package lint

import (
	"context"

	"github.com/iancoleman/strcase"

	"github.com/btouchard/gdlint/internal/ast"
	"github.com/btouchard/gdlint/internal/diag"
)

// IdentifierCaseRule enforces GDScript's naming conventions: PascalCase for
// classes/enums, SCREAMING_SNAKE_CASE for constants and enum variants, and
// snake_case for everything else.
type IdentifierCaseRule struct {
	base
	diags []*diag.Diagnostic
}

func (r *IdentifierCaseRule) ID() string          { return "identifier-case" }
func (r *IdentifierCaseRule) Description() string { return "Identifiers follow GDScript naming conventions" }

func (r *IdentifierCaseRule) Run(ctx context.Context, file *ast.File) ([]*diag.Diagnostic, error) {
	r.base.self = r
	r.diags = nil
	r.VisitFile(file)
	return r.diags, nil
}

func (r *IdentifierCaseRule) report(message string, sp ast.Node) {
	r.diags = append(r.diags, diag.New(message, diag.Warning).WithSpan(sp.NodeSpan()))
}

func (r *IdentifierCaseRule) VisitClass(c *ast.Class) {
	if c.Identifier != nil {
		if cased := strcase.ToCamel(*c.Identifier); cased != *c.Identifier {
			r.report("Class names should be in PascalCase.", c)
		}
	}
	r.base.VisitClass(c)
}

func (r *IdentifierCaseRule) VisitClassName(s *ast.ClassName) {
	if cased := strcase.ToCamel(s.Identifier); cased != s.Identifier {
		r.report("Class names should be in PascalCase.", s)
	}
}

func (r *IdentifierCaseRule) VisitEnum(e *ast.Enum) {
	if e.Identifier != nil {
		if cased := strcase.ToCamel(*e.Identifier); cased != *e.Identifier {
			r.report("Enum names should be in PascalCase.", e)
		}
	}
	for _, variant := range e.Variants {
		if cased := strcase.ToScreamingSnake(variant.Identifier); cased != variant.Identifier {
			r.report("Enum variant names should be in SCREAMING_SNAKE_CASE.", variant)
		}
	}
	r.base.VisitEnum(e)
}

func (r *IdentifierCaseRule) VisitFunction(fn *ast.Function) {
	if fn.Identifier != nil {
		if cased := strcase.ToSnake(*fn.Identifier); cased != *fn.Identifier {
			r.report("Function names should be in snake_case.", fn)
		}
	}
	r.base.VisitFunction(fn)
}

func (r *IdentifierCaseRule) VisitSignal(s *ast.Signal) {
	if cased := strcase.ToSnake(s.Identifier); cased != s.Identifier {
		r.report("Signal names should be in snake_case.", s)
	}
	r.base.VisitSignal(s)
}

func (r *IdentifierCaseRule) VisitVariable(v *ast.Variable) {
	switch v.Kind {
	case ast.VarConst:
		if cased := strcase.ToScreamingSnake(v.Identifier); cased != v.Identifier {
			r.report("Constant names should be in SCREAMING_SNAKE_CASE.", v)
		}
	default:
		if cased := strcase.ToSnake(v.Identifier); cased != v.Identifier {
			r.report("Variable names should be in snake_case.", v)
		}
	}
	r.base.VisitVariable(v)
}
