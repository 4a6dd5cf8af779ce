package rules

import (
	"fmt"
	"regexp"

	"github.com/Sena-ops/docguard/internal/model"
	"github.com/Sena-ops/docguard/internal/parser"
)

var snakeRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// SnakeCase avisa quando o nome de uma função foge do padrão
// snake_case. Consultivo: não bloqueia a conformidade.
func SnakeCase() Rule {
	return Rule{
		ID:          model.RuleSnakeCase,
		Name:        "Nomes snake_case",
		Description: "Nomes de função devem seguir o padrão ^[a-z][a-z0-9_]*$.",
		Check: func(doc *parser.SourceDocument) []model.Violation {
			var out []model.Violation
			for _, f := range doc.Functions {
				if snakeRe.MatchString(f.Name) {
					continue
				}
				out = append(out, model.Violation{
					RuleID:   model.RuleSnakeCase,
					RuleName: "Nomes snake_case",
					Severity: model.SevWarning,
					Line:     f.StartLine,
					FuncName: f.Name,
					Message:  fmt.Sprintf("nome de função '%s' fora do padrão snake_case", f.Name),
				})
			}
			return out
		},
	}
}
