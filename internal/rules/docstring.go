package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Sena-ops/docguard/internal/model"
	"github.com/Sena-ops/docguard/internal/parser"
)

var docstringRe = regexp.MustCompile(`^[rRbBuUfF]{0,3}("""|'''|"|')`)

// FunctionDocstring exige que a primeira instrução do corpo de cada
// função seja uma docstring.
func FunctionDocstring() Rule {
	return Rule{
		ID:          model.RuleDocstring,
		Name:        "Docstring de função",
		Description: "Toda função deve abrir o corpo com uma docstring.",
		Check: func(doc *parser.SourceDocument) []model.Violation {
			var out []model.Violation
			for _, f := range doc.Functions {
				if hasDocstring(doc, f) {
					continue
				}
				out = append(out, model.Violation{
					RuleID:   model.RuleDocstring,
					RuleName: "Docstring de função",
					Severity: model.SevError,
					Line:     f.StartLine,
					FuncName: f.Name,
					Message:  fmt.Sprintf("função '%s' sem docstring", f.Name),
				})
			}
			return out
		},
	}
}

func hasDocstring(doc *parser.SourceDocument, f parser.Function) bool {
	if f.BodyStart == 0 || f.BodyStart > len(doc.Lines) {
		return false
	}
	first := strings.TrimSpace(doc.Lines[f.BodyStart-1])
	return docstringRe.MatchString(first)
}
