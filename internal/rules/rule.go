package rules

import (
	"fmt"

	"github.com/Sena-ops/docguard/internal/model"
	"github.com/Sena-ops/docguard/internal/parser"
)

// CheckFunc é uma função pura: documento -> zero ou mais violações.
type CheckFunc func(doc *parser.SourceDocument) []model.Violation

// Rule é uma regra de conformidade independente e sem estado.
type Rule struct {
	ID          string
	Name        string
	Description string
	Check       CheckFunc
}

// Default devolve as quatro regras embutidas na ordem fixa de avaliação.
// A ordem é parte do contrato: relatórios precisam ser reproduzíveis.
func Default() []Rule {
	return []Rule{
		VersionHeader(),
		BlufBlock(),
		FunctionDocstring(),
		SnakeCase(),
	}
}

var registry = map[string]func() Rule{
	model.RuleVersionHeader: VersionHeader,
	model.RuleBlufBlock:     BlufBlock,
	model.RuleDocstring:     FunctionDocstring,
	model.RuleSnakeCase:     SnakeCase,
}

// ByID devolve a regra embutida com o id informado.
func ByID(id string) (Rule, error) {
	fn, ok := registry[id]
	if !ok {
		return Rule{}, fmt.Errorf("regra '%s' não suportada", id)
	}
	return fn(), nil
}

// FromIDs devolve o subconjunto de regras pedido, sempre na ordem
// padrão de avaliação (independente da ordem dos ids).
func FromIDs(ids []string) ([]Rule, error) {
	want := map[string]bool{}
	for _, id := range ids {
		if _, ok := registry[id]; !ok {
			return nil, fmt.Errorf("regra '%s' não suportada", id)
		}
		want[id] = true
	}
	var out []Rule
	for _, r := range Default() {
		if want[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

// WithSeverity embrulha a regra forçando a severidade das violações.
func WithSeverity(r Rule, sev model.Severity) Rule {
	inner := r.Check
	r.Check = func(doc *parser.SourceDocument) []model.Violation {
		vs := inner(doc)
		for i := range vs {
			vs[i].Severity = sev
		}
		return vs
	}
	return r
}
