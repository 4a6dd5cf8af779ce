package validator

import (
	"fmt"
	"os"
	"sort"

	"github.com/Sena-ops/docguard/internal/model"
	"github.com/Sena-ops/docguard/internal/parser"
	"github.com/Sena-ops/docguard/internal/rules"
)

// Validator aplica uma lista fixa e imutável de regras a um arquivo por
// vez. Sem estado entre chamadas: chamadas concorrentes sobre arquivos
// distintos não precisam de lock.
type Validator struct {
	rules []rules.Rule
}

// New cria um Validator com as regras informadas; sem argumentos, usa
// as quatro regras padrão.
func New(rs ...rules.Rule) *Validator {
	if len(rs) == 0 {
		rs = rules.Default()
	}
	return &Validator{rules: rs}
}

// Rules devolve uma cópia da lista de regras configurada.
func (v *Validator) Rules() []rules.Rule {
	out := make([]rules.Rule, len(v.rules))
	copy(out, v.rules)
	return out
}

// Validate avalia todas as regras sobre o conteúdo e monta o Report.
// Total: nunca falha para entrada string — problemas viram violações.
func (v *Validator) Validate(path, content string) model.Report {
	doc := parser.ParseString(path, content)

	var violations []model.Violation
	for _, r := range v.rules {
		vs := r.Check(doc)
		// Dentro de cada regra, ordem por linha crescente.
		sort.SliceStable(vs, func(i, j int) bool { return vs[i].Line < vs[j].Line })
		violations = append(violations, vs...)
	}

	return model.Report{
		FilePath:   path,
		Violations: violations,
		Compliant:  !model.HasErrors(violations),
	}
}

// ValidateFile lê o arquivo do disco e o valida.
func (v *Validator) ValidateFile(path string) (model.Report, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return model.Report{}, fmt.Errorf("ler arquivo %s: %w", path, err)
	}
	return v.Validate(path, string(b)), nil
}
