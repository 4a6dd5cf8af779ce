package model

// Severity é a severidade normalizada de uma violação.
// Apenas "error" bloqueia a conformidade; "warning" é consultivo.
type Severity string

const (
	SevError   Severity = "error"
	SevWarning Severity = "warning"
)

// IDs das regras embutidas, na ordem em que são avaliadas.
const (
	RuleVersionHeader = "has_version_header"
	RuleBlufBlock     = "has_bluf_block"
	RuleDocstring     = "function_has_docstring"
	RuleSnakeCase     = "uses_snake_case"
)

// Violation é um desvio detectado em relação a uma regra.
type Violation struct {
	RuleID   string   `json:"ruleId"`             // ex: "has_version_header"
	RuleName string   `json:"ruleName,omitempty"` // nome legível da regra
	Severity Severity `json:"severity"`           // error | warning
	Message  string   `json:"message"`            // descrição curta
	Line     int      `json:"line"`               // 1-based
	FuncName string   `json:"funcName,omitempty"` // preenchido pelas regras por função
}

// Report é o resultado de validar um único arquivo.
// A ordem das violações é a ordem de declaração das regras e,
// dentro de cada regra, por linha crescente (determinística).
type Report struct {
	FilePath   string      `json:"file"`
	Violations []Violation `json:"violations"`
	Compliant  bool        `json:"isCompliant"` // derivado: nenhuma violação "error"
}

// HasErrors informa se alguma violação tem severidade error.
func HasErrors(vs []Violation) bool {
	for _, v := range vs {
		if v.Severity == SevError {
			return true
		}
	}
	return false
}
