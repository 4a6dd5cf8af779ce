package rules

import (
	"strings"

	"github.com/Sena-ops/docguard/internal/model"
	"github.com/Sena-ops/docguard/internal/parser"
)

var goalMarkers = []string{"goal:", "objetivo:", "summary", "bluf"}
var businessMarkers = []string{"business", "negócio", "negocio"}

// BlufBlock exige, logo após o cabeçalho, um sumário executivo (BLUF)
// com uma frase de objetivo e uma declaração de lógica de negócio.
func BlufBlock() Rule {
	return Rule{
		ID:          model.RuleBlufBlock,
		Name:        "Bloco BLUF",
		Description: "Após o cabeçalho deve vir um sumário executivo com objetivo (Goal/Summary) e lógica de negócio (Business).",
		Check: func(doc *parser.SourceDocument) []model.Violation {
			consumed, endLine, ok := matchHeader(doc, nil)
			anchor := 1
			if ok {
				anchor = endLine + 1
			}

			var sb strings.Builder
			for _, l := range doc.PreambleAfter(consumed) {
				sb.WriteString(l.Text)
				sb.WriteString("\n")
			}
			text := strings.ToLower(sb.String())

			if strings.TrimSpace(text) != "" && containsAny(text, goalMarkers) && containsAny(text, businessMarkers) {
				return nil
			}
			return []model.Violation{{
				RuleID:   model.RuleBlufBlock,
				RuleName: "Bloco BLUF",
				Severity: model.SevError,
				Line:     anchor,
				Message:  "bloco BLUF (sumário executivo) ausente ou incompleto após o cabeçalho",
			}}
		},
	}
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
