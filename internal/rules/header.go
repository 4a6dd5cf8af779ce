package rules

import (
	"regexp"

	"github.com/Sena-ops/docguard/internal/model"
	"github.com/Sena-ops/docguard/internal/parser"
)

var (
	separatorRe = regexp.MustCompile(`^[=\-]{4,}$`)
	versionRe   = regexp.MustCompile(`\bv\d+(\.\d+)*\b`)
	letterRe    = regexp.MustCompile(`[A-Za-z]`)
)

// VersionHeader exige que o primeiro bloco de comentários do arquivo
// seja o cabeçalho de três linhas: separador, "<Projeto> vX.Y", separador.
func VersionHeader() Rule { return VersionHeaderWith(nil) }

// VersionHeaderWith permite restringir o nome do projeto na linha de
// título com um padrão próprio (via arquivo de configuração).
func VersionHeaderWith(project *regexp.Regexp) Rule {
	return Rule{
		ID:          model.RuleVersionHeader,
		Name:        "Cabeçalho de versão",
		Description: "O arquivo deve abrir com o cabeçalho delimitado: separador, nome do projeto + versão vX.Y, separador.",
		Check: func(doc *parser.SourceDocument) []model.Violation {
			if _, _, ok := matchHeader(doc, project); ok {
				return nil
			}
			return []model.Violation{{
				RuleID:   model.RuleVersionHeader,
				RuleName: "Cabeçalho de versão",
				Severity: model.SevError,
				Line:     1,
				Message:  "cabeçalho de versão ausente ou malformado (esperado: separador, nome do projeto + vX.Y, separador)",
			}}
		},
	}
}

// matchHeader verifica o padrão de três linhas no primeiro bloco do
// preâmbulo. Devolve quantas linhas do bloco o cabeçalho consumiu e a
// linha (1-based) onde ele termina. Compartilhado com a regra BLUF.
func matchHeader(doc *parser.SourceDocument, project *regexp.Regexp) (consumed, endLine int, ok bool) {
	if len(doc.Preamble) == 0 {
		return 0, 0, false
	}
	first := doc.Preamble[0]
	if len(first.Lines) < 3 {
		return 0, 0, false
	}
	top, title, bottom := first.Lines[0], first.Lines[1], first.Lines[2]
	if !separatorRe.MatchString(top.Text) || !separatorRe.MatchString(bottom.Text) {
		return 0, 0, false
	}
	if !versionRe.MatchString(title.Text) {
		return 0, 0, false
	}
	name := versionRe.ReplaceAllString(title.Text, "")
	if !letterRe.MatchString(name) {
		return 0, 0, false
	}
	if project != nil && !project.MatchString(title.Text) {
		return 0, 0, false
	}
	return 3, bottom.Number, true
}
