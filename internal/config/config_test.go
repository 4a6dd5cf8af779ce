package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sena-ops/docguard/internal/model"
	"github.com/Sena-ops/docguard/internal/parser"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docguard.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadArquivoInexistente(t *testing.T) {
	_, err := Load("nao-existe.yml")
	assert.Error(t, err)
}

func TestLoadEBuildRules(t *testing.T) {
	path := writeConfig(t, `
rules:
  uses_snake_case:
    enabled: false
  function_has_docstring:
    severity: warning
header:
  project_pattern: "NIAP"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	rs, err := cfg.BuildRules()
	require.NoError(t, err)
	require.Len(t, rs, 3)

	var ids []string
	for _, r := range rs {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{model.RuleVersionHeader, model.RuleBlufBlock, model.RuleDocstring}, ids)

	// Severidade rebaixada para warning pela configuração.
	doc := parser.ParseString("x.py", "def sem_doc():\n    return 1\n")
	for _, r := range rs {
		if r.ID != model.RuleDocstring {
			continue
		}
		vs := r.Check(doc)
		require.Len(t, vs, 1)
		assert.Equal(t, model.SevWarning, vs[0].Severity)
	}

	// project_pattern aplicado ao cabeçalho.
	header := parser.ParseString("x.py", "# ====\n# Outro v1.0\n# ====\n")
	vs := rs[0].Check(header)
	assert.Len(t, vs, 1)
}

func TestLoadSeveridadeInvalida(t *testing.T) {
	path := writeConfig(t, `
rules:
  uses_snake_case:
    severity: critical
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRegraDesconhecida(t *testing.T) {
	path := writeConfig(t, `
rules:
  no_such_rule:
    enabled: false
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadPadraoInvalido(t *testing.T) {
	path := writeConfig(t, `
header:
  project_pattern: "(["
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultBuildRules(t *testing.T) {
	rs, err := Default().BuildRules()
	require.NoError(t, err)
	assert.Len(t, rs, 4)
}
