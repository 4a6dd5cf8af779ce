package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sena-ops/docguard/internal/model"
)

func TestSnakeCaseConforme(t *testing.T) {
	content := "def process_data():\n" +
		"    \"\"\"Processa.\"\"\"\n" +
		"    return 1\n"
	vs := checkOn(t, SnakeCase(), content)
	assert.Empty(t, vs)
}

func TestSnakeCaseCamelCase(t *testing.T) {
	// Função fora do padrão, mas com docstring: apenas o aviso de nome.
	content := "def ProcessData():\n" +
		"    \"\"\"Processa.\"\"\"\n" +
		"    return 1\n"

	vs := checkOn(t, SnakeCase(), content)
	require.Len(t, vs, 1)
	assert.Equal(t, model.RuleSnakeCase, vs[0].RuleID)
	assert.Equal(t, model.SevWarning, vs[0].Severity)
	assert.Equal(t, "ProcessData", vs[0].FuncName)

	assert.Empty(t, checkOn(t, FunctionDocstring(), content))
}

func TestSnakeCaseVariosNomes(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		ok   bool
	}{
		{"snake_simples", "load", true},
		{"snake_com_digito", "load_v2", true},
		{"camel", "LoadData", false},
		{"underscore_inicial", "_helper", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "def " + tt.fn + "():\n    pass\n"
			vs := checkOn(t, SnakeCase(), content)
			if tt.ok {
				assert.Empty(t, vs)
			} else {
				assert.Len(t, vs, 1)
			}
		})
	}
}
