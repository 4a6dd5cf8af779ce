package sarif

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sena-ops/docguard/internal/model"
)

func sampleReports() []model.Report {
	return []model.Report{
		{
			FilePath: "./scripts/etl.py",
			Violations: []model.Violation{
				{RuleID: model.RuleVersionHeader, Severity: model.SevError, Message: "cabeçalho ausente", Line: 1},
				{RuleID: model.RuleSnakeCase, Severity: model.SevWarning, Message: "nome fora do padrão", Line: 12},
			},
		},
	}
}

func TestBuild(t *testing.T) {
	log := Build(sampleReports(), "DocGuard", "0.1.0")

	assert.Equal(t, "2.1.0", log.Version)
	require.Len(t, log.Runs, 1)
	assert.Equal(t, "DocGuard", log.Runs[0].Tool.Driver.Name)

	results := log.Runs[0].Results
	require.Len(t, results, 2)
	assert.Equal(t, "error", results[0].Level)
	assert.Equal(t, "warning", results[1].Level)
	// Caminho normalizado para URI.
	assert.Equal(t, "scripts/etl.py", results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 12, results[1].Locations[0].PhysicalLocation.Region.StartLine)
}

func TestBuildLinhaZeroViraUm(t *testing.T) {
	reports := []model.Report{{
		FilePath:   "x.py",
		Violations: []model.Violation{{RuleID: "r", Severity: model.SevError, Line: 0}},
	}}
	log := Build(reports, "DocGuard", "0.1.0")
	assert.Equal(t, 1, log.Runs[0].Results[0].Locations[0].PhysicalLocation.Region.StartLine)
}

func TestBytesEhJSONValido(t *testing.T) {
	data, err := Bytes(sampleReports(), "DocGuard", "0.1.0")
	require.NoError(t, err)

	var decoded Log
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2.1.0", decoded.Version)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	outPath, err := Export(sampleReports(), dir, "docguard-results", "DocGuard", "0.1.0")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "docguard-results.sarif"), outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var decoded Log
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Runs[0].Results, 2)
}
