package sarif

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sena-ops/docguard/internal/model"
)

type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Message   Message    `json:"message"`
	Level     string     `json:"level"` // error, warning, note
	Locations []Location `json:"locations"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

type Region struct {
	StartLine int `json:"startLine"`
}

// Build converte os relatórios de conformidade em um log SARIF 2.1.0.
func Build(reports []model.Report, toolName, toolVersion string) *Log {
	var results []Result
	for _, rep := range reports {
		fileURI := toURI(rep.FilePath)
		if strings.TrimSpace(fileURI) == "" {
			fileURI = "UNKNOWN"
		}
		for _, v := range rep.Violations {
			start := v.Line
			if start <= 0 {
				start = 1
			}
			results = append(results, Result{
				RuleID: v.RuleID,
				Level:  sevToLevel(v.Severity),
				Message: Message{
					Text: strings.TrimSpace(v.Message),
				},
				Locations: []Location{
					{
						PhysicalLocation: PhysicalLocation{
							ArtifactLocation: ArtifactLocation{
								URI: fileURI,
							},
							Region: Region{
								StartLine: start,
							},
						},
					},
				},
			})
		}
	}

	return &Log{
		Version: "2.1.0",
		// schema RTM reconhecido por GitHub/VSCode
		Schema: "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json",
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    toolName,
						Version: toolVersion,
					},
				},
				Results: results,
			},
		},
	}
}

// Bytes devolve o log SARIF indentado, pronto para stdout.
func Bytes(reports []model.Report, toolName, toolVersion string) ([]byte, error) {
	data, err := json.MarshalIndent(Build(reports, toolName, toolVersion), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sarif: %w", err)
	}
	return data, nil
}

// Export grava um arquivo .sarif em outDir e devolve o caminho.
func Export(reports []model.Report, outDir, fileBase, toolName, toolVersion string) (string, error) {
	data, err := Bytes(reports, toolName, toolVersion)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("criar dir sarif: %w", err)
	}
	outPath := filepath.Join(outDir, fileBase+".sarif")
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return "", fmt.Errorf("escrever sarif: %w", err)
	}
	return outPath, nil
}

func sevToLevel(s model.Severity) string {
	switch s {
	case model.SevError:
		return "error"
	case model.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

func toURI(p string) string {
	p = strings.TrimSpace(p)
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	return strings.TrimPrefix(p, "./")
}
