package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/Sena-ops/docguard/internal/model"
	"github.com/Sena-ops/docguard/internal/rules"
)

// RuleConfig ajusta uma regra embutida pelo id.
type RuleConfig struct {
	Enabled  *bool  `yaml:"enabled"`  // nil = habilitada
	Severity string `yaml:"severity"` // "" = severidade padrão da regra
}

// HeaderConfig restringe a linha de título do cabeçalho de versão.
type HeaderConfig struct {
	ProjectPattern string `yaml:"project_pattern"` // regexp; "" = qualquer nome
}

// Config é o arquivo opcional docguard.yml. Ausente, tudo usa o padrão.
type Config struct {
	Rules  map[string]RuleConfig `yaml:"rules"`
	Header HeaderConfig          `yaml:"header"`
}

// Default devolve a configuração vazia (todas as regras, severidades padrão).
func Default() *Config {
	return &Config{}
}

// Load lê e decodifica o arquivo YAML de configuração.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ler configuração %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse da configuração %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for id, rc := range c.Rules {
		if _, err := rules.ByID(id); err != nil {
			return err
		}
		switch model.Severity(rc.Severity) {
		case "", model.SevError, model.SevWarning:
		default:
			return fmt.Errorf("severidade inválida '%s' para a regra '%s'", rc.Severity, id)
		}
	}
	if c.Header.ProjectPattern != "" {
		if _, err := regexp.Compile(c.Header.ProjectPattern); err != nil {
			return fmt.Errorf("project_pattern inválido: %w", err)
		}
	}
	return nil
}

// BuildRules materializa a lista de regras na ordem padrão de
// avaliação, aplicando enabled/severity e o padrão de projeto.
func (c *Config) BuildRules() ([]rules.Rule, error) {
	var project *regexp.Regexp
	if c.Header.ProjectPattern != "" {
		var err error
		project, err = regexp.Compile(c.Header.ProjectPattern)
		if err != nil {
			return nil, fmt.Errorf("project_pattern inválido: %w", err)
		}
	}

	var out []rules.Rule
	for _, r := range rules.Default() {
		if r.ID == model.RuleVersionHeader && project != nil {
			r = rules.VersionHeaderWith(project)
		}
		rc, ok := c.Rules[r.ID]
		if ok {
			if rc.Enabled != nil && !*rc.Enabled {
				continue
			}
			if rc.Severity != "" {
				r = rules.WithSeverity(r, model.Severity(rc.Severity))
			}
		}
		out = append(out, r)
	}
	return out, nil
}
