package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Sena-ops/docguard/internal/config"
	"github.com/Sena-ops/docguard/internal/csvexport"
	"github.com/Sena-ops/docguard/internal/logging"
	"github.com/Sena-ops/docguard/internal/model"
	"github.com/Sena-ops/docguard/internal/parser"
	"github.com/Sena-ops/docguard/internal/runner"
	"github.com/Sena-ops/docguard/internal/rules"
	"github.com/Sena-ops/docguard/internal/sarif"
	"github.com/Sena-ops/docguard/internal/validator"
)

const (
	toolName    = "DocGuard"
	toolVersion = "0.1.0"
)

var recursive bool
var filterRules string
var outputFormat string
var debugMode bool
var configPath string
var jobs int
var saveResults bool
var watchMode bool

var logger *zap.SugaredLogger

var checkCmd = &cobra.Command{
	Use:   "check [caminho]",
	Short: "Valida a documentação de scripts Python (cabeçalho, BLUF, docstrings, snake_case)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)
		defer logging.Sync()
		logger = logging.Logger

		path := args[0]

		rs, err := buildRules()
		if err != nil {
			logger.Errorw("Configuração inválida", "erro", err)
			os.Exit(1)
		}
		v := validator.New(rs...)

		files, err := collectFiles(path)
		if err != nil {
			logger.Errorw("Erro ao localizar arquivos", "erro", err)
			os.Exit(1)
		}
		if len(files) == 0 {
			logger.Warnf("Nenhum arquivo Python encontrado em %s", path)
		}
		logger.Infof("Validando %d arquivo(s) em %s (recursivo: %v)", len(files), path, recursive)

		reports, err := runner.ValidateAll(context.Background(), v, files, jobs)
		if err != nil {
			logger.Errorw("Erro ao validar", "erro", err)
			os.Exit(1)
		}

		if err := render(reports); err != nil {
			logger.Errorw("Erro ao gerar saída", "erro", err)
			os.Exit(1)
		}

		if saveResults {
			outPath, err := sarif.Export(reports, ".docguard", "docguard-results", toolName, toolVersion)
			if err != nil {
				logger.Errorw("Erro ao salvar resultados", "erro", err)
			} else {
				logger.Infow("Resultado salvo com sucesso", "arquivo", outPath)
			}
		}

		if watchMode {
			if err := watch(path, v); err != nil {
				logger.Errorw("Erro no modo watch", "erro", err)
				os.Exit(1)
			}
			return
		}

		for _, r := range reports {
			if !r.Compliant {
				os.Exit(1)
			}
		}
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Varre diretórios recursivamente")
	checkCmd.Flags().StringVarP(&filterRules, "rules", "f", "", "Filtra as regras desejadas (ex: has_version_header,uses_snake_case)")
	checkCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Formato da saída (json, markdown, sarif, csv)")
	checkCmd.Flags().StringVarP(&configPath, "config", "c", "", "Arquivo de configuração YAML (docguard.yml)")
	checkCmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "Validações em paralelo")
	checkCmd.Flags().BoolVar(&saveResults, "save", false, "Grava o resultado SARIF em .docguard/")
	checkCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Revalida arquivos quando modificados")
	checkCmd.Flags().BoolVar(&debugMode, "debug", false, "Habilita logs em nível debug")
	rootCmd.AddCommand(checkCmd)
}

// buildRules resolve a lista de regras: arquivo de configuração, filtro
// por id, ou o conjunto padrão.
func buildRules() ([]rules.Rule, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		return cfg.BuildRules()
	}
	if filterRules != "" {
		return rules.FromIDs(splitAndTrim(filterRules))
	}
	return nil, nil
}

func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return parser.DetectPythonFiles(path, recursive)
	}
	return []string{path}, nil
}

func render(reports []model.Report) error {
	switch strings.ToLower(outputFormat) {
	case "json":
		encoded, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("gerar JSON: %w", err)
		}
		fmt.Println(string(encoded))

	case "markdown":
		var builder strings.Builder
		builder.WriteString("## 📋 Resultado da Validação\n\n")
		for _, r := range reports {
			builder.WriteString(fmt.Sprintf("### %s (%d violação(ões))\n", r.FilePath, len(r.Violations)))
			if r.Compliant && len(r.Violations) == 0 {
				builder.WriteString("- ✅ conforme\n")
			}
			for _, v := range r.Violations {
				builder.WriteString(fmt.Sprintf("- L%d [%s] %s: %s\n", v.Line, v.Severity, v.RuleID, v.Message))
			}
			builder.WriteString("\n")
		}
		fmt.Println(builder.String())

	case "sarif":
		encoded, err := sarif.Bytes(reports, toolName, toolVersion)
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))

	case "csv":
		return csvexport.WriteAll(os.Stdout, reports)

	default:
		for _, r := range reports {
			printReport(r)
		}
	}
	return nil
}

// printReport é a saída padrão de terminal:
// <linha>: [<severidade>] <regra>: <mensagem>
func printReport(r model.Report) {
	if r.Compliant && len(r.Violations) == 0 {
		fmt.Printf("✅ %s: conforme\n", r.FilePath)
		return
	}
	fmt.Printf("%s\n", r.FilePath)
	for _, v := range r.Violations {
		fmt.Printf("  %d: [%s] %s: %s\n", v.Line, v.Severity, v.RuleID, v.Message)
	}
}

// watch observa o diretório e revalida arquivos Python modificados.
func watch(root string, v *validator.Validator) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("criar watcher: %w", err)
	}
	defer w.Close()

	dir := root
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		dir = filepath.Dir(root)
	}
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("observar %s: %w", dir, err)
	}

	logger.Infof("Observando %s (Ctrl+C para sair)...", dir)
	debounce := map[string]time.Time{}
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(ev.Name, ".py") {
				continue
			}
			if last, seen := debounce[ev.Name]; seen && time.Since(last) < 300*time.Millisecond {
				continue
			}
			debounce[ev.Name] = time.Now()

			rep, err := v.ValidateFile(ev.Name)
			if err != nil {
				logger.Errorw("Erro ao revalidar", "arquivo", ev.Name, "erro", err)
				continue
			}
			printReport(rep)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Errorw("Erro do watcher", "erro", err)
		}
	}
}

func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(strings.ToLower(part))
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
