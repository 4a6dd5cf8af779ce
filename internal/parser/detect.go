package parser

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Diretórios que nunca valem a pena varrer.
var skipDirs = map[string]bool{
	".git":         true,
	".docguard":    true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
	"node_modules": true,
}

// IsPythonScript analisa a primeira linha do arquivo para verificar se é
// um script Python sem extensão (shebang).
func IsPythonScript(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return false
	}
	line := strings.TrimSpace(scanner.Text())
	return strings.HasPrefix(line, "#!") && strings.Contains(line, "python")
}

// DetectPythonFiles varre o diretório em busca de arquivos Python.
// Com recursive=false, apenas o nível raiz é considerado.
func DetectPythonFiles(root string, recursive bool) ([]string, error) {
	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path == root {
				return nil
			}
			if skipDirs[info.Name()] || !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		switch {
		case strings.HasSuffix(path, ".py"):
			files = append(files, path)
		case filepath.Ext(path) == "" && IsPythonScript(path):
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
