package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Sena-ops/docguard/internal/model"
)

// BOM UTF-8 para compatibilidade com Excel no Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns define o cabeçalho do CSV.
var columns = []string{
	"arquivo",
	"linha",
	"severidade",
	"regra",
	"funcao",
	"mensagem",
}

// Writer embrulha csv.Writer para exportar violações.
type Writer struct {
	csv *csv.Writer
}

// NewWriter cria um Writer que escreve CSV em w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader escreve a linha de cabeçalho.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteReport escreve uma linha por violação do relatório.
func (w *Writer) WriteReport(r model.Report) error {
	for _, v := range r.Violations {
		record := []string{
			r.FilePath,
			strconv.Itoa(v.Line),
			string(v.Severity),
			v.RuleID,
			v.FuncName,
			v.Message,
		}
		if err := w.csv.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// Flush descarrega o buffer interno.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// WriteAll exporta todos os relatórios com BOM e cabeçalho.
func WriteAll(out io.Writer, reports []model.Report) error {
	if _, err := out.Write(BOM); err != nil {
		return fmt.Errorf("escrever BOM: %w", err)
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, r := range reports {
		if err := w.WriteReport(r); err != nil {
			return err
		}
	}
	return w.Flush()
}
