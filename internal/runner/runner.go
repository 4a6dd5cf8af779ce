package runner

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Sena-ops/docguard/internal/model"
	"github.com/Sena-ops/docguard/internal/validator"
)

// ValidateAll valida os arquivos em paralelo com um pool limitado.
// Cada validação é independente (sem estado compartilhado); o merge é
// feito apenas pela identidade do arquivo, e o resultado final vem
// ordenado por caminho para manter a saída reproduzível.
func ValidateAll(ctx context.Context, v *validator.Validator, paths []string, jobs int) ([]model.Report, error) {
	if jobs < 1 {
		jobs = 1
	}

	reports := make([]model.Report, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := v.ValidateFile(path)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].FilePath < reports[j].FilePath })
	return reports, nil
}
