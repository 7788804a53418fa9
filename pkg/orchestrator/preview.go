package orchestrator

import (
	"context"
	"fmt"

	"github.com/goliatone/go-kwgen/internal/tabular"
	"github.com/goliatone/go-kwgen/pkg/expand"
	"github.com/goliatone/go-kwgen/pkg/keyword"
	"github.com/goliatone/go-kwgen/pkg/permute"
	"github.com/goliatone/go-kwgen/pkg/template"
)

// DefaultPreviewLimit matches the guided flow's sample size.
const DefaultPreviewLimit = 12

// Preview generates a small sample from the first core phrase and the first
// secondary row, without writing anything. Limit <= 0 falls back to
// DefaultPreviewLimit. Table-mode previews return one line per output row,
// cells comma-joined.
func (o *Orchestrator) Preview(ctx context.Context, req Request, limit int) ([]string, error) {
	if ctx == nil {
		return nil, fmt.Errorf("orchestrator: context is required")
	}
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}

	column := req.CoreColumn
	if column == "" {
		column = defaultCoreColumn
	}
	cores, err := tabular.LoadCorePhrases(req.CorePath, column)
	if err != nil {
		return nil, err
	}
	if len(cores) == 0 || len(req.SecondaryPaths) == 0 {
		return nil, nil
	}
	cores = cores[:1]

	if req.TemplatePath == "" {
		rows, err := tabular.LoadPositionalRows(req.SecondaryPaths[0], req.SkipHeader)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, nil
		}
		var sample []string
		permute.Each(cores[0], rows[0].Fields(), o.minFields, func(phrase string) bool {
			sample = append(sample, phrase)
			return len(sample) < limit
		})
		return sample, nil
	}

	sources := make([]tabular.KeyedSource, 0, len(req.SecondaryPaths))
	for _, path := range req.SecondaryPaths {
		source, err := tabular.LoadKeyedSource(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	rows, headers, err := tabular.MergeKeyedSources(sources)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	rows = rows[:1]

	table, _, err := tabular.LoadTemplateSource(req.TemplatePath)
	if err != nil {
		return nil, err
	}
	allowed := append([]string{keyword.CoreField}, headers...)

	if table.IsTable() {
		if err := template.ValidateTable(table.Rows, allowed); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		var sample []string
		_, err = expand.Table(ctx, cores, rows, table.Rows, func(cells []string, core string, row keyword.Row) bool {
			sample = append(sample, joinCells(cells))
			return len(sample) < limit
		})
		return sample, err
	}

	templates := table.Templates()
	if err := template.Validate(templates, allowed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	var sample []string
	// single core, single row: the flat core-grouped order equals the
	// row-grouped order here
	_, err = expand.CoreGrouped(ctx, cores, rows, templates, func(phrase, core string, row keyword.Row) bool {
		sample = append(sample, phrase)
		return len(sample) < limit
	})
	return sample, err
}

func joinCells(cells []string) string {
	out := ""
	for i, cell := range cells {
		if i > 0 {
			out += ", "
		}
		out += cell
	}
	return out
}
