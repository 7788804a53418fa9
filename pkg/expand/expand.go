// Package expand drives the three generation strategies over loaded inputs
// and provides the order-preserving de-duplication and group recording the
// split-output path depends on. All functions are deterministic batch
// transforms over immutable data; the context is only consulted between
// secondary-row iterations as the cancellation checkpoint.
package expand

import (
	"context"
	"fmt"

	"github.com/goliatone/go-kwgen/pkg/keyword"
	"github.com/goliatone/go-kwgen/pkg/permute"
	"github.com/goliatone/go-kwgen/pkg/template"
)

// PhraseFunc receives each raw generated phrase together with the core phrase
// and secondary row that produced it. Returning false stops the enumeration.
type PhraseFunc func(phrase, core string, row keyword.Row) bool

// RowFunc receives each raw generated output row in table mode. The cells
// slice is only valid for the duration of the call.
type RowFunc func(cells []string, core string, row keyword.Row) bool

// PermutationsRowGrouped streams the positional-permutation strategy in the
// fixed traversal order: secondary row (outer), core phrase (middle),
// permutation (inner). Rows must be positional.
func PermutationsRowGrouped(ctx context.Context, cores []string, rows []keyword.Row, minFields *int, emit PhraseFunc) error {
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if row.Kind() != keyword.RowPositional {
			return fmt.Errorf("expand: permutation strategy requires positional rows, got %s", row.Kind())
		}
		fields := row.Fields()
		for _, core := range cores {
			stopped := false
			permute.Each(core, fields, minFields, func(phrase string) bool {
				if !emit(phrase, core, row) {
					stopped = true
					return false
				}
				return true
			})
			if stopped {
				return nil
			}
		}
	}
	return nil
}

// RowGrouped streams the string-template strategy in the fixed traversal
// order: secondary row (outer), core phrase (middle), template (inner). This
// nesting is load-bearing: first-occurrence grouping and preview sampling
// depend on it. Render skips are counted, never surfaced per item. Rows must
// be keyed.
func RowGrouped(ctx context.Context, cores []string, rows []keyword.Row, templates []string, emit PhraseFunc) (skipped int, err error) {
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return skipped, err
		}
		if row.Kind() != keyword.RowKeyed {
			return skipped, fmt.Errorf("expand: template strategy requires keyed rows, got %s", row.Kind())
		}
		for _, core := range cores {
			mapping := row.Mapping(core)
			for _, tmpl := range templates {
				rendered, ok := template.Render(tmpl, mapping)
				if !ok {
					skipped++
					continue
				}
				if !emit(rendered, core, row) {
					return skipped, nil
				}
			}
		}
	}
	return skipped, nil
}

// CoreGrouped is the flat variant with cores on the outer loop and rows in
// the middle. It exists for plain ungrouped output paths and must never feed
// grouped or split output.
func CoreGrouped(ctx context.Context, cores []string, rows []keyword.Row, templates []string, emit PhraseFunc) (skipped int, err error) {
	for _, core := range cores {
		if err := ctx.Err(); err != nil {
			return skipped, err
		}
		for _, row := range rows {
			if row.Kind() != keyword.RowKeyed {
				return skipped, fmt.Errorf("expand: template strategy requires keyed rows, got %s", row.Kind())
			}
			mapping := row.Mapping(core)
			for _, tmpl := range templates {
				rendered, ok := template.Render(tmpl, mapping)
				if !ok {
					skipped++
					continue
				}
				if !emit(rendered, core, row) {
					return skipped, nil
				}
			}
		}
	}
	return skipped, nil
}

// Table streams the table-template strategy: for each secondary row, core
// phrase, and template row, every cell renders independently against the
// merged mapping. Acceptance is atomic per row: a single cell skip drops the
// whole output row. Rows must be keyed.
func Table(ctx context.Context, cores []string, rows []keyword.Row, templateRows [][]string, emit RowFunc) (skipped int, err error) {
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return skipped, err
		}
		if row.Kind() != keyword.RowKeyed {
			return skipped, fmt.Errorf("expand: table strategy requires keyed rows, got %s", row.Kind())
		}
		for _, core := range cores {
			mapping := row.Mapping(core)
			for _, tmplRow := range templateRows {
				cells := make([]string, len(tmplRow))
				dropped := false
				for i, cellTmpl := range tmplRow {
					rendered, ok := template.Render(cellTmpl, mapping)
					if !ok {
						dropped = true
						break
					}
					cells[i] = rendered
				}
				if dropped {
					skipped++
					continue
				}
				if !emit(cells, core, row) {
					return skipped, nil
				}
			}
		}
	}
	return skipped, nil
}
