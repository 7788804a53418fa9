// Package orchestrator wires the loader → strategy → dedupe → match-type →
// sink pipeline behind a single Generate entry point. All run state lives in
// values scoped to one call; there is no package-level session state.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-kwgen/internal/tabular"
	"github.com/goliatone/go-kwgen/pkg/expand"
	"github.com/goliatone/go-kwgen/pkg/keyword"
	"github.com/goliatone/go-kwgen/pkg/template"
)

// ErrValidation marks fatal pre-generation failures: empty mandatory inputs,
// unknown placeholders, header collisions, incompatible option combinations.
// No partial output is ever written after a validation failure.
var ErrValidation = errors.New("orchestrator: validation failed")

const defaultCoreColumn = keyword.CoreField

// topDuplicateLimit caps the duplicate-analysis report.
const topDuplicateLimit = 10

// Option customises a generation run.
type Option func(*Orchestrator)

// WithMinFields lowers the minimum subset length used by the permutation
// strategy. Without it only the full field set is permuted.
func WithMinFields(k int) Option {
	return func(o *Orchestrator) {
		o.minFields = &k
	}
}

// WithGroupKey partitions phrase output for split-file writing.
func WithGroupKey(key keyword.GroupKey) Option {
	return func(o *Orchestrator) {
		o.groupKey = key
	}
}

// WithMatchType applies broad/phrase/exact wrapping to the final phrases.
func WithMatchType(m keyword.MatchType) Option {
	return func(o *Orchestrator) {
		o.matchType = m
	}
}

// WithKeepDuplicates skips de-duplication, preserving the raw traversal order
// including repeats. Incompatible with grouping.
func WithKeepDuplicates() Option {
	return func(o *Orchestrator) {
		o.keepDuplicates = true
	}
}

// Orchestrator carries the per-run configuration. Construct one per run.
type Orchestrator struct {
	minFields      *int
	groupKey       keyword.GroupKey
	matchType      keyword.MatchType
	keepDuplicates bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	return o
}

// Request names the input sources for one generation run.
type Request struct {
	// CorePath locates the core phrase CSV; CoreColumn selects its column
	// (default "core").
	CorePath   string
	CoreColumn string

	// SecondaryPaths lists one or more secondary/component CSVs. Permutation
	// mode uses only the first; template mode merges all of them.
	SecondaryPaths []string

	// SkipHeader treats the first secondary row as a header in permutation
	// mode. Template mode always requires headers.
	SkipHeader bool

	// TemplatePath is optional; when set, generation runs in template mode
	// (string or table form, classified from the file's column count).
	TemplatePath string

	// OutputPath is where results are written. Empty skips writing, for
	// callers that only want the Result in memory.
	OutputPath string
}

// Generate executes one full run: load, validate, enumerate, de-duplicate,
// wrap, and write. Validation failures surface before any generation work;
// render skips are only ever counted.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if req.CorePath == "" {
		return Result{}, fmt.Errorf("%w: core file is required", ErrValidation)
	}
	if len(req.SecondaryPaths) == 0 {
		return Result{}, fmt.Errorf("%w: at least one secondary file is required", ErrValidation)
	}
	if o.keepDuplicates && o.groupKey.Enabled() {
		return Result{}, fmt.Errorf("%w: grouped output requires de-duplication", ErrValidation)
	}

	column := req.CoreColumn
	if column == "" {
		column = defaultCoreColumn
	}
	cores, err := tabular.LoadCorePhrases(req.CorePath, column)
	if err != nil {
		return Result{}, err
	}
	if len(cores) == 0 {
		return Result{}, fmt.Errorf("%w: no core phrases found in %s under column %q", ErrValidation, req.CorePath, column)
	}

	if req.TemplatePath != "" {
		return o.generateTemplated(ctx, req, cores)
	}
	return o.generatePermuted(ctx, req, cores)
}

func (o *Orchestrator) generatePermuted(ctx context.Context, req Request, cores []string) (Result, error) {
	rows, err := tabular.LoadPositionalRows(req.SecondaryPaths[0], req.SkipHeader)
	if err != nil {
		return Result{}, err
	}
	if len(rows) == 0 {
		return Result{}, fmt.Errorf("%w: no usable secondary rows in %s", ErrValidation, req.SecondaryPaths[0])
	}
	if o.groupKey.Enabled() && o.groupKey != keyword.GroupCore {
		return Result{}, fmt.Errorf("%w: grouping by field %q requires template mode (positional rows have no field names)",
			ErrValidation, string(o.groupKey))
	}

	recorder := expand.NewRecorder(o.groupKey)
	var raw []string
	err = expand.PermutationsRowGrouped(ctx, cores, rows, o.minFields, func(phrase, core string, row keyword.Row) bool {
		recorder.Observe(phrase, core, row)
		if o.keepDuplicates {
			raw = append(raw, phrase)
		}
		return true
	})
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Groups:        recorder.Groups(),
		TopDuplicates: recorder.TopDuplicates(topDuplicateLimit),
		Stats: Stats{
			Cores:         len(cores),
			SecondaryRows: len(rows),
			Raw:           recorder.Raw(),
			Unique:        recorder.Unique(),
		},
	}
	result.Phrases = recorder.Phrases()
	if o.keepDuplicates {
		result.Phrases = raw
	}
	return o.finishPhrases(result, req.OutputPath)
}

func (o *Orchestrator) generateTemplated(ctx context.Context, req Request, cores []string) (Result, error) {
	sources := make([]tabular.KeyedSource, 0, len(req.SecondaryPaths))
	for _, path := range req.SecondaryPaths {
		source, err := tabular.LoadKeyedSource(path)
		if err != nil {
			return Result{}, err
		}
		sources = append(sources, source)
	}
	rows, headers, err := tabular.MergeKeyedSources(sources)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if len(rows) == 0 {
		return Result{}, fmt.Errorf("%w: no usable secondary rows after merging", ErrValidation)
	}

	table, skippedLines, err := tabular.LoadTemplateSource(req.TemplatePath)
	if err != nil {
		return Result{}, err
	}
	allowed := append([]string{keyword.CoreField}, headers...)

	if table.IsTable() {
		if o.groupKey.Enabled() {
			return Result{}, fmt.Errorf("%w: grouping is undefined for table templates", ErrValidation)
		}
		return o.generateTable(ctx, req, cores, rows, table, allowed)
	}

	templates := table.Templates()
	if len(templates) == 0 {
		return Result{}, fmt.Errorf("%w: no templates with placeholders found in %s", ErrValidation, req.TemplatePath)
	}
	if err := template.Validate(templates, allowed); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if o.groupKey.Enabled() && o.groupKey != keyword.GroupCore {
		if !contains(headers, string(o.groupKey)) {
			return Result{}, fmt.Errorf("%w: group field %q is not a declared secondary column (have: %v)",
				ErrValidation, string(o.groupKey), headers)
		}
	}

	recorder := expand.NewRecorder(o.groupKey)
	var raw []string
	renderSkips, err := expand.RowGrouped(ctx, cores, rows, templates, func(phrase, core string, row keyword.Row) bool {
		recorder.Observe(phrase, core, row)
		if o.keepDuplicates {
			raw = append(raw, phrase)
		}
		return true
	})
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Groups:        recorder.Groups(),
		TopDuplicates: recorder.TopDuplicates(topDuplicateLimit),
		Stats: Stats{
			Cores:              len(cores),
			SecondaryRows:      len(rows),
			Templates:          len(templates),
			SkippedNonTemplate: skippedLines,
			RenderSkips:        renderSkips,
			Raw:                recorder.Raw(),
			Unique:             recorder.Unique(),
		},
	}
	result.Phrases = recorder.Phrases()
	if o.keepDuplicates {
		result.Phrases = raw
	}
	return o.finishPhrases(result, req.OutputPath)
}

func (o *Orchestrator) generateTable(ctx context.Context, req Request, cores []string, rows []keyword.Row, table keyword.TemplateTable, allowed []string) (Result, error) {
	if len(table.Rows) == 0 {
		return Result{}, fmt.Errorf("%w: no template rows found in %s", ErrValidation, req.TemplatePath)
	}
	if err := template.ValidateTable(table.Rows, allowed); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	recorder := expand.NewRowRecorder()
	renderSkips, err := expand.Table(ctx, cores, rows, table.Rows, func(cells []string, core string, row keyword.Row) bool {
		recorder.Observe(cells)
		return true
	})
	if err != nil {
		return Result{}, err
	}

	result := Result{
		TableMode: true,
		Header:    table.Headers,
		Rows:      recorder.Rows(),
		Stats: Stats{
			Cores:         len(cores),
			SecondaryRows: len(rows),
			Templates:     len(table.Rows),
			RenderSkips:   renderSkips,
			Raw:           recorder.Raw(),
			Unique:        recorder.Unique(),
		},
	}
	if req.OutputPath != "" {
		if err := tabular.WriteCSV(req.OutputPath, result.Header, result.Rows); err != nil {
			return Result{}, err
		}
		result.WrittenPaths = []string{req.OutputPath}
	}
	return result, nil
}

func (o *Orchestrator) finishPhrases(result Result, outputPath string) (Result, error) {
	if outputPath == "" {
		result.Phrases = o.matchType.WrapAll(result.Phrases)
		return result, nil
	}

	if o.groupKey.Enabled() {
		written, err := tabular.WriteGrouped(outputPath, result.Phrases, result.Groups, o.matchType.Wrap)
		if err != nil {
			return Result{}, err
		}
		result.Phrases = o.matchType.WrapAll(result.Phrases)
		result.WrittenPaths = written
		return result, nil
	}

	result.Phrases = o.matchType.WrapAll(result.Phrases)
	if err := tabular.WriteLines(outputPath, result.Phrases); err != nil {
		return Result{}, err
	}
	result.WrittenPaths = []string{outputPath}
	return result, nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
