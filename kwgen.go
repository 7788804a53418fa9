// Package kwgen generates candidate keyword lists by combining core phrases
// with secondary attribute rows: positional permutations, string templates,
// or multi-column template tables. The root package re-exports the pipeline
// types and offers one-call entry points; the engine itself lives under
// pkg/permute, pkg/template, and pkg/expand as pure functions.
package kwgen

import (
	"context"

	"github.com/goliatone/go-kwgen/pkg/expand"
	"github.com/goliatone/go-kwgen/pkg/keyword"
	"github.com/goliatone/go-kwgen/pkg/orchestrator"
	"github.com/goliatone/go-kwgen/pkg/permute"
	"github.com/goliatone/go-kwgen/pkg/template"
)

// Request names the input sources for one generation run.
type Request = orchestrator.Request

// Result carries the output of one generation run.
type Result = orchestrator.Result

// Stats summarises a run for reporting.
type Stats = orchestrator.Stats

// Option customises a generation run.
type Option = orchestrator.Option

// MatchType selects broad/phrase/exact output wrapping.
type MatchType = keyword.MatchType

// GroupKey names the attribute used to partition output.
type GroupKey = keyword.GroupKey

// NewOrchestrator exposes the pipeline constructor from the top-level module.
func NewOrchestrator(options ...Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate runs one full load → expand → dedupe → write pass.
func Generate(ctx context.Context, req Request, options ...Option) (Result, error) {
	return orchestrator.New(options...).Generate(ctx, req)
}

// Permute materializes the positional-permutation strategy for a single core
// phrase and field list. Pass a nil minFields for the full-set default.
func Permute(core string, fields []string, minFields *int) []string {
	return permute.Generate(core, fields, minFields)
}

// Render substitutes placeholders into a single template, reporting ok=false
// when the combination should be skipped.
func Render(tmpl string, fields map[string]string) (string, bool) {
	return template.Render(tmpl, fields)
}

// Dedupe drops duplicate phrases, preserving first-occurrence order.
func Dedupe(phrases []string) []string {
	return expand.Dedupe(phrases)
}

// WithMinFields, WithGroupKey, WithMatchType, and WithKeepDuplicates forward
// the orchestrator options for callers importing only the root package.
func WithMinFields(k int) Option       { return orchestrator.WithMinFields(k) }
func WithGroupKey(key GroupKey) Option { return orchestrator.WithGroupKey(key) }
func WithMatchType(m MatchType) Option { return orchestrator.WithMatchType(m) }
func WithKeepDuplicates() Option       { return orchestrator.WithKeepDuplicates() }
