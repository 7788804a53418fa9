package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/goliatone/go-kwgen/internal/tabular"
	"github.com/goliatone/go-kwgen/pkg/expand"
	"github.com/goliatone/go-kwgen/pkg/keyword"
	"github.com/goliatone/go-kwgen/pkg/orchestrator"
)

const banner = "================================================================"

const groupNoneLabel = "no grouping"

// Flow runs the guided generation session: file selection, preview,
// duplicate analysis, match type, and save.
type Flow struct {
	driver PromptDriver
}

// NewFlow builds a Flow over the given prompt driver.
func NewFlow(driver PromptDriver) *Flow {
	return &Flow{driver: driver}
}

// Run walks the full guided session. A user interrupt surfaces as ErrAborted.
func (f *Flow) Run(ctx context.Context) error {
	if err := f.intro(ctx); err != nil {
		return err
	}

	candidates := listCSVCandidates()
	if len(candidates) > 0 {
		f.info(ctx, "Detected CSV files: "+strings.Join(candidates, ", "))
	} else {
		f.info(ctx, "No CSV files detected in current directory.")
	}

	corePath, coreColumn, err := f.selectCore(ctx, candidates)
	if err != nil {
		return err
	}
	secondaryPaths, err := f.selectSecondary(ctx, candidates)
	if err != nil {
		return err
	}
	templatePath, err := f.selectTemplate(ctx, candidates)
	if err != nil {
		return err
	}

	skipHeader := false
	if templatePath == "" {
		skipHeader, err = f.driver.Confirm(ctx, ConfirmConfig{
			Message: "Does the secondary file have a header row to skip?",
			Default: sniffHeader(secondaryPaths[0]),
		})
		if err != nil {
			return err
		}
	}

	groupKey, err := f.selectGrouping(ctx, templatePath, secondaryPaths)
	if err != nil {
		return err
	}

	req := orchestrator.Request{
		CorePath:       corePath,
		CoreColumn:     coreColumn,
		SecondaryPaths: secondaryPaths,
		SkipHeader:     skipHeader,
		TemplatePath:   templatePath,
	}

	if err := f.preview(ctx, req, templatePath, secondaryPaths); err != nil {
		return err
	}

	proceed, err := f.driver.Confirm(ctx, ConfirmConfig{Message: "Proceed with full generation?", Default: true})
	if err != nil {
		return err
	}
	if !proceed {
		f.info(ctx, "Canceled.")
		return nil
	}

	// Generate in memory first; writing happens after cleanup and match-type
	// decisions. With grouping enabled de-duplication is mandatory, so only
	// the ungrouped path retains the raw sequence.
	var gen *orchestrator.Orchestrator
	if groupKey.Enabled() {
		gen = orchestrator.New(orchestrator.WithGroupKey(groupKey))
	} else {
		gen = orchestrator.New(orchestrator.WithKeepDuplicates())
	}
	result, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}

	phrases := result.Phrases
	cleaned := true
	f.info(ctx, "\n--- Duplicate Analysis ---")
	f.info(ctx, fmt.Sprintf("Total generated (raw): %d", result.Stats.Raw))
	f.info(ctx, fmt.Sprintf("Unique after de-duplication: %d", result.Stats.Unique))
	dupCount := result.Stats.Raw - result.Stats.Unique
	f.info(ctx, fmt.Sprintf("Duplicates found: %d", dupCount))
	for _, dup := range result.TopDuplicates {
		f.info(ctx, fmt.Sprintf("  (%dx) %s", dup.Count, dup.Phrase))
	}

	if groupKey.Enabled() {
		// already de-duplicated by the orchestrator
	} else if dupCount > 0 {
		clean, err := f.driver.Confirm(ctx, ConfirmConfig{Message: "Remove duplicates before saving?", Default: true})
		if err != nil {
			return err
		}
		cleaned = clean
		if clean {
			phrases = expand.Dedupe(phrases)
		}
	} else {
		phrases = expand.Dedupe(phrases)
	}

	match, err := f.selectMatchType(ctx)
	if err != nil {
		return err
	}

	outputPath, err := f.selectOutputPath(ctx)
	if err != nil {
		return err
	}

	var written []string
	if groupKey.Enabled() {
		written, err = tabular.WriteGrouped(outputPath, phrases, result.Groups, match.Wrap)
	} else {
		written = []string{outputPath}
		err = tabular.WriteLines(outputPath, match.WrapAll(phrases))
	}
	if err != nil {
		return err
	}

	f.info(ctx, "\n--- Summary ---")
	f.info(ctx, fmt.Sprintf("Loaded %d core phrases.", result.Stats.Cores))
	f.info(ctx, fmt.Sprintf("Loaded %d secondary rows.", result.Stats.SecondaryRows))
	if templatePath != "" {
		f.info(ctx, fmt.Sprintf("Used %d templates.", result.Stats.Templates))
		if result.Stats.SkippedNonTemplate > 0 {
			f.info(ctx, fmt.Sprintf("Skipped %d non-template line(s).", result.Stats.SkippedNonTemplate))
		}
		if result.Stats.RenderSkips > 0 {
			f.info(ctx, fmt.Sprintf("Skipped %d combination(s) with missing fields.", result.Stats.RenderSkips))
		}
	}
	f.info(ctx, fmt.Sprintf("Match type: %s match", matchLabel(match)))
	if cleaned {
		f.info(ctx, fmt.Sprintf("Generated %d unique keywords (duplicates removed).", len(phrases)))
	} else {
		f.info(ctx, fmt.Sprintf("Generated %d keywords (duplicates kept).", len(phrases)))
	}
	for _, path := range written {
		f.info(ctx, "Wrote output to "+path)
	}
	return nil
}

func (f *Flow) intro(ctx context.Context) error {
	lines := []string{
		banner,
		"Keyword Combiner - Guided CLI",
		banner,
		"This guided flow will help you generate keyword permutations.",
		"You can run in two modes:",
		"  - Full-permutation mode (default): uses all columns from the secondary CSV, inserting the core in every position.",
		"  - Template mode (optional): a template CSV controls which phrase patterns are generated,",
		"    with placeholders like {core}, {city}, {venue}. Multi-column templates produce CSV rows.",
		"",
	}
	for _, line := range lines {
		if err := f.driver.Info(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func (f *Flow) selectCore(ctx context.Context, candidates []string) (path, column string, err error) {
	defaultCore := pickDefault(candidates, "core.csv", 0)
	path, err = f.promptExistingPath(ctx, "Path to CORE CSV", defaultCore)
	if err != nil {
		return "", "", err
	}

	headers, err := tabular.Headers(path)
	if err != nil {
		return "", "", err
	}
	if len(headers) == 0 {
		return "", "", fmt.Errorf("tui: %s has no header row; the core file must have headers", path)
	}
	defaultIdx := 0
	for i, name := range headers {
		if name == keyword.CoreField {
			defaultIdx = i
			break
		}
	}
	idx, err := f.driver.Select(ctx, SelectConfig{
		Message:      "Select the core column",
		Options:      headers,
		DefaultIndex: defaultIdx,
	})
	if err != nil {
		return "", "", err
	}
	if idx < 0 || idx >= len(headers) {
		idx = defaultIdx
	}
	return path, headers[idx], nil
}

func (f *Flow) selectSecondary(ctx context.Context, candidates []string) ([]string, error) {
	defaultSecondary := pickDefault(candidates, "venues.csv", 1)
	paths, err := f.promptPaths(ctx, "Path(s) to SECONDARY/COMPONENTS CSV(s) (comma or space separated)", defaultSecondary)
	if err != nil {
		return nil, err
	}
	for {
		more, err := f.driver.Confirm(ctx, ConfirmConfig{Message: "Add more SECONDARY/COMPONENTS CSVs?", Default: false})
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		extra, err := f.promptPaths(ctx, "Path(s) to additional SECONDARY/COMPONENTS CSV(s)", "")
		if err != nil {
			return nil, err
		}
		paths = append(paths, extra...)
	}
	return dedupeStrings(paths), nil
}

func (f *Flow) selectTemplate(ctx context.Context, candidates []string) (string, error) {
	defaultTemplate := ""
	for _, c := range candidates {
		if c == "template.csv" {
			defaultTemplate = c
			break
		}
	}
	useTemplate, err := f.driver.Confirm(ctx, ConfirmConfig{
		Message: "Use a template CSV to control which permutations are generated?",
		Default: defaultTemplate != "",
	})
	if err != nil || !useTemplate {
		return "", err
	}
	return f.promptExistingPath(ctx, "Path to TEMPLATE CSV", defaultTemplate)
}

func (f *Flow) selectGrouping(ctx context.Context, templatePath string, secondaryPaths []string) (keyword.GroupKey, error) {
	if templatePath != "" {
		table, _, err := tabular.LoadTemplateSource(templatePath)
		if err != nil {
			return keyword.GroupNone, err
		}
		if table.IsTable() {
			// grouping is undefined for table templates
			return keyword.GroupNone, nil
		}
	}

	options := []string{groupNoneLabel, keyword.CoreField}
	if templatePath != "" {
		for _, path := range secondaryPaths {
			headers, err := tabular.Headers(path)
			if err != nil {
				return keyword.GroupNone, err
			}
			options = append(options, headers...)
		}
		options = dedupeStrings(options)
	}

	idx, err := f.driver.Select(ctx, SelectConfig{
		Message:      "Split output into one file per group?",
		Options:      options,
		DefaultIndex: 0,
		Help:         "Grouping writes stem.<group>.ext files; the group of each phrase follows its first occurrence.",
	})
	if err != nil {
		return keyword.GroupNone, err
	}
	if idx <= 0 {
		return keyword.GroupNone, nil
	}
	return keyword.GroupKey(options[idx]), nil
}

func (f *Flow) preview(ctx context.Context, req orchestrator.Request, templatePath string, secondaryPaths []string) error {
	f.info(ctx, "\n--- Preview (first few from first row) ---")
	if templatePath != "" {
		f.info(ctx, "Template mode: placeholders must match secondary CSV column names and 'core'.")
	}
	sample, err := orchestrator.New().Preview(ctx, req, orchestrator.DefaultPreviewLimit)
	if err != nil {
		return err
	}
	if len(sample) == 0 {
		f.info(ctx, "  No preview available (inputs may be empty).")
		return nil
	}
	for _, line := range sample {
		f.info(ctx, "  "+line)
	}
	return nil
}

func (f *Flow) selectMatchType(ctx context.Context) (keyword.MatchType, error) {
	idx, err := f.driver.Select(ctx, SelectConfig{
		Message: "Select match type",
		Options: []string{
			`broad  (no wrapping), e.g., keyword`,
			`phrase (double quotes), e.g., "keyword"`,
			`exact  (square brackets), e.g., [keyword]`,
		},
		DefaultIndex: 0,
	})
	if err != nil {
		return keyword.MatchBroad, err
	}
	switch idx {
	case 1:
		return keyword.MatchPhrase, nil
	case 2:
		return keyword.MatchExact, nil
	default:
		return keyword.MatchBroad, nil
	}
}

func (f *Flow) selectOutputPath(ctx context.Context) (string, error) {
	for {
		path, err := f.driver.Input(ctx, InputConfig{
			Message: "Name the output file",
			Default: "keywords.txt",
			Validator: func(value string) error {
				if strings.TrimSpace(value) == "" {
					return errors.New("please enter a value")
				}
				return nil
			},
		})
		if err != nil {
			return "", err
		}
		path = strings.TrimSpace(path)
		info, statErr := os.Stat(path)
		if statErr == nil && info.IsDir() {
			f.info(ctx, fmt.Sprintf("'%s' is a directory. Please provide a file name.", path))
			continue
		}
		if statErr == nil {
			overwrite, err := f.driver.Confirm(ctx, ConfirmConfig{
				Message: fmt.Sprintf("'%s' already exists. Overwrite?", path),
				Default: false,
			})
			if err != nil {
				return "", err
			}
			if !overwrite {
				continue
			}
		}
		return path, nil
	}
}

func (f *Flow) promptExistingPath(ctx context.Context, message, defaultPath string) (string, error) {
	value, err := f.driver.Input(ctx, InputConfig{
		Message: message,
		Default: defaultPath,
		Validator: func(value string) error {
			value = strings.TrimSpace(value)
			if value == "" {
				return errors.New("please enter a value")
			}
			if !isFile(expandPath(value)) {
				return fmt.Errorf("file not found: %s", value)
			}
			return nil
		},
	})
	if err != nil {
		return "", err
	}
	return expandPath(strings.TrimSpace(value)), nil
}

func (f *Flow) promptPaths(ctx context.Context, message, defaultPath string) ([]string, error) {
	value, err := f.driver.Input(ctx, InputConfig{
		Message: message,
		Default: defaultPath,
		Validator: func(value string) error {
			paths, err := parseMultiPaths(value)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return errors.New("please enter one or more file paths")
			}
			for _, p := range paths {
				if !isFile(p) {
					return fmt.Errorf("file not found: %s", p)
				}
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return parseMultiPaths(value)
}

func (f *Flow) info(ctx context.Context, msg string) {
	_ = f.driver.Info(ctx, msg)
}

// parseMultiPaths accepts comma- and/or space-separated paths with shell
// quoting for names containing spaces.
func parseMultiPaths(value string) ([]string, error) {
	var out []string
	for _, chunk := range strings.Split(value, ",") {
		tokens, err := shellquote.Split(chunk)
		if err != nil {
			return nil, fmt.Errorf("tui: parse paths: %w", err)
		}
		for _, token := range tokens {
			if token != "" {
				out = append(out, expandPath(token))
			}
		}
	}
	return dedupeStrings(out), nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func listCSVCandidates() []string {
	entries, err := os.ReadDir(".")
	if err != nil {
		return nil
	}
	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			out = append(out, entry.Name())
		}
	}
	sort.Strings(out)
	return out
}

// sniffHeader guesses whether the first row is a header: true when no cell in
// it parses as a number and every cell is non-empty.
func sniffHeader(path string) bool {
	headers, err := tabular.Headers(path)
	if err != nil || len(headers) == 0 {
		return false
	}
	for _, cell := range headers {
		if cell == "" {
			return false
		}
		numeric := true
		for _, r := range cell {
			if (r < '0' || r > '9') && r != '.' && r != '-' {
				numeric = false
				break
			}
		}
		if numeric {
			return false
		}
	}
	return true
}

func pickDefault(candidates []string, preferred string, fallbackIdx int) string {
	for _, c := range candidates {
		if c == preferred {
			return c
		}
	}
	if fallbackIdx < len(candidates) {
		return candidates[fallbackIdx]
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return ""
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func matchLabel(m keyword.MatchType) string {
	switch m {
	case keyword.MatchPhrase:
		return "Phrase"
	case keyword.MatchExact:
		return "Exact"
	default:
		return "Broad"
	}
}
