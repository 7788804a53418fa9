// Package tabular loads the flat CSV inputs consumed by the generation engine
// and persists its output. Inputs reach the engine pre-trimmed: no empty-string
// atoms survive loading.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-kwgen/pkg/keyword"
	"github.com/goliatone/go-kwgen/pkg/template"
)

func readAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tabular: open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("tabular: read %s: %w", path, err)
	}
	return records, nil
}

// LoadCorePhrases reads the named column from a headered CSV, returning the
// trimmed non-empty values in row order. Duplicates are kept: each occurrence
// combines independently downstream.
func LoadCorePhrases(path, column string) ([]string, error) {
	records, err := readAll(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %q in %s (file is empty)", ErrMissingColumn, column, path)
	}

	header := trimAll(records[0])
	idx := -1
	for i, name := range header {
		if name == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q in %s (available: %s)",
			ErrMissingColumn, column, path, strings.Join(header, ", "))
	}

	var phrases []string
	for _, record := range records[1:] {
		if idx >= len(record) {
			continue
		}
		value := strings.TrimSpace(record[idx])
		if value != "" {
			phrases = append(phrases, value)
		}
	}
	return phrases, nil
}

// LoadPositionalRows reads secondary rows for permutation mode. Empty cells
// are filtered per row and rows left empty are dropped.
func LoadPositionalRows(path string, skipHeader bool) ([]keyword.Row, error) {
	records, err := readAll(path)
	if err != nil {
		return nil, err
	}
	if skipHeader && len(records) > 0 {
		records = records[1:]
	}

	var rows []keyword.Row
	for _, record := range records {
		var fields []string
		for _, cell := range record {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				fields = append(fields, cell)
			}
		}
		if len(fields) > 0 {
			rows = append(rows, keyword.NewPositionalRow(fields...))
		}
	}
	return rows, nil
}

// KeyedSource holds one secondary file loaded in keyed form, before merging.
type KeyedSource struct {
	Path    string
	Headers []string
	Rows    []map[string]string
}

// LoadKeyedSource reads a secondary file whose header row names its fields.
// Rows with no non-empty value are dropped.
func LoadKeyedSource(path string) (KeyedSource, error) {
	records, err := readAll(path)
	if err != nil {
		return KeyedSource{}, err
	}
	if len(records) == 0 || len(trimNonEmpty(records[0])) == 0 {
		return KeyedSource{}, fmt.Errorf("%w: %s must have a header row when templates are used", ErrNoHeaderRow, path)
	}

	headers := trimAll(records[0])
	source := KeyedSource{Path: path, Headers: headers}
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		usable := false
		for i, name := range headers {
			value := ""
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			row[name] = value
			if value != "" {
				usable = true
			}
		}
		if usable {
			source.Rows = append(source.Rows, row)
		}
	}
	return source, nil
}

// LoadTemplateSource reads a template file and classifies it once: more than
// one header column makes it a table source; otherwise the single column is
// the string-template form with blank lines, '#' comments, and placeholder-free
// lines filtered out. Skipped counts the filtered non-template lines.
func LoadTemplateSource(path string) (table keyword.TemplateTable, skipped int, err error) {
	records, err := readAll(path)
	if err != nil {
		return keyword.TemplateTable{}, 0, err
	}
	if len(records) == 0 {
		return keyword.TemplateTable{}, 0, nil
	}

	if len(records[0]) > 1 {
		headers := trimAll(records[0])
		table = keyword.TemplateTable{Headers: headers}
		for _, record := range records[1:] {
			cells := make([]string, len(headers))
			usable := false
			for i := range headers {
				if i < len(record) {
					cells[i] = strings.TrimSpace(record[i])
				}
				if cells[i] != "" {
					usable = true
				}
			}
			if usable {
				table.Rows = append(table.Rows, cells)
			}
		}
		return table, 0, nil
	}

	table = keyword.TemplateTable{Headers: []string{"template"}}
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		line := strings.TrimSpace(record[0])
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !template.HasPlaceholder(line) {
			skipped++
			continue
		}
		table.Rows = append(table.Rows, []string{line})
	}
	return table, skipped, nil
}

// Headers peeks at a file's header row without loading its data. Useful for
// column pickers and grouping option lists.
func Headers(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tabular: open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	record, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("tabular: read %s: %w", path, err)
	}
	return trimAll(record), nil
}

func trimAll(record []string) []string {
	out := make([]string, len(record))
	for i, cell := range record {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}

func trimNonEmpty(record []string) []string {
	var out []string
	for _, cell := range record {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			out = append(out, cell)
		}
	}
	return out
}
