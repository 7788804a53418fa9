package tabular

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-kwgen/pkg/keyword"
)

// MergeKeyedSources combines one or more keyed secondary sources into the row
// set the template strategies consume. Headers are unioned in declaration
// order; a field name appearing in two sources is a hard error (fields are
// never silently merged). The row sets combine as a cartesian product, so a
// row from each source contributes its fields to every merged row.
func MergeKeyedSources(sources []KeyedSource) ([]keyword.Row, []string, error) {
	var union []string
	seen := make(map[string]struct{})
	collisions := make(map[string]struct{})
	for _, source := range sources {
		for _, name := range source.Headers {
			if _, dup := seen[name]; dup {
				collisions[name] = struct{}{}
				continue
			}
			seen[name] = struct{}{}
			union = append(union, name)
		}
	}
	if len(collisions) > 0 {
		names := make([]string, 0, len(collisions))
		for name := range collisions {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, nil, fmt.Errorf("%w: %s (rename columns to be unique across files)",
			ErrHeaderCollision, strings.Join(names, ", "))
	}

	merged := []map[string]string{{}}
	for _, source := range sources {
		next := make([]map[string]string, 0, len(merged)*len(source.Rows))
		for _, base := range merged {
			for _, row := range source.Rows {
				combined := make(map[string]string, len(base)+len(row))
				for name, value := range base {
					combined[name] = value
				}
				for name, value := range row {
					combined[name] = value
				}
				next = append(next, combined)
			}
		}
		merged = next
	}

	rows := make([]keyword.Row, 0, len(merged))
	for _, values := range merged {
		rows = append(rows, keyword.NewKeyedRow(union, values))
	}
	return rows, union, nil
}
