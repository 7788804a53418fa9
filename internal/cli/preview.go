package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-kwgen/pkg/keyword"
	"github.com/goliatone/go-kwgen/pkg/orchestrator"
)

func newPreviewCmd() *cobra.Command {
	var (
		corePath   string
		coreColumn string
		secondary  []string
		tmplPath   string
		minFields  int
		skipHeader bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Sample output from the first core phrase and first secondary row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var options []orchestrator.Option
			if cmd.Flags().Changed("min-fields") {
				options = append(options, orchestrator.WithMinFields(minFields))
			}
			sample, err := orchestrator.New(options...).Preview(cmd.Context(), orchestrator.Request{
				CorePath:       corePath,
				CoreColumn:     coreColumn,
				SecondaryPaths: secondary,
				SkipHeader:     skipHeader,
				TemplatePath:   tmplPath,
			}, limit)
			if err != nil {
				return err
			}
			if len(sample) == 0 {
				printWarning("No preview available (inputs may be empty).")
				return nil
			}
			for _, line := range sample {
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corePath, "core", "", "core keyword CSV file")
	cmd.Flags().StringVar(&coreColumn, "core-column", keyword.CoreField, "column to use in the core CSV")
	cmd.Flags().StringSliceVar(&secondary, "secondary", nil, "secondary/components CSV file(s)")
	cmd.Flags().StringVar(&tmplPath, "template", "", "template CSV (single column or table form)")
	cmd.Flags().IntVar(&minFields, "min-fields", 0, "minimum number of secondary fields per permutation")
	cmd.Flags().BoolVar(&skipHeader, "skip-header", false, "treat the first secondary row as a header (permutation mode)")
	cmd.Flags().IntVar(&limit, "limit", orchestrator.DefaultPreviewLimit, "maximum number of sample lines")
	_ = cmd.MarkFlagRequired("core")
	_ = cmd.MarkFlagRequired("secondary")

	return cmd
}
