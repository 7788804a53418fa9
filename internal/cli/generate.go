package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-kwgen/internal/config"
	"github.com/goliatone/go-kwgen/pkg/keyword"
	"github.com/goliatone/go-kwgen/pkg/orchestrator"
)

func newGenerateCmd() *cobra.Command {
	var (
		jobPath    string
		corePath   string
		coreColumn string
		secondary  []string
		tmplPath   string
		output     string
		minFields  int
		matchType  string
		groupBy    string
		skipHeader bool
		keepDupes  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate keywords from core and secondary CSV files",
		Long: `Generate runs one batch: load inputs, expand, de-duplicate, wrap, write.

Inputs come from flags or from a YAML job file (--job); explicit flags win
over job values. Without --template the first secondary file is permuted
positionally; with it, all secondary files merge by header and the template
file drives generation (multi-column templates produce CSV output).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := config.Job{
				CoreColumn: keyword.CoreField,
				MatchType:  "broad",
			}
			if jobPath != "" {
				loaded, err := config.Load(jobPath)
				if err != nil {
					return err
				}
				job = loaded
			}
			flags := cmd.Flags()
			if flags.Changed("core") {
				job.Core = corePath
			}
			if flags.Changed("core-column") {
				job.CoreColumn = coreColumn
			}
			if flags.Changed("secondary") {
				job.Secondary = secondary
			}
			if flags.Changed("template") {
				job.Template = tmplPath
			}
			if flags.Changed("output") {
				job.Output = output
			}
			if flags.Changed("min-fields") {
				job.MinFields = &minFields
			}
			if flags.Changed("match-type") {
				job.MatchType = matchType
			}
			if flags.Changed("group-by") {
				job.GroupBy = groupBy
			}
			if flags.Changed("skip-header") {
				job.SkipHeader = skipHeader
			}
			if flags.Changed("keep-duplicates") {
				job.KeepDupes = keepDupes
			}
			if err := job.Validate(); err != nil {
				return err
			}

			options := []orchestrator.Option{
				orchestrator.WithMatchType(job.Match()),
				orchestrator.WithGroupKey(job.Group()),
			}
			if job.MinFields != nil {
				options = append(options, orchestrator.WithMinFields(*job.MinFields))
			}
			if job.KeepDupes {
				options = append(options, orchestrator.WithKeepDuplicates())
			}

			result, err := orchestrator.New(options...).Generate(cmd.Context(), orchestrator.Request{
				CorePath:       job.Core,
				CoreColumn:     job.CoreColumn,
				SecondaryPaths: job.Secondary,
				SkipHeader:     job.SkipHeader,
				TemplatePath:   job.Template,
				OutputPath:     job.Output,
			})
			if err != nil {
				return err
			}

			printSummary(result, job)
			return nil
		},
	}

	cmd.Flags().StringVar(&jobPath, "job", "", "YAML job file; explicit flags override its values")
	cmd.Flags().StringVar(&corePath, "core", "", "core keyword CSV file")
	cmd.Flags().StringVar(&coreColumn, "core-column", keyword.CoreField, "column to use in the core CSV")
	cmd.Flags().StringSliceVar(&secondary, "secondary", nil, "secondary/components CSV file(s)")
	cmd.Flags().StringVar(&tmplPath, "template", "", "template CSV (single column or table form)")
	cmd.Flags().StringVar(&output, "output", "", "output file path")
	cmd.Flags().IntVar(&minFields, "min-fields", 0, "minimum number of secondary fields per permutation")
	cmd.Flags().StringVar(&matchType, "match-type", "broad", "match type: broad, phrase, or exact")
	cmd.Flags().StringVar(&groupBy, "group-by", "", "split output by group: none, core, or a secondary field name")
	cmd.Flags().BoolVar(&skipHeader, "skip-header", false, "treat the first secondary row as a header (permutation mode)")
	cmd.Flags().BoolVar(&keepDupes, "keep-duplicates", false, "keep raw order including duplicates")

	return cmd
}

func printSummary(result orchestrator.Result, job config.Job) {
	printSection("Summary")
	printLabelValue("Core phrases", result.Stats.Cores)
	printLabelValue("Secondary rows", result.Stats.SecondaryRows)
	if job.Template != "" {
		printLabelValue("Templates", result.Stats.Templates)
		if result.Stats.SkippedNonTemplate > 0 {
			printWarning(fmt.Sprintf("Skipped %d non-template line(s) (no placeholders).", result.Stats.SkippedNonTemplate))
		}
		if result.Stats.RenderSkips > 0 {
			printWarning(fmt.Sprintf("Skipped %d combination(s) with missing or empty fields.", result.Stats.RenderSkips))
		}
	}
	printLabelValue("Match type", job.Match().String())
	if result.TableMode {
		printLabelValue("Output rows", result.Stats.Unique)
	} else if job.KeepDupes {
		printLabelValue("Keywords (duplicates kept)", result.Stats.Raw)
	} else {
		printLabelValue("Unique keywords", result.Stats.Unique)
	}
	for _, path := range result.WrittenPaths {
		printSuccess("Wrote output to " + path)
	}
}
