package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-kwgen/pkg/tui"
)

func newGuidedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guided",
		Short: "Run the interactive guided generation flow",
		Long: `Guided walks through the whole session interactively: pick the core and
secondary CSVs, optionally a template file, preview the output, review
duplicates, choose a match type, and save.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow := tui.NewFlow(tui.NewSurveyDriver())
			err := flow.Run(cmd.Context())
			if errors.Is(err, tui.ErrAborted) {
				printWarning("Canceled.")
				return nil
			}
			return err
		},
	}
}
