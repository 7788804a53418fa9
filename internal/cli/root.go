// Package cli assembles the kwgen command tree: flag-driven batch generation,
// preview sampling, and the guided interactive session.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "kwgen",
	Version: "dev",
	Short:   "Keyword combination generator for search campaigns",
	Long: `kwgen combines a core phrase list with secondary attribute data (locations,
venues, any tabular components) into large candidate keyword lists.

Three strategies are available: positional permutation (insert the core at
every position of every field arrangement), single-column string templates
with {placeholders}, and multi-column template tables producing CSV rows.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion stamps the build version onto the root command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the kwgen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	})
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newGuidedCmd())
}

// Execute runs the root command, reporting any failure once on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err.Error())
	}
	return err
}
