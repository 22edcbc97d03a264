package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"brstemmer/internal/adapter/rulefile"
	"brstemmer/stemmer"
)

var rulesSteps []string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active rule table as YAML",
	Long: `Print the active rule table as YAML. The full output can be edited and
passed back with --rules.

Examples:
  brstemmer rules > rules.yaml
  brstemmer rules --step plural_reduction`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.Flags().StringSliceVar(&rulesSteps, "step", nil, "only print these steps")
}

func runRules(cmd *cobra.Command, args []string) error {
	only := make([]stemmer.StepName, 0, len(rulesSteps))
	for _, name := range rulesSteps {
		if _, ok := table.Lookup(stemmer.StepName(name)); !ok {
			return fmt.Errorf("unknown step %q", name)
		}
		only = append(only, stemmer.StepName(name))
	}
	return rulefile.Encode(cmd.OutOrStdout(), table, only...)
}
