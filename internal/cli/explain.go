package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"brstemmer/stemmer"
)

var explainJSON bool

var explainCmd = &cobra.Command{
	Use:   "explain <word>",
	Short: "Show what every stemming step did to a word",
	Long: `Stem a word and print, step by step, whether the step ran and which
rules rewrote the word.

Examples:
  brstemmer explain professora
  brstemmer explain cantando --json`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().BoolVar(&explainJSON, "json", false, "output as JSON")
}

func runExplain(cmd *cobra.Command, args []string) error {
	trace := stemmer.New(table).Explain(args[0])

	if explainJSON || GetConfig().Output.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(trace)
	}

	printTrace(cmd.OutOrStdout(), trace)
	return nil
}

func printTrace(w io.Writer, trace stemmer.Trace) {
	fmt.Fprintf(w, "Word: %s\n", trace.Input)
	if trace.Normalized != trace.Input {
		fmt.Fprintf(w, "Lowercased: %s\n", trace.Normalized)
	}
	fmt.Fprintln(w, strings.Repeat("-", 50))

	for _, st := range trace.Steps {
		switch {
		case !st.Ran:
			fmt.Fprintf(w, "  %-24s skipped\n", st.Step)
		case !st.Changed:
			fmt.Fprintf(w, "  %-24s no change\n", st.Step)
		default:
			fmt.Fprintf(w, "  %-24s %s -> %s\n", st.Step, st.Input, st.Output)
			for _, r := range st.Applied {
				repl := r.Replacement
				if repl == "" {
					repl = `""`
				}
				fmt.Fprintf(w, "      -%s +%s  %s -> %s\n", r.Suffix, repl, r.Before, r.After)
			}
		}
	}

	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintf(w, "Stem: %s\n", trace.Stem)
}
