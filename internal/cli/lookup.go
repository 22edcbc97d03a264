package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	lookupStem bool
	lookupJSON bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Look up words in the stored stem dictionary",
	Long: `Look up a word in the dictionary built by 'brstemmer corpus'. The word's
stored stem and every other word sharing it are printed. With --stem the
argument is taken as a stem.

Examples:
  brstemmer lookup meninas
  brstemmer lookup --stem cant`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().BoolVar(&lookupStem, "stem", false, "treat the argument as a stem")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output as JSON")
}

type lookupResult struct {
	Word     string   `json:"word,omitempty"`
	Stem     string   `json:"stem"`
	Found    bool     `json:"found"`
	Family   []string `json:"family"`
	Stale    bool     `json:"stale,omitempty"`
	Computed string   `json:"computed,omitempty"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	st, err := openStore(GetRootDir(), false)
	if err != nil {
		return err
	}
	defer st.Close()

	arg := strings.ToLower(args[0])
	res := lookupResult{Stem: arg}

	if !lookupStem {
		res.Word = arg
		stem, found, err := st.Lookup(arg)
		if err != nil {
			return fmt.Errorf("lookup failed: %w", err)
		}
		res.Found = found
		res.Computed = newStemmer().Stem(arg)
		if found {
			res.Stem = stem
			res.Stale = stem != res.Computed
		} else {
			res.Stem = res.Computed
		}
	}

	res.Family, err = st.Family(res.Stem)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}
	if lookupStem {
		res.Found = len(res.Family) > 0
	}

	out := cmd.OutOrStdout()
	if lookupJSON || GetConfig().Output.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if res.Word != "" {
		if res.Found {
			fmt.Fprintf(out, "%s -> %s\n", res.Word, res.Stem)
		} else {
			fmt.Fprintf(out, "%s -> %s (not in dictionary)\n", res.Word, res.Stem)
		}
		if res.Stale {
			fmt.Fprintf(out, "warning: the active rules stem %s to %s\n", res.Word, res.Computed)
		}
	}
	if len(res.Family) == 0 {
		fmt.Fprintf(out, "No stored words stem to %s\n", res.Stem)
		return nil
	}
	fmt.Fprintf(out, "Words with stem %s (%d):\n", res.Stem, len(res.Family))
	for _, w := range res.Family {
		fmt.Fprintf(out, "  %s\n", w)
	}
	return nil
}
